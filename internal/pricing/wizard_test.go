package pricing

import (
	"context"
	"errors"
	"testing"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOrderCreator struct {
	CreateOrderFunc func(ctx context.Context, in dto.InsertOrder) (*domain.Order, error)
}

func (m *mockOrderCreator) CreateOrder(ctx context.Context, in dto.InsertOrder) (*domain.Order, error) {
	return m.CreateOrderFunc(ctx, in)
}

func newTestWizard() *Wizard {
	return NewWizard(
		[]domain.Product{signboard},
		[]domain.Material{acrylic},
	)
}

func fillToDetails(w *Wizard) {
	w.Config.ProductType = "3D LED Signboard"
	w.Next()
	w.Config.Material = "Acrylic"
	w.Next()
	w.Next() // custom text is optional
	w.Config.Width = "12"
	w.Config.Height = "8"
	w.Config.Thickness = "5mm"
	w.Config.Quantity = "2"
	w.Next()
	w.Next() // preview
}

func TestWizard_StartsAtStepOne(t *testing.T) {
	w := newTestWizard()
	assert.Equal(t, StepProduct, w.Step())
	assert.False(t, w.CanAdvance())
	assert.False(t, w.Next())
	assert.False(t, w.Back())
}

func TestWizard_StepPredicates(t *testing.T) {
	w := newTestWizard()

	// Step 1 requires a product type.
	assert.False(t, w.Next())
	w.Config.ProductType = "3D LED Signboard"
	assert.True(t, w.Next())
	assert.Equal(t, StepMaterial, w.Step())

	// Step 2 requires a material.
	assert.False(t, w.Next())
	w.Config.Material = "Acrylic"
	assert.True(t, w.Next())

	// Step 3 is optional text.
	assert.Equal(t, StepCustomText, w.Step())
	assert.True(t, w.CanAdvance())
	assert.True(t, w.Next())

	// Step 4 requires all four dimension fields.
	assert.Equal(t, StepDimensions, w.Step())
	w.Config.Width = "12"
	w.Config.Height = "8"
	w.Config.Quantity = "2"
	assert.False(t, w.CanAdvance())
	w.Config.Thickness = "5mm"
	assert.True(t, w.Next())

	// Step 5 is a read-only preview.
	assert.Equal(t, StepPreview, w.Step())
	assert.True(t, w.Next())

	// Step 6 requires full contact details; Next never crosses into 7.
	assert.Equal(t, StepDetails, w.Step())
	w.Config.CustomerName = "Ayesha"
	w.Config.CustomerEmail = "ayesha@example.com"
	w.Config.CustomerPhone = "03001234567"
	assert.True(t, w.CanAdvance())
	assert.False(t, w.Next())
	assert.Equal(t, StepDetails, w.Step())
}

func TestWizard_BackClampsAtStepOne(t *testing.T) {
	w := newTestWizard()
	w.Config.ProductType = "3D LED Signboard"
	require.True(t, w.Next())

	assert.True(t, w.Back())
	assert.Equal(t, StepProduct, w.Step())
	assert.False(t, w.Back())
	assert.Equal(t, StepProduct, w.Step())
}

func TestWizard_Total(t *testing.T) {
	w := newTestWizard()
	fillToDetails(w)
	assert.InDelta(t, 30266.6667, w.Total(), 0.001)

	// Unknown material prices at zero.
	w.Config.Material = "Granite"
	assert.Zero(t, w.Total())
}

func TestWizard_SubmitSuccessAdvancesToConfirmation(t *testing.T) {
	w := newTestWizard()
	fillToDetails(w)
	w.Config.CustomText = "Café Milano"
	w.Config.CustomerName = "Ayesha"
	w.Config.CustomerEmail = "ayesha@example.com"
	w.Config.CustomerPhone = "03001234567"

	var got dto.InsertOrder
	creator := &mockOrderCreator{
		CreateOrderFunc: func(ctx context.Context, in dto.InsertOrder) (*domain.Order, error) {
			got = in
			return &domain.Order{ID: "order-1", Status: domain.OrderStatusPending}, nil
		},
	}

	order, err := w.Submit(context.Background(), creator)
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, StepConfirmed, w.Step())

	assert.Equal(t, "12x8 inches", got.Dimensions)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, "30266.67", got.TotalPrice)
	require.NotNil(t, got.Thickness)
	assert.Equal(t, "5mm", *got.Thickness)
	require.NotNil(t, got.CustomText)
	assert.Equal(t, "Café Milano", *got.CustomText)
}

func TestWizard_SubmitFailureKeepsStepAndAllowsRetry(t *testing.T) {
	w := newTestWizard()
	fillToDetails(w)
	w.Config.CustomerName = "Ayesha"
	w.Config.CustomerEmail = "ayesha@example.com"
	w.Config.CustomerPhone = "03001234567"

	calls := 0
	creator := &mockOrderCreator{
		CreateOrderFunc: func(ctx context.Context, in dto.InsertOrder) (*domain.Order, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("network down")
			}
			return &domain.Order{ID: "order-2"}, nil
		},
	}

	_, err := w.Submit(context.Background(), creator)
	require.Error(t, err)
	assert.Equal(t, StepDetails, w.Step())

	order, err := w.Submit(context.Background(), creator)
	require.NoError(t, err)
	assert.Equal(t, "order-2", order.ID)
	assert.Equal(t, StepConfirmed, w.Step())
}

func TestWizard_SubmitRejectedOffStepSix(t *testing.T) {
	w := newTestWizard()
	creator := &mockOrderCreator{
		CreateOrderFunc: func(ctx context.Context, in dto.InsertOrder) (*domain.Order, error) {
			t.Fatal("creator must not be called")
			return nil, nil
		},
	}

	_, err := w.Submit(context.Background(), creator)
	assert.Error(t, err)
	assert.Equal(t, StepProduct, w.Step())
}

func TestWizard_ConfirmationIsTerminal(t *testing.T) {
	w := newTestWizard()
	fillToDetails(w)
	w.Config.CustomerName = "Ayesha"
	w.Config.CustomerEmail = "ayesha@example.com"
	w.Config.CustomerPhone = "03001234567"

	creator := &mockOrderCreator{
		CreateOrderFunc: func(ctx context.Context, in dto.InsertOrder) (*domain.Order, error) {
			return &domain.Order{ID: "order-3"}, nil
		},
	}
	_, err := w.Submit(context.Background(), creator)
	require.NoError(t, err)
	require.Equal(t, StepConfirmed, w.Step())

	assert.False(t, w.Next())
	assert.False(t, w.Back())
	assert.False(t, w.CanAdvance())

	w.Reset()
	assert.Equal(t, StepProduct, w.Step())
	assert.Equal(t, Config{}, w.Config)
}
