package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"
	"lasercraft/internal/testutil"
)

func setupStore(t *testing.T) *Store {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	store, err := New(context.Background(), db)
	require.NoError(t, err)
	return store
}

func TestStoreSeedsSampleCatalog(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	products, err := store.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)

	materials, err := store.GetMaterials(ctx)
	require.NoError(t, err)
	require.Len(t, materials, 4)

	acrylic, err := store.GetMaterial(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Acrylic", acrylic.Name)
	assert.Equal(t, []string{"3mm", "5mm", "8mm", "10mm"}, acrylic.AvailableThickness)

	admin, err := store.GetUserByEmail(ctx, "autoc639@gmail.com")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
}

func TestProductLifecycle(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	created, err := store.CreateProduct(ctx, dto.InsertProduct{
		Name:        "Engraved Plaque",
		Description: "Brass-look acrylic plaque",
		Category:    domain.CategoryCorporate,
		BasePrice:   "3500",
		Featured:    true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	newPrice := "4000"
	updated, err := store.UpdateProduct(ctx, created.ID, dto.ProductPatch{BasePrice: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "4000", updated.BasePrice)
	assert.Equal(t, "Engraved Plaque", updated.Name)

	deleted, err := store.DeleteProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = store.GetProduct(ctx, created.ID)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestOrdersListNewestFirst(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first, err := store.CreateOrder(ctx, dto.InsertOrder{
		CustomerName:  "Sana Iqbal",
		CustomerEmail: "sana@example.com",
		CustomerPhone: "+923001234567",
		ProductType:   "Acrylic Nameplate",
		Material:      "Acrylic",
		Dimensions:    "12x8 inches",
		TotalPrice:    "3300.00",
	})
	require.NoError(t, err)

	second, err := store.CreateOrder(ctx, dto.InsertOrder{
		CustomerName:  "Bilal Shaikh",
		CustomerEmail: "bilal@example.com",
		CustomerPhone: "+923007654321",
		ProductType:   "Wooden Wall Art",
		Material:      "Wood",
		Dimensions:    "24x18 inches",
		TotalPrice:    "15500.00",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, first.Status)
	assert.Equal(t, 1, first.Quantity)

	orders, err := store.GetOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	status := domain.OrderStatusProcessing
	updated, err := store.UpdateOrder(ctx, first.ID, dto.OrderPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, updated.Status)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.CreateUser(ctx, dto.InsertUser{
		Email:    "autoc639@gmail.com",
		Password: "another",
	})
	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
}
