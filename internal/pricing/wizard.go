package pricing

import (
	"context"
	"fmt"
	"strconv"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
)

// Wizard steps. Steps 1-6 collect input; step 7 is the post-submission
// confirmation and is terminal.
const (
	StepProduct    = 1
	StepMaterial   = 2
	StepCustomText = 3
	StepDimensions = 4
	StepPreview    = 5
	StepDetails    = 6
	StepConfirmed  = 7
)

// Config accumulates the raw form values across wizard steps.
type Config struct {
	ProductType   string
	Material      string
	CustomText    string
	Width         string
	Height        string
	Thickness     string
	Quantity      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
}

// OrderCreator is what the wizard submits through at step 6.
type OrderCreator interface {
	CreateOrder(ctx context.Context, in dto.InsertOrder) (*domain.Order, error)
}

// Wizard walks a customer through product selection, material selection,
// optional text, dimensions, preview, contact details and confirmation.
// It prices against the catalog snapshot it was constructed with.
type Wizard struct {
	step      int
	Config    Config
	products  []domain.Product
	materials []domain.Material
}

func NewWizard(products []domain.Product, materials []domain.Material) *Wizard {
	return &Wizard{
		step:      StepProduct,
		products:  products,
		materials: materials,
	}
}

func (w *Wizard) Step() int {
	return w.step
}

// CanAdvance reports whether the current step's completion predicate holds.
// Step 7 never advances.
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepProduct:
		return w.Config.ProductType != ""
	case StepMaterial:
		return w.Config.Material != ""
	case StepCustomText:
		return true
	case StepDimensions:
		return w.Config.Width != "" && w.Config.Height != "" &&
			w.Config.Thickness != "" && w.Config.Quantity != ""
	case StepPreview:
		return true
	case StepDetails:
		return w.Config.CustomerName != "" && w.Config.CustomerEmail != "" &&
			w.Config.CustomerPhone != ""
	default:
		return false
	}
}

// Next moves forward one step. The 6->7 transition happens only through
// Submit, so Next tops out at step 6.
func (w *Wizard) Next() bool {
	if w.step >= StepDetails || !w.CanAdvance() {
		return false
	}
	w.step++
	return true
}

// Back moves one step back, clamped at step 1. The confirmation step is
// terminal; leaving it takes a full reset.
func (w *Wizard) Back() bool {
	if w.step <= StepProduct || w.step >= StepConfirmed {
		return false
	}
	w.step--
	return true
}

// Reset returns the wizard to step 1 with a blank configuration.
func (w *Wizard) Reset() {
	w.step = StepProduct
	w.Config = Config{}
}

func (w *Wizard) selectedProduct() *domain.Product {
	for i := range w.products {
		if w.products[i].Name == w.Config.ProductType {
			return &w.products[i]
		}
	}
	return nil
}

func (w *Wizard) selectedMaterial() *domain.Material {
	for i := range w.materials {
		if w.materials[i].Name == w.Config.Material {
			return &w.materials[i]
		}
	}
	return nil
}

// Total prices the current configuration.
func (w *Wizard) Total() float64 {
	return Quote(w.selectedProduct(), w.selectedMaterial(), w.Config.Width, w.Config.Height, w.Config.Quantity)
}

// Submit sends the accumulated configuration as an order. It is only valid
// at step 6 with complete customer details. On success the wizard lands on
// the confirmation step; on failure the step is unchanged and the customer
// may retry.
func (w *Wizard) Submit(ctx context.Context, creator OrderCreator) (*domain.Order, error) {
	if w.step != StepDetails || !w.CanAdvance() {
		return nil, fmt.Errorf("wizard not ready to submit at step %d", w.step)
	}

	quantity, err := strconv.Atoi(w.Config.Quantity)
	if err != nil || quantity == 0 {
		quantity = 1
	}

	in := dto.InsertOrder{
		CustomerName:  w.Config.CustomerName,
		CustomerEmail: w.Config.CustomerEmail,
		CustomerPhone: w.Config.CustomerPhone,
		ProductType:   w.Config.ProductType,
		Material:      w.Config.Material,
		Dimensions:    fmt.Sprintf("%sx%s inches", w.Config.Width, w.Config.Height),
		Quantity:      quantity,
		TotalPrice:    FormatPrice(w.Total()),
	}
	if w.Config.Thickness != "" {
		in.Thickness = &w.Config.Thickness
	}
	if w.Config.CustomText != "" {
		in.CustomText = &w.Config.CustomText
	}
	if w.Config.Notes != "" {
		in.Notes = &w.Config.Notes
	}

	order, err := creator.CreateOrder(ctx, in)
	if err != nil {
		return nil, err
	}

	w.step = StepConfirmed
	return order, nil
}
