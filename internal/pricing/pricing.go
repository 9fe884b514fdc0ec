// Package pricing computes configurator estimates and drives the seven-step
// order wizard.
package pricing

import (
	"strconv"

	"lasercraft/internal/domain"
)

// AreaSqft converts width x height in inches to square feet. Unparsable
// dimensions count as zero.
func AreaSqft(width, height string) float64 {
	w, _ := strconv.ParseFloat(width, 64)
	h, _ := strconv.ParseFloat(height, 64)
	return (w * h) / 144
}

// Quote returns the estimated total for a configuration:
//
//	(basePrice + pricePerUnit * area) * quantity
//
// An unresolved product or material, or a missing dimension, prices at 0.
// Quantity falls back to 1 when it does not parse as a non-zero integer.
func Quote(product *domain.Product, material *domain.Material, width, height, quantity string) float64 {
	if product == nil || material == nil || width == "" || height == "" {
		return 0
	}

	basePrice, _ := strconv.ParseFloat(product.BasePrice, 64)
	pricePerUnit, _ := strconv.ParseFloat(material.PricePerUnit, 64)
	area := AreaSqft(width, height)

	qty, err := strconv.Atoi(quantity)
	if err != nil || qty == 0 {
		qty = 1
	}

	return (basePrice + pricePerUnit*area) * float64(qty)
}

// FormatPrice renders a total as the two-decimal string stored on orders.
func FormatPrice(total float64) string {
	return strconv.FormatFloat(total, 'f', 2, 64)
}
