package intake

import (
	"encoding/json"
	"net/http"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"
	"lasercraft/internal/pricing"
)

// HandleQuote prices a configurator selection without creating anything.
// Product and material are resolved by name; an unresolved selection or
// missing dimension yields a zero total, matching what the preview step
// shows on the site.
func (c *Controller) HandleQuote(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	products, err := c.store.GetProducts(r.Context())
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	materials, err := c.store.GetMaterials(r.Context())
	if err != nil {
		c.writeStoreError(w, err)
		return
	}

	var product *domain.Product
	for i := range products {
		if products[i].Name == req.ProductType {
			product = &products[i]
			break
		}
	}
	var material *domain.Material
	for i := range materials {
		if materials[i].Name == req.Material {
			material = &materials[i]
			break
		}
	}

	total := pricing.Quote(product, material, req.Width, req.Height, req.Quantity)

	c.writeJSON(w, http.StatusOK, dto.QuoteResponse{
		TotalPrice: pricing.FormatPrice(total),
		AreaSqft:   pricing.FormatPrice(pricing.AreaSqft(req.Width, req.Height)),
		Currency:   "PKR",
	})
}
