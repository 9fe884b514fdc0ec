package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"

	"github.com/go-chi/chi/v5"
)

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	var (
		products []domain.Product
		err      error
	)

	if category := r.URL.Query().Get("category"); category != "" {
		products, err = c.store.GetProductsByCategory(r.Context(), category)
	} else {
		products, err = c.store.GetProducts(r.Context())
	}
	if err != nil {
		c.writeStoreError(w, err)
		return
	}

	if products == nil {
		products = []domain.Product{}
	}
	c.writeJSON(w, http.StatusOK, products)
}

func (c *Controller) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := c.store.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, product)
}

func (c *Controller) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.InsertProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateInsertProduct(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	product, err := c.store.CreateProduct(r.Context(), req)
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, product)
}

func (c *Controller) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var patch dto.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateProductPatch(patch); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	product, err := c.store.UpdateProduct(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, product)
}

func (c *Controller) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.store.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	if !deleted {
		c.writeJSON(w, http.StatusNotFound, errorResponse{Error: "NOT_FOUND", Message: "product not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func validateInsertProduct(req dto.InsertProduct) error {
	var details []apperrors.ValidationDetail

	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if req.Description == "" {
		details = append(details, apperrors.ValidationDetail{Field: "description", Message: "description is required"})
	}
	if req.Category == "" {
		details = append(details, apperrors.ValidationDetail{Field: "category", Message: "category is required"})
	} else if !domain.ValidCategory(req.Category) {
		details = append(details, apperrors.ValidationDetail{Field: "category", Message: "category must be one of home-decor, 3d-signs, corporate, gifts"})
	}
	details = appendPriceDetail(details, "basePrice", req.BasePrice, true)

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func validateProductPatch(patch dto.ProductPatch) error {
	var details []apperrors.ValidationDetail

	if patch.Name != nil && *patch.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name must not be empty"})
	}
	if patch.Description != nil && *patch.Description == "" {
		details = append(details, apperrors.ValidationDetail{Field: "description", Message: "description must not be empty"})
	}
	if patch.Category != nil && !domain.ValidCategory(*patch.Category) {
		details = append(details, apperrors.ValidationDetail{Field: "category", Message: "category must be one of home-decor, 3d-signs, corporate, gifts"})
	}
	if patch.BasePrice != nil {
		details = appendPriceDetail(details, "basePrice", *patch.BasePrice, true)
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

// appendPriceDetail checks a decimal-string price field. With required set,
// an empty value is an error; otherwise empty passes.
func appendPriceDetail(details []apperrors.ValidationDetail, field, value string, required bool) []apperrors.ValidationDetail {
	if value == "" {
		if required {
			details = append(details, apperrors.ValidationDetail{Field: field, Message: field + " is required"})
		}
		return details
	}
	price, err := strconv.ParseFloat(value, 64)
	if err != nil || price < 0 {
		details = append(details, apperrors.ValidationDetail{Field: field, Message: field + " must be a non-negative decimal"})
	}
	return details
}
