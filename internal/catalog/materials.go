package catalog

import (
	"encoding/json"
	"net/http"

	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"

	"github.com/go-chi/chi/v5"
)

func (c *Controller) HandleListMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := c.store.GetMaterials(r.Context())
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, materials)
}

func (c *Controller) HandleGetMaterial(w http.ResponseWriter, r *http.Request) {
	material, err := c.store.GetMaterial(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, material)
}

func (c *Controller) HandleCreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req dto.InsertMaterial
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateInsertMaterial(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	material, err := c.store.CreateMaterial(r.Context(), req)
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, material)
}

func (c *Controller) HandleUpdateMaterial(w http.ResponseWriter, r *http.Request) {
	var patch dto.MaterialPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateMaterialPatch(patch); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	material, err := c.store.UpdateMaterial(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, material)
}

func (c *Controller) HandleDeleteMaterial(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.store.DeleteMaterial(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	if !deleted {
		c.writeJSON(w, http.StatusNotFound, errorResponse{Error: "NOT_FOUND", Message: "material not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func validateInsertMaterial(req dto.InsertMaterial) error {
	var details []apperrors.ValidationDetail

	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	details = appendPriceDetail(details, "pricePerUnit", req.PricePerUnit, true)
	if len(req.AvailableThickness) == 0 {
		details = append(details, apperrors.ValidationDetail{Field: "availableThickness", Message: "availableThickness must not be empty"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func validateMaterialPatch(patch dto.MaterialPatch) error {
	var details []apperrors.ValidationDetail

	if patch.Name != nil && *patch.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name must not be empty"})
	}
	if patch.PricePerUnit != nil {
		details = appendPriceDetail(details, "pricePerUnit", *patch.PricePerUnit, true)
	}
	if patch.Unit != nil && *patch.Unit == "" {
		details = append(details, apperrors.ValidationDetail{Field: "unit", Message: "unit must not be empty"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
