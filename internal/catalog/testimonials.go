package catalog

import (
	"encoding/json"
	"net/http"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"

	"github.com/go-chi/chi/v5"
)

func (c *Controller) HandleListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := c.store.GetTestimonials(r.Context())
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, testimonials)
}

func (c *Controller) HandleListFeaturedTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := c.store.GetFeaturedTestimonials(r.Context())
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	if testimonials == nil {
		testimonials = []domain.Testimonial{}
	}
	c.writeJSON(w, http.StatusOK, testimonials)
}

func (c *Controller) HandleCreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req dto.InsertTestimonial
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateInsertTestimonial(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	testimonial, err := c.store.CreateTestimonial(r.Context(), req)
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, testimonial)
}

func (c *Controller) HandleUpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var patch dto.TestimonialPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateTestimonialPatch(patch); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	testimonial, err := c.store.UpdateTestimonial(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, testimonial)
}

func (c *Controller) HandleDeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.store.DeleteTestimonial(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	if !deleted {
		c.writeJSON(w, http.StatusNotFound, errorResponse{Error: "NOT_FOUND", Message: "testimonial not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func validateInsertTestimonial(req dto.InsertTestimonial) error {
	var details []apperrors.ValidationDetail

	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if req.Content == "" {
		details = append(details, apperrors.ValidationDetail{Field: "content", Message: "content is required"})
	}
	// Rating 0 means "not provided" and defaults to 5 at the store.
	if req.Rating != 0 && (req.Rating < 1 || req.Rating > 5) {
		details = append(details, apperrors.ValidationDetail{Field: "rating", Message: "rating must be between 1 and 5"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func validateTestimonialPatch(patch dto.TestimonialPatch) error {
	var details []apperrors.ValidationDetail

	if patch.Name != nil && *patch.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name must not be empty"})
	}
	if patch.Content != nil && *patch.Content == "" {
		details = append(details, apperrors.ValidationDetail{Field: "content", Message: "content must not be empty"})
	}
	if patch.Rating != nil && (*patch.Rating < 1 || *patch.Rating > 5) {
		details = append(details, apperrors.ValidationDetail{Field: "rating", Message: "rating must be between 1 and 5"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
