package intake

import (
	"encoding/json"
	"net/http"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"

	"github.com/go-chi/chi/v5"
)

func (c *Controller) HandleListInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := c.store.GetInquiries(r.Context())
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	if inquiries == nil {
		inquiries = []domain.Inquiry{}
	}
	c.writeJSON(w, http.StatusOK, inquiries)
}

func (c *Controller) HandleGetInquiry(w http.ResponseWriter, r *http.Request) {
	inquiry, err := c.store.GetInquiry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, inquiry)
}

func (c *Controller) HandleCreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req dto.InsertInquiry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateInsertInquiry(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	inquiry, err := c.store.CreateInquiry(r.Context(), req)
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, inquiry)
}

func (c *Controller) HandleUpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if !domain.ValidInquiryStatus(req.Status) {
		c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of new, contacted, quoted, closed",
		})
		return
	}

	inquiry, err := c.store.UpdateInquiry(r.Context(), chi.URLParam(r, "id"), dto.InquiryPatch{Status: &req.Status})
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, inquiry)
}

func validateInsertInquiry(req dto.InsertInquiry) error {
	var details []apperrors.ValidationDetail

	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if req.Email == "" {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "email is required"})
	}
	if req.Phone == "" {
		details = append(details, apperrors.ValidationDetail{Field: "phone", Message: "phone is required"})
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		details = append(details, apperrors.ValidationDetail{Field: "quantity", Message: "quantity must be at least 1"})
	}
	if req.Status != "" && !domain.ValidInquiryStatus(req.Status) {
		details = append(details, apperrors.ValidationDetail{Field: "status", Message: "status must be one of new, contacted, quoted, closed"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
