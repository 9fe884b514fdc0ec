package intake

import (
	"encoding/json"
	"net/http"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"

	"github.com/go-chi/chi/v5"
)

func (c *Controller) HandleListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := c.store.GetContactMessages(r.Context())
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	if messages == nil {
		messages = []domain.ContactMessage{}
	}
	c.writeJSON(w, http.StatusOK, messages)
}

func (c *Controller) HandleCreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.InsertContactMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateInsertContactMessage(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	message, err := c.store.CreateContactMessage(r.Context(), req)
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, message)
}

func (c *Controller) HandleUpdateContactMessageStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if !domain.ValidContactStatus(req.Status) {
		c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of new, read, replied",
		})
		return
	}

	message, err := c.store.UpdateContactMessage(r.Context(), chi.URLParam(r, "id"), dto.ContactMessagePatch{Status: &req.Status})
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, message)
}

func validateInsertContactMessage(req dto.InsertContactMessage) error {
	var details []apperrors.ValidationDetail

	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if req.Email == "" {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "email is required"})
	}
	if req.Subject == "" {
		details = append(details, apperrors.ValidationDetail{Field: "subject", Message: "subject is required"})
	}
	if req.Message == "" {
		details = append(details, apperrors.ValidationDetail{Field: "message", Message: "message is required"})
	}
	if req.Status != "" && !domain.ValidContactStatus(req.Status) {
		details = append(details, apperrors.ValidationDetail{Field: "status", Message: "status must be one of new, read, replied"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
