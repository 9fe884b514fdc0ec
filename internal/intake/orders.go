package intake

import (
	"encoding/json"
	"net/http"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (c *Controller) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.store.GetOrders(r.Context())
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	c.writeJSON(w, http.StatusOK, orders)
}

func (c *Controller) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := c.store.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, order)
}

func (c *Controller) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.InsertOrder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateInsertOrder(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	order, err := c.store.CreateOrder(r.Context(), req)
	if err != nil {
		logger.Error("create order failed", zap.Error(err))
		c.writeStoreError(w, err)
		return
	}

	logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.String("productType", order.ProductType),
		zap.String("totalPrice", order.TotalPrice),
	)
	c.writeJSON(w, http.StatusCreated, order)
}

func (c *Controller) HandleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if !domain.ValidOrderStatus(req.Status) {
		c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of pending, processing, completed, cancelled",
		})
		return
	}

	order, err := c.store.UpdateOrder(r.Context(), chi.URLParam(r, "id"), dto.OrderPatch{Status: &req.Status})
	if err != nil {
		c.writeStoreError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, order)
}

func validateInsertOrder(req dto.InsertOrder) error {
	var details []apperrors.ValidationDetail

	required := []struct {
		field, value string
	}{
		{"customerName", req.CustomerName},
		{"customerEmail", req.CustomerEmail},
		{"customerPhone", req.CustomerPhone},
		{"productType", req.ProductType},
		{"material", req.Material},
		{"dimensions", req.Dimensions},
	}
	for _, f := range required {
		if f.value == "" {
			details = append(details, apperrors.ValidationDetail{Field: f.field, Message: f.field + " is required"})
		}
	}

	// Quantity 0 means "not provided" and defaults to 1 at the store.
	if req.Quantity < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "quantity", Message: "quantity must be at least 1"})
	}
	details = appendPriceDetail(details, "totalPrice", req.TotalPrice, true)
	if req.Status != "" && !domain.ValidOrderStatus(req.Status) {
		details = append(details, apperrors.ValidationDetail{Field: "status", Message: "status must be one of pending, processing, completed, cancelled"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
