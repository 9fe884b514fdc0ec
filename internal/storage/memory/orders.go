package memory

import (
	"context"
	"sort"
	"time"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"
)

func (s *Store) GetOrders(ctx context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return s.orderSeq[orders[i].ID] > s.orderSeq[orders[j].ID]
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *Store) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("order not found")
	}
	return &o, nil
}

func (s *Store) CreateOrder(ctx context.Context, in dto.InsertOrder) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = domain.OrderStatusPending
	}
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}

	order := domain.Order{
		ID:            newID(),
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		ProductType:   in.ProductType,
		Material:      in.Material,
		Dimensions:    in.Dimensions,
		Thickness:     in.Thickness,
		Quantity:      quantity,
		CustomText:    in.CustomText,
		DesignFileURL: in.DesignFileURL,
		TotalPrice:    in.TotalPrice,
		Status:        status,
		Notes:         in.Notes,
		CreatedAt:     time.Now().UTC(),
	}
	s.orders[order.ID] = order
	s.orderSeq[order.ID] = s.nextSeq()
	return &order, nil
}

func (s *Store) UpdateOrder(ctx context.Context, id string, patch dto.OrderPatch) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("order not found")
	}

	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.Notes != nil {
		order.Notes = patch.Notes
	}

	s.orders[id] = order
	return &order, nil
}
