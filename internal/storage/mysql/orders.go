package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"
)

const orderColumns = `id, customer_name, customer_email, customer_phone, product_type, material,
	dimensions, thickness, quantity, custom_text, design_file_url, total_price, status, notes, created_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.ProductType,
		&o.Material, &o.Dimensions, &o.Thickness, &o.Quantity, &o.CustomText,
		&o.DesignFileURL, &o.TotalPrice, &o.Status, &o.Notes, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) GetOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}
	return orders, nil
}

func (s *Store) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("order not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}
	return o, nil
}

func (s *Store) CreateOrder(ctx context.Context, in dto.InsertOrder) (*domain.Order, error) {
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

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO orders (`+orderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.ProductType,
		order.Material, order.Dimensions, order.Thickness, order.Quantity, order.CustomText,
		order.DesignFileURL, order.TotalPrice, order.Status, order.Notes, order.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}
	return &order, nil
}

func (s *Store) UpdateOrder(ctx context.Context, id string, patch dto.OrderPatch) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.Notes != nil {
		order.Notes = patch.Notes
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE orders SET status = ?, notes = ? WHERE id = ?`,
		order.Status, order.Notes, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating order: %w", err)
	}
	return order, nil
}
