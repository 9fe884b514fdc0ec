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

const inquiryColumns = `id, name, email, phone, material, dimensions, quantity, file_url, message, status, created_at`

func scanInquiry(row interface{ Scan(...interface{}) error }) (*domain.Inquiry, error) {
	var i domain.Inquiry
	err := row.Scan(
		&i.ID, &i.Name, &i.Email, &i.Phone, &i.Material, &i.Dimensions,
		&i.Quantity, &i.FileURL, &i.Message, &i.Status, &i.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *Store) GetInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+inquiryColumns+` FROM inquiries ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []domain.Inquiry
	for rows.Next() {
		i, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning inquiry row: %w", err)
		}
		inquiries = append(inquiries, *i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inquiry rows: %w", err)
	}
	return inquiries, nil
}

func (s *Store) GetInquiry(ctx context.Context, id string) (*domain.Inquiry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+inquiryColumns+` FROM inquiries WHERE id = ?`, id)
	i, err := scanInquiry(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("inquiry not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying inquiry by id: %w", err)
	}
	return i, nil
}

func (s *Store) CreateInquiry(ctx context.Context, in dto.InsertInquiry) (*domain.Inquiry, error) {
	status := in.Status
	if status == "" {
		status = domain.InquiryStatusNew
	}

	inquiry := domain.Inquiry{
		ID:         newID(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Material:   in.Material,
		Dimensions: in.Dimensions,
		Quantity:   in.Quantity,
		FileURL:    in.FileURL,
		Message:    in.Message,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO inquiries (`+inquiryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Material,
		inquiry.Dimensions, inquiry.Quantity, inquiry.FileURL, inquiry.Message,
		inquiry.Status, inquiry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting inquiry: %w", err)
	}
	return &inquiry, nil
}

func (s *Store) UpdateInquiry(ctx context.Context, id string, patch dto.InquiryPatch) (*domain.Inquiry, error) {
	inquiry, err := s.GetInquiry(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		inquiry.Status = *patch.Status
	}

	_, err = s.db.ExecContext(ctx, `UPDATE inquiries SET status = ? WHERE id = ?`, inquiry.Status, id)
	if err != nil {
		return nil, fmt.Errorf("updating inquiry: %w", err)
	}
	return inquiry, nil
}
