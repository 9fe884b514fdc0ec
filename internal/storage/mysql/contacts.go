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

const contactColumns = `id, name, email, phone, subject, message, status, created_at`

func scanContactMessage(row interface{ Scan(...interface{}) error }) (*domain.ContactMessage, error) {
	var c domain.ContactMessage
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) GetContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+contactColumns+` FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying contact messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.ContactMessage
	for rows.Next() {
		c, err := scanContactMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contact message row: %w", err)
		}
		messages = append(messages, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contact message rows: %w", err)
	}
	return messages, nil
}

func (s *Store) CreateContactMessage(ctx context.Context, in dto.InsertContactMessage) (*domain.ContactMessage, error) {
	status := in.Status
	if status == "" {
		status = domain.ContactStatusNew
	}

	message := domain.ContactMessage{
		ID:        newID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (`+contactColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		message.ID, message.Name, message.Email, message.Phone, message.Subject,
		message.Message, message.Status, message.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting contact message: %w", err)
	}
	return &message, nil
}

func (s *Store) UpdateContactMessage(ctx context.Context, id string, patch dto.ContactMessagePatch) (*domain.ContactMessage, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contact_messages WHERE id = ?`, id)
	message, err := scanContactMessage(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("contact message not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying contact message by id: %w", err)
	}

	if patch.Status != nil {
		message.Status = *patch.Status
	}

	_, err = s.db.ExecContext(ctx, `UPDATE contact_messages SET status = ? WHERE id = ?`, message.Status, id)
	if err != nil {
		return nil, fmt.Errorf("updating contact message: %w", err)
	}
	return message, nil
}
