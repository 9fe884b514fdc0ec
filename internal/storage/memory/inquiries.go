package memory

import (
	"context"
	"sort"
	"time"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"
)

func (s *Store) GetInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inquiries := make([]domain.Inquiry, 0, len(s.inquiries))
	for _, q := range s.inquiries {
		inquiries = append(inquiries, q)
	}
	sort.Slice(inquiries, func(i, j int) bool {
		if inquiries[i].CreatedAt.Equal(inquiries[j].CreatedAt) {
			return s.inquirySeq[inquiries[i].ID] > s.inquirySeq[inquiries[j].ID]
		}
		return inquiries[i].CreatedAt.After(inquiries[j].CreatedAt)
	})
	return inquiries, nil
}

func (s *Store) GetInquiry(ctx context.Context, id string) (*domain.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.inquiries[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("inquiry not found")
	}
	return &q, nil
}

func (s *Store) CreateInquiry(ctx context.Context, in dto.InsertInquiry) (*domain.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.inquiries[inquiry.ID] = inquiry
	s.inquirySeq[inquiry.ID] = s.nextSeq()
	return &inquiry, nil
}

func (s *Store) UpdateInquiry(ctx context.Context, id string, patch dto.InquiryPatch) (*domain.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inquiry, ok := s.inquiries[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("inquiry not found")
	}

	if patch.Status != nil {
		inquiry.Status = *patch.Status
	}

	s.inquiries[id] = inquiry
	return &inquiry, nil
}
