package memory

import (
	"context"
	"sort"
	"time"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"
)

func (s *Store) GetContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]domain.ContactMessage, 0, len(s.contacts))
	for _, m := range s.contacts {
		messages = append(messages, m)
	}
	sort.Slice(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return s.contactSeq[messages[i].ID] > s.contactSeq[messages[j].ID]
		}
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}

func (s *Store) CreateContactMessage(ctx context.Context, in dto.InsertContactMessage) (*domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.contacts[message.ID] = message
	s.contactSeq[message.ID] = s.nextSeq()
	return &message, nil
}

func (s *Store) UpdateContactMessage(ctx context.Context, id string, patch dto.ContactMessagePatch) (*domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message, ok := s.contacts[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("contact message not found")
	}

	if patch.Status != nil {
		message.Status = *patch.Status
	}

	s.contacts[id] = message
	return &message, nil
}
