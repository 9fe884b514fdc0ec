// Package memory is the default Storage backend: process-lifetime maps
// seeded with the sample catalog. All collections share one RWMutex since
// handlers run on arbitrary goroutines.
package memory

import (
	"context"
	"sync"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	// seq breaks ordering ties between records created within the same
	// clock tick.
	seq uint64

	products     map[string]domain.Product
	materials    map[string]domain.Material
	orders       map[string]domain.Order
	orderSeq     map[string]uint64
	inquiries    map[string]domain.Inquiry
	inquirySeq   map[string]uint64
	testimonials map[string]domain.Testimonial
	contacts     map[string]domain.ContactMessage
	contactSeq   map[string]uint64
	users        map[string]domain.User
}

func New() *Store {
	s := &Store{
		products:     make(map[string]domain.Product),
		materials:    make(map[string]domain.Material),
		orders:       make(map[string]domain.Order),
		orderSeq:     make(map[string]uint64),
		inquiries:    make(map[string]domain.Inquiry),
		inquirySeq:   make(map[string]uint64),
		testimonials: make(map[string]domain.Testimonial),
		contacts:     make(map[string]domain.ContactMessage),
		contactSeq:   make(map[string]uint64),
		users:        make(map[string]domain.User),
	}
	s.seed()
	return s
}

func newID() string {
	return uuid.New().String()
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// Users

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (s *Store) CreateUser(ctx context.Context, in dto.InsertUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == in.Email {
			return nil, apperrors.NewConflictError("email already registered")
		}
	}

	user := domain.User{
		ID:       newID(),
		Email:    in.Email,
		Password: in.Password,
		IsAdmin:  in.IsAdmin,
	}
	s.users[user.ID] = user
	return &user, nil
}
