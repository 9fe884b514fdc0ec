package memory

import (
	"context"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"
)

func (s *Store) GetTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	testimonials := make([]domain.Testimonial, 0, len(s.testimonials))
	for _, t := range s.testimonials {
		testimonials = append(testimonials, t)
	}
	return testimonials, nil
}

func (s *Store) GetFeaturedTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var testimonials []domain.Testimonial
	for _, t := range s.testimonials {
		if t.Featured {
			testimonials = append(testimonials, t)
		}
	}
	return testimonials, nil
}

func (s *Store) CreateTestimonial(ctx context.Context, in dto.InsertTestimonial) (*domain.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rating := in.Rating
	if rating == 0 {
		rating = 5
	}
	featured := true
	if in.Featured != nil {
		featured = *in.Featured
	}

	testimonial := domain.Testimonial{
		ID:       newID(),
		Name:     in.Name,
		Role:     in.Role,
		Content:  in.Content,
		Rating:   rating,
		ImageURL: in.ImageURL,
		Featured: featured,
	}
	s.testimonials[testimonial.ID] = testimonial
	return &testimonial, nil
}

func (s *Store) UpdateTestimonial(ctx context.Context, id string, patch dto.TestimonialPatch) (*domain.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	testimonial, ok := s.testimonials[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("testimonial not found")
	}

	if patch.Name != nil {
		testimonial.Name = *patch.Name
	}
	if patch.Role != nil {
		testimonial.Role = patch.Role
	}
	if patch.Content != nil {
		testimonial.Content = *patch.Content
	}
	if patch.Rating != nil {
		testimonial.Rating = *patch.Rating
	}
	if patch.ImageURL != nil {
		testimonial.ImageURL = patch.ImageURL
	}
	if patch.Featured != nil {
		testimonial.Featured = *patch.Featured
	}

	s.testimonials[id] = testimonial
	return &testimonial, nil
}

func (s *Store) DeleteTestimonial(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.testimonials[id]; !ok {
		return false, nil
	}
	delete(s.testimonials, id)
	return true, nil
}
