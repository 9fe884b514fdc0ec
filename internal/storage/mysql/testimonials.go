package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"
)

const testimonialColumns = `id, name, role, content, rating, image_url, featured`

func scanTestimonial(row interface{ Scan(...interface{}) error }) (*domain.Testimonial, error) {
	var t domain.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Role, &t.Content, &t.Rating, &t.ImageURL, &t.Featured)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) GetTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.queryTestimonials(ctx, `SELECT `+testimonialColumns+` FROM testimonials`)
}

func (s *Store) GetFeaturedTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.queryTestimonials(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE featured = TRUE`)
}

func (s *Store) queryTestimonials(ctx context.Context, query string, args ...interface{}) ([]domain.Testimonial, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []domain.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning testimonial row: %w", err)
		}
		testimonials = append(testimonials, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating testimonial rows: %w", err)
	}
	return testimonials, nil
}

func (s *Store) CreateTestimonial(ctx context.Context, in dto.InsertTestimonial) (*domain.Testimonial, error) {
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

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO testimonials (`+testimonialColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		testimonial.ID, testimonial.Name, testimonial.Role, testimonial.Content,
		testimonial.Rating, testimonial.ImageURL, testimonial.Featured,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting testimonial: %w", err)
	}
	return &testimonial, nil
}

func (s *Store) UpdateTestimonial(ctx context.Context, id string, patch dto.TestimonialPatch) (*domain.Testimonial, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE id = ?`, id)
	testimonial, err := scanTestimonial(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("testimonial not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying testimonial by id: %w", err)
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

	_, err = s.db.ExecContext(ctx,
		`UPDATE testimonials SET name = ?, role = ?, content = ?, rating = ?, image_url = ?, featured = ? WHERE id = ?`,
		testimonial.Name, testimonial.Role, testimonial.Content, testimonial.Rating,
		testimonial.ImageURL, testimonial.Featured, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating testimonial: %w", err)
	}
	return testimonial, nil
}

func (s *Store) DeleteTestimonial(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting testimonial: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}
	return affected > 0, nil
}
