package memory

import (
	"context"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"
)

func (s *Store) GetProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	return products, nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("product not found")
	}
	return &p, nil
}

func (s *Store) GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var products []domain.Product
	for _, p := range s.products {
		if p.Category == category {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *Store) CreateProduct(ctx context.Context, in dto.InsertProduct) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := domain.Product{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		BasePrice:   in.BasePrice,
		ImageURL:    in.ImageURL,
		Featured:    in.Featured,
	}
	s.products[product.ID] = product
	return &product, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch dto.ProductPatch) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("product not found")
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.BasePrice != nil {
		product.BasePrice = *patch.BasePrice
	}
	if patch.ImageURL != nil {
		product.ImageURL = patch.ImageURL
	}
	if patch.Featured != nil {
		product.Featured = *patch.Featured
	}

	s.products[id] = product
	return &product, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}
