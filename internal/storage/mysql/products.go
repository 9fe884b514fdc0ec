package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"
)

const productColumns = `id, name, description, category, base_price, image_url, featured`

func scanProduct(row interface{ Scan(...interface{}) error }) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.BasePrice, &p.ImageURL, &p.Featured)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) GetProducts(ctx context.Context) ([]domain.Product, error) {
	return s.queryProducts(ctx, `SELECT `+productColumns+` FROM products`)
}

func (s *Store) GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.queryProducts(ctx, `SELECT `+productColumns+` FROM products WHERE category = ?`, category)
}

func (s *Store) queryProducts(ctx context.Context, query string, args ...interface{}) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}
	return products, nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}
	return p, nil
}

func (s *Store) CreateProduct(ctx context.Context, in dto.InsertProduct) (*domain.Product, error) {
	product := domain.Product{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		BasePrice:   in.BasePrice,
		ImageURL:    in.ImageURL,
		Featured:    in.Featured,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO products (`+productColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		product.ID, product.Name, product.Description, product.Category,
		product.BasePrice, product.ImageURL, product.Featured,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting product: %w", err)
	}
	return &product, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch dto.ProductPatch) (*domain.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
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

	_, err = s.db.ExecContext(ctx,
		`UPDATE products SET name = ?, description = ?, category = ?, base_price = ?, image_url = ?, featured = ? WHERE id = ?`,
		product.Name, product.Description, product.Category, product.BasePrice,
		product.ImageURL, product.Featured, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}
	return product, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}
	return affected > 0, nil
}
