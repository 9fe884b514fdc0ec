package mysql

import (
	"context"
	"encoding/json"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(36) PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		category VARCHAR(32) NOT NULL,
		base_price VARCHAR(32) NOT NULL,
		image_url TEXT,
		featured BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS materials (
		id VARCHAR(36) PRIMARY KEY,
		name TEXT NOT NULL,
		price_per_unit VARCHAR(32) NOT NULL,
		unit VARCHAR(16) NOT NULL DEFAULT 'sqft',
		available_thickness TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id VARCHAR(36) PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		product_type TEXT NOT NULL,
		material TEXT NOT NULL,
		dimensions TEXT NOT NULL,
		thickness TEXT,
		quantity INT NOT NULL DEFAULT 1,
		custom_text TEXT,
		design_file_url TEXT,
		total_price VARCHAR(32) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		notes TEXT,
		created_at DATETIME(6) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		id VARCHAR(36) PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		material TEXT,
		dimensions TEXT,
		quantity INT,
		file_url TEXT,
		message TEXT,
		status VARCHAR(16) NOT NULL DEFAULT 'new',
		created_at DATETIME(6) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id VARCHAR(36) PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT,
		content TEXT NOT NULL,
		rating INT NOT NULL DEFAULT 5,
		image_url TEXT,
		featured BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id VARCHAR(36) PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'new',
		created_at DATETIME(6) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing migration: %w", err)
		}
	}
	return nil
}

// seed loads the sample catalog once, keyed off an empty products table.
func (s *Store) seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("counting products: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := [][]interface{}{
		{"1", "3D LED Signboard", "Illuminated acrylic signboard with LED backing", "3d-signs", "15000", true},
		{"2", "Acrylic Nameplate", "Premium custom nameplate for home or office", "corporate", "2500", true},
		{"3", "Wooden Wall Art", "Laser-cut decorative wall panel", "home-decor", "8000", true},
		{"4", "Custom Keychain", "Personalized acrylic or wood keychain", "gifts", "500", false},
	}
	for _, p := range products {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO products (id, name, description, category, base_price, featured) VALUES (?, ?, ?, ?, ?, ?)`,
			p...,
		); err != nil {
			return fmt.Errorf("seeding product: %w", err)
		}
	}

	materials := []struct {
		id, name, price string
		thickness       []string
	}{
		{"1", "Acrylic", "200", []string{"3mm", "5mm", "8mm", "10mm"}},
		{"2", "MDF", "150", []string{"3mm", "6mm", "12mm"}},
		{"3", "Wood", "250", []string{"3mm", "6mm", "9mm"}},
		{"4", "Metal", "400", []string{"1mm", "2mm", "3mm"}},
	}
	for _, m := range materials {
		thickness, err := json.Marshal(m.thickness)
		if err != nil {
			return fmt.Errorf("encoding thickness list: %w", err)
		}
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO materials (id, name, price_per_unit, unit, available_thickness) VALUES (?, ?, ?, 'sqft', ?)`,
			m.id, m.name, m.price, string(thickness),
		); err != nil {
			return fmt.Errorf("seeding material: %w", err)
		}
	}

	testimonials := [][]interface{}{
		{"1", "Ahmed Khan", "Restaurant Owner", "LaserCut.pk created an amazing LED signboard for my restaurant. The quality is exceptional!"},
		{"2", "Fatima Ali", "Interior Designer", "Their laser-cut wall art transformed my client's living room. Highly recommend!"},
		{"3", "Hassan Malik", "Business Owner", "Fast delivery and excellent craftsmanship. Perfect for corporate gifts!"},
	}
	for _, t := range testimonials {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO testimonials (id, name, role, content, rating, featured) VALUES (?, ?, ?, ?, 5, TRUE)`,
			t...,
		); err != nil {
			return fmt.Errorf("seeding testimonial: %w", err)
		}
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password, is_admin) VALUES ('admin', 'autoc639@gmail.com', 'admin123', TRUE)`,
	); err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}

	return nil
}
