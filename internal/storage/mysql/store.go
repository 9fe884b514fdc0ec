// Package mysql backs the Storage interface with MySQL. It exists for
// deployments that outgrow the in-memory store; the schema mirrors the
// entity records one to one.
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type Store struct {
	db *sql.DB
}

// New prepares the schema and seeds the sample catalog on first run.
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	if err := s.seed(ctx); err != nil {
		return nil, fmt.Errorf("seeding data: %w", err)
	}
	return s, nil
}

func newID() string {
	return uuid.New().String()
}
