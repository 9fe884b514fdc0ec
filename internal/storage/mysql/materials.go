package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"
)

const materialColumns = `id, name, price_per_unit, unit, available_thickness`

func scanMaterial(row interface{ Scan(...interface{}) error }) (*domain.Material, error) {
	var (
		m         domain.Material
		thickness string
	)
	if err := row.Scan(&m.ID, &m.Name, &m.PricePerUnit, &m.Unit, &thickness); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(thickness), &m.AvailableThickness); err != nil {
		return nil, fmt.Errorf("decoding thickness list: %w", err)
	}
	return &m, nil
}

func (s *Store) GetMaterials(ctx context.Context) ([]domain.Material, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+materialColumns+` FROM materials`)
	if err != nil {
		return nil, fmt.Errorf("querying materials: %w", err)
	}
	defer rows.Close()

	var materials []domain.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning material row: %w", err)
		}
		materials = append(materials, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating material rows: %w", err)
	}
	return materials, nil
}

func (s *Store) GetMaterial(ctx context.Context, id string) (*domain.Material, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = ?`, id)
	m, err := scanMaterial(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("material not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying material by id: %w", err)
	}
	return m, nil
}

func (s *Store) CreateMaterial(ctx context.Context, in dto.InsertMaterial) (*domain.Material, error) {
	unit := in.Unit
	if unit == "" {
		unit = domain.DefaultMaterialUnit
	}

	material := domain.Material{
		ID:                 newID(),
		Name:               in.Name,
		PricePerUnit:       in.PricePerUnit,
		Unit:               unit,
		AvailableThickness: in.AvailableThickness,
	}

	thickness, err := json.Marshal(material.AvailableThickness)
	if err != nil {
		return nil, fmt.Errorf("encoding thickness list: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO materials (`+materialColumns+`) VALUES (?, ?, ?, ?, ?)`,
		material.ID, material.Name, material.PricePerUnit, material.Unit, string(thickness),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting material: %w", err)
	}
	return &material, nil
}

func (s *Store) UpdateMaterial(ctx context.Context, id string, patch dto.MaterialPatch) (*domain.Material, error) {
	material, err := s.GetMaterial(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		material.Name = *patch.Name
	}
	if patch.PricePerUnit != nil {
		material.PricePerUnit = *patch.PricePerUnit
	}
	if patch.Unit != nil {
		material.Unit = *patch.Unit
	}
	if patch.AvailableThickness != nil {
		material.AvailableThickness = patch.AvailableThickness
	}

	thickness, err := json.Marshal(material.AvailableThickness)
	if err != nil {
		return nil, fmt.Errorf("encoding thickness list: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE materials SET name = ?, price_per_unit = ?, unit = ?, available_thickness = ? WHERE id = ?`,
		material.Name, material.PricePerUnit, material.Unit, string(thickness), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating material: %w", err)
	}
	return material, nil
}

func (s *Store) DeleteMaterial(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM materials WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting material: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}
	return affected > 0, nil
}
