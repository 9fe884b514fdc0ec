package memory

import (
	"context"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"
)

func (s *Store) GetMaterials(ctx context.Context) ([]domain.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	materials := make([]domain.Material, 0, len(s.materials))
	for _, m := range s.materials {
		materials = append(materials, m)
	}
	return materials, nil
}

func (s *Store) GetMaterial(ctx context.Context, id string) (*domain.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.materials[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("material not found")
	}
	return &m, nil
}

func (s *Store) CreateMaterial(ctx context.Context, in dto.InsertMaterial) (*domain.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.materials[material.ID] = material
	return &material, nil
}

func (s *Store) UpdateMaterial(ctx context.Context, id string, patch dto.MaterialPatch) (*domain.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	material, ok := s.materials[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("material not found")
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

	s.materials[id] = material
	return &material, nil
}

func (s *Store) DeleteMaterial(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.materials[id]; !ok {
		return false, nil
	}
	delete(s.materials, id)
	return true, nil
}
