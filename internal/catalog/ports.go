package catalog

import (
	"context"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
)

// CatalogStore is the slice of storage the catalog controllers need.
type CatalogStore interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, in dto.InsertProduct) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch dto.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)

	GetMaterials(ctx context.Context) ([]domain.Material, error)
	GetMaterial(ctx context.Context, id string) (*domain.Material, error)
	CreateMaterial(ctx context.Context, in dto.InsertMaterial) (*domain.Material, error)
	UpdateMaterial(ctx context.Context, id string, patch dto.MaterialPatch) (*domain.Material, error)
	DeleteMaterial(ctx context.Context, id string) (bool, error)

	GetTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	GetFeaturedTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, in dto.InsertTestimonial) (*domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, patch dto.TestimonialPatch) (*domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) (bool, error)
}
