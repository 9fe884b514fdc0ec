// Package storage defines the persistence contract shared by the in-memory
// and MySQL backends. Handlers never touch a backend directly; they hold a
// Storage and the process picks the implementation at startup.
package storage

import (
	"context"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
)

// Storage is the per-entity CRUD surface. Reads and updates of an absent id
// return a *errors.NotFoundError; deletes report absence as false instead.
// No input validation happens at this layer.
type Storage interface {
	// Products
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, in dto.InsertProduct) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch dto.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)

	// Materials
	GetMaterials(ctx context.Context) ([]domain.Material, error)
	GetMaterial(ctx context.Context, id string) (*domain.Material, error)
	CreateMaterial(ctx context.Context, in dto.InsertMaterial) (*domain.Material, error)
	UpdateMaterial(ctx context.Context, id string, patch dto.MaterialPatch) (*domain.Material, error)
	DeleteMaterial(ctx context.Context, id string) (bool, error)

	// Orders, newest first on list
	GetOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	CreateOrder(ctx context.Context, in dto.InsertOrder) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, patch dto.OrderPatch) (*domain.Order, error)

	// Inquiries, newest first on list
	GetInquiries(ctx context.Context) ([]domain.Inquiry, error)
	GetInquiry(ctx context.Context, id string) (*domain.Inquiry, error)
	CreateInquiry(ctx context.Context, in dto.InsertInquiry) (*domain.Inquiry, error)
	UpdateInquiry(ctx context.Context, id string, patch dto.InquiryPatch) (*domain.Inquiry, error)

	// Testimonials
	GetTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	GetFeaturedTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, in dto.InsertTestimonial) (*domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, patch dto.TestimonialPatch) (*domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) (bool, error)

	// Contact messages, newest first on list
	GetContactMessages(ctx context.Context) ([]domain.ContactMessage, error)
	CreateContactMessage(ctx context.Context, in dto.InsertContactMessage) (*domain.ContactMessage, error)
	UpdateContactMessage(ctx context.Context, id string, patch dto.ContactMessagePatch) (*domain.ContactMessage, error)

	// Users
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, in dto.InsertUser) (*domain.User, error)
}
