package intake

import (
	"context"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
)

// IntakeStore is the slice of storage the intake controllers need. The
// product and material reads serve the quote endpoint's name resolution.
type IntakeStore interface {
	GetOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	CreateOrder(ctx context.Context, in dto.InsertOrder) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, patch dto.OrderPatch) (*domain.Order, error)

	GetInquiries(ctx context.Context) ([]domain.Inquiry, error)
	GetInquiry(ctx context.Context, id string) (*domain.Inquiry, error)
	CreateInquiry(ctx context.Context, in dto.InsertInquiry) (*domain.Inquiry, error)
	UpdateInquiry(ctx context.Context, id string, patch dto.InquiryPatch) (*domain.Inquiry, error)

	GetContactMessages(ctx context.Context) ([]domain.ContactMessage, error)
	CreateContactMessage(ctx context.Context, in dto.InsertContactMessage) (*domain.ContactMessage, error)
	UpdateContactMessage(ctx context.Context, id string, patch dto.ContactMessagePatch) (*domain.ContactMessage, error)

	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetMaterials(ctx context.Context) ([]domain.Material, error)
}
