package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lasercraft/internal/domain"
	"lasercraft/internal/dto"
	apperrors "lasercraft/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockIntakeStore struct {
	GetOrdersFunc   func(ctx context.Context) ([]domain.Order, error)
	GetOrderFunc    func(ctx context.Context, id string) (*domain.Order, error)
	CreateOrderFunc func(ctx context.Context, in dto.InsertOrder) (*domain.Order, error)
	UpdateOrderFunc func(ctx context.Context, id string, patch dto.OrderPatch) (*domain.Order, error)

	GetInquiriesFunc  func(ctx context.Context) ([]domain.Inquiry, error)
	GetInquiryFunc    func(ctx context.Context, id string) (*domain.Inquiry, error)
	CreateInquiryFunc func(ctx context.Context, in dto.InsertInquiry) (*domain.Inquiry, error)
	UpdateInquiryFunc func(ctx context.Context, id string, patch dto.InquiryPatch) (*domain.Inquiry, error)

	GetContactMessagesFunc   func(ctx context.Context) ([]domain.ContactMessage, error)
	CreateContactMessageFunc func(ctx context.Context, in dto.InsertContactMessage) (*domain.ContactMessage, error)
	UpdateContactMessageFunc func(ctx context.Context, id string, patch dto.ContactMessagePatch) (*domain.ContactMessage, error)

	GetProductsFunc  func(ctx context.Context) ([]domain.Product, error)
	GetMaterialsFunc func(ctx context.Context) ([]domain.Material, error)
}

func (m *mockIntakeStore) GetOrders(ctx context.Context) ([]domain.Order, error) {
	return m.GetOrdersFunc(ctx)
}
func (m *mockIntakeStore) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return m.GetOrderFunc(ctx, id)
}
func (m *mockIntakeStore) CreateOrder(ctx context.Context, in dto.InsertOrder) (*domain.Order, error) {
	return m.CreateOrderFunc(ctx, in)
}
func (m *mockIntakeStore) UpdateOrder(ctx context.Context, id string, patch dto.OrderPatch) (*domain.Order, error) {
	return m.UpdateOrderFunc(ctx, id, patch)
}
func (m *mockIntakeStore) GetInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	return m.GetInquiriesFunc(ctx)
}
func (m *mockIntakeStore) GetInquiry(ctx context.Context, id string) (*domain.Inquiry, error) {
	return m.GetInquiryFunc(ctx, id)
}
func (m *mockIntakeStore) CreateInquiry(ctx context.Context, in dto.InsertInquiry) (*domain.Inquiry, error) {
	return m.CreateInquiryFunc(ctx, in)
}
func (m *mockIntakeStore) UpdateInquiry(ctx context.Context, id string, patch dto.InquiryPatch) (*domain.Inquiry, error) {
	return m.UpdateInquiryFunc(ctx, id, patch)
}
func (m *mockIntakeStore) GetContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return m.GetContactMessagesFunc(ctx)
}
func (m *mockIntakeStore) CreateContactMessage(ctx context.Context, in dto.InsertContactMessage) (*domain.ContactMessage, error) {
	return m.CreateContactMessageFunc(ctx, in)
}
func (m *mockIntakeStore) UpdateContactMessage(ctx context.Context, id string, patch dto.ContactMessagePatch) (*domain.ContactMessage, error) {
	return m.UpdateContactMessageFunc(ctx, id, patch)
}
func (m *mockIntakeStore) GetProducts(ctx context.Context) ([]domain.Product, error) {
	return m.GetProductsFunc(ctx)
}
func (m *mockIntakeStore) GetMaterials(ctx context.Context) ([]domain.Material, error) {
	return m.GetMaterialsFunc(ctx)
}

func newTestRouter(store IntakeStore) *chi.Mux {
	c := NewController(store, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/orders", c.HandleListOrders)
	r.Get("/api/orders/{id}", c.HandleGetOrder)
	r.Post("/api/orders", c.HandleCreateOrder)
	r.Put("/api/orders/{id}/status", c.HandleUpdateOrderStatus)
	r.Get("/api/inquiries", c.HandleListInquiries)
	r.Post("/api/inquiries", c.HandleCreateInquiry)
	r.Put("/api/inquiries/{id}/status", c.HandleUpdateInquiryStatus)
	r.Get("/api/contact", c.HandleListContactMessages)
	r.Post("/api/contact", c.HandleCreateContactMessage)
	r.Put("/api/contact/{id}/status", c.HandleUpdateContactMessageStatus)
	r.Post("/api/quote", c.HandleQuote)
	return r
}

func validInsertOrder() dto.InsertOrder {
	return dto.InsertOrder{
		CustomerName:  "Ayesha",
		CustomerEmail: "ayesha@example.com",
		CustomerPhone: "03001234567",
		ProductType:   "3D LED Signboard",
		Material:      "Acrylic",
		Dimensions:    "12x8 inches",
		Quantity:      2,
		TotalPrice:    "30266.67",
	}
}

func TestCreateOrder_Success(t *testing.T) {
	var got dto.InsertOrder
	store := &mockIntakeStore{
		CreateOrderFunc: func(ctx context.Context, in dto.InsertOrder) (*domain.Order, error) {
			got = in
			return &domain.Order{ID: "o-1", Status: domain.OrderStatusPending, TotalPrice: in.TotalPrice}, nil
		},
	}

	body, _ := json.Marshal(validInsertOrder())
	rec := httptest.NewRecorder()
	newTestRouter(store).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "30266.67", got.TotalPrice)

	var order domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, domain.OrderStatusPending, order.Status)
}

func TestCreateOrder_ValidationNeverReachesStore(t *testing.T) {
	store := &mockIntakeStore{
		CreateOrderFunc: func(ctx context.Context, in dto.InsertOrder) (*domain.Order, error) {
			t.Fatal("store must not be reached on validation failure")
			return nil, nil
		},
	}

	body, _ := json.Marshal(dto.InsertOrder{CustomerName: "Ayesha"})
	rec := httptest.NewRecorder()
	newTestRouter(store).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "customerEmail")
	assert.Contains(t, rec.Body.String(), "totalPrice")
}

func TestListOrders_PreservesStoreOrdering(t *testing.T) {
	store := &mockIntakeStore{
		GetOrdersFunc: func(ctx context.Context) ([]domain.Order, error) {
			return []domain.Order{{ID: "o-3"}, {ID: "o-2"}, {ID: "o-1"}}, nil
		},
	}

	rec := httptest.NewRecorder()
	newTestRouter(store).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var orders []domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 3)
	assert.Equal(t, "o-3", orders[0].ID)
	assert.Equal(t, "o-1", orders[2].ID)
}

func TestUpdateOrderStatus_RejectsUnknownStatus(t *testing.T) {
	store := &mockIntakeStore{
		UpdateOrderFunc: func(ctx context.Context, id string, patch dto.OrderPatch) (*domain.Order, error) {
			t.Fatal("store must not be reached with an invalid status")
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/orders/o-1/status", bytes.NewReader([]byte(`{"status":"shipped"}`)))
	newTestRouter(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatus_Success(t *testing.T) {
	store := &mockIntakeStore{
		UpdateOrderFunc: func(ctx context.Context, id string, patch dto.OrderPatch) (*domain.Order, error) {
			require.NotNil(t, patch.Status)
			return &domain.Order{ID: id, Status: *patch.Status}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/orders/o-1/status", bytes.NewReader([]byte(`{"status":"processing"}`)))
	newTestRouter(store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.OrderStatusProcessing)
}

func TestUpdateOrderStatus_NotFound(t *testing.T) {
	store := &mockIntakeStore{
		UpdateOrderFunc: func(ctx context.Context, id string, patch dto.OrderPatch) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order not found")
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/orders/nope/status", bytes.NewReader([]byte(`{"status":"completed"}`)))
	newTestRouter(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateInquiry_Success(t *testing.T) {
	store := &mockIntakeStore{
		CreateInquiryFunc: func(ctx context.Context, in dto.InsertInquiry) (*domain.Inquiry, error) {
			return &domain.Inquiry{ID: "q-1", Name: in.Name, Status: domain.InquiryStatusNew}, nil
		},
	}

	body, _ := json.Marshal(dto.InsertInquiry{Name: "Hira", Email: "hira@example.com", Phone: "0300"})
	rec := httptest.NewRecorder()
	newTestRouter(store).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/inquiries", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.InquiryStatusNew)
}

func TestCreateContactMessage_MissingFields(t *testing.T) {
	store := &mockIntakeStore{}

	body, _ := json.Marshal(dto.InsertContactMessage{Name: "Bilal"})
	rec := httptest.NewRecorder()
	newTestRouter(store).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "subject")
	assert.Contains(t, rec.Body.String(), "message")
}

func quoteStore() *mockIntakeStore {
	return &mockIntakeStore{
		GetProductsFunc: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{{ID: "1", Name: "3D LED Signboard", BasePrice: "15000"}}, nil
		},
		GetMaterialsFunc: func(ctx context.Context) ([]domain.Material, error) {
			return []domain.Material{{ID: "1", Name: "Acrylic", PricePerUnit: "200"}}, nil
		},
	}
}

func TestQuote_ComputesTotal(t *testing.T) {
	body, _ := json.Marshal(dto.QuoteRequest{
		ProductType: "3D LED Signboard",
		Material:    "Acrylic",
		Width:       "12",
		Height:      "8",
		Quantity:    "2",
	})
	rec := httptest.NewRecorder()
	newTestRouter(quoteStore()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/quote", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "30266.67", resp.TotalPrice)
	assert.Equal(t, "0.67", resp.AreaSqft)
	assert.Equal(t, "PKR", resp.Currency)
}

func TestQuote_UnresolvedMaterialPricesAtZero(t *testing.T) {
	body, _ := json.Marshal(dto.QuoteRequest{
		ProductType: "3D LED Signboard",
		Material:    "Granite",
		Width:       "12",
		Height:      "8",
		Quantity:    "2",
	})
	rec := httptest.NewRecorder()
	newTestRouter(quoteStore()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/quote", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "0.00", resp.TotalPrice)
}
