package domain

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	ProductType   string    `json:"productType"`
	Material      string    `json:"material"`
	Dimensions    string    `json:"dimensions"`
	Thickness     *string   `json:"thickness"`
	Quantity      int       `json:"quantity"`
	CustomText    *string   `json:"customText"`
	DesignFileURL *string   `json:"designFileUrl"`
	TotalPrice    string    `json:"totalPrice"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
