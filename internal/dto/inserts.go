// Package dto holds the request payloads accepted by the HTTP layer.
//
// Insert types mirror their entity minus the server-assigned fields (id,
// createdAt). Patch types use pointer fields so absent JSON keys leave the
// stored record untouched.
package dto

type InsertProduct struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	BasePrice   string  `json:"basePrice"`
	ImageURL    *string `json:"imageUrl"`
	Featured    bool    `json:"featured"`
}

type InsertMaterial struct {
	Name               string   `json:"name"`
	PricePerUnit       string   `json:"pricePerUnit"`
	Unit               string   `json:"unit"`
	AvailableThickness []string `json:"availableThickness"`
}

type InsertOrder struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	ProductType   string  `json:"productType"`
	Material      string  `json:"material"`
	Dimensions    string  `json:"dimensions"`
	Thickness     *string `json:"thickness"`
	Quantity      int     `json:"quantity"`
	CustomText    *string `json:"customText"`
	DesignFileURL *string `json:"designFileUrl"`
	TotalPrice    string  `json:"totalPrice"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes"`
}

type InsertInquiry struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Material   *string `json:"material"`
	Dimensions *string `json:"dimensions"`
	Quantity   *int    `json:"quantity"`
	FileURL    *string `json:"fileUrl"`
	Message    *string `json:"message"`
	Status     string  `json:"status"`
}

type InsertTestimonial struct {
	Name     string  `json:"name"`
	Role     *string `json:"role"`
	Content  string  `json:"content"`
	Rating   int     `json:"rating"`
	ImageURL *string `json:"imageUrl"`
	Featured *bool   `json:"featured"`
}

type InsertContactMessage struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Subject string  `json:"subject"`
	Message string  `json:"message"`
	Status  string  `json:"status"`
}

type InsertUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}
