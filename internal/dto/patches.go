package dto

type ProductPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	BasePrice   *string `json:"basePrice"`
	ImageURL    *string `json:"imageUrl"`
	Featured    *bool   `json:"featured"`
}

type MaterialPatch struct {
	Name               *string  `json:"name"`
	PricePerUnit       *string  `json:"pricePerUnit"`
	Unit               *string  `json:"unit"`
	AvailableThickness []string `json:"availableThickness"`
}

type OrderPatch struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

type InquiryPatch struct {
	Status *string `json:"status"`
}

type TestimonialPatch struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Content  *string `json:"content"`
	Rating   *int    `json:"rating"`
	ImageURL *string `json:"imageUrl"`
	Featured *bool   `json:"featured"`
}

type ContactMessagePatch struct {
	Status *string `json:"status"`
}
