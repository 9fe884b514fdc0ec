package dto

// QuoteRequest carries the configurator selections needed for a price
// estimate. Width, height and quantity arrive as the raw form strings.
type QuoteRequest struct {
	ProductType string `json:"productType"`
	Material    string `json:"material"`
	Width       string `json:"width"`
	Height      string `json:"height"`
	Quantity    string `json:"quantity"`
}

type QuoteResponse struct {
	TotalPrice string `json:"totalPrice"`
	AreaSqft   string `json:"areaSqft"`
	Currency   string `json:"currency"`
}

// StatusUpdateRequest is the body of the PUT …/{id}/status endpoints.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
