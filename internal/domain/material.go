package domain

// DefaultMaterialUnit is the pricing unit assumed when a material does not
// specify one.
const DefaultMaterialUnit = "sqft"

type Material struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	PricePerUnit       string   `json:"pricePerUnit"`
	Unit               string   `json:"unit"`
	AvailableThickness []string `json:"availableThickness"`
}
