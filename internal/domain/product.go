package domain

// Product categories shown in the catalog.
const (
	CategoryHomeDecor = "home-decor"
	Category3DSigns   = "3d-signs"
	CategoryCorporate = "corporate"
	CategoryGifts     = "gifts"
)

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	BasePrice   string  `json:"basePrice"`
	ImageURL    *string `json:"imageUrl"`
	Featured    bool    `json:"featured"`
}

func ValidCategory(category string) bool {
	switch category {
	case CategoryHomeDecor, Category3DSigns, CategoryCorporate, CategoryGifts:
		return true
	}
	return false
}
