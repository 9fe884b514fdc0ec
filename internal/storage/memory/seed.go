package memory

import "lasercraft/internal/domain"

func strPtr(s string) *string {
	return &s
}

// seed loads the fixed sample catalog. Ids are stable so the sample rows are
// addressable across restarts even though nothing else survives one.
func (s *Store) seed() {
	sampleProducts := []domain.Product{
		{ID: "1", Name: "3D LED Signboard", Description: "Illuminated acrylic signboard with LED backing", Category: domain.Category3DSigns, BasePrice: "15000", Featured: true},
		{ID: "2", Name: "Acrylic Nameplate", Description: "Premium custom nameplate for home or office", Category: domain.CategoryCorporate, BasePrice: "2500", Featured: true},
		{ID: "3", Name: "Wooden Wall Art", Description: "Laser-cut decorative wall panel", Category: domain.CategoryHomeDecor, BasePrice: "8000", Featured: true},
		{ID: "4", Name: "Custom Keychain", Description: "Personalized acrylic or wood keychain", Category: domain.CategoryGifts, BasePrice: "500", Featured: false},
	}
	for _, p := range sampleProducts {
		s.products[p.ID] = p
	}

	sampleMaterials := []domain.Material{
		{ID: "1", Name: "Acrylic", PricePerUnit: "200", Unit: "sqft", AvailableThickness: []string{"3mm", "5mm", "8mm", "10mm"}},
		{ID: "2", Name: "MDF", PricePerUnit: "150", Unit: "sqft", AvailableThickness: []string{"3mm", "6mm", "12mm"}},
		{ID: "3", Name: "Wood", PricePerUnit: "250", Unit: "sqft", AvailableThickness: []string{"3mm", "6mm", "9mm"}},
		{ID: "4", Name: "Metal", PricePerUnit: "400", Unit: "sqft", AvailableThickness: []string{"1mm", "2mm", "3mm"}},
	}
	for _, m := range sampleMaterials {
		s.materials[m.ID] = m
	}

	sampleTestimonials := []domain.Testimonial{
		{ID: "1", Name: "Ahmed Khan", Role: strPtr("Restaurant Owner"), Content: "LaserCut.pk created an amazing LED signboard for my restaurant. The quality is exceptional!", Rating: 5, Featured: true},
		{ID: "2", Name: "Fatima Ali", Role: strPtr("Interior Designer"), Content: "Their laser-cut wall art transformed my client's living room. Highly recommend!", Rating: 5, Featured: true},
		{ID: "3", Name: "Hassan Malik", Role: strPtr("Business Owner"), Content: "Fast delivery and excellent craftsmanship. Perfect for corporate gifts!", Rating: 5, Featured: true},
	}
	for _, t := range sampleTestimonials {
		s.testimonials[t.ID] = t
	}

	s.users["admin"] = domain.User{ID: "admin", Email: "autoc639@gmail.com", Password: "admin123", IsAdmin: true}
}
