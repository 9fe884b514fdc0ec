package domain

type Testimonial struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Role     *string `json:"role"`
	Content  string  `json:"content"`
	Rating   int     `json:"rating"`
	ImageURL *string `json:"imageUrl"`
	Featured bool    `json:"featured"`
}
