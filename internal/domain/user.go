package domain

// User is an admin account. Passwords are stored as-is; authentication is
// out of scope for this service.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	IsAdmin  bool   `json:"isAdmin"`
}
