package users

import (
	"time"
)

// User represents a registered author. Posts reference users by id; the
// relation is resolved with an explicit store call, never loaded implicitly.
type User struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	ID        int64     `json:"userId" db:"id"`
}

// RegisterRequest represents the input for registering a new user
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
