package users

import "context"

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)

	// Exists reports whether a user with the given id is present.
	// Cheaper than GetByID when the caller only needs the check.
	Exists(ctx context.Context, id int64) (bool, error)
}

// UserService defines the interface for user business logic
type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
}
