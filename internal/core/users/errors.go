package users

import (
	"errors"
	"fmt"
)

// Sentinel errors for common user operations
var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when attempting to register a username that belongs to another user
	ErrUsernameTaken = errors.New("username already taken")
)

// InvalidUsernameError is returned when a username does not meet format requirements
type InvalidUsernameError struct {
	Username string
	Reason   string
}

func (e *InvalidUsernameError) Error() string {
	return fmt.Sprintf("invalid username %q: %s", e.Username, e.Reason)
}

// InvalidEmailError is returned when an email address is malformed
type InvalidEmailError struct {
	Email string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email address: %q", e.Email)
}

// IsValidationError checks if an error is a registration validation error
func IsValidationError(err error) bool {
	var invalidUsername *InvalidUsernameError
	var invalidEmail *InvalidEmailError
	return errors.As(err, &invalidUsername) || errors.As(err, &invalidEmail)
}
