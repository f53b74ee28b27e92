package users

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Usernames must start/end with alphanumeric, contain only alphanumeric + hyphens
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type userService struct {
	userRepo UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a new user
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if err := s.validateRegisterRequest(req); err != nil {
		return nil, err
	}

	// Normalize username
	req.Username = strings.TrimSpace(strings.ToLower(req.Username))
	req.Email = strings.TrimSpace(req.Email)

	user := &User{
		Username: req.Username,
		Email:    req.Email,
	}

	// Repository will handle duplicate constraint errors
	return s.userRepo.Create(ctx, user)
}

// GetUserByID retrieves a user by their id
func (s *userService) GetUserByID(ctx context.Context, id int64) (*User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("user id must be positive")
	}

	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) validateRegisterRequest(req RegisterRequest) error {
	username := strings.TrimSpace(strings.ToLower(req.Username))

	if username == "" {
		return &InvalidUsernameError{Username: req.Username, Reason: "username is required"}
	}

	if len(username) < 3 || len(username) > 32 {
		return &InvalidUsernameError{Username: req.Username, Reason: "must be between 3 and 32 characters"}
	}

	if !usernameRegex.MatchString(username) {
		return &InvalidUsernameError{
			Username: req.Username,
			Reason:   "must contain only alphanumeric characters and hyphens; must start and end with alphanumeric",
		}
	}

	if strings.Contains(username, "--") {
		return &InvalidUsernameError{Username: req.Username, Reason: "consecutive hyphens not allowed"}
	}

	if !emailRegex.MatchString(strings.TrimSpace(req.Email)) {
		return &InvalidEmailError{Email: req.Email}
	}

	return nil
}
