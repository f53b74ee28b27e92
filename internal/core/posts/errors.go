package posts

import (
	"errors"
	"fmt"
)

// ErrorModel is a structured error code/message pair surfaced to callers
type ErrorModel struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CodeUserIDNotExist is the error code carried when the referenced user is absent
const CodeUserIDNotExist = "USER_ID_NOT_EXIST"

// UserNotFoundError indicates the referenced user id does not exist.
// It carries a list of error models; currently always exactly one.
type UserNotFoundError struct {
	Errors []ErrorModel
}

func (e *UserNotFoundError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("%s: %s", e.Errors[0].Code, e.Errors[0].Message)
	}
	return "user not found"
}

// NewUserNotFoundError builds the USER_ID_NOT_EXIST error model list
func NewUserNotFoundError() *UserNotFoundError {
	return &UserNotFoundError{
		Errors: []ErrorModel{
			{Code: CodeUserIDNotExist, Message: "User does not exist"},
		},
	}
}

// PostNotFoundError indicates the referenced post id does not exist
type PostNotFoundError struct {
	PostID int64
}

func (e *PostNotFoundError) Error() string {
	return fmt.Sprintf("post not found with id %d", e.PostID)
}

// NotAuthorizedError indicates the requesting user does not own the post
type NotAuthorizedError struct {
	PostID int64
	UserID int64
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("user %d is not authorized to access post %d", e.UserID, e.PostID)
}

// InvalidSortFieldError indicates the sort field does not name a post attribute
type InvalidSortFieldError struct {
	Field string
}

func (e *InvalidSortFieldError) Error() string {
	return fmt.Sprintf("invalid sort field %q", e.Field)
}

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	var postNotFound *PostNotFoundError
	var userNotFound *UserNotFoundError
	return errors.As(err, &postNotFound) || errors.As(err, &userNotFound)
}

// IsNotAuthorized checks if an error is an ownership violation
func IsNotAuthorized(err error) bool {
	var notAuthorized *NotAuthorizedError
	return errors.As(err, &notAuthorized)
}

// IsValidationError checks if an error is a request validation error
func IsValidationError(err error) bool {
	var invalidSort *InvalidSortFieldError
	return errors.As(err, &invalidSort)
}
