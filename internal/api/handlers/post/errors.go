package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Quill/internal/core/posts"
)

type errorResponse struct {
	Error   string             `json:"error"`
	Message string             `json:"message"`
	Errors  []posts.ErrorModel `json:"errors,omitempty"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	writeErrorList(w, statusCode, errorType, message, nil)
}

// writeErrorList writes a JSON error response carrying a structured error model list
func writeErrorList(w http.ResponseWriter, statusCode int, errorType, message string, details []posts.ErrorModel) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
		Errors:  details,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var userNotFound *posts.UserNotFoundError

	switch {
	case errors.As(err, &userNotFound):
		writeErrorList(w, http.StatusNotFound, "UserNotFound",
			"User does not exist", userNotFound.Errors)

	case posts.IsNotFound(err):
		writeError(w, http.StatusNotFound, "PostNotFound", err.Error())

	case posts.IsNotAuthorized(err):
		writeError(w, http.StatusForbidden, "NotAuthorized", err.Error())

	case posts.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
