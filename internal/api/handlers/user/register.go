package user

import (
	"encoding/json"
	"log"
	"net/http"

	"Quill/internal/core/users"
)

// RegisterHandler handles user registration
type RegisterHandler struct {
	service users.UserService
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(service users.UserService) *RegisterHandler {
	return &RegisterHandler{service: service}
}

// HandleRegister handles POST /api/users
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	created, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		log.Printf("Failed to encode register response: %v", err)
	}
}
