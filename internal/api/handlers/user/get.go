package user

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Quill/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// GetHandler handles user lookup by id
type GetHandler struct {
	service users.UserService
}

// NewGetHandler creates a new get handler
func NewGetHandler(service users.UserService) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet handles GET /api/users/{userID}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "userID must be a positive integer")
		return
	}

	found, err := h.service.GetUserByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(found); err != nil {
		log.Printf("Failed to encode user response: %v", err)
	}
}
