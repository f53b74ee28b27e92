package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Quill/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /api/users/{userID}/posts
// Creates a new post owned by the user in the path
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	// Limit request body size; 1MB is plenty for title + content
	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var input posts.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 1MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	response, err := h.service.CreatePost(r.Context(), input, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Headers already sent, log only
		log.Printf("Failed to encode post creation response: %v", err)
	}
}
