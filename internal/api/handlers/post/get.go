package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Quill/internal/core/posts"
)

// GetHandler handles single post retrieval
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet handles GET /api/users/{userID}/posts/{postID}
// Returns the post only when it exists and is owned by the user in the path
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	response, err := h.service.GetPostByUser(r.Context(), postID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode post response: %v", err)
	}
}
