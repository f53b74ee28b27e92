package post

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"Quill/internal/core/posts"
)

// UpdateHandler handles the full and partial post update endpoints
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// HandleUpdate handles PUT /api/users/{userID}/posts/{postID}
// Replaces both title and content
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.service.UpdatePostByUser)
}

// HandleUpdateTitle handles PATCH /api/users/{userID}/posts/{postID}/title
// Replaces the title; content is untouched
func (h *UpdateHandler) HandleUpdateTitle(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.service.UpdatePostTitleByUser)
}

// HandleUpdateContent handles PATCH /api/users/{userID}/posts/{postID}/content
// Replaces the content; title is untouched
func (h *UpdateHandler) HandleUpdateContent(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.service.UpdatePostContentByUser)
}

func (h *UpdateHandler) update(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, input posts.PostInput, postID, userID int64) (*posts.PostResponse, error),
) {
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

	response, err := op(r.Context(), input, postID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode post update response: %v", err)
	}
}
