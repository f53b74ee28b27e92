package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Quill/internal/core/posts"
)

// ListHandler handles paginated listing of a user's posts
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/users/{userID}/posts?pageNo=&pageSize=&sortBy=&sortDir=
// pageNo is zero-based. sortDir is compared case-insensitively against "ASC";
// any other value (including none) sorts descending.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	page, err := parsePageRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	response, err := h.service.GetAllPostsByUser(r.Context(), userID, page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// Pre-encode before writing headers so an encoding failure can still
	// produce a proper error response
	responseBytes, err := json.Marshal(response)
	if err != nil {
		log.Printf("ERROR: Failed to encode post page response: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "Failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(responseBytes); err != nil {
		log.Printf("ERROR: Failed to write post page response: %v", err)
	}
}

// parsePageRequest parses pagination query parameters with defaults
func parsePageRequest(r *http.Request) (posts.PageRequest, error) {
	page := posts.PageRequest{
		PageNo:   0,
		PageSize: posts.DefaultPageSize,
		SortBy:   posts.DefaultSortField,
		SortDir:  "desc",
	}

	if raw := r.URL.Query().Get("pageNo"); raw != "" {
		pageNo, err := strconv.Atoi(raw)
		if err != nil || pageNo < 0 {
			return page, errInvalidParam("pageNo", "must be a non-negative integer")
		}
		page.PageNo = pageNo
	}

	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 1 || pageSize > posts.MaxPageSize {
			return page, errInvalidParam("pageSize", "must be between 1 and 100")
		}
		page.PageSize = pageSize
	}

	if sortBy := r.URL.Query().Get("sortBy"); sortBy != "" {
		page.SortBy = sortBy
	}

	if sortDir := r.URL.Query().Get("sortDir"); sortDir != "" {
		page.SortDir = sortDir
	}

	return page, nil
}

type paramError struct {
	param  string
	reason string
}

func (e *paramError) Error() string {
	return e.param + " " + e.reason
}

func errInvalidParam(param, reason string) error {
	return &paramError{param: param, reason: reason}
}
