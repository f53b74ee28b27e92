package posts

import (
	"time"
)

// Post represents a blog post row. Every post is owned by exactly one user;
// the owner is set at creation and never changes.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	ID        int64     `json:"postId" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
}

// PostInput is the request payload for create and update operations.
// Update variants consume a subset of the fields.
type PostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostResponse is the representation returned to callers, decoupled from the
// storage row. Fields are mapped explicitly so the list stays auditable.
type PostResponse struct {
	CreatedDate time.Time `json:"createdDate"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PostID      int64     `json:"postId"`
	UserID      int64     `json:"userId"`
}

// NewPostResponse maps a stored post to its response representation
func NewPostResponse(p *Post) *PostResponse {
	return &PostResponse{
		PostID:      p.ID,
		Title:       p.Title,
		Content:     p.Content,
		UserID:      p.UserID,
		CreatedDate: p.CreatedAt,
	}
}

// PostPage is a bounded slice of a user's posts plus position metadata
type PostPage struct {
	Content       []*PostResponse `json:"content"`
	PageNo        int             `json:"pageNo"`
	PageSize      int             `json:"pageSize"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
	LastPage      bool            `json:"lastPage"`
}

// NewPostPage builds a page response from one page of rows and the total count
func NewPostPage(rows []*Post, pageNo, pageSize int, total int64) *PostPage {
	content := make([]*PostResponse, 0, len(rows))
	for _, p := range rows {
		content = append(content, NewPostResponse(p))
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &PostPage{
		Content:       content,
		PageNo:        pageNo,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		LastPage:      pageNo >= totalPages-1,
	}
}
