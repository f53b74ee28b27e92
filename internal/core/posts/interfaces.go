package posts

import "context"

// PageRequest describes one page of a user's posts.
// SortBy must name a post attribute; SortDir is compared case-insensitively
// against "ASC" - any other value sorts descending.
type PageRequest struct {
	SortBy   string
	SortDir  string
	PageNo   int
	PageSize int
}

// Repository defines the data access interface for posts
type Repository interface {
	// GetByID retrieves a post by its id
	GetByID(ctx context.Context, postID int64) (*Post, error)

	// ListByUser retrieves one page of the given user's posts plus the total
	// number of posts the user has. An empty page is a valid result.
	ListByUser(ctx context.Context, userID int64, page PageRequest) ([]*Post, int64, error)

	// Create inserts a new post and returns it with the store-assigned
	// id and creation timestamp
	Create(ctx context.Context, post *Post) (*Post, error)

	// Update writes a post's title and content and returns the persisted row.
	// The returned row reflects the committed write, so update paths can echo
	// the mutated record without a second read.
	Update(ctx context.Context, post *Post) (*Post, error)

	// Delete removes a post by id. Deleting an absent id is not an error.
	Delete(ctx context.Context, postID int64) error
}

// Service defines the post business logic: existence and ownership checks
// in front of the store, plus mapping to response representations
type Service interface {
	CreatePost(ctx context.Context, input PostInput, userID int64) (*PostResponse, error)
	GetAllPostsByUser(ctx context.Context, userID int64, page PageRequest) (*PostPage, error)
	GetPostByUser(ctx context.Context, postID, userID int64) (*PostResponse, error)
	UpdatePostByUser(ctx context.Context, input PostInput, postID, userID int64) (*PostResponse, error)
	UpdatePostTitleByUser(ctx context.Context, input PostInput, postID, userID int64) (*PostResponse, error)
	UpdatePostContentByUser(ctx context.Context, input PostInput, postID, userID int64) (*PostResponse, error)
	DeletePost(ctx context.Context, postID int64) error
}
