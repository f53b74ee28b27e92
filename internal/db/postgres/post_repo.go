package postgres

import (
	"Quill/internal/core/posts"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
)

// sortColumns whitelists the post attributes a listing may sort on and maps
// them to their column names. Attribute names match the wire representation.
// Anything outside this map is rejected, never interpolated into SQL.
var sortColumns = map[string]string{
	"postId":      "id",
	"title":       "title",
	"content":     "content",
	"userId":      "user_id",
	"createdDate": "created_at",
	"updatedDate": "updated_at",
}

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// GetByID retrieves a post by its id
func (r *postgresPostRepo) GetByID(ctx context.Context, postID int64) (*posts.Post, error) {
	post := &posts.Post{}
	query := `SELECT id, user_id, title, content, created_at, updated_at FROM posts WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, postID).
		Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, &posts.PostNotFoundError{PostID: postID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// ListByUser retrieves one page of the given user's posts plus the total count.
// Sort direction is a binary branch: case-insensitive "ASC" sorts ascending,
// any other value descending.
func (r *postgresPostRepo) ListByUser(ctx context.Context, userID int64, page posts.PageRequest) ([]*posts.Post, int64, error) {
	column, ok := sortColumns[page.SortBy]
	if !ok {
		return nil, 0, &posts.InvalidSortFieldError{Field: page.SortBy}
	}

	direction := "DESC"
	if strings.EqualFold(page.SortDir, "ASC") {
		direction = "ASC"
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM posts WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts for user %d: %w", userID, err)
	}

	// column and direction both come from fixed sets above, safe to interpolate.
	// Secondary order on id keeps pages stable when the sort column has ties.
	query := fmt.Sprintf(`
		SELECT id, user_id, title, content, created_at, updated_at
		FROM posts
		WHERE user_id = $1
		ORDER BY %s %s, id %s
		LIMIT $2 OFFSET $3`, column, direction, direction)

	rows, err := r.db.QueryContext(ctx, query, userID, page.PageSize, page.PageNo*page.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts for user %d: %w", userID, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	result := make([]*posts.Post, 0, page.PageSize)
	for rows.Next() {
		post := &posts.Post{}
		if err := rows.Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan post row: %w", err)
		}
		result = append(result, post)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating post rows: %w", err)
	}

	return result, total, nil
}

// Create inserts a new post and returns it with store-assigned fields
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, title, content, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, post.UserID, post.Title, post.Content).
		Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "posts_user_id_fkey") {
			return nil, posts.NewUserNotFoundError()
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// Update writes the post's title and content and returns the committed row
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET title = $2, content = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, title, content, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, post.ID, post.Title, post.Content).
		Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, &posts.PostNotFoundError{PostID: post.ID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", post.ID, err)
	}

	return post, nil
}

// Delete removes a post by id. Absent ids are a silent no-op.
func (r *postgresPostRepo) Delete(ctx context.Context, postID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID); err != nil {
		return fmt.Errorf("failed to delete post %d: %w", postID, err)
	}
	return nil
}
