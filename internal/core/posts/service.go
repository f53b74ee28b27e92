package posts

import (
	"context"
	"fmt"

	"Quill/internal/core/users"
)

const (
	// DefaultPageSize is used when the caller does not specify a page size
	DefaultPageSize = 10

	// MaxPageSize caps a single page to keep result sets bounded
	MaxPageSize = 100

	// DefaultSortField orders listings by post id unless the caller overrides it
	DefaultSortField = "postId"
)

type postService struct {
	repo     Repository
	userRepo users.UserRepository
}

// NewPostService creates a new post service
func NewPostService(repo Repository, userRepo users.UserRepository) Service {
	return &postService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// CreatePost creates a new post owned by the given user.
// Fails with UserNotFoundError (USER_ID_NOT_EXIST) when the user is absent;
// nothing is written in that case.
func (s *postService) CreatePost(ctx context.Context, input PostInput, userID int64) (*PostResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user %d: %w", userID, err)
	}
	if !exists {
		return nil, NewUserNotFoundError()
	}

	post := &Post{
		Title:   input.Title,
		Content: input.Content,
		UserID:  userID,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return NewPostResponse(created), nil
}

// GetAllPostsByUser returns one page of the user's posts with pagination
// metadata. A user with no posts yields an empty page, not an error.
func (s *postService) GetAllPostsByUser(ctx context.Context, userID int64, page PageRequest) (*PostPage, error) {
	page = normalizePage(page)

	rows, total, err := s.repo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, err
	}

	return NewPostPage(rows, page.PageNo, page.PageSize, total), nil
}

// GetPostByUser returns the post if it exists and is owned by the given user
func (s *postService) GetPostByUser(ctx context.Context, postID, userID int64) (*PostResponse, error) {
	post, err := s.getOwnedPost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	return NewPostResponse(post), nil
}

// UpdatePostByUser replaces the post's title and content.
// The read-check-write sequence is not protected against a concurrent writer;
// the last write wins. No concurrency token is used.
func (s *postService) UpdatePostByUser(ctx context.Context, input PostInput, postID, userID int64) (*PostResponse, error) {
	post, err := s.getOwnedPost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", postID, err)
	}

	return NewPostResponse(updated), nil
}

// UpdatePostTitleByUser replaces only the post's title
func (s *postService) UpdatePostTitleByUser(ctx context.Context, input PostInput, postID, userID int64) (*PostResponse, error) {
	post, err := s.getOwnedPost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	post.Title = input.Title

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to update title of post %d: %w", postID, err)
	}

	return NewPostResponse(updated), nil
}

// UpdatePostContentByUser replaces only the post's content
func (s *postService) UpdatePostContentByUser(ctx context.Context, input PostInput, postID, userID int64) (*PostResponse, error) {
	post, err := s.getOwnedPost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	post.Content = input.Content

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to update content of post %d: %w", postID, err)
	}

	return NewPostResponse(updated), nil
}

// DeletePost removes the post if present. Unlike the other mutating
// operations there is no existence or ownership check: deleting an absent
// id silently succeeds.
func (s *postService) DeletePost(ctx context.Context, postID int64) error {
	if err := s.repo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post %d: %w", postID, err)
	}
	return nil
}

// getOwnedPost loads a post and enforces the ownership check shared by the
// read and update paths
func (s *postService) getOwnedPost(ctx context.Context, postID, userID int64) (*Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.UserID != userID {
		return nil, &NotAuthorizedError{PostID: postID, UserID: userID}
	}

	return post, nil
}

func normalizePage(page PageRequest) PageRequest {
	if page.PageNo < 0 {
		page.PageNo = 0
	}
	if page.PageSize <= 0 {
		page.PageSize = DefaultPageSize
	}
	if page.PageSize > MaxPageSize {
		page.PageSize = MaxPageSize
	}
	if page.SortBy == "" {
		page.SortBy = DefaultSortField
	}
	// SortDir passes through untouched: anything other than "ASC" sorts descending
	return page
}
