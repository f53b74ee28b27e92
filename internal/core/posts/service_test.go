package posts

import (
	"context"
	"testing"
	"time"

	"Quill/internal/core/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, postID int64) (*Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int64, page PageRequest) ([]*Post, int64, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) Create(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of users.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *users.User) (*users.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func storedPost(id, userID int64, title, content string) *Post {
	return &Post{
		ID:        id,
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreatePost_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserRepository)

	mockUsers.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.UserID == 1 && p.Title == "A" && p.Content == "B" && p.ID == 0
	})).Return(storedPost(42, 1, "A", "B"), nil)

	service := NewPostService(mockRepo, mockUsers)

	resp, err := service.CreatePost(context.Background(), PostInput{Title: "A", Content: "B"}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.PostID)
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, "A", resp.Title)
	assert.Equal(t, "B", resp.Content)
	assert.False(t, resp.CreatedDate.IsZero())

	mockRepo.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestCreatePost_UserNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserRepository)

	mockUsers.On("Exists", mock.Anything, int64(99)).Return(false, nil)

	service := NewPostService(mockRepo, mockUsers)

	resp, err := service.CreatePost(context.Background(), PostInput{Title: "A", Content: "B"}, 99)
	require.Error(t, err)
	assert.Nil(t, resp)

	var userNotFound *UserNotFoundError
	require.ErrorAs(t, err, &userNotFound)
	require.Len(t, userNotFound.Errors, 1)
	assert.Equal(t, CodeUserIDNotExist, userNotFound.Errors[0].Code)

	// The store must not be touched on a failed existence check
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetPostByUser_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserRepository)

	mockRepo.On("GetByID", mock.Anything, int64(42)).Return(storedPost(42, 1, "A", "B"), nil)

	service := NewPostService(mockRepo, mockUsers)

	resp, err := service.GetPostByUser(context.Background(), 42, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.PostID)
	assert.Equal(t, "A", resp.Title)
	assert.Equal(t, "B", resp.Content)
}

func TestGetPostByUser_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserRepository)

	mockRepo.On("GetByID", mock.Anything, int64(7)).Return(nil, &PostNotFoundError{PostID: 7})

	service := NewPostService(mockRepo, mockUsers)

	_, err := service.GetPostByUser(context.Background(), 7, 1)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "7")
}

func TestGetPostByUser_NotAuthorized(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserRepository)

	mockRepo.On("GetByID", mock.Anything, int64(42)).Return(storedPost(42, 1, "A", "B"), nil)

	service := NewPostService(mockRepo, mockUsers)

	_, err := service.GetPostByUser(context.Background(), 42, 2)
	require.Error(t, err)
	assert.True(t, IsNotAuthorized(err))
	assert.Contains(t, err.Error(), "42")
}

func TestUpdatePostByUser_ReplacesBothFields(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserRepository)

	mockRepo.On("GetByID", mock.Anything, int64(42)).Return(storedPost(42, 1, "old title", "old content"), nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.ID == 42 && p.Title == "new title" && p.Content == "new content"
	})).Return(storedPost(42, 1, "new title", "new content"), nil)

	service := NewPostService(mockRepo, mockUsers)

	resp, err := service.UpdatePostByUser(context.Background(), PostInput{Title: "new title", Content: "new content"}, 42, 1)
	require.NoError(t, err)
	assert.Equal(t, "new title", resp.Title)
	assert.Equal(t, "new content", resp.Content)

	mockRepo.AssertExpectations(t)
}

func TestUpdatePostTitleByUser_LeavesContentUnchanged(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserRepository)

	mockRepo.On("GetByID", mock.Anything, int64(42)).Return(storedPost(42, 1, "old title", "old content"), nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.Title == "new title" && p.Content == "old content"
	})).Return(storedPost(42, 1, "new title", "old content"), nil)

	service := NewPostService(mockRepo, mockUsers)

	resp, err := service.UpdatePostTitleByUser(context.Background(), PostInput{Title: "new title"}, 42, 1)
	require.NoError(t, err)
	assert.Equal(t, "new title", resp.Title)
	assert.Equal(t, "old content", resp.Content)

	mockRepo.AssertExpectations(t)
}

func TestUpdatePostContentByUser_LeavesTitleUnchanged(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserRepository)

	mockRepo.On("GetByID", mock.Anything, int64(42)).Return(storedPost(42, 1, "old title", "old content"), nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.Title == "old title" && p.Content == "new content"
	})).Return(storedPost(42, 1, "old title", "new content"), nil)

	service := NewPostService(mockRepo, mockUsers)

	resp, err := service.UpdatePostContentByUser(context.Background(), PostInput{Content: "new content"}, 42, 1)
	require.NoError(t, err)
	assert.Equal(t, "old title", resp.Title)
	assert.Equal(t, "new content", resp.Content)

	mockRepo.AssertExpectations(t)
}

func TestUpdatePostByUser_NotAuthorized_NoWrite(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserRepository)

	mockRepo.On("GetByID", mock.Anything, int64(42)).Return(storedPost(42, 1, "A", "B"), nil)

	service := NewPostService(mockRepo, mockUsers)

	_, err := service.UpdatePostByUser(context.Background(), PostInput{Title: "x", Content: "y"}, 42, 2)
	require.Error(t, err)
	assert.True(t, IsNotAuthorized(err))

	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// DeletePost has no existence or ownership check: an absent id is a silent
// no-op, unlike every other mutating operation. This pins that behavior.
func TestDeletePost_AbsentIDIsSilentNoOp(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserRepository)

	mockRepo.On("Delete", mock.Anything, int64(12345)).Return(nil)

	service := NewPostService(mockRepo, mockUsers)

	err := service.DeletePost(context.Background(), 12345)
	assert.NoError(t, err)

	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetAllPostsByUser_PageMetadata(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserRepository)

	rows := []*Post{
		storedPost(21, 1, "t21", "c21"),
		storedPost(22, 1, "t22", "c22"),
		storedPost(23, 1, "t23", "c23"),
		storedPost(24, 1, "t24", "c24"),
		storedPost(25, 1, "t25", "c25"),
	}
	mockRepo.On("ListByUser", mock.Anything, int64(1), PageRequest{
		PageNo:   2,
		PageSize: 10,
		SortBy:   "createdDate",
		SortDir:  "ASC",
	}).Return(rows, int64(25), nil)

	service := NewPostService(mockRepo, mockUsers)

	page, err := service.GetAllPostsByUser(context.Background(), 1, PageRequest{
		PageNo:   2,
		PageSize: 10,
		SortBy:   "createdDate",
		SortDir:  "ASC",
	})
	require.NoError(t, err)
	assert.Len(t, page.Content, 5)
	assert.Equal(t, 2, page.PageNo)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, int64(25), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.LastPage)
}

func TestGetAllPostsByUser_EmptyPage(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserRepository)

	mockRepo.On("ListByUser", mock.Anything, int64(5), mock.Anything).
		Return([]*Post{}, int64(0), nil)

	service := NewPostService(mockRepo, mockUsers)

	page, err := service.GetAllPostsByUser(context.Background(), 5, PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(0), page.TotalElements)
	assert.Equal(t, 0, page.TotalPages)
	assert.True(t, page.LastPage)
}

func TestGetAllPostsByUser_NormalizesPageRequest(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserRepository)

	mockRepo.On("ListByUser", mock.Anything, int64(1), PageRequest{
		PageNo:   0,
		PageSize: DefaultPageSize,
		SortBy:   DefaultSortField,
		SortDir:  "bogus",
	}).Return([]*Post{}, int64(0), nil)

	service := NewPostService(mockRepo, mockUsers)

	_, err := service.GetAllPostsByUser(context.Background(), 1, PageRequest{
		PageNo:  -3,
		SortDir: "bogus",
	})
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestGetAllPostsByUser_InvalidSortFieldPropagates(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserRepository)

	mockRepo.On("ListByUser", mock.Anything, int64(1), mock.Anything).
		Return(nil, int64(0), &InvalidSortFieldError{Field: "nope"})

	service := NewPostService(mockRepo, mockUsers)

	_, err := service.GetAllPostsByUser(context.Background(), 1, PageRequest{SortBy: "nope"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "nope")
}
