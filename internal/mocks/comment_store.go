package mocks

import (
	"context"
	"sort"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/store"
)

type commentKey struct {
	postID    int64
	commentID int64
}

// MockCommentStore implements store.CommentStore for testing. The default
// implementation tracks which post IDs exist through the ExistingPosts set
// to reproduce the foreign-key behavior of the real store.
type MockCommentStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, comment *domain.Comment) error
	GetFn           func(ctx context.Context, postID, commentID int64) (*domain.Comment, error)
	ListByPostFn    func(ctx context.Context, postID int64) ([]*domain.Comment, error)
	UpdateContentFn func(ctx context.Context, postID, commentID int64, content string) (*domain.Comment, error)
	DeleteFn        func(ctx context.Context, postID, commentID int64) error

	// Data for default implementation
	Comments      map[commentKey]*domain.Comment
	ExistingPosts map[int64]bool
	nextID        int64
}

// Ensure MockCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*MockCommentStore)(nil)

// NewMockCommentStore creates a new mock store with initialized defaults
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{
		Comments:      make(map[commentKey]*domain.Comment),
		ExistingPosts: make(map[int64]bool),
	}
}

// AddPost registers a post ID so the default Create accepts comments for it.
func (m *MockCommentStore) AddPost(postID int64) {
	m.ExistingPosts[postID] = true
}

// Create implements the CommentStore interface
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}

	if !m.ExistingPosts[comment.PostID] {
		return store.ErrPostNotFound
	}

	m.nextID++
	comment.ID = m.nextID
	copied := *comment
	m.Comments[commentKey{comment.PostID, comment.ID}] = &copied
	return nil
}

// Get implements the CommentStore interface
func (m *MockCommentStore) Get(ctx context.Context, postID, commentID int64) (*domain.Comment, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, postID, commentID)
	}

	comment, exists := m.Comments[commentKey{postID, commentID}]
	if !exists {
		return nil, store.ErrCommentNotFound
	}
	copied := *comment
	return &copied, nil
}

// ListByPost implements the CommentStore interface
func (m *MockCommentStore) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	if m.ListByPostFn != nil {
		return m.ListByPostFn(ctx, postID)
	}

	if !m.ExistingPosts[postID] {
		return nil, store.ErrPostNotFound
	}

	comments := make([]*domain.Comment, 0)
	for key, comment := range m.Comments {
		if key.postID == postID {
			copied := *comment
			comments = append(comments, &copied)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

// UpdateContent implements the CommentStore interface
func (m *MockCommentStore) UpdateContent(
	ctx context.Context,
	postID, commentID int64,
	content string,
) (*domain.Comment, error) {
	if m.UpdateContentFn != nil {
		return m.UpdateContentFn(ctx, postID, commentID, content)
	}

	comment, exists := m.Comments[commentKey{postID, commentID}]
	if !exists {
		return nil, store.ErrCommentNotFound
	}
	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()
	copied := *comment
	return &copied, nil
}

// Delete implements the CommentStore interface
func (m *MockCommentStore) Delete(ctx context.Context, postID, commentID int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, postID, commentID)
	}

	key := commentKey{postID, commentID}
	if _, exists := m.Comments[key]; !exists {
		return store.ErrCommentNotFound
	}
	delete(m.Comments, key)
	return nil
}
