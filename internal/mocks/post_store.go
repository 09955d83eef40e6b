package mocks

import (
	"context"
	"sort"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/store"
)

// MockPostStore implements store.PostStore for testing
type MockPostStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, post *domain.Post) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Post, error)
	ListFn    func(ctx context.Context) ([]*domain.Post, error)
	UpdateFn  func(ctx context.Context, post *domain.Post) (*domain.Post, error)
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for default implementation, keyed by post ID
	Posts  map[int64]*domain.Post
	nextID int64
}

// Ensure MockPostStore implements store.PostStore interface
var _ store.PostStore = (*MockPostStore)(nil)

// NewMockPostStore creates a new mock store with initialized defaults
func NewMockPostStore() *MockPostStore {
	return &MockPostStore{Posts: make(map[int64]*domain.Post)}
}

// Create implements the PostStore interface
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}

	m.nextID++
	post.ID = m.nextID
	copied := *post
	m.Posts[post.ID] = &copied
	return nil
}

// GetByID implements the PostStore interface
func (m *MockPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	post, exists := m.Posts[id]
	if !exists {
		return nil, store.ErrPostNotFound
	}
	copied := *post
	return &copied, nil
}

// List implements the PostStore interface
func (m *MockPostStore) List(ctx context.Context) ([]*domain.Post, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	posts := make([]*domain.Post, 0, len(m.Posts))
	for _, post := range m.Posts {
		copied := *post
		posts = append(posts, &copied)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

// Update implements the PostStore interface
func (m *MockPostStore) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, post)
	}

	existing, exists := m.Posts[post.ID]
	if !exists {
		return nil, store.ErrPostNotFound
	}
	existing.Title = post.Title
	existing.Content = post.Content
	existing.Published = post.Published
	existing.UpdatedAt = time.Now().UTC()
	copied := *existing
	return &copied, nil
}

// Delete implements the PostStore interface
func (m *MockPostStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Posts[id]; !exists {
		return store.ErrPostNotFound
	}
	delete(m.Posts, id)
	return nil
}
