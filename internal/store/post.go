package store

import (
	"context"

	"blogapi/internal/domain"
)

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create saves a new post to the store and assigns its ID.
	// Returns ErrInvalidEntity if the author does not exist.
	// Returns validation errors from the domain Post if data is invalid.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its unique ID, including its comments
	// ordered by creation sequence.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// List retrieves all posts ordered by creation time, newest first.
	// Returns an empty slice, never nil, when there are no posts.
	List(ctx context.Context) ([]*domain.Post, error)

	// Update modifies an existing post's title, content, and published flag,
	// and returns the updated record.
	// Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)

	// Delete removes a post from the store by its ID.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id int64) error
}
