package store

import (
	"context"

	"blogapi/internal/domain"
)

// CommentStore defines the interface for comment data persistence.
// Comments are addressed by the compound key (postID, commentID).
type CommentStore interface {
	// Create saves a new comment against an existing post and assigns its ID.
	// Returns ErrPostNotFound if the referenced post does not exist.
	// Returns validation errors from the domain Comment if data is invalid.
	Create(ctx context.Context, comment *domain.Comment) error

	// Get retrieves a comment by its compound key.
	// Returns ErrCommentNotFound if no such comment exists under the post.
	Get(ctx context.Context, postID, commentID int64) (*domain.Comment, error)

	// ListByPost retrieves all comments under a post, oldest first.
	// Returns ErrPostNotFound if the post does not exist.
	ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error)

	// UpdateContent replaces a comment's content and returns the updated
	// record. Returns ErrCommentNotFound if no such comment exists.
	UpdateContent(ctx context.Context, postID, commentID int64, content string) (*domain.Comment, error)

	// Delete removes a comment by its compound key.
	// Returns ErrCommentNotFound if no such comment exists.
	Delete(ctx context.Context, postID, commentID int64) error
}
