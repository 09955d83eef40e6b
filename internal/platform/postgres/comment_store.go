package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/platform/logger"
	"blogapi/internal/store"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// Create implements store.CommentStore.Create
// Returns store.ErrPostNotFound if the referenced post does not exist
// (foreign key violation), so no comment row is ever created against a
// missing post.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("post_id", comment.PostID))
		return err
	}

	query := `
		INSERT INTO comments (post_id, name, email, content, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		comment.PostID,
		comment.Name,
		comment.Email,
		comment.Content,
		comment.Published,
		comment.CreatedAt,
		comment.UpdatedAt,
	).Scan(&comment.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Debug("comment references missing post",
				slog.Int64("post_id", comment.PostID))
			return store.ErrPostNotFound
		}

		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.Int64("post_id", comment.PostID))
		return err
	}

	log.Info("comment created successfully",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("post_id", comment.PostID))
	return nil
}

// Get implements store.CommentStore.Get
// Returns store.ErrCommentNotFound if no comment matches the compound key.
func (s *PostgresCommentStore) Get(ctx context.Context, postID, commentID int64) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, post_id, name, email, content, published, created_at, updated_at
		FROM comments
		WHERE post_id = $1 AND id = $2
	`

	comment, err := scanComment(s.db.QueryRowContext(ctx, query, postID, commentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found",
				slog.Int64("post_id", postID),
				slog.Int64("comment_id", commentID))
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to get comment",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID),
			slog.Int64("comment_id", commentID))
		return nil, err
	}

	return comment, nil
}

// ListByPost implements store.CommentStore.ListByPost
// Returns store.ErrPostNotFound if the post does not exist; an existing post
// with no comments yields an empty slice.
func (s *PostgresCommentStore) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Existence check first so a missing post is distinguishable from a post
	// without comments.
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, postID).
		Scan(&exists)
	if err != nil {
		log.Error("failed to check post existence",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID))
		return nil, err
	}
	if !exists {
		log.Debug("post not found for comment listing", slog.Int64("post_id", postID))
		return nil, store.ErrPostNotFound
	}

	query := `
		SELECT id, post_id, name, email, content, published, created_at, updated_at
		FROM comments
		WHERE post_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, postID)
	if err != nil {
		log.Error("failed to query comments",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var comments []*domain.Comment
	for rows.Next() {
		var comment domain.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.Name,
			&comment.Email,
			&comment.Content,
			&comment.Published,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return nil, err
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if comments == nil {
		comments = []*domain.Comment{}
	}

	return comments, nil
}

// UpdateContent implements store.CommentStore.UpdateContent
// Returns store.ErrCommentNotFound if no comment matches the compound key.
func (s *PostgresCommentStore) UpdateContent(
	ctx context.Context,
	postID, commentID int64,
	content string,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE comments
		SET content = $1, updated_at = $2
		WHERE post_id = $3 AND id = $4
		RETURNING id, post_id, name, email, content, published, created_at, updated_at
	`

	comment, err := scanComment(
		s.db.QueryRowContext(ctx, query, content, time.Now().UTC(), postID, commentID),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found for update",
				slog.Int64("post_id", postID),
				slog.Int64("comment_id", commentID))
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to update comment",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID),
			slog.Int64("comment_id", commentID))
		return nil, err
	}

	log.Info("comment updated successfully",
		slog.Int64("comment_id", commentID),
		slog.Int64("post_id", postID))
	return comment, nil
}

// Delete implements store.CommentStore.Delete
// Returns store.ErrCommentNotFound if no comment matches the compound key.
func (s *PostgresCommentStore) Delete(ctx context.Context, postID, commentID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM comments WHERE post_id = $1 AND id = $2`

	result, err := s.db.ExecContext(ctx, query, postID, commentID)
	if err != nil {
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID),
			slog.Int64("comment_id", commentID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", commentID))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("comment not found for delete",
			slog.Int64("post_id", postID),
			slog.Int64("comment_id", commentID))
		return store.ErrCommentNotFound
	}

	log.Info("comment deleted successfully",
		slog.Int64("comment_id", commentID),
		slog.Int64("post_id", postID))
	return nil
}

// scanComment reads a full comment row.
func scanComment(row *sql.Row) (*domain.Comment, error) {
	var comment domain.Comment
	err := row.Scan(
		&comment.ID,
		&comment.PostID,
		&comment.Name,
		&comment.Email,
		&comment.Content,
		&comment.Published,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
