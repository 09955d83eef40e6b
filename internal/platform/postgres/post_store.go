package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/platform/logger"
	"blogapi/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Create implements store.PostStore.Create
// Returns store.ErrInvalidEntity if the author does not exist (foreign key
// violation).
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("author_id", post.AuthorID))
		return err
	}

	query := `
		INSERT INTO posts (author_id, title, content, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		post.AuthorID,
		post.Title,
		post.Content,
		post.Published,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during post creation",
				slog.String("error", err.Error()),
				slog.Int64("author_id", post.AuthorID))
			return fmt.Errorf("%w: author with ID %d not found",
				store.ErrInvalidEntity, post.AuthorID)
		}

		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.Int64("author_id", post.AuthorID))
		return err
	}

	log.Info("post created successfully",
		slog.Int64("post_id", post.ID),
		slog.Int64("author_id", post.AuthorID))
	return nil
}

// GetByID implements store.PostStore.GetByID
// The returned post includes its comments ordered by ID.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, author_id, title, content, published, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&post.Published,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.Int64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, err
	}

	comments, err := s.loadComments(ctx, id)
	if err != nil {
		log.Error("failed to load comments for post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, err
	}
	post.Comments = comments

	return &post, nil
}

// List implements store.PostStore.List
// Returns an empty slice instead of nil if no posts exist.
func (s *PostgresPostStore) List(ctx context.Context) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, author_id, title, content, published, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query posts", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var posts []*domain.Post
	for rows.Next() {
		var post domain.Post
		err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Title,
			&post.Content,
			&post.Published,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, err
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if posts == nil {
		posts = []*domain.Post{}
	}

	log.Debug("listed posts", slog.Int("count", len(posts)))
	return posts, nil
}

// Update implements store.PostStore.Update
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("post_id", post.ID))
		return nil, err
	}

	query := `
		UPDATE posts
		SET title = $1, content = $2, published = $3, updated_at = $4
		WHERE id = $5
		RETURNING id, author_id, title, content, published, created_at, updated_at
	`

	var updated domain.Post
	err := s.db.QueryRowContext(
		ctx,
		query,
		post.Title,
		post.Content,
		post.Published,
		time.Now().UTC(),
		post.ID,
	).Scan(
		&updated.ID,
		&updated.AuthorID,
		&updated.Title,
		&updated.Content,
		&updated.Published,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found for update", slog.Int64("post_id", post.ID))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", post.ID))
		return nil, err
	}

	log.Info("post updated successfully", slog.Int64("post_id", updated.ID))
	return &updated, nil
}

// Delete implements store.PostStore.Delete
// Returns store.ErrPostNotFound if the post does not exist. Comments under
// the post are removed by the ON DELETE CASCADE constraint.
func (s *PostgresPostStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM posts WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("post not found for delete", slog.Int64("post_id", id))
		return store.ErrPostNotFound
	}

	log.Info("post deleted successfully", slog.Int64("post_id", id))
	return nil
}

// loadComments fetches a post's comments ordered by creation sequence.
func (s *PostgresPostStore) loadComments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	query := `
		SELECT id, post_id, name, email, content, published, created_at, updated_at
		FROM comments
		WHERE post_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var comments []domain.Comment
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
			return nil, err
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
