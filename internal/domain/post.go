package domain

import (
	"errors"
	"time"
)

var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyContent     = errors.New("content cannot be empty")
	ErrMissingAuthor    = errors.New("post must reference an author")
	ErrMissingPost      = errors.New("comment must reference a post")
	ErrEmptyCommentName = errors.New("comment name cannot be empty")
)

// Post is a blog entry written by a registered user. Comments, when loaded,
// are ordered by their creation sequence.
type Post struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"authorId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Comments  []Comment `json:"comments,omitempty"`
}

// NewPost creates a Post for the given author. The ID is assigned by the
// store on insert.
func NewPost(authorID int64, title, content string, published bool) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		Published: published,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
func (p *Post) Validate() error {
	if p.AuthorID <= 0 {
		return ErrMissingAuthor
	}
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if p.Content == "" {
		return ErrEmptyContent
	}
	return nil
}
