package domain

import "time"

// Comment is reader feedback attached to a post. Comments are created
// anonymously, so the name and email fields are self-reported. A comment is
// uniquely identified by the compound key (PostID, ID).
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewComment creates a Comment against the given post.
func NewComment(postID int64, name, email, content string) (*Comment, error) {
	now := time.Now().UTC()
	comment := &Comment{
		PostID:    postID,
		Name:      name,
		Email:     email,
		Content:   content,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
func (c *Comment) Validate() error {
	if c.PostID <= 0 {
		return ErrMissingPost
	}
	if c.Name == "" {
		return ErrEmptyCommentName
	}
	if c.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(c.Email) {
		return ErrInvalidEmail
	}
	if c.Content == "" {
		return ErrEmptyContent
	}
	return nil
}
