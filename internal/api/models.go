package api

import (
	"strings"

	"blogapi/internal/domain"
)

// Request payloads. Field declaration order drives the order of validation
// details in 400 responses, so it must match the endpoint contract. Tags are
// evaluated left to right and stop at the first failure per field.

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,max=255,email"`
	Password string `json:"password" validate:"required,max=64"`
}

// ProfileRequest defines the payload for the profile update endpoint.
type ProfileRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

// PasswordRequest defines the payload for the password change endpoint.
// The confirmation must match the new password within the same payload.
type PasswordRequest struct {
	CurrentPassword      string `json:"currentPassword"      validate:"required,max=64"`
	NewPassword          string `json:"newPassword"          validate:"required,max=64"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required,max=64,eqfield=NewPassword"`
}

// PostRequest defines the payload for post create and update endpoints.
type PostRequest struct {
	Title     string `json:"title"   validate:"required,max=24"`
	Content   string `json:"content" validate:"required,max=255"`
	Published bool   `json:"published"`
}

// CommentRequest defines the payload for the comment create endpoint.
type CommentRequest struct {
	Name    string `json:"name"    validate:"min=5,max=255"`
	Email   string `json:"email"   validate:"required,email,max=255"`
	Content string `json:"content" validate:"required,max=255"`
}

// CommentPatchRequest defines the payload for the comment update endpoint.
type CommentPatchRequest struct {
	Content string `json:"content" validate:"required,max=255"`
}

// Normalize trims surrounding whitespace, mirroring the trim step of each
// validation chain.
func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Password = strings.TrimSpace(r.Password)
}

func (r *ProfileRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r *PasswordRequest) Normalize() {
	r.CurrentPassword = strings.TrimSpace(r.CurrentPassword)
	r.NewPassword = strings.TrimSpace(r.NewPassword)
	r.PasswordConfirmation = strings.TrimSpace(r.PasswordConfirmation)
}

func (r *PostRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

func (r *CommentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Content = strings.TrimSpace(r.Content)
}

func (r *CommentPatchRequest) Normalize() {
	r.Content = strings.TrimSpace(r.Content)
}

// Response payloads. Success envelopes carry exactly the fields the endpoint
// contract promises.

// TokenData is the login success payload.
type TokenData struct {
	Token string `json:"token"`
}

// UserData wraps a user record.
type UserData struct {
	User *domain.User `json:"user"`
}

// PostData wraps a full post record.
type PostData struct {
	Post *domain.Post `json:"post"`
}

// PostListData wraps the post collection.
type PostListData struct {
	Posts []*domain.Post `json:"posts"`
}

// PostRef identifies a post by ID, used for create and delete responses.
type PostRef struct {
	ID int64 `json:"id"`
}

// PostRefData wraps a PostRef.
type PostRefData struct {
	Post PostRef `json:"post"`
}

// CommentData wraps a full comment record.
type CommentData struct {
	Comment *domain.Comment `json:"comment"`
}

// CommentListData wraps a post's comment collection.
type CommentListData struct {
	Comments []*domain.Comment `json:"comments"`
}

// CommentRef identifies a comment by its compound key, used for create and
// delete responses.
type CommentRef struct {
	ID     int64 `json:"id"`
	PostID int64 `json:"postId"`
}

// CommentRefData wraps a CommentRef.
type CommentRefData struct {
	Comment CommentRef `json:"comment"`
}
