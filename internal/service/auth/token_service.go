// Package auth provides token issuance/verification and password hashing for
// the blog API's stateless authentication flow.
package auth

import (
	"context"
	"time"

	"blogapi/internal/domain"
)

// Claims carries the identity information embedded in a verified token.
type Claims struct {
	// UserID is the token subject, the ID of the user it was issued to.
	UserID int64

	// Name is the user's display name at issuance time.
	Name string

	// Admin mirrors the user's admin flag at issuance time.
	Admin bool

	// IssuedAt and ExpiresAt are the token's validity window.
	IssuedAt  time.Time
	ExpiresAt time.Time

	// ID is the unique token identifier (jti claim).
	ID string
}

// TokenService signs and verifies the bearer tokens presented on protected
// routes. Implementations must be safe for concurrent use.
type TokenService interface {
	// IssueToken builds and signs a token for the given user, embedding the
	// subject ID, display name, and admin flag.
	IssueToken(ctx context.Context, user *domain.User) (string, error)

	// VerifyToken checks a token's signature and validity window and returns
	// its claims. Returns ErrExpiredToken for expired tokens and
	// ErrInvalidToken for anything else that fails verification.
	VerifyToken(ctx context.Context, tokenString string) (*Claims, error)
}
