package mocks

import (
	"context"
	"errors"

	"blogapi/internal/domain"
	"blogapi/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	IssueTokenFn  func(ctx context.Context, user *domain.User) (string, error)
	VerifyTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Defaults when the function fields are unset
	Token     string
	Claims    *auth.Claims
	VerifyErr error
}

// Ensure MockTokenService implements auth.TokenService interface
var _ auth.TokenService = (*MockTokenService)(nil)

// IssueToken implements the TokenService interface
func (m *MockTokenService) IssueToken(ctx context.Context, user *domain.User) (string, error) {
	if m.IssueTokenFn != nil {
		return m.IssueTokenFn(ctx, user)
	}
	if m.Token != "" {
		return m.Token, nil
	}
	return "mock-token", nil
}

// VerifyToken implements the TokenService interface
func (m *MockTokenService) VerifyToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.VerifyTokenFn != nil {
		return m.VerifyTokenFn(ctx, tokenString)
	}
	return m.Claims, m.VerifyErr
}

// MockPasswordVerifier implements auth.PasswordVerifier and
// auth.PasswordHasher for testing. The default Compare treats the hash
// "hashed:" + password as a match; the default Hash produces such a hash.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
	HashFn    func(password string) (string, error)
}

// Ensure MockPasswordVerifier implements the auth password interfaces
var (
	_ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)
	_ auth.PasswordHasher   = (*MockPasswordVerifier)(nil)
)

// HashedPassword returns the mock hash the default Compare accepts for the
// given plaintext.
func HashedPassword(password string) string {
	return "hashed:" + password
}

// Compare implements the PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != HashedPassword(password) {
		return errors.New("password mismatch")
	}
	return nil
}

// Hash implements the PasswordHasher interface
func (m *MockPasswordVerifier) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return HashedPassword(password), nil
}
