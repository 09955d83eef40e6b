package auth

import "errors"

// Token verification errors. Business failures such as a wrong password are
// not represented here; those belong to the handlers.
var (
	// ErrInvalidToken indicates the token is malformed, carries an invalid
	// signature, or otherwise failed verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indicates the token's expiry claim has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid indicates the token's not-before claim is in the future.
	ErrTokenNotYetValid = errors.New("token not yet valid")
)
