// Package middleware contains the HTTP middleware for the blog API:
// authentication, trace propagation, and panic recovery.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"blogapi/internal/api/shared"
	"blogapi/internal/domain"
	"blogapi/internal/service/auth"
	"blogapi/internal/store"
)

// fallbackRejection is the reason reported when no more specific cause is
// known for an authentication failure.
const fallbackRejection = "Invalid or expired token"

// AuthMiddleware provides bearer-token authentication for protected routes.
// Token validity and user existence are checked separately: a syntactically
// valid token for a user that no longer exists is rejected, not an error.
type AuthMiddleware struct {
	tokenService auth.TokenService
	userStore    store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userStore:    userStore,
	}
}

// Authenticate verifies the bearer token from the Authorization header,
// resolves the user it was issued to, and attaches that user to the request
// context. Requests that do not resolve to an existing user are rejected
// with 401; only unexpected internal failures produce 500.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			reject(w, r, "No auth token")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			reject(w, r, "Invalid authorization format")
			return
		}

		claims, err := m.tokenService.VerifyToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				reject(w, r, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
				reject(w, r, fallbackRejection)
			default:
				slog.Error("unexpected token verification failure", "error", err)
				shared.RespondWithInternalError(w, r, err)
			}
			return
		}

		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				// Stale token: signature checks out, user is gone.
				reject(w, r, fallbackRejection)
				return
			}
			slog.Error("failed to resolve token subject",
				"error", err, "user_id", claims.UserID)
			shared.RespondWithInternalError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser extracts the authenticated user from the request context.
// Returns the user and a boolean indicating if it was found.
func GetUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

func reject(w http.ResponseWriter, r *http.Request, reason string) {
	shared.RespondWithDetail(w, r, http.StatusUnauthorized, "Unauthorized", reason)
}
