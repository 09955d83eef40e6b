package api

import (
	"errors"
	"log/slog"
	"net/http"

	"blogapi/internal/api/shared"
	"blogapi/internal/service/auth"
	"blogapi/internal/store"
)

// loginFailedMessage is the single message for every failed login attempt.
// Unknown email and wrong password must be indistinguishable to the caller
// to avoid user enumeration.
const loginFailedMessage = "Invalid email or password."

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	tokenService     auth.TokenService
	passwordVerifier auth.PasswordVerifier
	passwordHasher   auth.PasswordHasher
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	tokenService auth.TokenService,
	passwordVerifier auth.PasswordVerifier,
	passwordHasher auth.PasswordHasher,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userStore:        userStore,
		tokenService:     tokenService,
		passwordVerifier: passwordVerifier,
		passwordHasher:   passwordHasher,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Login verifies credentials and issues a signed token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Normalize()
	if details := ValidateRequest(&req); details != nil {
		shared.RespondWithFieldErrors(
			w, r, http.StatusBadRequest, "Login form validation failed.", details)
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			h.respondLoginFailed(w, r)
			return
		}
		h.logger.Error("failed to get user by email", "error", err)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		h.respondLoginFailed(w, r)
		return
	}

	token, err := h.tokenService.IssueToken(r.Context(), user)
	if err != nil {
		h.logger.Error("failed to issue token", "error", err, "user_id", user.ID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, TokenData{Token: token})
}

// CurrentUser returns the authenticated user resolved by the auth middleware.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, UserData{User: user})
}

// UpdateProfile changes the authenticated user's display name.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Normalize()
	if details := ValidateRequest(&req); details != nil {
		shared.RespondWithFieldErrors(
			w, r, http.StatusBadRequest, "Profile form validation failed.", details)
		return
	}

	updated, err := h.userStore.UpdateName(r.Context(), user.ID, req.Name)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to update profile", "error", err, "user_id", user.ID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, UserData{User: updated})
}

// ChangePassword verifies the current password, then applies the new one.
// The current-password check runs before anything is written, so a mismatch
// never leaves a partially updated record.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req PasswordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Normalize()
	if details := ValidateRequest(&req); details != nil {
		shared.RespondWithFieldErrors(
			w, r, http.StatusBadRequest, "Password form validation failed.", details)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.CurrentPassword); err != nil {
		shared.RespondWithFieldErrors(
			w, r, http.StatusUnauthorized, "Invalid password.",
			[]shared.FieldError{{Field: "currentPassword", Message: "Invalid password."}})
		return
	}

	hash, err := h.passwordHasher.Hash(req.NewPassword)
	if err != nil {
		h.logger.Error("failed to hash new password", "error", err, "user_id", user.ID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	updated, err := h.userStore.UpdatePassword(r.Context(), user.ID, hash)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to update password", "error", err, "user_id", user.ID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, UserData{User: updated})
}

func (h *AuthHandler) respondLoginFailed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithFieldErrors(
		w, r, http.StatusUnauthorized, loginFailedMessage,
		[]shared.FieldError{{Field: "generic", Message: loginFailedMessage}})
}
