package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"blogapi/internal/api/shared"
	"blogapi/internal/domain"
)

// notFoundMessage is the client-visible message for every 404 on resource
// endpoints.
const notFoundMessage = "Not found"

// getUserFromContext extracts the authenticated user placed in the request
// context by the auth middleware.
func getUserFromContext(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// pathID extracts a numeric ID from the URL path parameters. A missing or
// non-numeric value addresses no record, so callers treat false as not found
// rather than as a malformed request.
func pathID(r *http.Request, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, paramName), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// respondNotFound writes the uniform 404 envelope.
func respondNotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, notFoundMessage)
}
