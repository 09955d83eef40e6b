package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"blogapi/internal/api/shared"
	"blogapi/internal/domain"
)

// envelope mirrors the wire shape of every API response with the payloads
// left raw so each test can decode exactly what it expects.
type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func fieldErrors(t *testing.T, resp envelope) []shared.FieldError {
	t.Helper()

	require.NotNil(t, resp.Error)
	var details []shared.FieldError
	require.NoError(t, json.Unmarshal(resp.Error.Details, &details))
	return details
}

// newJSONRequest builds a request with the given body marshaled as JSON.
// A nil body produces an empty request body.
func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	if body == nil {
		return httptest.NewRequest(method, target, nil)
	}

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withUser attaches an authenticated user the way the auth middleware does.
func withUser(req *http.Request, user *domain.User) *http.Request {
	ctx := context.WithValue(req.Context(), shared.UserContextKey, user)
	return req.WithContext(ctx)
}

// withURLParams attaches chi route parameters without running a full router.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

func testUser(id int64) *domain.User {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:             id,
		Email:          "author@example.com",
		Name:           "Author",
		HashedPassword: "hashed:secret123",
		Admin:          true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
