package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRespondWithData(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithData(rec, req, http.StatusOK, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Nil(t, resp.Error)
	require.NotNil(t, resp.Data)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "world", data["hello"])
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithError(rec, req, http.StatusNotFound, "Not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, StatusError, resp.Status)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, http.StatusNotFound, resp.Error.Code)
	assert.Equal(t, "Not found", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)
}

func TestRespondWithFieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", nil)

	details := []FieldError{
		{Field: "email", Message: "Email must not be empty."},
		{Field: "password", Message: "Password must not be empty."},
	}
	RespondWithFieldErrors(rec, req, http.StatusBadRequest, "Login form validation failed.", details)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, http.StatusBadRequest, resp.Error.Code)
	assert.Equal(t, "Login form validation failed.", resp.Error.Message)

	raw, err := json.Marshal(resp.Error.Details)
	require.NoError(t, err)

	var got []FieldError
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, details, got)
}

func TestRespondWithDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithDetail(rec, req, http.StatusUnauthorized, "Unauthorized", "No auth token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Unauthorized", resp.Error.Message)
	assert.Equal(t, "No auth token", resp.Error.Details)
}

func TestRespondWithInternalError(t *testing.T) {
	t.Run("development exposes the error text", func(t *testing.T) {
		SetProductionMode(false)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)

		RespondWithInternalError(rec, req, errors.New("database exploded"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeEnvelope(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "database exploded", resp.Error.Message)
	})

	t.Run("production collapses the message", func(t *testing.T) {
		SetProductionMode(true)
		defer SetProductionMode(false)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)

		RespondWithInternalError(rec, req, errors.New("database exploded"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeEnvelope(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, ProductionInternalErrorMessage, resp.Error.Message)
		assert.NotContains(t, rec.Body.String(), "database exploded")
	})
}

func TestSetTraceID(t *testing.T) {
	ctx := SetTraceID(httptest.NewRequest(http.MethodGet, "/", nil).Context())

	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, TraceIDLength*2)

	other := SetTraceID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.NotEqual(t, traceID, GetTraceID(other))
}
