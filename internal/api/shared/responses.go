package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// StatusSuccess and StatusError are the two values the envelope's status
// field may take. Every response from the API carries one of them.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ProductionInternalErrorMessage replaces any 500-level message when the
// server runs in production mode.
const ProductionInternalErrorMessage = "Internal server error. Something went wrong at our end."

// Response is the uniform top-level JSON wrapper used for every API response.
type Response struct {
	Status string     `json:"status"`
	Data   any        `json:"data,omitempty"`
	Error  *ErrorBody `json:"error,omitempty"`
}

// ErrorBody carries the error half of the envelope. Details is a
// []FieldError for validation failures and a plain reason string for
// authentication rejections, so it stays untyped here.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// FieldError is one normalized field/message pair from request validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// productionMode controls whether internal error messages are collapsed to a
// fixed string. Set once at startup, before the server accepts requests.
var productionMode bool

// SetProductionMode configures response sanitization for 500-level errors.
// Not safe to call after the server has started serving.
func SetProductionMode(enabled bool) {
	productionMode = enabled
}

// RespondWithData writes a success envelope with the given status code and data.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeJSON(w, status, Response{Status: StatusSuccess, Data: data})
}

// RespondWithError writes an error envelope with the given status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logError(r, status, message, nil)
	writeJSON(w, status, Response{
		Status: StatusError,
		Error:  &ErrorBody{Code: status, Message: message},
	})
}

// RespondWithFieldErrors writes an error envelope carrying field-level
// validation details.
func RespondWithFieldErrors(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	details []FieldError,
) {
	logError(r, status, message, nil)
	writeJSON(w, status, Response{
		Status: StatusError,
		Error:  &ErrorBody{Code: status, Message: message, Details: details},
	})
}

// RespondWithDetail writes an error envelope whose details field is a plain
// reason string, as on authentication rejections.
func RespondWithDetail(w http.ResponseWriter, r *http.Request, status int, message, detail string) {
	logError(r, status, message, nil)
	writeJSON(w, status, Response{
		Status: StatusError,
		Error:  &ErrorBody{Code: status, Message: message, Details: detail},
	})
}

// RespondWithInternalError logs the underlying error and writes a 500
// envelope. In production the client-visible message is collapsed to a fixed
// string; otherwise the raw error text is exposed to ease debugging.
func RespondWithInternalError(w http.ResponseWriter, r *http.Request, err error) {
	message := ProductionInternalErrorMessage
	if !productionMode && err != nil {
		message = err.Error()
	}

	logError(r, http.StatusInternalServerError, message, err)
	writeJSON(w, http.StatusInternalServerError, Response{
		Status: StatusError,
		Error:  &ErrorBody{Code: http.StatusInternalServerError, Message: message},
	})
}

// writeJSON serializes the envelope. An encode failure at this point cannot
// be reported to the client anymore, only logged.
func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// logError applies the logging policy: 5xx at ERROR, everything else at
// DEBUG, always with the trace ID for correlation.
func logError(r *http.Request, status int, message string, err error) {
	attrs := []any{
		"status_code", status,
		"message", message,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method,
	}
	if err != nil {
		attrs = append(attrs, "error", err.Error(), "error_type", fmt.Sprintf("%T", err))
	}

	if status >= http.StatusInternalServerError {
		slog.Error("API error response", attrs...)
		return
	}
	slog.Debug("API error response", attrs...)
}
