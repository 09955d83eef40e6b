package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"blogapi/internal/api/shared"
)

// Recovery is the process-wide fallback error responder. Any panic escaping
// a handler is logged with its stack and turned into the uniform 500
// envelope; in production mode the client-visible message is collapsed to a
// generic string. Stack traces never reach the client.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"panic", fmt.Sprintf("%v", rec),
					"trace_id", shared.GetTraceID(r.Context()),
					"path", r.URL.Path,
					"method", r.Method,
					"stack", string(debug.Stack()))

				shared.RespondWithInternalError(w, r, fmt.Errorf("%v", rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
