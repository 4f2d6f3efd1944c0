package middleware

import (
	"net/http"

	"roombook/pkg/logger"
)

// MaxRequestSize caps the request body size. Requests that declare a
// larger Content-Length are rejected outright; chunked bodies are
// capped with http.MaxBytesReader so handlers fail on read instead of
// buffering an unbounded payload.
func MaxRequestSize(limit int64, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				log.Warn("Request body too large",
					"request_id", RequestID(r.Context()),
					"content_length", r.ContentLength,
					"limit", limit,
					"path", r.URL.Path,
					"method", r.Method,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_, _ = w.Write([]byte(`{"error":"Request body too large"}`))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
