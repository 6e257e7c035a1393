package middleware

import (
	"context"
	"net/http"
	"time"
)

// RequestTimeout bounds each request's context. Handlers pass the context
// down to the upstream gym API client, so a slow upstream cannot pin a
// request forever.
func RequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
