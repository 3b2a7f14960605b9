package http

import (
	"net/http"
	"time"

	"github.com/avstepanov/docvault/internal/logger"
)

// withLogging writes one access-log line per request, carrying the
// trace_id attached by withTraceID. Runs after withTraceID in the chain.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
