package middleware

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-gtd/internal/logger"
)

// WithLogging writes one access log line per request using the request
// scoped logger installed by WithTraceID.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		uri := r.URL.Path
		method := r.Method

		lw := newResponseWriter(w)
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
