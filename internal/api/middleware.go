package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/meridian/internal/locale"
	"github.com/UnknownOlympus/meridian/internal/metrics"
	"golang.org/x/time/rate"
)

// statusWriter captures the final HTTP status code and number of bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// loggingMiddleware logs request duration and response size, and tracks in-flight requests.
func loggingMiddleware(log *slog.Logger, m *metrics.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.InflightRequests.Inc()
		defer m.InflightRequests.Dec()

		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		log.InfoContext(r.Context(), "Request served",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", sw.status,
			"bytes", sw.bytes,
			"duration", time.Since(start),
		)
	})
}

// rateLimitMiddleware rejects requests with 429 once the token bucket is empty.
func rateLimitMiddleware(limiter *rate.Limiter, h *Handler, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			h.writeError(w, r, http.StatusTooManyRequests, locale.KeyRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}
