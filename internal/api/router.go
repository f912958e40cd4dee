package api

import (
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/meridian/internal/metrics"
	"github.com/UnknownOlympus/meridian/internal/service"
	"golang.org/x/time/rate"
)

// RouterConfig holds the dependencies of the HTTP API.
type RouterConfig struct {
	Converter service.Converter
	Log       *slog.Logger
	Metrics   *metrics.Metrics
	Defaults  Defaults
	RateLimit float64 // Requests per second; zero or less disables limiting.
	RateBurst int
}

// NewRouter wires the conversion handlers and returns an http.Handler.
// Metrics exposition is mounted separately by the caller.
func NewRouter(cfg RouterConfig) http.Handler {
	h := &Handler{
		Converter: cfg.Converter,
		Log:       cfg.Log,
		Defaults:  cfg.Defaults,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.Health)
	mux.HandleFunc("/v1/convert/cartesian", h.ToCartesian)
	mux.HandleFunc("/v1/convert/geodetic", h.ToGeodetic)
	mux.HandleFunc("/v1/presets", h.Presets)

	var handler http.Handler = mux
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		handler = rateLimitMiddleware(rate.NewLimiter(rate.Limit(cfg.RateLimit), burst), h, handler)
	}

	return loggingMiddleware(cfg.Log, cfg.Metrics, handler)
}
