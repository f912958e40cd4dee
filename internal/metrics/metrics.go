package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values shared by the conversion metrics.
const (
	DirectionToCartesian = "to_cartesian"
	DirectionToGeodetic  = "to_geodetic"

	StatusSuccess = "success"
	StatusInvalid = "invalid"
)

type Metrics struct {
	Conversions       *prometheus.CounterVec
	ConversionSeconds *prometheus.HistogramVec
	ValidationErrors  *prometheus.CounterVec
	InflightRequests  prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Conversions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "meridian_conversions_total",
			Help: "Total number of coordinate conversion requests.",
		}, []string{"direction", "status"}),
		ConversionSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "meridian_conversion_duration_seconds",
			Help:    "Duration of validation plus coordinate transform.",
			Buckets: []float64{1e-7, 1e-6, 1e-5, 1e-4, 1e-3},
		}, []string{"direction"}),
		ValidationErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "meridian_validation_errors_total",
			Help: "Total number of rejected conversion inputs.",
		}, []string{"reason"}),
		InflightRequests: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "meridian_http_inflight_requests",
			Help: "Current number of HTTP requests being served.",
		}),
	}
}
