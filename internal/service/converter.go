package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/meridian/internal/geodesy"
	"github.com/UnknownOlympus/meridian/internal/input"
	"github.com/UnknownOlympus/meridian/internal/metrics"
	"github.com/UnknownOlympus/meridian/internal/models"
)

// Converter validates user input and runs it through the WGS84 transforms.
type Converter interface {
	ToCartesian(ctx context.Context, fields input.GeodeticFields, unit input.AngleUnit) (models.Cartesian, error)
	ToGeodetic(ctx context.Context, fields input.CartesianFields) (models.Geodetic, error)
}

// ConverterService is the Converter used by the HTTP API and the CLI.
// It holds no mutable state and is safe for concurrent use.
type ConverterService struct {
	log       *slog.Logger      // Logger for conversion activity
	metrics   *metrics.Metrics  // Metrics for conversion counts and timings
	ellipsoid geodesy.Ellipsoid // Reference ellipsoid, always WGS84 in production
}

// NewConverterService creates a ConverterService on the WGS84 ellipsoid.
func NewConverterService(log *slog.Logger, metrics *metrics.Metrics) *ConverterService {
	return &ConverterService{
		log:       log,
		metrics:   metrics,
		ellipsoid: geodesy.WGS84,
	}
}

// ToCartesian parses and range checks a geodetic position, then converts it to geocentric coordinates.
func (cs *ConverterService) ToCartesian(
	ctx context.Context,
	fields input.GeodeticFields,
	unit input.AngleUnit,
) (models.Cartesian, error) {
	startTime := time.Now()
	defer cs.observe(metrics.DirectionToCartesian, startTime)

	geo, err := input.ParseGeodetic(fields, unit)
	if err != nil {
		cs.reject(ctx, metrics.DirectionToCartesian, err)
		return models.Cartesian{}, err
	}

	cart := cs.ellipsoid.ToCartesian(geo)
	cs.metrics.Conversions.WithLabelValues(metrics.DirectionToCartesian, metrics.StatusSuccess).Inc()
	cs.log.DebugContext(ctx, "Converted geodetic to cartesian",
		"lat", geo.Latitude, "lon", geo.Longitude, "height", geo.Height,
		"x", cart.X, "y", cart.Y, "z", cart.Z)

	return cart, nil
}

// ToGeodetic parses a geocentric position and converts it to geodetic coordinates.
func (cs *ConverterService) ToGeodetic(ctx context.Context, fields input.CartesianFields) (models.Geodetic, error) {
	startTime := time.Now()
	defer cs.observe(metrics.DirectionToGeodetic, startTime)

	cart, err := input.ParseCartesian(fields)
	if err != nil {
		cs.reject(ctx, metrics.DirectionToGeodetic, err)
		return models.Geodetic{}, err
	}

	geo := cs.ellipsoid.ToGeodetic(cart)
	cs.metrics.Conversions.WithLabelValues(metrics.DirectionToGeodetic, metrics.StatusSuccess).Inc()
	cs.log.DebugContext(ctx, "Converted cartesian to geodetic",
		"x", cart.X, "y", cart.Y, "z", cart.Z,
		"lat", geo.Latitude, "lon", geo.Longitude, "height", geo.Height)

	return geo, nil
}

func (cs *ConverterService) observe(direction string, startTime time.Time) {
	cs.metrics.ConversionSeconds.WithLabelValues(direction).Observe(time.Since(startTime).Seconds())
}

func (cs *ConverterService) reject(ctx context.Context, direction string, err error) {
	cs.metrics.Conversions.WithLabelValues(direction, metrics.StatusInvalid).Inc()
	cs.metrics.ValidationErrors.WithLabelValues(Reason(err)).Inc()
	cs.log.DebugContext(ctx, "Rejected conversion input", "direction", direction, "error", err)
}

// Reason classifies a validation error for metric labels.
func Reason(err error) string {
	switch {
	case errors.Is(err, input.ErrNotNumeric):
		return "not_numeric"
	case errors.Is(err, input.ErrLatitudeRange):
		return "latitude_range"
	case errors.Is(err, input.ErrLongitudeRange):
		return "longitude_range"
	default:
		return "other"
	}
}
