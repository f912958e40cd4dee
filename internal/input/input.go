package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// Validation errors returned by the parsers. Callers match them with errors.Is.
var (
	ErrNotNumeric       = errors.New("value is not a valid number")
	ErrLatitudeRange    = errors.New("latitude must be between -90 and 90 degrees")
	ErrLongitudeRange   = errors.New("longitude must be between -180 and 180 degrees")
	ErrUnknownAngleUnit = errors.New("unknown angle unit")
	ErrMalformedRow     = errors.New("row must contain three values")
)

// AngleUnit is the unit in which latitude and longitude are entered.
type AngleUnit string

const (
	Degrees AngleUnit = "degrees"
	Radians AngleUnit = "radians"
)

// GeodeticFields holds the raw text of a geodetic position as typed by a user.
type GeodeticFields struct {
	Latitude  string
	Longitude string
	Height    string
}

// CartesianFields holds the raw text of a geocentric position.
type CartesianFields struct {
	X string
	Y string
	Z string
}

// ParseAngleUnit maps a user supplied unit name to an AngleUnit.
// An empty string selects degrees.
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "deg", "degree", "degrees", "°":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAngleUnit, s)
	}
}

// ParseGeodetic parses and validates a geodetic position. Angles given in radians
// are converted to degrees before the range check.
func ParseGeodetic(fields GeodeticFields, unit AngleUnit) (models.Geodetic, error) {
	lat, err := parseNumber("latitude", fields.Latitude)
	if err != nil {
		return models.Geodetic{}, err
	}
	lon, err := parseNumber("longitude", fields.Longitude)
	if err != nil {
		return models.Geodetic{}, err
	}
	height, err := parseNumber("height", fields.Height)
	if err != nil {
		return models.Geodetic{}, err
	}

	if unit == Radians {
		lat = lat * 180 / math.Pi
		lon = lon * 180 / math.Pi
	}

	g := models.Geodetic{Latitude: lat, Longitude: lon, Height: height}
	if err = ValidateGeodetic(g); err != nil {
		return models.Geodetic{}, err
	}

	return g, nil
}

// ParseCartesian parses a geocentric position. Any finite triple is accepted.
func ParseCartesian(fields CartesianFields) (models.Cartesian, error) {
	x, err := parseNumber("x", fields.X)
	if err != nil {
		return models.Cartesian{}, err
	}
	y, err := parseNumber("y", fields.Y)
	if err != nil {
		return models.Cartesian{}, err
	}
	z, err := parseNumber("z", fields.Z)
	if err != nil {
		return models.Cartesian{}, err
	}

	return models.Cartesian{X: x, Y: y, Z: z}, nil
}

// ValidateGeodetic checks that latitude and longitude (degrees) are within their
// closed ranges. Height is unbounded.
func ValidateGeodetic(g models.Geodetic) error {
	if math.Abs(g.Latitude) > 90 {
		return fmt.Errorf("%w: got %v", ErrLatitudeRange, g.Latitude)
	}
	if math.Abs(g.Longitude) > 180 {
		return fmt.Errorf("%w: got %v", ErrLongitudeRange, g.Longitude)
	}

	return nil
}

func parseNumber(field, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q", ErrNotNumeric, field, text)
	}
	return v, nil
}
