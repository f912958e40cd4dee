package geodesy

import (
	"math"

	"github.com/UnknownOlympus/meridian/internal/models"
)

const (
	// AxisThreshold is the distance from the rotation axis (meters) below which
	// a point is treated as lying on the axis.
	AxisThreshold = 1e-10

	// PoleThreshold is the value of |cos φ| below which height is derived from z
	// instead of from the distance to the axis.
	PoleThreshold = 1e-10
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// GeodeticToCartesian converts WGS84 latitude and longitude (degrees) and height (meters)
// to geocentric coordinates. Inputs are not range checked.
func GeodeticToCartesian(lat, lon, height float64) models.Cartesian {
	return WGS84.ToCartesian(models.Geodetic{Latitude: lat, Longitude: lon, Height: height})
}

// CartesianToGeodetic converts geocentric coordinates (meters) to WGS84 geodetic coordinates.
func CartesianToGeodetic(x, y, z float64) models.Geodetic {
	return WGS84.ToGeodetic(models.Cartesian{X: x, Y: y, Z: z})
}

// ToCartesian converts a geodetic position on e to geocentric coordinates.
func (e Ellipsoid) ToCartesian(g models.Geodetic) models.Cartesian {
	phi := g.Latitude * deg2rad
	lambda := g.Longitude * deg2rad

	sinPhi, cosPhi := math.Sincos(phi)
	sinLambda, cosLambda := math.Sincos(lambda)
	n := e.primeVertical(sinPhi)

	return models.Cartesian{
		X: (n + g.Height) * cosPhi * cosLambda,
		Y: (n + g.Height) * cosPhi * sinLambda,
		Z: ((1-e.e2)*n + g.Height) * sinPhi,
	}
}

// ToGeodetic converts geocentric coordinates to a geodetic position on e using
// Bowring's single-pass approximation. The result is finite for finite input unless
// the distance from the rotation axis itself exceeds the float64 range.
func (e Ellipsoid) ToGeodetic(c models.Cartesian) models.Geodetic {
	p := math.Hypot(c.X, c.Y)

	// On the axis longitude is undefined and p would be a divisor below.
	if p < AxisThreshold {
		lat := -90.0
		if c.Z > 0 {
			lat = 90.0
		}
		return models.Geodetic{Latitude: lat, Longitude: 0, Height: math.Abs(c.Z) - e.b}
	}

	sinTheta, cosTheta := math.Sincos(math.Atan2(c.Z*e.a, p*e.b))
	phi := math.Atan2(
		c.Z+e.ep2*e.b*sinTheta*sinTheta*sinTheta,
		p-e.e2*e.a*cosTheta*cosTheta*cosTheta,
	)
	lambda := math.Atan2(c.Y, c.X)

	sinPhi, cosPhi := math.Sincos(phi)
	n := e.primeVertical(sinPhi)

	var height float64
	if math.Abs(cosPhi) > PoleThreshold {
		height = p/cosPhi - n
	} else {
		height = c.Z/sinPhi - n*(1-e.e2)
	}

	return models.Geodetic{
		Latitude:  phi * rad2deg,
		Longitude: lambda * rad2deg,
		Height:    height,
	}
}

// primeVertical returns the prime-vertical radius of curvature N for the given sin φ.
func (e Ellipsoid) primeVertical(sinPhi float64) float64 {
	return e.a / math.Sqrt(1-e.e2*sinPhi*sinPhi)
}
