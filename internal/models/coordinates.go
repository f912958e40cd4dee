package models

import "math"

// Geodetic represents a position relative to the WGS84 ellipsoid.
type Geodetic struct {
	Latitude  float64 `json:"latDeg"` // Latitude in degrees, positive north.
	Longitude float64 `json:"lonDeg"` // Longitude in degrees, positive east.
	Height    float64 `json:"height"` // Height above the ellipsoid in meters.
}

// Cartesian represents a geocentric (ECEF) position in meters.
// Z points along the rotation axis, X through the prime meridian at the equator.
type Cartesian struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Magnitude returns the distance of the point from the Earth's center.
func (c Cartesian) Magnitude() float64 {
	return math.Hypot(math.Hypot(c.X, c.Y), c.Z)
}
