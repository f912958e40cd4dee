package geodesy

import (
	"errors"
	"fmt"
)

// ErrInvalidEllipsoid is returned when the defining parameters are out of range.
var ErrInvalidEllipsoid = errors.New("invalid ellipsoid parameters")

// Ellipsoid is an oblate reference ellipsoid defined by its semi-major axis and flattening.
// The derived shape parameters are computed once by NewEllipsoid and never change afterwards.
type Ellipsoid struct {
	a   float64 // semi-major axis in meters
	f   float64 // flattening
	e2  float64 // first eccentricity squared
	b   float64 // semi-minor axis in meters
	ep2 float64 // second eccentricity squared
}

// WGS84 is the World Geodetic System 1984 reference ellipsoid.
var WGS84 = mustEllipsoid(6378137.0, 1/298.257223563)

// NewEllipsoid creates an ellipsoid from the semi-major axis a (meters) and flattening f.
// It requires a > 0 and 0 < f < 1.
func NewEllipsoid(a, f float64) (Ellipsoid, error) {
	if !(a > 0) {
		return Ellipsoid{}, fmt.Errorf("%w: semi-major axis %v must be positive", ErrInvalidEllipsoid, a)
	}
	if !(f > 0 && f < 1) {
		return Ellipsoid{}, fmt.Errorf("%w: flattening %v must be in (0, 1)", ErrInvalidEllipsoid, f)
	}

	b := a * (1 - f)

	return Ellipsoid{
		a:   a,
		f:   f,
		e2:  2*f - f*f,
		b:   b,
		ep2: (a*a - b*b) / (b * b),
	}, nil
}

func mustEllipsoid(a, f float64) Ellipsoid {
	e, err := NewEllipsoid(a, f)
	if err != nil {
		panic(fmt.Sprintf("error constructing ellipsoid: %s", err))
	}
	return e
}

// A returns the semi-major axis in meters.
func (e Ellipsoid) A() float64 { return e.a }

// F returns the flattening.
func (e Ellipsoid) F() float64 { return e.f }

// E2 returns the first eccentricity squared, 2f − f².
func (e Ellipsoid) E2() float64 { return e.e2 }

// B returns the semi-minor axis in meters, a(1 − f).
func (e Ellipsoid) B() float64 { return e.b }

// EP2 returns the second eccentricity squared, (a² − b²) / b².
func (e Ellipsoid) EP2() float64 { return e.ep2 }
