package format

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidPrecision is returned for precisions other than 3, 6 or 9.
var ErrInvalidPrecision = errors.New("precision must be 3, 6 or 9")

// Precision is the number of decimal places used for display.
type Precision int

// Supported precisions.
const (
	PrecisionLow    Precision = 3
	PrecisionMedium Precision = 6
	PrecisionHigh   Precision = 9

	DefaultPrecision = PrecisionMedium
)

// ParsePrecision converts n to a Precision. Zero selects DefaultPrecision.
func ParsePrecision(n int) (Precision, error) {
	switch Precision(n) {
	case 0:
		return DefaultPrecision, nil
	case PrecisionLow, PrecisionMedium, PrecisionHigh:
		return Precision(n), nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPrecision, n)
	}
}

// Number formats v in fixed-point notation with the given number of decimals.
func Number(v float64, precision Precision) string {
	return strconv.FormatFloat(v, 'f', int(precision), 64)
}
