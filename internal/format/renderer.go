package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// Renderer writes conversion results for a human or another program.
type Renderer interface {
	RenderCartesian(w io.Writer, c models.Cartesian) error
	RenderGeodetic(w io.Writer, g models.Geodetic) error
}

// RendererType selects the output representation.
type RendererType string

const (
	// RendererText prints one labelled, fixed-precision value per line.
	RendererText RendererType = "text"
	// RendererJSON prints the raw values as indented JSON.
	RendererJSON RendererType = "json"
)

// RendererConfig holds configuration for creating a renderer.
type RendererConfig struct {
	Type      RendererType // Type of renderer to create
	Precision Precision    // Decimal places (text renderer only)
}

// NewRenderer creates a renderer based on the provided configuration.
func NewRenderer(config RendererConfig) (Renderer, error) {
	switch config.Type {
	case RendererText:
		if config.Precision == 0 {
			config.Precision = DefaultPrecision
		}
		if _, err := ParsePrecision(int(config.Precision)); err != nil {
			return nil, err
		}
		return &TextRenderer{precision: config.Precision}, nil
	case RendererJSON:
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported renderer type: %s", config.Type)
	}
}

// TextRenderer prints values with units, including the vector length for Cartesian results.
type TextRenderer struct {
	precision Precision
}

func (r *TextRenderer) RenderCartesian(w io.Writer, c models.Cartesian) error {
	_, err := fmt.Fprintf(w, "x: %s m\ny: %s m\nz: %s m\n|r| = %s m\n",
		Number(c.X, r.precision),
		Number(c.Y, r.precision),
		Number(c.Z, r.precision),
		Number(c.Magnitude(), r.precision),
	)
	return err
}

func (r *TextRenderer) RenderGeodetic(w io.Writer, g models.Geodetic) error {
	_, err := fmt.Fprintf(w, "lat: %s°\nlon: %s°\nh: %s m\n",
		Number(g.Latitude, r.precision),
		Number(g.Longitude, r.precision),
		Number(g.Height, r.precision),
	)
	return err
}

// JSONRenderer prints unrounded values, two-space indented.
type JSONRenderer struct{}

func (r *JSONRenderer) RenderCartesian(w io.Writer, c models.Cartesian) error {
	return writeJSON(w, c)
}

func (r *JSONRenderer) RenderGeodetic(w io.Writer, g models.Geodetic) error {
	return writeJSON(w, g)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
