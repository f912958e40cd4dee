package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/meridian/internal/format"
	"github.com/UnknownOlympus/meridian/internal/geodesy"
	"github.com/UnknownOlympus/meridian/internal/input"
	"github.com/UnknownOlympus/meridian/internal/locale"
	"github.com/UnknownOlympus/meridian/internal/presets"
	"github.com/UnknownOlympus/meridian/internal/service"
	"golang.org/x/text/language"
)

const maxBodyBytes = 1 << 12

// Handler serves the conversion endpoints.
type Handler struct {
	Converter service.Converter
	Log       *slog.Logger
	Defaults  Defaults
}

// Defaults apply when a request leaves a setting out.
type Defaults struct {
	Precision format.Precision
	AngleUnit input.AngleUnit
	Language  language.Tag
}

// Health provides a minimal liveness check endpoint.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodGet) {
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// ToCartesian converts a geodetic position to geocentric coordinates.
func (h *Handler) ToCartesian(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodPost) {
		return
	}

	var req ToCartesianRequest
	if !h.decode(w, r, &req) {
		return
	}

	precision, err := h.precision(req.Precision)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	unit := h.Defaults.AngleUnit
	if req.Unit != "" || unit == "" {
		if unit, err = input.ParseAngleUnit(req.Unit); err != nil {
			h.fail(w, r, err)
			return
		}
	}

	cart, err := h.Converter.ToCartesian(r.Context(), input.GeodeticFields{
		Latitude:  string(req.Latitude),
		Longitude: string(req.Longitude),
		Height:    string(req.Height),
	}, unit)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	magnitude := cart.Magnitude()
	h.writeJSON(w, r, http.StatusOK, CartesianResponse{
		Result:    cart,
		Magnitude: magnitude,
		Formatted: map[string]string{
			"x":         format.Number(cart.X, precision),
			"y":         format.Number(cart.Y, precision),
			"z":         format.Number(cart.Z, precision),
			"magnitude": format.Number(magnitude, precision),
		},
		Precision: int(precision),
	})
}

// ToGeodetic converts geocentric coordinates to a geodetic position.
func (h *Handler) ToGeodetic(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodPost) {
		return
	}

	var req ToGeodeticRequest
	if !h.decode(w, r, &req) {
		return
	}

	precision, err := h.precision(req.Precision)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	geo, err := h.Converter.ToGeodetic(r.Context(), input.CartesianFields{
		X: string(req.X),
		Y: string(req.Y),
		Z: string(req.Z),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, GeodeticResponse{
		Result: geo,
		Formatted: map[string]string{
			"latDeg": format.Number(geo.Latitude, precision),
			"lonDeg": format.Number(geo.Longitude, precision),
			"height": format.Number(geo.Height, precision),
		},
		Precision: int(precision),
	})
}

// Presets lists the quick-input positions together with their geocentric coordinates.
func (h *Handler) Presets(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodGet) {
		return
	}

	list := presets.All()
	res := ListPresetsResponse{Presets: make([]PresetResponse, 0, len(list))}
	for _, p := range list {
		res.Presets = append(res.Presets, PresetResponse{
			Name:      p.Name,
			Label:     p.Label,
			Position:  p.Position,
			Cartesian: geodesy.WGS84.ToCartesian(p.Position),
		})
	}

	h.writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) precision(n int) (format.Precision, error) {
	if n == 0 && h.Defaults.Precision != 0 {
		return h.Defaults.Precision, nil
	}
	return format.ParsePrecision(n)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		h.Log.DebugContext(r.Context(), "Malformed request body", "path", r.URL.Path, "error", err)
		h.writeError(w, r, http.StatusBadRequest, locale.KeyMalformedBody)
		return false
	}
	return true
}

// fail maps validation errors to 422 with a message in the client's language.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, input.ErrNotNumeric),
		errors.Is(err, input.ErrLatitudeRange),
		errors.Is(err, input.ErrLongitudeRange),
		errors.Is(err, input.ErrUnknownAngleUnit),
		errors.Is(err, format.ErrInvalidPrecision):
		status = http.StatusUnprocessableEntity
	default:
		h.Log.ErrorContext(r.Context(), "Conversion failed", "path", r.URL.Path, "error", err)
	}

	h.writeJSON(w, r, status, map[string]string{"error": locale.Message(h.language(r), err)})
}
