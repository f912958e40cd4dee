package api

import (
	"encoding/json"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// Value is a numeric request field. It accepts a JSON number or a string so that
// form text can be forwarded untouched; parsing happens in the input package.
type Value string

func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	}
	*v = Value(b)
	return nil
}

type ToCartesianRequest struct {
	Latitude  Value  `json:"lat"`
	Longitude Value  `json:"lon"`
	Height    Value  `json:"height"`
	Unit      string `json:"unit,omitempty"`
	Precision int    `json:"precision,omitempty"`
}

type ToGeodeticRequest struct {
	X         Value `json:"x"`
	Y         Value `json:"y"`
	Z         Value `json:"z"`
	Precision int   `json:"precision,omitempty"`
}

type CartesianResponse struct {
	Result    models.Cartesian  `json:"result"`
	Magnitude float64           `json:"magnitude"`
	Formatted map[string]string `json:"formatted"`
	Precision int               `json:"precision"`
}

type GeodeticResponse struct {
	Result    models.Geodetic   `json:"result"`
	Formatted map[string]string `json:"formatted"`
	Precision int               `json:"precision"`
}

type PresetResponse struct {
	Name      string           `json:"name"`
	Label     string           `json:"label"`
	Position  models.Geodetic  `json:"position"`
	Cartesian models.Cartesian `json:"cartesian"`
}

type ListPresetsResponse struct {
	Presets []PresetResponse `json:"presets"`
}
