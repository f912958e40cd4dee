package presets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// ErrUnknownPreset is returned by Lookup for names that are not defined.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named geodetic position offered as a quick input.
type Preset struct {
	Name     string          `json:"name"`
	Label    string          `json:"label"`
	Position models.Geodetic `json:"position"`
}

var all = []Preset{
	{
		Name:     "origin",
		Label:    "(0°, 0°, 0m)",
		Position: models.Geodetic{Latitude: 0, Longitude: 0, Height: 0},
	},
	{
		Name:     "neuburg",
		Label:    "Neuburg",
		Position: models.Geodetic{Latitude: 48.7823, Longitude: 11.9601, Height: 400},
	},
}

// All returns the presets in display order. The returned slice is a copy.
func All() []Preset {
	out := make([]Preset, len(all))
	copy(out, all)
	return out
}

// Lookup finds a preset by name, ignoring case.
func Lookup(name string) (Preset, error) {
	for _, p := range all {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
