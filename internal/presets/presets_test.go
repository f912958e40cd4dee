package presets_test

import (
	"testing"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/UnknownOlympus/meridian/internal/presets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	list := presets.All()

	require.Len(t, list, 2)
	assert.Equal(t, "origin", list[0].Name)
	assert.Equal(t, "neuburg", list[1].Name)

	list[0].Name = "changed"
	assert.Equal(t, "origin", presets.All()[0].Name)
}

func TestLookup(t *testing.T) {
	t.Run("known name", func(t *testing.T) {
		p, err := presets.Lookup(" Neuburg")

		require.NoError(t, err)
		assert.Equal(t, models.Geodetic{Latitude: 48.7823, Longitude: 11.9601, Height: 400}, p.Position)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := presets.Lookup("atlantis")

		require.ErrorIs(t, err, presets.ErrUnknownPreset)
		assert.ErrorContains(t, err, "atlantis")
	})
}
