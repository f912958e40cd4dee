package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runConvert(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	t.Run("geodetic arguments", func(t *testing.T) {
		code, out, _ := runConvert(t, "", "--precision", "3", "0", "0", "0")

		require.Equal(t, 0, code)
		assert.Equal(t, "x: 6378137.000 m\ny: 0.000 m\nz: 0.000 m\n|r| = 6378137.000 m\n", out)
	})

	t.Run("cartesian arguments as json", func(t *testing.T) {
		code, out, _ := runConvert(t, "", "-m", "cart2geo", "-o", "json", "0", "0", "6356752.314245")

		require.Equal(t, 0, code)
		var g models.Geodetic
		require.NoError(t, json.Unmarshal([]byte(out), &g))
		assert.InDelta(t, 90.0, g.Latitude, 0)
		assert.InDelta(t, 0, g.Height, 1e-6)
	})

	t.Run("preset", func(t *testing.T) {
		code, out, _ := runConvert(t, "", "--preset", "neuburg", "-p", "3")

		require.Equal(t, 0, code)
		assert.Contains(t, out, "x: 4119529.287 m")
		assert.Contains(t, out, "z: 4774941.835 m")
	})

	t.Run("csv rows from stdin", func(t *testing.T) {
		code, out, _ := runConvert(t, "# lat,lon,h\n0, 0, 0\n90,0,0\n", "-o", "json")

		require.Equal(t, 0, code)
		dec := json.NewDecoder(strings.NewReader(out))
		var first, second models.Cartesian
		require.NoError(t, dec.Decode(&first))
		require.NoError(t, dec.Decode(&second))
		assert.InDelta(t, 6378137.0, first.X, 1e-9)
		assert.InDelta(t, 6356752.314245, second.Z, 1e-6)
	})

	t.Run("negative values after separator", func(t *testing.T) {
		code, out, _ := runConvert(t, "", "-p", "3", "--", "-90", "0", "0")

		require.Equal(t, 0, code)
		assert.Contains(t, out, "z: -6356752.314 m")
	})

	t.Run("radians", func(t *testing.T) {
		code, out, _ := runConvert(t, "", "--radians", "-p", "3", "0", "1.5707963267948966", "0")

		require.Equal(t, 0, code)
		assert.Contains(t, out, "y: 6378137.000 m")
	})

	t.Run("validation error in german", func(t *testing.T) {
		code, out, errOut := runConvert(t, "", "--lang", "de", "91", "0", "0")

		assert.Equal(t, 1, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "Latitude muss zwischen -90° und 90° liegen")
	})

	t.Run("non numeric row", func(t *testing.T) {
		code, _, errOut := runConvert(t, "1,2,x\n")

		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "Row 1: Please enter valid numeric values")
	})

	t.Run("row with wrong field count", func(t *testing.T) {
		code, out, errOut := runConvert(t, "0,0,0\n1,2\n")

		assert.Equal(t, 1, code)
		assert.Contains(t, out, "x: 6378137.000000 m")
		assert.Contains(t, errOut, "Row 2: Each row must contain three comma-separated values")
		assert.NotContains(t, errOut, "numeric")
	})

	t.Run("failing row is named in german", func(t *testing.T) {
		code, _, errOut := runConvert(t, "# header\n0,0,0\n0,0,0\n95,0,0\n", "--lang", "de")

		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "Zeile 3: Latitude muss zwischen -90° und 90° liegen")
	})

	t.Run("wrong number of arguments", func(t *testing.T) {
		code, _, errOut := runConvert(t, "", "1", "2")

		assert.Equal(t, 2, code)
		assert.Contains(t, errOut, "expected 3 values, got 2")
	})

	t.Run("unknown mode", func(t *testing.T) {
		code, _, errOut := runConvert(t, "", "-m", "sideways", "1", "2", "3")

		assert.Equal(t, 2, code)
		assert.Contains(t, errOut, `unknown mode "sideways"`)
	})

	t.Run("unknown preset", func(t *testing.T) {
		code, _, errOut := runConvert(t, "", "--preset", "atlantis")

		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "Unknown preset")
	})

	t.Run("invalid precision", func(t *testing.T) {
		code, _, errOut := runConvert(t, "", "-p", "5", "0", "0", "0")

		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "Precision must be 3, 6 or 9")
	})

	t.Run("help", func(t *testing.T) {
		code, _, errOut := runConvert(t, "", "--help")

		assert.Equal(t, 0, code)
		assert.Contains(t, errOut, "--mode")
	})
}
