package config_test

import (
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/meridian/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadDefaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 6, cfg.Precision)
	assert.Equal(t, "degrees", cfg.AngleUnit)
	assert.InDelta(t, 50.0, cfg.RateLimit, 0)
	assert.Equal(t, 100, cfg.RateBurst)
	assert.Equal(t, "en", cfg.Language)
}

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("MERIDIAN_ENV", "local")
	t.Setenv("MERIDIAN_PORT", "9090")
	t.Setenv("MERIDIAN_PRECISION", "9")
	t.Setenv("MERIDIAN_ANGLE_UNIT", "radians")
	t.Setenv("MERIDIAN_RATE_LIMIT", "2.5")
	t.Setenv("MERIDIAN_RATE_BURST", "5")
	t.Setenv("MERIDIAN_LANGUAGE", "de")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 9, cfg.Precision)
	assert.Equal(t, "radians", cfg.AngleUnit)
	assert.InDelta(t, 2.5, cfg.RateLimit, 0)
	assert.Equal(t, 5, cfg.RateBurst)
	assert.Equal(t, "de", cfg.Language)
}

func Test_MustLoadFromFile(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "meridian.yaml")
	filet.File(t, path, "env: development\nport: 8181\nprecision: 3\nlanguage: de\n")

	t.Setenv("MERIDIAN_CONFIG", path)
	t.Setenv("MERIDIAN_PORT", "8282")

	cfg := config.MustLoad()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8282, cfg.Port, "environment overrides the file")
	assert.Equal(t, 3, cfg.Precision)
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, "degrees", cfg.AngleUnit)
}

func TestMustLoad_MissingFileError(t *testing.T) {
	t.Setenv("MERIDIAN_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	assert.PanicsWithValue(t, "failed to read configuration file", func() {
		config.MustLoad()
	})
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("MERIDIAN_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_PrecisionError(t *testing.T) {
	t.Setenv("MERIDIAN_PRECISION", "4")

	assert.PanicsWithValue(t, "failed to parse precision from configuration, must be 3, 6 or 9", func() {
		config.MustLoad()
	})
}

func TestMustLoad_AngleUnitError(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "meridian.yaml")
	filet.File(t, path, "angle_unit: gon\n")

	t.Setenv("MERIDIAN_CONFIG", path)

	assert.PanicsWithValue(t, "failed to parse angle unit from configuration", func() {
		config.MustLoad()
	})
}
