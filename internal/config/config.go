package config

import (
	"strings"

	"github.com/UnknownOlympus/meridian/internal/format"
	"github.com/UnknownOlympus/meridian/internal/input"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the conversion service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the HTTP API and monitoring endpoints.
// - Precision: Default number of decimal places in formatted results (3, 6 or 9).
// - AngleUnit: Default unit for geodetic angle input (degrees or radians).
// - RateLimit: Sustained requests per second accepted by the API.
// - RateBurst: Maximum burst of requests accepted by the API.
// - Language: Fallback language for error messages when a client sends none.
type Config struct {
	Env       string  `mapstructure:"env"`
	Port      int     `mapstructure:"port"`
	Precision int     `mapstructure:"precision"`
	AngleUnit string  `mapstructure:"angle_unit"`
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
	Language  string  `mapstructure:"language"`
}

// MustLoad reads the configuration from the environment, an optional .env file
// and an optional config file named by MERIDIAN_CONFIG. Environment variables win.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MERIDIAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("port", 8080)
	v.SetDefault("precision", 6)
	v.SetDefault("angle_unit", "degrees")
	v.SetDefault("rate_limit", 50)
	v.SetDefault("rate_burst", 100)
	v.SetDefault("language", "en")

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read configuration file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic("failed to parse configuration")
	}

	if _, err := format.ParsePrecision(cfg.Precision); err != nil {
		panic("failed to parse precision from configuration, must be 3, 6 or 9")
	}
	if _, err := input.ParseAngleUnit(cfg.AngleUnit); err != nil {
		panic("failed to parse angle unit from configuration")
	}

	return &cfg
}
