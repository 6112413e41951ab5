package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for our application
type Config struct {
	Tracker  TrackerConfig  `mapstructure:"tracker"`
	N2YO     N2YOConfig     `mapstructure:"n2yo"`
	Geocoder GeocoderConfig `mapstructure:"geocoder"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type TrackerConfig struct {
	SatelliteID          int            `mapstructure:"satellite_id"`
	LookaheadDays        int            `mapstructure:"lookahead_days"`
	MinVisibilitySeconds int            `mapstructure:"min_visibility_seconds"`
	DefaultLocation      LocationConfig `mapstructure:"default_location"`
	FallbackTimezone     string         `mapstructure:"fallback_timezone"`
}

type LocationConfig struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
	Name      string  `mapstructure:"name"`
}

type N2YOConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type GeocoderConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables. A missing
// config file is not an error; defaults are used instead. The N2YO API key
// is always taken from the N2YO_API_KEY environment variable when set.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.BindEnv("n2yo.api_key", "N2YO_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		// First unmarshal into a map to handle type conversions
		var rawConfig map[string]interface{}
		if err := yaml.Unmarshal(data, &rawConfig); err != nil {
			return nil, fmt.Errorf("failed to unmarshal raw config: %w", err)
		}

		// Convert the map to YAML again
		data, err = yaml.Marshal(rawConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal raw config: %w", err)
		}

		// Expand environment variables
		expandedData := os.ExpandEnv(string(data))

		if err := v.ReadConfig(bytes.NewReader([]byte(expandedData))); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tracker.satellite_id", 25544) // ISS NORAD ID
	v.SetDefault("tracker.lookahead_days", 10)
	v.SetDefault("tracker.min_visibility_seconds", 300)
	v.SetDefault("tracker.default_location.latitude", 34.052235)
	v.SetDefault("tracker.default_location.longitude", -118.243683)
	v.SetDefault("tracker.default_location.name", "Los Angeles")
	v.SetDefault("tracker.fallback_timezone", "America/Los_Angeles")

	v.SetDefault("n2yo.base_url", "https://api.n2yo.com/rest/v1/satellite")
	v.SetDefault("n2yo.api_key", "")

	v.SetDefault("geocoder.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoder.user_agent", "iss-tracker")
	v.SetDefault("geocoder.timeout_seconds", 10)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}
