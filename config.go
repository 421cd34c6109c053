// Copyright 2026 Someniak
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	// Fluvius daily-totals CSV exports
	ElectricityCSV string `yaml:"electricity_csv"`
	GasCSV         string `yaml:"gas_csv"`

	// Location for the temperature archive query
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`

	// Anomaly thresholds: a day is flagged when the usage deviation and the
	// temperature deviation both pass their directional tests
	UsageDeviationThreshold       float64 `yaml:"usage_deviation_threshold"`
	UsageDeviationDirection       string  `yaml:"usage_deviation_direction"`
	TemperatureDeviationThreshold float64 `yaml:"temperature_deviation_threshold"`
	TemperatureDeviationDirection string  `yaml:"temperature_deviation_direction"`

	// Weather cache
	WeatherCacheTTLHours int `yaml:"weather_cache_ttl_hours"`

	// Storage
	StoragePath string `yaml:"storage_path"`

	// Debugging
	Debug bool `yaml:"debug"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	// Set defaults
	config := &Config{
		Latitude:                      defaultLatitude,
		Longitude:                     defaultLongitude,
		UsageDeviationThreshold:       defaultUsageDeviationThreshold,
		UsageDeviationDirection:       string(DirectionAbove),
		TemperatureDeviationThreshold: defaultTemperatureDeviationThreshold,
		TemperatureDeviationDirection: string(DirectionAbove),
		WeatherCacheTTLHours:          defaultWeatherCacheTTLHours,
		StoragePath:                   getDefaultStoragePath(),
		Debug:                         false,
	}

	// If no path provided, return defaults with env var overrides
	if path == "" {
		config.applyEnvironmentVariables()
		return config, nil
	}

	// Read the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply environment variable overrides
	config.applyEnvironmentVariables()

	return config, nil
}

// getDefaultStoragePath returns the default storage path
func getDefaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fluvius-temp-correlation"
	}
	return filepath.Join(home, ".config", "fluvius-temp-correlation")
}

// applyEnvironmentVariables overrides config with environment variables
func (c *Config) applyEnvironmentVariables() {
	if val := os.Getenv("FLUVIUS_ELECTRICITY_CSV"); val != "" {
		c.ElectricityCSV = val
	}
	if val := os.Getenv("FLUVIUS_GAS_CSV"); val != "" {
		c.GasCSV = val
	}
	if val := os.Getenv("FLUVIUS_LATITUDE"); val != "" {
		if lat, err := strconv.ParseFloat(val, 64); err == nil {
			c.Latitude = lat
		}
	}
	if val := os.Getenv("FLUVIUS_LONGITUDE"); val != "" {
		if lon, err := strconv.ParseFloat(val, 64); err == nil {
			c.Longitude = lon
		}
	}
	if val := os.Getenv("FLUVIUS_STORAGE_PATH"); val != "" {
		c.StoragePath = val
	}
	if val := os.Getenv("FLUVIUS_DEBUG"); val == "true" || val == "1" {
		c.Debug = true
	}
}

// UsageRule returns the configured usage-deviation threshold rule
func (c *Config) UsageRule() ThresholdRule {
	return ThresholdRule{
		Threshold: c.UsageDeviationThreshold,
		Direction: Direction(c.UsageDeviationDirection),
	}
}

// TemperatureRule returns the configured temperature-deviation threshold rule
func (c *Config) TemperatureRule() ThresholdRule {
	return ThresholdRule{
		Threshold: c.TemperatureDeviationThreshold,
		Direction: Direction(c.TemperatureDeviationDirection),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	// Required fields
	if c.ElectricityCSV == "" {
		errors = append(errors, "electricity_csv is required")
	}
	if c.GasCSV == "" {
		errors = append(errors, "gas_csv is required")
	}

	// Validate coordinates
	if c.Latitude < -90 || c.Latitude > 90 {
		errors = append(errors, "latitude must be between -90 and 90")
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		errors = append(errors, "longitude must be between -180 and 180")
	}

	// Validate threshold directions
	for _, dir := range []string{c.UsageDeviationDirection, c.TemperatureDeviationDirection} {
		if dir != string(DirectionAbove) && dir != string(DirectionBelow) {
			errors = append(errors, fmt.Sprintf("deviation direction must be %q or %q, got %q", DirectionAbove, DirectionBelow, dir))
		}
	}

	// Validate cache TTL
	if c.WeatherCacheTTLHours < 0 {
		errors = append(errors, "weather_cache_ttl_hours must not be negative")
	}

	// Set default storage path if empty
	if c.StoragePath == "" {
		c.StoragePath = getDefaultStoragePath()
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
