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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FLUVIUS_ELECTRICITY_CSV",
		"FLUVIUS_GAS_CSV",
		"FLUVIUS_LATITUDE",
		"FLUVIUS_LONGITUDE",
		"FLUVIUS_STORAGE_PATH",
		"FLUVIUS_DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	config, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, defaultLatitude, config.Latitude)
	assert.Equal(t, defaultLongitude, config.Longitude)
	assert.Equal(t, defaultUsageDeviationThreshold, config.UsageDeviationThreshold)
	assert.Equal(t, string(DirectionAbove), config.UsageDeviationDirection)
	assert.Equal(t, defaultTemperatureDeviationThreshold, config.TemperatureDeviationThreshold)
	assert.Equal(t, string(DirectionAbove), config.TemperatureDeviationDirection)
	assert.Equal(t, defaultWeatherCacheTTLHours, config.WeatherCacheTTLHours)
	assert.NotEmpty(t, config.StoragePath)
	assert.False(t, config.Debug)
}

func TestLoadConfigFromYAML(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `electricity_csv: /data/electricity.csv
gas_csv: /data/gas.csv
latitude: 51.05
longitude: 3.72
usage_deviation_threshold: 1.5
temperature_deviation_direction: below
weather_cache_ttl_hours: 48
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "/data/electricity.csv", config.ElectricityCSV)
	assert.Equal(t, "/data/gas.csv", config.GasCSV)
	assert.Equal(t, 51.05, config.Latitude)
	assert.Equal(t, 3.72, config.Longitude)
	assert.Equal(t, 1.5, config.UsageDeviationThreshold)
	assert.Equal(t, string(DirectionBelow), config.TemperatureDeviationDirection)
	assert.Equal(t, 48, config.WeatherCacheTTLHours)

	// Omitted keys keep their defaults
	assert.Equal(t, string(DirectionAbove), config.UsageDeviationDirection)
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("FLUVIUS_ELECTRICITY_CSV", "/env/electricity.csv")
	t.Setenv("FLUVIUS_LATITUDE", "48.85")
	t.Setenv("FLUVIUS_DEBUG", "true")

	config, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "/env/electricity.csv", config.ElectricityCSV)
	assert.Equal(t, 48.85, config.Latitude)
	assert.True(t, config.Debug)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRequiresBothSeries(t *testing.T) {
	clearConfigEnv(t)
	config, err := LoadConfig("")
	require.NoError(t, err)

	err = config.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "electricity_csv is required")
	assert.Contains(t, err.Error(), "gas_csv is required")
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"latitude out of range", func(c *Config) { c.Latitude = 91 }, "latitude"},
		{"longitude out of range", func(c *Config) { c.Longitude = -181 }, "longitude"},
		{"unknown direction", func(c *Config) { c.UsageDeviationDirection = "sideways" }, "deviation direction"},
		{"negative cache ttl", func(c *Config) { c.WeatherCacheTTLHours = -1 }, "weather_cache_ttl_hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testAnalyzerConfig()
			tt.mutate(config)

			err := config.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	config := testAnalyzerConfig()
	assert.NoError(t, config.Validate())
}

func TestThresholdRulesFromConfig(t *testing.T) {
	config := testAnalyzerConfig()
	config.UsageDeviationThreshold = 1.5
	config.TemperatureDeviationDirection = string(DirectionBelow)

	assert.Equal(t, ThresholdRule{Threshold: 1.5, Direction: DirectionAbove}, config.UsageRule())
	assert.Equal(t, ThresholdRule{Threshold: 0, Direction: DirectionBelow}, config.TemperatureRule())
}
