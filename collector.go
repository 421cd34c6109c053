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
	"time"
)

// Collector materializes all run inputs: both Fluvius CSV exports and the
// matching temperature series, with the archive fetch served from cache when
// a recent run already covers the same range.
type Collector struct {
	loader  *SeriesLoader
	weather *WeatherClient
	config  *Config
	storage *Storage
	logger  *Logger
}

// NewCollector creates a new input collector
func NewCollector(loader *SeriesLoader, weather *WeatherClient, config *Config, storage *Storage, logger *Logger) *Collector {
	return &Collector{
		loader:  loader,
		weather: weather,
		config:  config,
		storage: storage,
		logger:  logger,
	}
}

// CollectAll loads the consumption files and fetches the temperature series.
// CSV problems are fatal; a failed temperature fetch leaves an empty series
// for the analyzer to report as a PartialDataWarning.
func (c *Collector) CollectAll() (*SourceData, error) {
	c.logger.Info("Starting data collection")

	data := &SourceData{
		FetchedAt: time.Now(),
	}

	electricity, err := c.loader.Load("electricity", c.config.ElectricityCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to load electricity series: %w", err)
	}
	data.Electricity = electricity

	gas, err := c.loader.Load("gas", c.config.GasCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to load gas series: %w", err)
	}
	data.Gas = gas

	// Query range spans both consumption series, clamped to what the ERA5
	// archive covers
	start, end := consumptionDateRange(electricity, gas)
	start, end = ClampFetchRange(start, end, time.Now())

	c.logger.Info("Temperature query range",
		"start", start.Format(isoDateLayout),
		"end", end.Format(isoDateLayout),
	)

	data.Temperature = c.fetchTemperaturesCached(start, end)

	c.logger.Info("Data collection completed",
		"electricity_days", len(data.Electricity),
		"gas_days", len(data.Gas),
		"temperature_days", len(data.Temperature),
	)

	return data, nil
}

// fetchTemperaturesCached consults the weather cache before hitting the
// archive. Cache failures are logged and ignored; an empty series is a valid
// (degraded) outcome either way.
func (c *Collector) fetchTemperaturesCached(start, end time.Time) []TemperatureRecord {
	cacheKey := fmt.Sprintf("weather_%.4f_%.4f_%s_%s",
		c.config.Latitude,
		c.config.Longitude,
		start.Format(isoDateLayout),
		end.Format(isoDateLayout),
	)

	var cached []TemperatureRecord
	hit, err := c.storage.LoadCache(cacheKey, &cached)
	if err != nil {
		c.logger.Warn("Failed to load temperature data from cache", "error", err)
	}
	if hit && len(cached) > 0 {
		c.logger.Info("Loaded temperature data from cache", "days", len(cached))
		return cached
	}

	records, err := c.weather.FetchDailyTemperatures(start, end)
	if err != nil {
		c.logger.Warn("Temperature fetch failed", "error", err)
		return nil
	}
	if len(records) == 0 {
		return nil
	}

	ttl := time.Duration(c.config.WeatherCacheTTLHours) * time.Hour
	if err := c.storage.SaveCache(cacheKey, records, ttl); err != nil {
		c.logger.Warn("Failed to cache temperature data", "error", err)
	}

	return records
}
