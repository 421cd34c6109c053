// Copyright 2026 Someniak
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WeatherClient fetches historical daily temperatures from the Open-Meteo
// ERA5 reanalysis archive. Every failure mode degrades to an empty series:
// the analysis runs without temperature context rather than aborting.
type WeatherClient struct {
	httpClient *http.Client
	logger     *Logger
	baseURL    string
	latitude   float64
	longitude  float64
}

// NewWeatherClient creates a new weather client for the given coordinates
func NewWeatherClient(latitude, longitude float64, logger *Logger) *WeatherClient {
	return &WeatherClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
		baseURL:    OpenMeteoArchiveEndpoint,
		latitude:   latitude,
		longitude:  longitude,
	}
}

// ClampFetchRange restricts a requested date range to what the ERA5 archive
// can answer: nothing before 1979-01-01, nothing after today.
func ClampFetchRange(start, end, now time.Time) (time.Time, time.Time) {
	earliest, _ := time.Parse(isoDateLayout, era5EarliestDate)
	if start.Before(earliest) {
		start = earliest
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if end.After(today) {
		end = today
	}
	return start, end
}

// FetchDailyTemperatures fetches min/max/mean temperatures for a date range.
// Returns an empty series on any failure (non-fatal).
func (w *WeatherClient) FetchDailyTemperatures(start, end time.Time) ([]TemperatureRecord, error) {
	url := fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&start_date=%s&end_date=%s&daily=temperature_2m_min,temperature_2m_max,temperature_2m_mean&timezone=auto",
		w.baseURL,
		w.latitude,
		w.longitude,
		start.Format(isoDateLayout),
		end.Format(isoDateLayout),
	)

	w.logger.Info("Fetching temperature data",
		"start", start.Format(isoDateLayout),
		"end", end.Format(isoDateLayout),
	)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}

	req.Header.Set("User-Agent", GetUserAgent())

	resp, err := w.httpClient.Do(req)
	if err != nil {
		w.logger.Warn("Failed to fetch temperature data", "error", err)
		return nil, nil // Non-fatal, continue without temperature
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		w.logger.Warn("Weather API returned non-200 status", "status", resp.StatusCode)
		return nil, nil // Non-fatal
	}

	var weatherResp OpenMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&weatherResp); err != nil {
		w.logger.Warn("Failed to decode weather response", "error", err)
		return nil, nil // Non-fatal
	}

	daily := weatherResp.Daily
	if len(daily.Time) != len(daily.TempMin) ||
		len(daily.Time) != len(daily.TempMax) ||
		len(daily.Time) != len(daily.TempMean) {
		w.logger.Warn("Mismatched daily arrays in weather response",
			"dates", len(daily.Time),
			"min", len(daily.TempMin),
			"max", len(daily.TempMax),
			"mean", len(daily.TempMean),
		)
		return nil, nil // Non-fatal
	}

	records := make([]TemperatureRecord, 0, len(daily.Time))
	for i, dateStr := range daily.Time {
		date, err := time.Parse(isoDateLayout, dateStr)
		if err != nil {
			w.logger.Warn("Skipping unparseable date in weather response", "date", dateStr)
			continue
		}
		records = append(records, TemperatureRecord{
			Date:     date,
			TempMin:  daily.TempMin[i],
			TempMax:  daily.TempMax[i],
			TempMean: daily.TempMean[i],
		})
	}

	w.logger.Info("Fetched temperature data", "days", len(records))
	return records, nil
}
