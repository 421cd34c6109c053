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
	"fmt"
	"time"
)

// DailyRecord represents one daily consumption reading
type DailyRecord struct {
	Date      time.Time `json:"date"`
	Usage     float64   `json:"usage"` // kWh (electricity) or m³ (gas)
	Year      int       `json:"year"`
	DayOfYear int       `json:"dayOfYear"` // 1-based, leap-aware (Jan 1 = 1)
}

// NewDailyRecord builds a record with year and day-of-year derived from the date
func NewDailyRecord(date time.Time, usage float64) DailyRecord {
	return DailyRecord{
		Date:      date,
		Usage:     usage,
		Year:      date.Year(),
		DayOfYear: date.YearDay(),
	}
}

// TemperatureRecord represents one day of temperature data.
// Nil fields mean the provider had no data for that date.
type TemperatureRecord struct {
	Date     time.Time `json:"date"`
	TempMin  *float64  `json:"tempMin,omitempty"`  // Celsius
	TempMax  *float64  `json:"tempMax,omitempty"`  // Celsius
	TempMean *float64  `json:"tempMean,omitempty"` // Celsius
}

// AlignedRecord is a consumption reading joined with same-day temperature data.
// Usage is always present; temperature fields are nil when the provider had no
// data for the date (left-join semantics).
type AlignedRecord struct {
	Date      time.Time `json:"date"`
	Usage     float64   `json:"usage"`
	Year      int       `json:"year"`
	DayOfYear int       `json:"dayOfYear"`
	TempMin   *float64  `json:"tempMin,omitempty"`
	TempMax   *float64  `json:"tempMax,omitempty"`
	TempMean  *float64  `json:"tempMean,omitempty"`
}

// DayKey identifies a cell in a year × day-of-year matrix
type DayKey struct {
	Year      int
	DayOfYear int
}

// Date returns the calendar date this key refers to
func (k DayKey) Date() time.Time {
	return time.Date(k.Year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, k.DayOfYear-1)
}

// MarshalText encodes the key as "YYYY-DDD" so matrices survive JSON round-trips
func (k DayKey) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%04d-%03d", k.Year, k.DayOfYear)), nil
}

// UnmarshalText decodes a "YYYY-DDD" key
func (k *DayKey) UnmarshalText(text []byte) error {
	if _, err := fmt.Sscanf(string(text), "%d-%d", &k.Year, &k.DayOfYear); err != nil {
		return fmt.Errorf("invalid day key %q: %w", string(text), err)
	}
	return nil
}

// DayYearMatrix is a sparse (year, day-of-year) → daily value mapping.
// Not every cell is populated: series start and end mid-year, meters have
// gaps, and day 366 only exists in leap years.
type DayYearMatrix map[DayKey]float64

// BaselineVector maps day-of-year → mean value across the years that have
// data for that day. A day with no observed years has no entry.
type BaselineVector map[int]float64

// DeviationMatrix has the same domain as the raw matrix; each cell is the
// observed value minus the day-of-year baseline.
type DeviationMatrix map[DayKey]float64

// Direction selects which side of a threshold counts as anomalous
type Direction string

const (
	DirectionAbove Direction = "above"
	DirectionBelow Direction = "below"
)

// ThresholdRule is a one-sided strict threshold test on a deviation value
type ThresholdRule struct {
	Threshold float64   `json:"threshold"`
	Direction Direction `json:"direction"`
}

// Satisfied reports whether a deviation passes the rule (strict comparison)
func (r ThresholdRule) Satisfied(value float64) bool {
	if r.Direction == DirectionBelow {
		return value < r.Threshold
	}
	return value > r.Threshold
}

// AnomalyRow flags one day where both deviation series pass their thresholds
type AnomalyRow struct {
	Year                 int     `json:"year"`
	DayOfYear            int     `json:"dayOfYear"`
	UsageDeviation       float64 `json:"usageDeviation"`
	TemperatureDeviation float64 `json:"temperatureDeviation"`
}

// Date returns the calendar date of the flagged day
func (a AnomalyRow) Date() time.Time {
	return DayKey{Year: a.Year, DayOfYear: a.DayOfYear}.Date()
}

// PartialDataWarning records a tolerated data-sparsity condition. It is
// diagnostic output, not an error: the analysis continues with absent cells.
type PartialDataWarning struct {
	Series      string `json:"series"`
	MissingDays int    `json:"missingDays"`
	Message     string `json:"message"`
}

// SourceData holds all fully materialized inputs for one run
type SourceData struct {
	Electricity []DailyRecord       `json:"electricity"`
	Gas         []DailyRecord       `json:"gas"`
	Temperature []TemperatureRecord `json:"temperature"`
	FetchedAt   time.Time           `json:"fetchedAt"`
}

// Insight represents a human-readable observation about the analysis
type Insight struct {
	Category    string `json:"category"` // correlation, anomaly, data
	Priority    string `json:"priority"` // high, medium, low
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AnalysisResult holds the complete analysis output
type AnalysisResult struct {
	GeneratedAt time.Time `json:"generatedAt"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`

	ElectricityDays int `json:"electricityDays"`
	GasDays         int `json:"gasDays"`
	TemperatureDays int `json:"temperatureDays"`

	// Pearson correlation between daily usage and mean temperature.
	// Nil when fewer than two aligned days carry temperature data.
	CorrelationElectricity *float64 `json:"correlationElectricity,omitempty"`
	CorrelationGas         *float64 `json:"correlationGas,omitempty"`

	ElectricityBaseline BaselineVector `json:"electricityBaseline"`
	GasBaseline         BaselineVector `json:"gasBaseline"`
	TemperatureBaseline BaselineVector `json:"temperatureBaseline"`

	ElectricityDeviation DeviationMatrix `json:"electricityDeviation"`
	GasDeviation         DeviationMatrix `json:"gasDeviation"`
	TemperatureDeviation DeviationMatrix `json:"temperatureDeviation"`

	ElectricityAnomalies []AnomalyRow `json:"electricityAnomalies"`
	GasAnomalies         []AnomalyRow `json:"gasAnomalies"`

	Warnings []PartialDataWarning `json:"warnings,omitempty"`
	Insights []Insight            `json:"insights,omitempty"`

	// Charts (base64 encoded PNG images)
	ElectricityUsageChart string `json:"electricityUsageChart,omitempty"`
	GasUsageChart         string `json:"gasUsageChart,omitempty"`
	GasDeviationChart     string `json:"gasDeviationChart,omitempty"`
	TemperatureChart      string `json:"temperatureChart,omitempty"`
}

// OpenMeteoResponse represents the response from the Open-Meteo ERA5 archive API.
// Temperature entries are pointers because the archive returns null for days
// it has not yet assimilated.
type OpenMeteoResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Daily     struct {
		Time     []string   `json:"time"`
		TempMin  []*float64 `json:"temperature_2m_min"`
		TempMax  []*float64 `json:"temperature_2m_max"`
		TempMean []*float64 `json:"temperature_2m_mean"`
	} `json:"daily"`
}
