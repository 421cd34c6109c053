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
	"math"
	"time"

	"github.com/montanaflynn/stats"
)

// Analyzer runs the baseline/deviation pipeline over the collected inputs
type Analyzer struct {
	config *Config
	logger *Logger
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer(config *Config, logger *Logger) *Analyzer {
	return &Analyzer{
		config: config,
		logger: logger,
	}
}

// Analyze performs the complete analysis on collected data.
//
// Per fuel: align with temperature, aggregate to a (year, day-of-year)
// matrix, compute the cross-year baseline and the deviation from it. The
// temperature series goes through the same engine, and the anomaly pass
// joins each fuel's usage deviation with the temperature deviation.
func (a *Analyzer) Analyze(data *SourceData) (*AnalysisResult, error) {
	a.logger.Info("Starting analysis")

	result := &AnalysisResult{
		GeneratedAt:     time.Now(),
		ElectricityDays: len(data.Electricity),
		GasDays:         len(data.Gas),
		TemperatureDays: len(data.Temperature),
	}

	// Structural check: both consumption series must carry records. The
	// loader enforces this per file; collected data gets the same guarantee.
	if len(data.Electricity) == 0 {
		return nil, &EmptyInputError{Series: "electricity"}
	}
	if len(data.Gas) == 0 {
		return nil, &EmptyInputError{Series: "gas"}
	}

	result.PeriodStart, result.PeriodEnd = consumptionDateRange(data.Electricity, data.Gas)

	if len(data.Temperature) == 0 {
		warning := PartialDataWarning{
			Series:  "temperature",
			Message: "temperature provider returned no data; analysis continues without weather context",
		}
		result.Warnings = append(result.Warnings, warning)
		a.logger.LogPartialData(warning.Series, warning.MissingDays, warning.Message)
	}

	// Align each fuel with the temperature series
	a.logger.LogAnalysisStage("alignment")
	alignedElec, unmatchedElec, err := AlignSeries("electricity", data.Electricity, data.Temperature)
	if err != nil {
		return nil, err
	}
	alignedGas, unmatchedGas, err := AlignSeries("gas", data.Gas, data.Temperature)
	if err != nil {
		return nil, err
	}

	if len(data.Temperature) > 0 {
		for _, gap := range []struct {
			series  string
			missing int
		}{
			{"electricity", unmatchedElec},
			{"gas", unmatchedGas},
		} {
			if gap.missing == 0 {
				continue
			}
			warning := PartialDataWarning{
				Series:      gap.series,
				MissingDays: gap.missing,
				Message:     fmt.Sprintf("%d consumption days have no matching temperature data", gap.missing),
			}
			result.Warnings = append(result.Warnings, warning)
			a.logger.LogPartialData(warning.Series, warning.MissingDays, warning.Message)
		}
	}

	// Correlation between daily usage and mean temperature
	a.logger.LogAnalysisStage("correlation")
	result.CorrelationElectricity = correlateUsageWithTemperature(alignedElec)
	result.CorrelationGas = correlateUsageWithTemperature(alignedGas)

	// Build the (year × day-of-year) matrices
	a.logger.LogAnalysisStage("aggregation")
	elecMatrix := AggregateUsage(alignedElec)
	gasMatrix := AggregateUsage(alignedGas)
	// Temperature is keyed off the electricity series, the one with the
	// widest daily coverage in Fluvius exports
	tempMatrix := AggregateTemperature(alignedElec)

	// Baselines and deviations
	a.logger.LogAnalysisStage("baseline")
	result.ElectricityBaseline = ComputeBaseline(elecMatrix)
	result.GasBaseline = ComputeBaseline(gasMatrix)
	result.TemperatureBaseline = ComputeBaseline(tempMatrix)

	result.ElectricityDeviation = ComputeDeviation(elecMatrix, result.ElectricityBaseline)
	result.GasDeviation = ComputeDeviation(gasMatrix, result.GasBaseline)
	result.TemperatureDeviation = ComputeDeviation(tempMatrix, result.TemperatureBaseline)

	// Flag days where high usage deviation coincides with the configured
	// temperature-deviation regime
	a.logger.LogAnalysisStage("anomaly_detection")
	usageRule := a.config.UsageRule()
	tempRule := a.config.TemperatureRule()

	result.GasAnomalies = DetectAnomalies(result.GasDeviation, result.TemperatureDeviation, usageRule, tempRule)
	result.ElectricityAnomalies = DetectAnomalies(result.ElectricityDeviation, result.TemperatureDeviation, usageRule, tempRule)

	for _, row := range result.GasAnomalies {
		a.logger.LogAnomalyDetected(row.Date().Format(isoDateLayout), "gas", row.UsageDeviation, row.TemperatureDeviation)
	}
	for _, row := range result.ElectricityAnomalies {
		a.logger.LogAnomalyDetected(row.Date().Format(isoDateLayout), "electricity", row.UsageDeviation, row.TemperatureDeviation)
	}

	// Generate insights
	a.logger.LogAnalysisStage("insights_generation")
	result.Insights = a.generateInsights(result)

	a.logger.Info("Analysis completed",
		"gas_anomalies", len(result.GasAnomalies),
		"electricity_anomalies", len(result.ElectricityAnomalies),
		"warnings", len(result.Warnings),
	)

	return result, nil
}

// consumptionDateRange returns the earliest and latest date across both series
func consumptionDateRange(series ...[]DailyRecord) (time.Time, time.Time) {
	var start, end time.Time
	for _, records := range series {
		for _, r := range records {
			if start.IsZero() || r.Date.Before(start) {
				start = r.Date
			}
			if end.IsZero() || r.Date.After(end) {
				end = r.Date
			}
		}
	}
	return start, end
}

// correlateUsageWithTemperature computes the Pearson correlation between
// daily usage and mean temperature over the aligned days that carry both.
// Returns nil when fewer than two such days exist.
func correlateUsageWithTemperature(records []AlignedRecord) *float64 {
	var usage, temp []float64
	for _, r := range records {
		if r.TempMean == nil {
			continue
		}
		usage = append(usage, r.Usage)
		temp = append(temp, *r.TempMean)
	}

	if len(usage) < 2 {
		return nil
	}

	r, err := stats.Pearson(usage, temp)
	if err != nil || math.IsNaN(r) {
		return nil
	}
	return &r
}

// generateInsights turns the numeric results into readable observations
func (a *Analyzer) generateInsights(result *AnalysisResult) []Insight {
	var insights []Insight

	if insight := correlationInsight("gas", result.CorrelationGas); insight != nil {
		insights = append(insights, *insight)
	}
	if insight := correlationInsight("electricity", result.CorrelationElectricity); insight != nil {
		insights = append(insights, *insight)
	}

	if n := len(result.GasAnomalies); n > 0 {
		insights = append(insights, Insight{
			Category: "anomaly",
			Priority: "high",
			Title:    "Unexplained Gas Usage Detected",
			Description: fmt.Sprintf("%d day(s) show gas usage more than %.1f above the day-of-year standard while temperatures were %s standard. Heating demand does not explain these days: check for appliance changes, guests, or meter issues.",
				n, a.config.UsageDeviationThreshold, directionPhrase(a.config.TemperatureRule().Direction)),
		})
	}
	if n := len(result.ElectricityAnomalies); n > 0 {
		insights = append(insights, Insight{
			Category: "anomaly",
			Priority: "medium",
			Title:    "Unexplained Electricity Usage Detected",
			Description: fmt.Sprintf("%d day(s) show electricity usage more than %.1f above the day-of-year standard while temperatures were %s standard.",
				n, a.config.UsageDeviationThreshold, directionPhrase(a.config.TemperatureRule().Direction)),
		})
	}
	if len(result.GasAnomalies) == 0 && len(result.ElectricityAnomalies) == 0 {
		insights = append(insights, Insight{
			Category:    "anomaly",
			Priority:    "low",
			Title:       "No Unexplained Usage",
			Description: "Every elevated-usage day coincided with the expected temperature regime. Consumption tracks the weather.",
		})
	}

	if len(result.Warnings) > 0 {
		insights = append(insights, Insight{
			Category:    "data",
			Priority:    "low",
			Title:       "Incomplete Temperature Coverage",
			Description: fmt.Sprintf("%d data warning(s) were raised during the run; deviations on uncovered days are based on consumption alone. See the warnings section.", len(result.Warnings)),
		})
	}

	return insights
}

// correlationInsight interprets a usage↔temperature correlation coefficient
func correlationInsight(fuelType string, r *float64) *Insight {
	if r == nil {
		return nil
	}

	strength := "weak"
	priority := "low"
	switch {
	case math.Abs(*r) >= 0.7:
		strength = "strong"
		priority = "medium"
	case math.Abs(*r) >= 0.4:
		strength = "moderate"
	}

	relation := "rises"
	if *r < 0 {
		relation = "falls"
	}

	return &Insight{
		Category: "correlation",
		Priority: priority,
		Title:    fmt.Sprintf("Temperature Dependence (%s)", fuelType),
		Description: fmt.Sprintf("Daily %s usage shows a %s correlation with mean temperature (r = %.2f): usage %s as temperature rises.",
			fuelType, strength, *r, relation),
	}
}

// directionPhrase renders a threshold direction for insight text
func directionPhrase(d Direction) string {
	if d == DirectionBelow {
		return "below"
	}
	return "above"
}
