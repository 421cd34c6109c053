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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReportResult() *AnalysisResult {
	r := -0.82
	return &AnalysisResult{
		GeneratedAt:     time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC),
		PeriodStart:     time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
		PeriodEnd:       time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC),
		ElectricityDays: 4,
		GasDays:         4,
		TemperatureDays: 4,
		CorrelationGas:  &r,
		GasBaseline:     BaselineVector{15: 13.0, 16: 12.0},
		GasAnomalies: []AnomalyRow{
			{Year: 2024, DayOfYear: 15, UsageDeviation: 3.0, TemperatureDeviation: 1.5},
		},
		Warnings: []PartialDataWarning{
			{Series: "gas", MissingDays: 1, Message: "1 consumption days have no matching temperature data"},
		},
		Insights: []Insight{
			{Category: "anomaly", Priority: "high", Title: "Unexplained Gas Usage Detected", Description: "1 day(s) flagged."},
		},
	}
}

func renderMarkdownReport(t *testing.T, result *AnalysisResult) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.md")
	reporter := NewReporter(NewLogger(false))
	require.NoError(t, reporter.GenerateReport(result, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestGenerateReportContainsAllSections(t *testing.T) {
	report := renderMarkdownReport(t, testReportResult())

	assert.Contains(t, report, "# Fluvius Consumption vs. Temperature Report")
	assert.Contains(t, report, "2023-01-15 to 2024-01-16")
	assert.Contains(t, report, "Input Coverage")
	assert.Contains(t, report, "Usage vs. Temperature Correlation")
	assert.Contains(t, report, "-0.82")
	assert.Contains(t, report, "Day-of-Year Standards")
	assert.Contains(t, report, "Unexplained Usage Days")
	assert.Contains(t, report, "| 2024-01-15 | 15 | +3.00 | +1.5°C |")
	assert.Contains(t, report, "Data Warnings")
	assert.Contains(t, report, "Unexplained Gas Usage Detected")
}

func TestGenerateReportHandlesCleanResult(t *testing.T) {
	result := testReportResult()
	result.GasAnomalies = nil
	result.Warnings = nil
	result.Insights = nil

	report := renderMarkdownReport(t, result)

	assert.Contains(t, report, "*No flagged days.* ✅")
	assert.NotContains(t, report, "Data Warnings")
	assert.NotContains(t, report, "Insights")
}

func TestGenerateReportWithoutCorrelations(t *testing.T) {
	result := testReportResult()
	result.CorrelationGas = nil
	result.CorrelationElectricity = nil

	report := renderMarkdownReport(t, result)

	assert.Contains(t, report, "Not enough overlapping temperature data")
}

func TestGenerateHTMLReportEmbedsContent(t *testing.T) {
	result := testReportResult()
	result.GasDeviationChart = "aGVsbG8="

	path := filepath.Join(t.TempDir(), "report.html")
	reporter := NewHTMLReporter(NewLogger(false))
	require.NoError(t, reporter.GenerateHTMLReport(result, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "data:image/png;base64,aGVsbG8=")
	assert.Contains(t, html, "Unexplained Gas Usage Detected")
	assert.Contains(t, html, "2024-01-15")
}
