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
	"io"
	"os"

	"github.com/dustin/go-humanize"
)

// Reporter generates markdown reports from analysis results
type Reporter struct {
	logger *Logger
}

// NewReporter creates a new report generator
func NewReporter(logger *Logger) *Reporter {
	return &Reporter{
		logger: logger,
	}
}

// GenerateReport creates a markdown report from analysis results
func (r *Reporter) GenerateReport(result *AnalysisResult, outputPath string) error {
	r.logger.Info("Generating report")

	var writer io.Writer
	if outputPath == "" {
		writer = os.Stdout
	} else {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer file.Close()
		writer = file
	}

	r.writeHeader(writer, result)
	r.writeCoverage(writer, result)
	r.writeCorrelations(writer, result)
	r.writeBaselines(writer, result)
	r.writeAnomalies(writer, result)
	r.writeWarnings(writer, result)
	r.writeInsights(writer, result)
	r.writeFooter(writer)

	if outputPath != "" {
		r.logger.Info("Report saved", "path", outputPath)
	}

	return nil
}

// writeHeader writes the report header
func (r *Reporter) writeHeader(w io.Writer, result *AnalysisResult) {
	fmt.Fprintf(w, "# Fluvius Consumption vs. Temperature Report\n\n")
	fmt.Fprintf(w, "**Generated:** %s\n\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "**Observed Period:** %s to %s\n\n",
		result.PeriodStart.Format(isoDateLayout),
		result.PeriodEnd.Format(isoDateLayout),
	)
	fmt.Fprintf(w, "**fluvius-temp-correlation version:** %s\n\n", GetVersion())
	fmt.Fprintf(w, "---\n\n")
}

// writeCoverage writes the input coverage section
func (r *Reporter) writeCoverage(w io.Writer, result *AnalysisResult) {
	fmt.Fprintf(w, "## 📊 Input Coverage\n\n")
	fmt.Fprintf(w, "| Series | Days |\n")
	fmt.Fprintf(w, "|--------|------|\n")
	fmt.Fprintf(w, "| ⚡ Electricity | %s |\n", humanize.Comma(int64(result.ElectricityDays)))
	fmt.Fprintf(w, "| 🔥 Gas | %s |\n", humanize.Comma(int64(result.GasDays)))
	fmt.Fprintf(w, "| 🌡️ Temperature | %s |\n", humanize.Comma(int64(result.TemperatureDays)))
	fmt.Fprintf(w, "\n")
}

// writeCorrelations writes the usage↔temperature correlation section
func (r *Reporter) writeCorrelations(w io.Writer, result *AnalysisResult) {
	fmt.Fprintf(w, "## 🔗 Usage vs. Temperature Correlation\n\n")

	if result.CorrelationElectricity == nil && result.CorrelationGas == nil {
		fmt.Fprintf(w, "*Not enough overlapping temperature data to compute correlations.*\n\n")
		return
	}

	fmt.Fprintf(w, "| Fuel | Pearson r |\n")
	fmt.Fprintf(w, "|------|-----------|\n")
	if result.CorrelationElectricity != nil {
		fmt.Fprintf(w, "| ⚡ Electricity | %.2f |\n", *result.CorrelationElectricity)
	}
	if result.CorrelationGas != nil {
		fmt.Fprintf(w, "| 🔥 Gas | %.2f |\n", *result.CorrelationGas)
	}
	fmt.Fprintf(w, "\nNegative values mean usage rises as temperature falls (heating-driven consumption).\n\n")
}

// writeBaselines summarizes the day-of-year standards
func (r *Reporter) writeBaselines(w io.Writer, result *AnalysisResult) {
	fmt.Fprintf(w, "## 📈 Day-of-Year Standards\n\n")
	fmt.Fprintf(w, "The standard is the mean daily value across every observed year, per day of year.\n\n")
	fmt.Fprintf(w, "| Series | Covered Days | Mean Level | Peak Day | Peak Value |\n")
	fmt.Fprintf(w, "|--------|--------------|------------|----------|------------|\n")
	r.writeBaselineRow(w, "⚡ Electricity (kWh/day)", result.ElectricityBaseline)
	r.writeBaselineRow(w, "🔥 Gas (m³/day)", result.GasBaseline)
	r.writeBaselineRow(w, "🌡️ Temperature (°C)", result.TemperatureBaseline)
	fmt.Fprintf(w, "\n")
}

// writeBaselineRow writes one summary row for a baseline vector
func (r *Reporter) writeBaselineRow(w io.Writer, label string, baseline BaselineVector) {
	if len(baseline) == 0 {
		fmt.Fprintf(w, "| %s | 0 | — | — | — |\n", label)
		return
	}

	sum := 0.0
	peakDay := 0
	peakValue := 0.0
	first := true
	for _, day := range baselineDays(baseline) {
		value := baseline[day]
		sum += value
		if first || value > peakValue {
			peakDay = day
			peakValue = value
			first = false
		}
	}

	fmt.Fprintf(w, "| %s | %d | %.2f | day %d | %.2f |\n",
		label, len(baseline), sum/float64(len(baseline)), peakDay, peakValue)
}

// writeAnomalies writes the flagged-day tables
func (r *Reporter) writeAnomalies(w io.Writer, result *AnalysisResult) {
	fmt.Fprintf(w, "## 🚨 Unexplained Usage Days\n\n")
	fmt.Fprintf(w, "Days where the usage deviation and the temperature deviation both passed their thresholds — high consumption the weather does not explain.\n\n")

	r.writeAnomalyTable(w, "🔥 Gas", result.GasAnomalies)
	r.writeAnomalyTable(w, "⚡ Electricity", result.ElectricityAnomalies)
}

// writeAnomalyTable writes one fuel's anomaly table
func (r *Reporter) writeAnomalyTable(w io.Writer, label string, rows []AnomalyRow) {
	fmt.Fprintf(w, "### %s\n\n", label)

	if len(rows) == 0 {
		fmt.Fprintf(w, "*No flagged days.* ✅\n\n")
		return
	}

	fmt.Fprintf(w, "| Date | Day of Year | Usage Deviation | Temperature Deviation |\n")
	fmt.Fprintf(w, "|------|-------------|-----------------|------------------------|\n")
	for _, row := range rows {
		fmt.Fprintf(w, "| %s | %d | %+.2f | %+.1f°C |\n",
			row.Date().Format(isoDateLayout),
			row.DayOfYear,
			row.UsageDeviation,
			row.TemperatureDeviation,
		)
	}
	fmt.Fprintf(w, "\n")
}

// writeWarnings writes the partial-data warnings section
func (r *Reporter) writeWarnings(w io.Writer, result *AnalysisResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintf(w, "## ⚠️ Data Warnings\n\n")
	for _, warning := range result.Warnings {
		if warning.MissingDays > 0 {
			fmt.Fprintf(w, "- **%s:** %s (%d days)\n", warning.Series, warning.Message, warning.MissingDays)
		} else {
			fmt.Fprintf(w, "- **%s:** %s\n", warning.Series, warning.Message)
		}
	}
	fmt.Fprintf(w, "\nMissing days stay absent in the analysis; they are never filled with zeros or interpolated values.\n\n")
}

// writeInsights writes the insights section
func (r *Reporter) writeInsights(w io.Writer, result *AnalysisResult) {
	if len(result.Insights) == 0 {
		return
	}

	fmt.Fprintf(w, "## 💡 Insights\n\n")
	for _, insight := range result.Insights {
		icon := "ℹ️"
		switch insight.Priority {
		case "high":
			icon = "🔴"
		case "medium":
			icon = "🟡"
		}
		fmt.Fprintf(w, "### %s %s\n\n", icon, insight.Title)
		fmt.Fprintf(w, "%s\n\n", insight.Description)
	}
}

// writeFooter writes the report footer
func (r *Reporter) writeFooter(w io.Writer) {
	fmt.Fprintf(w, "---\n\n")
	fmt.Fprintf(w, "*Generated by fluvius-temp-correlation. Deviations are relative to the per-day-of-year cross-year mean; compare them with tolerance, not exact equality.*\n")
}
