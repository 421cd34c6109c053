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
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"

	charts "github.com/vicanso/go-charts/v2"
)

// ChartGenerator renders the per-year pattern and deviation charts
type ChartGenerator struct {
	theme string
}

// NewChartGenerator creates a new chart generator
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{
		theme: "dark", // Match our HTML report dark theme
	}
}

// AttachCharts renders the report charts into the result. Chart failures are
// logged and skipped: a report without pictures beats no report.
func (cg *ChartGenerator) AttachCharts(result *AnalysisResult, logger *Logger) {
	renders := []struct {
		target *string
		render func() (string, error)
	}{
		{&result.ElectricityUsageChart, func() (string, error) {
			matrix := reconstructMatrix(result.ElectricityDeviation, result.ElectricityBaseline)
			return cg.GenerateYearlyPatternChart(matrix, result.ElectricityBaseline, "Daily Electricity Usage by Year vs. Standard (kWh)")
		}},
		{&result.GasUsageChart, func() (string, error) {
			matrix := reconstructMatrix(result.GasDeviation, result.GasBaseline)
			return cg.GenerateYearlyPatternChart(matrix, result.GasBaseline, "Daily Gas Usage by Year vs. Standard (m³)")
		}},
		{&result.GasDeviationChart, func() (string, error) {
			return cg.GenerateDeviationChart(result.GasDeviation, "Daily Gas Usage Deviation by Year (m³)")
		}},
		{&result.TemperatureChart, func() (string, error) {
			matrix := reconstructMatrix(result.TemperatureDeviation, result.TemperatureBaseline)
			return cg.GenerateYearlyPatternChart(matrix, result.TemperatureBaseline, "Daily Mean Temperature by Year (°C)")
		}},
	}

	for _, r := range renders {
		encoded, err := r.render()
		if err != nil {
			logger.Warn("Skipping chart", "error", err)
			continue
		}
		*r.target = encoded
	}
}

// reconstructMatrix rebuilds observed values as deviation + baseline. Only
// the charts use this; the analysis always works from the raw matrices.
func reconstructMatrix(deviation DeviationMatrix, baseline BaselineVector) DayYearMatrix {
	matrix := make(DayYearMatrix, len(deviation))
	for key, dev := range deviation {
		matrix[key] = dev + baseline[key.DayOfYear]
	}
	return matrix
}

// GenerateYearlyPatternChart renders one line per observed year over the
// day-of-year axis plus the cross-year "Standard" line. Unpopulated cells
// plot as zero; the analysis itself never does that, this is display only.
func (cg *ChartGenerator) GenerateYearlyPatternChart(matrix DayYearMatrix, baseline BaselineVector, title string) (string, error) {
	if len(matrix) == 0 {
		return "", fmt.Errorf("no data available for %q", title)
	}

	years := matrixYears(matrix)
	days := baselineDays(baseline)

	values := make([][]float64, 0, len(years)+1)
	legendLabels := make([]string, 0, len(years)+1)
	labels := make([]string, 0, len(days))

	for _, day := range days {
		labels = append(labels, strconv.Itoa(day))
	}

	for _, year := range years {
		series := make([]float64, 0, len(days))
		for _, day := range days {
			series = append(series, matrix[DayKey{Year: year, DayOfYear: day}])
		}
		values = append(values, series)
		legendLabels = append(legendLabels, strconv.Itoa(year))
	}

	standard := make([]float64, 0, len(days))
	for _, day := range days {
		standard = append(standard, baseline[day])
	}
	values = append(values, standard)
	legendLabels = append(legendLabels, "Standard")

	return cg.renderLineChart(values, labels, legendLabels, title)
}

// GenerateDeviationChart renders one line per year of deviations from the
// day-of-year standard
func (cg *ChartGenerator) GenerateDeviationChart(deviation DeviationMatrix, title string) (string, error) {
	if len(deviation) == 0 {
		return "", fmt.Errorf("no data available for %q", title)
	}

	matrix := DayYearMatrix(deviation)
	years := matrixYears(matrix)
	days := matrixDays(matrix)

	values := make([][]float64, 0, len(years))
	legendLabels := make([]string, 0, len(years))
	labels := make([]string, 0, len(days))

	for _, day := range days {
		labels = append(labels, strconv.Itoa(day))
	}

	for _, year := range years {
		series := make([]float64, 0, len(days))
		for _, day := range days {
			series = append(series, matrix[DayKey{Year: year, DayOfYear: day}])
		}
		values = append(values, series)
		legendLabels = append(legendLabels, strconv.Itoa(year))
	}

	return cg.renderLineChart(values, labels, legendLabels, title)
}

// renderLineChart draws the chart and returns it base64-encoded for embedding
func (cg *ChartGenerator) renderLineChart(values [][]float64, labels, legendLabels []string, title string) (string, error) {
	p, err := charts.LineRender(
		values,
		charts.TitleTextOptionFunc(title),
		charts.XAxisDataOptionFunc(labels),
		charts.LegendLabelsOptionFunc(legendLabels, charts.PositionRight),
		charts.ThemeOptionFunc(cg.theme),
		charts.WidthOptionFunc(1200),
		charts.HeightOptionFunc(400),
		charts.PaddingOptionFunc(charts.Box{
			Top:    20,
			Right:  20,
			Bottom: 20,
			Left:   20,
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render chart %q: %w", title, err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return "", fmt.Errorf("failed to generate chart bytes: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

// matrixYears returns the sorted set of years present in a matrix
func matrixYears(matrix DayYearMatrix) []int {
	set := make(map[int]bool)
	for key := range matrix {
		set[key.Year] = true
	}

	years := make([]int, 0, len(set))
	for year := range set {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// matrixDays returns the sorted set of days-of-year present in a matrix
func matrixDays(matrix DayYearMatrix) []int {
	set := make(map[int]bool)
	for key := range matrix {
		set[key.DayOfYear] = true
	}

	days := make([]int, 0, len(set))
	for day := range set {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// baselineDays returns the sorted days-of-year with a defined baseline
func baselineDays(baseline BaselineVector) []int {
	days := make([]int, 0, len(baseline))
	for day := range baseline {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}
