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
	"html"
	"io"
	"os"
)

// HTMLReporter generates HTML reports with embedded charts
type HTMLReporter struct {
	logger *Logger
}

// NewHTMLReporter creates a new HTML report generator
func NewHTMLReporter(logger *Logger) *HTMLReporter {
	return &HTMLReporter{
		logger: logger,
	}
}

// GenerateHTMLReport generates an HTML report
func (r *HTMLReporter) GenerateHTMLReport(result *AnalysisResult, outputPath string) error {
	r.logger.Info("Generating HTML report")

	var writer io.Writer
	if outputPath == "" {
		writer = os.Stdout
	} else {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create HTML report file: %w", err)
		}
		defer file.Close()
		writer = file
	}

	r.writeHTMLHeader(writer, result)
	r.writeHTMLSummary(writer, result)
	r.writeHTMLCharts(writer, result)
	r.writeHTMLAnomalies(writer, result)
	r.writeHTMLWarnings(writer, result)
	r.writeHTMLInsights(writer, result)
	r.writeHTMLFooter(writer)

	if outputPath != "" {
		r.logger.Info("HTML report saved", "path", outputPath)
	}

	return nil
}

func (r *HTMLReporter) writeHTMLHeader(w io.Writer, result *AnalysisResult) {
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Fluvius Consumption vs. Temperature Report</title>
    <style>
        :root {
            --warning-color: #FFB800;
            --danger-color: #FF5C5C;
            --success-color: #00C896;
            --bg-color: #0A0F1E;
            --card-bg: #1A2332;
            --text-color: #E8EAF6;
            --text-muted: #9FA8DA;
            --border-color: #2A3550;
        }

        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            background: var(--bg-color);
            color: var(--text-color);
            line-height: 1.6;
            padding: 20px;
        }

        .container { max-width: 1200px; margin: 0 auto; }

        header {
            background: linear-gradient(135deg, #1B6CA8, #00C896);
            padding: 40px;
            border-radius: 16px;
            margin-bottom: 30px;
        }

        h1 { font-size: 1.8em; }
        h2 { margin: 30px 0 15px; }
        .meta { color: var(--text-color); opacity: 0.85; margin-top: 8px; }

        .card {
            background: var(--card-bg);
            border: 1px solid var(--border-color);
            border-radius: 12px;
            padding: 24px;
            margin-bottom: 20px;
        }

        .metrics { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 16px; }
        .metric-value { font-size: 1.6em; font-weight: 600; }
        .metric-label { color: var(--text-muted); font-size: 0.9em; }

        table { width: 100%%; border-collapse: collapse; margin-top: 10px; }
        th, td { text-align: left; padding: 8px 12px; border-bottom: 1px solid var(--border-color); }
        th { color: var(--text-muted); font-weight: 500; }

        .chart img { width: 100%%; border-radius: 8px; }
        .warning { color: var(--warning-color); }
        .danger { color: var(--danger-color); }
        .success { color: var(--success-color); }
        footer { color: var(--text-muted); font-size: 0.85em; margin-top: 40px; text-align: center; }
    </style>
</head>
<body>
<div class="container">
<header>
    <h1>Fluvius Consumption vs. Temperature Report</h1>
    <div class="meta">Generated %s · Observed period %s to %s · version %s</div>
</header>
`,
		result.GeneratedAt.Format("2006-01-02 15:04"),
		result.PeriodStart.Format(isoDateLayout),
		result.PeriodEnd.Format(isoDateLayout),
		html.EscapeString(GetVersion()),
	)
}

func (r *HTMLReporter) writeHTMLSummary(w io.Writer, result *AnalysisResult) {
	fmt.Fprintf(w, `<div class="card">
<h2>Summary</h2>
<div class="metrics">
    <div><div class="metric-value">%d</div><div class="metric-label">Electricity days</div></div>
    <div><div class="metric-value">%d</div><div class="metric-label">Gas days</div></div>
    <div><div class="metric-value">%d</div><div class="metric-label">Temperature days</div></div>
    <div><div class="metric-value %s">%d</div><div class="metric-label">Unexplained gas days</div></div>
    <div><div class="metric-value %s">%d</div><div class="metric-label">Unexplained electricity days</div></div>
</div>
`,
		result.ElectricityDays,
		result.GasDays,
		result.TemperatureDays,
		countClass(len(result.GasAnomalies)),
		len(result.GasAnomalies),
		countClass(len(result.ElectricityAnomalies)),
		len(result.ElectricityAnomalies),
	)

	if result.CorrelationElectricity != nil || result.CorrelationGas != nil {
		fmt.Fprintf(w, "<table><tr><th>Fuel</th><th>Usage ↔ temperature (Pearson r)</th></tr>")
		if result.CorrelationElectricity != nil {
			fmt.Fprintf(w, "<tr><td>Electricity</td><td>%.2f</td></tr>", *result.CorrelationElectricity)
		}
		if result.CorrelationGas != nil {
			fmt.Fprintf(w, "<tr><td>Gas</td><td>%.2f</td></tr>", *result.CorrelationGas)
		}
		fmt.Fprintf(w, "</table>")
	}

	fmt.Fprintf(w, "</div>\n")
}

func (r *HTMLReporter) writeHTMLCharts(w io.Writer, result *AnalysisResult) {
	charts := []struct {
		title string
		data  string
	}{
		{"Daily Electricity Usage by Year vs. Standard", result.ElectricityUsageChart},
		{"Daily Gas Usage by Year vs. Standard", result.GasUsageChart},
		{"Daily Gas Usage Deviation by Year", result.GasDeviationChart},
		{"Daily Mean Temperature by Year", result.TemperatureChart},
	}

	for _, chart := range charts {
		if chart.data == "" {
			continue
		}
		fmt.Fprintf(w, `<div class="card chart">
<h2>%s</h2>
<img src="data:image/png;base64,%s" alt="%s">
</div>
`, html.EscapeString(chart.title), chart.data, html.EscapeString(chart.title))
	}
}

func (r *HTMLReporter) writeHTMLAnomalies(w io.Writer, result *AnalysisResult) {
	fmt.Fprintf(w, `<div class="card">
<h2>Unexplained Usage Days</h2>
<p class="metric-label">Days where both the usage deviation and the temperature deviation passed their thresholds.</p>
`)

	for _, section := range []struct {
		label string
		rows  []AnomalyRow
	}{
		{"Gas", result.GasAnomalies},
		{"Electricity", result.ElectricityAnomalies},
	} {
		fmt.Fprintf(w, "<h3>%s</h3>", section.label)
		if len(section.rows) == 0 {
			fmt.Fprintf(w, `<p class="success">No flagged days.</p>`)
			continue
		}
		fmt.Fprintf(w, "<table><tr><th>Date</th><th>Day of year</th><th>Usage deviation</th><th>Temperature deviation</th></tr>")
		for _, row := range section.rows {
			fmt.Fprintf(w, "<tr><td>%s</td><td>%d</td><td class=\"danger\">%+.2f</td><td>%+.1f°C</td></tr>",
				row.Date().Format(isoDateLayout),
				row.DayOfYear,
				row.UsageDeviation,
				row.TemperatureDeviation,
			)
		}
		fmt.Fprintf(w, "</table>")
	}

	fmt.Fprintf(w, "</div>\n")
}

func (r *HTMLReporter) writeHTMLWarnings(w io.Writer, result *AnalysisResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintf(w, `<div class="card">
<h2 class="warning">Data Warnings</h2>
<ul>
`)
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "<li><strong>%s:</strong> %s</li>",
			html.EscapeString(warning.Series),
			html.EscapeString(warning.Message),
		)
	}
	fmt.Fprintf(w, "</ul></div>\n")
}

func (r *HTMLReporter) writeHTMLInsights(w io.Writer, result *AnalysisResult) {
	if len(result.Insights) == 0 {
		return
	}

	fmt.Fprintf(w, `<div class="card">
<h2>Insights</h2>
`)
	for _, insight := range result.Insights {
		class := ""
		switch insight.Priority {
		case "high":
			class = "danger"
		case "medium":
			class = "warning"
		}
		fmt.Fprintf(w, "<h3 class=\"%s\">%s</h3><p>%s</p>",
			class,
			html.EscapeString(insight.Title),
			html.EscapeString(insight.Description),
		)
	}
	fmt.Fprintf(w, "</div>\n")
}

func (r *HTMLReporter) writeHTMLFooter(w io.Writer) {
	fmt.Fprintf(w, `<footer>Generated by fluvius-temp-correlation · deviations are relative to the per-day-of-year cross-year mean</footer>
</div>
</body>
</html>
`)
}

// countClass colors an anomaly count: green when zero, red otherwise
func countClass(n int) string {
	if n == 0 {
		return "success"
	}
	return "danger"
}
