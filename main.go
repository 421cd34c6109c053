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
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Define command-line flags
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	electricityCSV := flag.String("electricity", "", "Path to Fluvius electricity CSV export (overrides config)")
	gasCSV := flag.String("gas", "", "Path to Fluvius gas CSV export (overrides config)")
	outputPath := flag.String("output", "", "Output file for report (default: stdout)")
	htmlOutput := flag.Bool("html", false, "Generate HTML report instead of Markdown")
	jsonLogs := flag.Bool("json-logs", false, "Emit JSON-formatted logs")
	refresh := flag.Bool("refresh", false, "Ignore cached temperature data and fetch fresh")
	debug := flag.Bool("debug", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	// Show version and exit
	if *showVersion {
		fmt.Printf("fluvius-temp-correlation %s\n", GetVersion())
		os.Exit(0)
	}

	// Load .env before reading configuration overrides
	_ = godotenv.Load()

	// Initialize logger
	newLogger := NewLogger
	if *jsonLogs {
		newLogger = NewJSONLogger
	}
	logger := newLogger(*debug)
	logger.Info("Starting fluvius-temp-correlation", "version", GetVersion())

	// Check for updates (non-blocking)
	go CheckForUpdates(logger)

	// Load configuration
	logger.Info("Loading configuration", "config_file", *configPath)
	config, err := LoadConfig(*configPath)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Override with command-line flags
	if *electricityCSV != "" {
		config.ElectricityCSV = *electricityCSV
	}
	if *gasCSV != "" {
		config.GasCSV = *gasCSV
	}
	if *debug {
		config.Debug = true
		logger = newLogger(true)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Configuration loaded successfully")

	// Initialize storage
	logger.Info("Initializing storage", "path", config.StoragePath)
	storage, err := NewStorage(config.StoragePath, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	if *refresh {
		if err := storage.ClearCache(); err != nil {
			logger.Warn("Failed to clear weather cache", "error", err)
		}
	}

	if previous, err := storage.LoadLatestAnalysis(); err != nil {
		logger.Warn("Failed to load previous analysis", "error", err)
	} else if previous != nil {
		logger.Info("Previous analysis found", "generated_at", previous.GeneratedAt.Format("2006-01-02 15:04:05"))
	}

	// Collect all inputs: CSV exports plus the temperature archive
	logger.Info("Initializing data collector")
	loader := NewSeriesLoader(logger)
	weather := NewWeatherClient(config.Latitude, config.Longitude, logger)
	collector := NewCollector(loader, weather, config, storage, logger)

	data, err := collector.CollectAll()
	if err != nil {
		logger.Error("Failed to collect data", "error", err)
		os.Exit(1)
	}

	// Perform analysis
	logger.Info("Initializing analyzer")
	analyzer := NewAnalyzer(config, logger)

	result, err := analyzer.Analyze(data)
	if err != nil {
		logger.Error("Failed to perform analysis", "error", err)
		os.Exit(1)
	}

	// Render charts for the HTML report
	if *htmlOutput {
		NewChartGenerator().AttachCharts(result, logger)
	}

	// Save analysis snapshot
	logger.Info("Saving analysis results")
	if err := storage.SaveAnalysisResult(result); err != nil {
		logger.Warn("Failed to save analysis results", "error", err)
	}

	// Generate report (HTML or Markdown)
	if *htmlOutput {
		logger.Info("Generating HTML report")
		htmlReporter := NewHTMLReporter(logger)
		if err := htmlReporter.GenerateHTMLReport(result, *outputPath); err != nil {
			logger.Error("Failed to generate HTML report", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Info("Generating Markdown report")
		reporter := NewReporter(logger)
		if err := reporter.GenerateReport(result, *outputPath); err != nil {
			logger.Error("Failed to generate report", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("Analysis completed successfully")
}
