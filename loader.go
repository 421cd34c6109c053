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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SeriesLoader reads Fluvius "Verbruikshistoriek ... dagtotalen" CSV exports.
// The export uses a semicolon separator, a decimal comma, dd-mm-yyyy dates in
// the "Van (datum)" column and the daily volume in the "Volume" column.
type SeriesLoader struct {
	logger *Logger
}

// NewSeriesLoader creates a new loader
func NewSeriesLoader(logger *Logger) *SeriesLoader {
	return &SeriesLoader{
		logger: logger.WithComponent("loader"),
	}
}

// Load reads one consumption CSV and returns records sorted by date.
// The series name is only used for logging and error messages.
func (l *SeriesLoader) Load(series, path string) ([]DailyRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoaderError{Path: path, Err: err}
	}
	defer file.Close()

	records, err := l.parse(path, file)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, &EmptyInputError{Series: series, Path: path}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	l.logger.LogSeriesLoaded(series, path, len(records))
	return records, nil
}

// parse reads the header, locates the date and volume columns by name, and
// converts each data row. Rows with a blank volume are skipped (meter gap);
// anything else unparseable is a structural error.
func (l *SeriesLoader) parse(path string, r io.Reader) ([]DailyRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = fluviusSeparator
	// Fluvius exports occasionally append trailing columns mid-file
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, &LoaderError{Path: path, Line: 1, Err: err}
	}

	dateIdx, err := findColumn(path, header, fluviusDateColumn)
	if err != nil {
		return nil, err
	}
	volumeIdx, err := findColumn(path, header, fluviusVolumeColumn)
	if err != nil {
		return nil, err
	}

	var records []DailyRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &LoaderError{Path: path, Line: line, Err: err}
		}
		if dateIdx >= len(row) || volumeIdx >= len(row) {
			return nil, &LoaderError{Path: path, Line: line, Err: fmt.Errorf("row has %d fields, need column %d", len(row), max(dateIdx, volumeIdx)+1)}
		}

		// Blank volume means the meter reported nothing for that day
		rawVolume := strings.TrimSpace(row[volumeIdx])
		if rawVolume == "" {
			continue
		}

		date, err := parseFluviusDate(row[dateIdx])
		if err != nil {
			return nil, &LoaderError{Path: path, Line: line, Err: err}
		}

		usage, err := parseDecimalComma(rawVolume)
		if err != nil {
			return nil, &LoaderError{Path: path, Line: line, Err: err}
		}

		records = append(records, NewDailyRecord(date, usage))
	}

	return records, nil
}

// findColumn returns the index of a named header column
func findColumn(path string, header []string, name string) (int, error) {
	for i, col := range header {
		if strings.TrimSpace(col) == name {
			return i, nil
		}
	}
	return 0, &MissingColumnError{Path: path, Column: name}
}

// parseFluviusDate parses a dd-mm-yyyy date into UTC midnight
func parseFluviusDate(s string) (time.Time, error) {
	date, err := time.Parse(fluviusDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return date.UTC(), nil
}

// parseDecimalComma parses a number that uses a comma as the decimal separator
func parseDecimalComma(s string) (float64, error) {
	normalized := strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid volume %q: %w", s, err)
	}
	return value, nil
}
