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

import "time"

// AlignSeries joins a consumption series with a temperature series on exact
// calendar date, with left-outer semantics: every consumption date survives
// and unmatched dates carry nil temperature fields.
//
// Duplicate consumption dates are a caller error. The returned count is the
// number of consumption dates with no temperature match, so the caller can
// surface a PartialDataWarning.
func AlignSeries(series string, consumption []DailyRecord, temperature []TemperatureRecord) ([]AlignedRecord, int, error) {
	if len(consumption) == 0 {
		return nil, 0, &EmptyInputError{Series: series}
	}

	tempByDate := make(map[string]TemperatureRecord, len(temperature))
	for _, t := range temperature {
		tempByDate[dateKey(t.Date)] = t
	}

	seen := make(map[string]bool, len(consumption))
	aligned := make([]AlignedRecord, 0, len(consumption))
	unmatched := 0

	for _, c := range consumption {
		key := dateKey(c.Date)
		if seen[key] {
			return nil, 0, &DuplicateDateError{Series: series, Date: c.Date}
		}
		seen[key] = true

		record := AlignedRecord{
			Date:      c.Date,
			Usage:     c.Usage,
			Year:      c.Year,
			DayOfYear: c.DayOfYear,
		}

		if t, found := tempByDate[key]; found {
			record.TempMin = t.TempMin
			record.TempMax = t.TempMax
			record.TempMean = t.TempMean
		}
		if record.TempMean == nil {
			unmatched++
		}

		aligned = append(aligned, record)
	}

	return aligned, unmatched, nil
}

// dateKey normalizes a timestamp to its calendar day
func dateKey(t time.Time) string {
	return t.Format(isoDateLayout)
}
