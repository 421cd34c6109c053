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

import "sort"

// DetectAnomalies inner-joins a usage-deviation matrix with a
// temperature-deviation matrix on (year, day-of-year) and emits a row for
// every day where both deviations pass their directional threshold tests.
// Days populated in only one matrix are excluded: no partial rows.
//
// With the default rules (usage above 2.0, temperature above 0) this flags
// days of unusually high consumption despite warmer-than-standard weather —
// usage the cold cannot explain.
//
// The result is sorted ascending by (year, day-of-year). An empty result is
// valid: it simply means no day satisfied both conditions.
func DetectAnomalies(usageDev, tempDev DeviationMatrix, usageRule, tempRule ThresholdRule) []AnomalyRow {
	rows := make([]AnomalyRow, 0)

	for key, usage := range usageDev {
		temp, ok := tempDev[key]
		if !ok {
			continue
		}
		if !usageRule.Satisfied(usage) || !tempRule.Satisfied(temp) {
			continue
		}
		rows = append(rows, AnomalyRow{
			Year:                 key.Year,
			DayOfYear:            key.DayOfYear,
			UsageDeviation:       usage,
			TemperatureDeviation: temp,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].DayOfYear < rows[j].DayOfYear
	})

	return rows
}
