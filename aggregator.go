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

// AggregateUsage groups aligned records by (year, day-of-year) and sums the
// usage of same-day entries: multiple readings on one day are sub-daily meter
// reads that total to the daily consumption. Grouping is a true equivalence,
// so the result does not depend on input order.
func AggregateUsage(records []AlignedRecord) DayYearMatrix {
	matrix := make(DayYearMatrix)
	for _, r := range records {
		matrix[DayKey{Year: r.Year, DayOfYear: r.DayOfYear}] += r.Usage
	}
	return matrix
}

// AggregateTemperature groups aligned records by (year, day-of-year) keyed on
// the mean temperature, averaging same-day duplicates. Records without
// temperature data contribute nothing: absence stays absent, it is never a
// fabricated zero.
func AggregateTemperature(records []AlignedRecord) DayYearMatrix {
	sums := make(map[DayKey]float64)
	counts := make(map[DayKey]int)

	for _, r := range records {
		if r.TempMean == nil {
			continue
		}
		key := DayKey{Year: r.Year, DayOfYear: r.DayOfYear}
		sums[key] += *r.TempMean
		counts[key]++
	}

	matrix := make(DayYearMatrix, len(sums))
	for key, sum := range sums {
		matrix[key] = sum / float64(counts[key])
	}
	return matrix
}
