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
	"github.com/montanaflynn/stats"
)

// ComputeBaseline computes the per-day-of-year "standard": for each
// day-of-year, the arithmetic mean of the values across exactly the years
// that have a populated cell for that day. Years without a cell do not count
// toward the denominator, so partial years never bias the mean toward zero
// and day 366 is averaged over leap years only.
func ComputeBaseline(matrix DayYearMatrix) BaselineVector {
	byDay := make(map[int][]float64)
	for key, value := range matrix {
		byDay[key.DayOfYear] = append(byDay[key.DayOfYear], value)
	}

	baseline := make(BaselineVector, len(byDay))
	for day, values := range byDay {
		mean, err := stats.Mean(values)
		if err != nil {
			// Mean only fails on empty input, which cannot happen here
			continue
		}
		baseline[day] = mean
	}
	return baseline
}

// ComputeDeviation subtracts the day-of-year baseline from every populated
// cell. Cells whose day-of-year has no baseline are dropped, not zeroed:
// absence propagates. Consumers should compare deviations with a tolerance
// rather than exact equality; the subtraction is exact only up to
// floating-point rounding of the mean.
func ComputeDeviation(matrix DayYearMatrix, baseline BaselineVector) DeviationMatrix {
	deviation := make(DeviationMatrix, len(matrix))
	for key, value := range matrix {
		standard, ok := baseline[key.DayOfYear]
		if !ok {
			continue
		}
		deviation[key] = value - standard
	}
	return deviation
}
