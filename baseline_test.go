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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBaselineMeansOverPopulatedYearsOnly(t *testing.T) {
	matrix := DayYearMatrix{
		{Year: 2022, DayOfYear: 10}: 4.0,
		{Year: 2023, DayOfYear: 10}: 6.0,
		{Year: 2024, DayOfYear: 10}: 8.0,
		// Day 20 only observed in one year: the mean must not be diluted
		// by the years without data
		{Year: 2023, DayOfYear: 20}: 3.0,
	}

	baseline := ComputeBaseline(matrix)

	require.Len(t, baseline, 2)
	assert.InDelta(t, 6.0, baseline[10], 1e-9)
	assert.InDelta(t, 3.0, baseline[20], 1e-9)
}

func TestComputeBaselineDay366UsesLeapYearsOnly(t *testing.T) {
	// 2020 is a leap year; 2021 and 2022 have no day 366
	matrix := DayYearMatrix{
		{Year: 2020, DayOfYear: 366}: 5.0,
		{Year: 2020, DayOfYear: 100}: 1.0,
		{Year: 2021, DayOfYear: 100}: 2.0,
		{Year: 2022, DayOfYear: 100}: 3.0,
	}

	baseline := ComputeBaseline(matrix)

	assert.InDelta(t, 5.0, baseline[366], 1e-9)
	assert.InDelta(t, 2.0, baseline[100], 1e-9)
}

func TestComputeBaselineUndefinedDayHasNoEntry(t *testing.T) {
	baseline := ComputeBaseline(DayYearMatrix{})

	assert.Empty(t, baseline)
	_, ok := baseline[1]
	assert.False(t, ok)
}

func TestComputeDeviationSubtractsBaseline(t *testing.T) {
	matrix := DayYearMatrix{
		{Year: 2022, DayOfYear: 10}: 4.0,
		{Year: 2023, DayOfYear: 10}: 6.0,
		{Year: 2022, DayOfYear: 11}: 1.5,
		{Year: 2023, DayOfYear: 11}: 2.5,
	}
	baseline := ComputeBaseline(matrix)

	deviation := ComputeDeviation(matrix, baseline)

	require.Len(t, deviation, len(matrix))
	for key, value := range matrix {
		assert.InDelta(t, value-baseline[key.DayOfYear], deviation[key], 1e-9)
	}
	assert.InDelta(t, -1.0, deviation[DayKey{Year: 2022, DayOfYear: 10}], 1e-9)
	assert.InDelta(t, 1.0, deviation[DayKey{Year: 2023, DayOfYear: 10}], 1e-9)
}

func TestComputeDeviationIdenticalYearsAreExactlyZero(t *testing.T) {
	matrix := DayYearMatrix{
		{Year: 2022, DayOfYear: 42}: 7.25,
		{Year: 2023, DayOfYear: 42}: 7.25,
	}

	deviation := ComputeDeviation(matrix, ComputeBaseline(matrix))

	assert.Zero(t, deviation[DayKey{Year: 2022, DayOfYear: 42}])
	assert.Zero(t, deviation[DayKey{Year: 2023, DayOfYear: 42}])
}

func TestComputeDeviationPropagatesAbsentBaseline(t *testing.T) {
	matrix := DayYearMatrix{
		{Year: 2024, DayOfYear: 5}: 9.0,
	}
	// Baseline built from a disjoint matrix: day 5 has no standard
	baseline := BaselineVector{7: 1.0}

	deviation := ComputeDeviation(matrix, baseline)

	assert.Empty(t, deviation)
}

func TestBaselinePipelineIsIdempotent(t *testing.T) {
	matrix := DayYearMatrix{
		{Year: 2022, DayOfYear: 1}:   10.0,
		{Year: 2023, DayOfYear: 1}:   14.0,
		{Year: 2022, DayOfYear: 2}:   11.5,
		{Year: 2023, DayOfYear: 2}:   12.5,
		{Year: 2020, DayOfYear: 366}: 3.0,
	}

	baselineA := ComputeBaseline(matrix)
	baselineB := ComputeBaseline(matrix)
	require.Equal(t, baselineA, baselineB)

	deviationA := ComputeDeviation(matrix, baselineA)
	deviationB := ComputeDeviation(matrix, baselineB)
	assert.Equal(t, deviationA, deviationB)
}
