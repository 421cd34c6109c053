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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignSeriesLeftJoinKeepsUnmatchedDates(t *testing.T) {
	jan1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	consumption := []DailyRecord{
		NewDailyRecord(jan1, 12.5),
		NewDailyRecord(jan2, 11.0),
	}
	temperature := []TemperatureRecord{
		{Date: jan1, TempMin: floatPtr(2.0), TempMax: floatPtr(8.0), TempMean: floatPtr(5.0)},
	}

	aligned, unmatched, err := AlignSeries("electricity", consumption, temperature)

	require.NoError(t, err)
	require.Len(t, aligned, 2)
	assert.Equal(t, 1, unmatched)

	require.NotNil(t, aligned[0].TempMean)
	assert.Equal(t, 5.0, *aligned[0].TempMean)
	assert.Equal(t, 12.5, aligned[0].Usage)

	assert.Nil(t, aligned[1].TempMin)
	assert.Nil(t, aligned[1].TempMax)
	assert.Nil(t, aligned[1].TempMean)
	assert.Equal(t, 11.0, aligned[1].Usage)
}

func TestAlignSeriesEmptyTemperatureLeavesAllUnmatched(t *testing.T) {
	consumption := []DailyRecord{
		NewDailyRecord(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 1.0),
		NewDailyRecord(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), 2.0),
	}

	aligned, unmatched, err := AlignSeries("gas", consumption, nil)

	require.NoError(t, err)
	assert.Len(t, aligned, 2)
	assert.Equal(t, 2, unmatched)
}

func TestAlignSeriesRejectsDuplicateDates(t *testing.T) {
	jan1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	consumption := []DailyRecord{
		NewDailyRecord(jan1, 1.0),
		NewDailyRecord(jan1, 2.0),
	}

	_, _, err := AlignSeries("gas", consumption, nil)

	var dupErr *DuplicateDateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "gas", dupErr.Series)
	assert.True(t, dupErr.Date.Equal(jan1))
}

func TestAlignSeriesRejectsEmptyConsumption(t *testing.T) {
	_, _, err := AlignSeries("electricity", nil, nil)

	var emptyErr *EmptyInputError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestAlignSeriesMatchesOnCalendarDayNotClockTime(t *testing.T) {
	consumption := []DailyRecord{
		NewDailyRecord(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 4.0),
	}
	// Same calendar day, different clock time
	temperature := []TemperatureRecord{
		{Date: time.Date(2024, time.January, 1, 13, 30, 0, 0, time.UTC), TempMean: floatPtr(6.5)},
	}

	aligned, unmatched, err := AlignSeries("electricity", consumption, temperature)

	require.NoError(t, err)
	assert.Equal(t, 0, unmatched)
	require.NotNil(t, aligned[0].TempMean)
	assert.Equal(t, 6.5, *aligned[0].TempMean)
}
