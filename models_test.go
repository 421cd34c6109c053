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
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDailyRecordDerivesLeapAwareDayOfYear(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), 60},
		{time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), 61},
		{time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC), 60},
		{time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), 366},
		{time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), 365},
	}

	for _, tt := range tests {
		record := NewDailyRecord(tt.date, 1.0)
		assert.Equal(t, tt.want, record.DayOfYear, "date %s", tt.date.Format(isoDateLayout))
		assert.Equal(t, tt.date.Year(), record.Year)
	}
}

func TestDayKeyDateRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.July, 14, 0, 0, 0, 0, time.UTC),
	}

	for _, date := range dates {
		key := DayKey{Year: date.Year(), DayOfYear: date.YearDay()}
		assert.True(t, key.Date().Equal(date), "key %v", key)
	}
}

func TestDayKeyTextMarshalling(t *testing.T) {
	matrix := DayYearMatrix{
		{Year: 2024, DayOfYear: 7}:   3.5,
		{Year: 2023, DayOfYear: 366}: 1.0,
	}

	data, err := json.Marshal(matrix)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"2024-007"`)

	var decoded DayYearMatrix
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, matrix, decoded)
}

func TestThresholdRuleIsStrict(t *testing.T) {
	above := ThresholdRule{Threshold: 2.0, Direction: DirectionAbove}
	assert.True(t, above.Satisfied(2.1))
	assert.False(t, above.Satisfied(2.0))
	assert.False(t, above.Satisfied(1.9))

	below := ThresholdRule{Threshold: 0, Direction: DirectionBelow}
	assert.True(t, below.Satisfied(-0.1))
	assert.False(t, below.Satisfied(0))
	assert.False(t, below.Satisfied(0.1))
}

func TestAnomalyRowDate(t *testing.T) {
	row := AnomalyRow{Year: 2024, DayOfYear: 60}
	assert.True(t, row.Date().Equal(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)))
}
