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

const (
	// OpenMeteoArchiveEndpoint is the Open-Meteo ERA5 reanalysis archive API
	OpenMeteoArchiveEndpoint = "https://archive-api.open-meteo.com/v1/era5"

	// era5EarliestDate is the first day covered by the ERA5 reanalysis
	era5EarliestDate = "1979-01-01"
)

// Fluvius "Verbruikshistoriek ... dagtotalen" CSV export format
const (
	fluviusDateColumn   = "Van (datum)"
	fluviusVolumeColumn = "Volume"
	fluviusDateLayout   = "02-01-2006" // dd-mm-yyyy
	fluviusSeparator    = ';'
)

const isoDateLayout = "2006-01-02"

// Default analysis settings
const (
	// defaultLatitude / defaultLongitude point at the Fluvius service area
	// (West Flanders, Belgium)
	defaultLatitude  = 50.95
	defaultLongitude = 3.12

	// defaultUsageDeviationThreshold flags days more than this far above the
	// day-of-year standard (kWh or m³ per day)
	defaultUsageDeviationThreshold = 2.0

	// defaultTemperatureDeviationThreshold: 0 means "warmer than standard"
	defaultTemperatureDeviationThreshold = 0.0

	// defaultWeatherCacheTTLHours controls how long fetched temperature
	// series are reused before hitting the archive again
	defaultWeatherCacheTTLHours = 24
)
