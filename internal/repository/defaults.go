package repository

import (
	"strings"
	"time"

	"github.com/neexbeast/amadeus/internal/model"
	"github.com/neexbeast/amadeus/internal/normalize"
)

// MaxDefaultForecastDays caps the number of synthesized forecast entries.
const MaxDefaultForecastDays = 5

var (
	forecastConditions     = [...]string{"Sunny", "Partly Cloudy", "Cloudy", "Rainy", "Stormy"}
	forecastWindDirections = [...]string{"N", "NE", "E", "SE", "S"}
	forecastPrecipitation  = [...]int{10, 20, 60, 80, 30}
)

// DefaultReading is the placeholder returned when no reading exists for a region.
func DefaultReading(regionName string, now time.Time) *model.Reading {
	pressure := 1013.25
	wind := 0.0
	dir := "N"
	return &model.Reading{
		RegionName:    regionName,
		Temperature:   normalize.DefaultTemperature,
		Condition:     normalize.DefaultCondition,
		Humidity:      normalize.DefaultHumidity,
		Pressure:      &pressure,
		WindSpeed:     &wind,
		WindDirection: &dir,
		RecordedAt:    now,
	}
}

// DefaultForecast synthesizes min(days, MaxDefaultForecastDays) entries starting the day after today.
// Values are deterministic and indexed by day offset.
func DefaultForecast(regionName string, days int, today time.Time) []model.ForecastEntry {
	n := min(days, MaxDefaultForecastDays)
	if n <= 0 {
		return []model.ForecastEntry{}
	}

	out := make([]model.ForecastEntry, 0, n)
	for i := 0; i < n; i++ {
		date := today.AddDate(0, 0, i+1)
		avg := 22.0 + float64(i*2) - 1
		pressure := 1013.0 + float64(i*2)
		wind := 10.0 + float64(i*2)
		dir := forecastWindDirections[i%len(forecastWindDirections)]

		out = append(out, model.ForecastEntry{
			RegionName:               regionName,
			Date:                     date,
			DayName:                  normalize.DayName(date),
			TemperatureAvg:           &avg,
			Condition:                forecastConditions[i%len(forecastConditions)],
			Humidity:                 60 + i*5,
			Pressure:                 &pressure,
			WindSpeed:                &wind,
			WindDirection:            &dir,
			PrecipitationProbability: forecastPrecipitation[i%len(forecastPrecipitation)],
		})
	}
	return out
}

// StartOfDay returns the calendar date of t, in t's own location, as UTC midnight.
// Forecast dates are compared as calendar days regardless of the clock's zone.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MatchName reports whether query and name match case-insensitively as substrings in either direction.
func MatchName(query, name string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	n := strings.ToLower(name)
	if q == "" {
		return false
	}
	return strings.Contains(n, q) || strings.Contains(q, n)
}
