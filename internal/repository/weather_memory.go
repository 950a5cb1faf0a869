package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/neexbeast/amadeus/internal/model"
	"github.com/neexbeast/amadeus/internal/normalize"
)

// WeatherMemory is a concurrency-safe in-memory WeatherRepository.
type WeatherMemory struct {
	mu             sync.RWMutex
	readings       []model.Reading
	forecasts      []model.ForecastEntry
	nextReadingID  int64
	nextForecastID int64
	now            func() time.Time
}

// WeatherOption configures a WeatherMemory.
type WeatherOption func(*WeatherMemory)

// WithClock overrides the time source used for "today" and recorded timestamps.
func WithClock(now func() time.Time) WeatherOption {
	return func(m *WeatherMemory) { m.now = now }
}

// WithReadings seeds the store with readings.
func WithReadings(rs ...model.Reading) WeatherOption {
	return func(m *WeatherMemory) {
		for _, r := range rs {
			m.readings = append(m.readings, r)
			if r.ID >= m.nextReadingID {
				m.nextReadingID = r.ID + 1
			}
		}
	}
}

// WithForecasts seeds the store with forecast entries.
func WithForecasts(fs ...model.ForecastEntry) WeatherOption {
	return func(m *WeatherMemory) {
		for _, f := range fs {
			m.forecasts = append(m.forecasts, f)
			if f.ID >= m.nextForecastID {
				m.nextForecastID = f.ID + 1
			}
		}
	}
}

// NewWeatherMemory creates an empty store and applies opts.
func NewWeatherMemory(opts ...WeatherOption) *WeatherMemory {
	m := &WeatherMemory{nextReadingID: 1, nextForecastID: 1, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FetchCurrent returns the latest non-forecast reading matching regionName, or DefaultReading.
func (m *WeatherMemory) FetchCurrent(_ context.Context, regionName string) (*model.Reading, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest *model.Reading
	for i := range m.readings {
		r := &m.readings[i]
		if r.IsForecast || !MatchName(regionName, r.RegionName) {
			continue
		}
		if latest == nil || r.RecordedAt.After(latest.RecordedAt) {
			latest = r
		}
	}
	if latest == nil {
		return DefaultReading(regionName, m.now()), nil
	}
	out := *latest
	return &out, nil
}

// FetchForecast returns up to days entries dated within [today, today+days], ascending.
// With nothing stored it synthesizes DefaultForecast.
func (m *WeatherMemory) FetchForecast(_ context.Context, regionName string, days int) ([]model.ForecastEntry, error) {
	today := StartOfDay(m.now())
	end := today.AddDate(0, 0, days)

	m.mu.RLock()
	var out []model.ForecastEntry
	for _, f := range m.forecasts {
		d := StartOfDay(f.Date)
		if d.Before(today) || d.After(end) || !MatchName(regionName, f.RegionName) {
			continue
		}
		out = append(out, f)
	}
	m.mu.RUnlock()

	if len(out) == 0 {
		return DefaultForecast(regionName, days, today), nil
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if len(out) > days {
		out = out[:days]
	}
	return out, nil
}

// FetchHistory returns non-forecast readings recorded in the trailing window, newest first.
func (m *WeatherMemory) FetchHistory(_ context.Context, regionName string, days int) ([]model.Reading, error) {
	since := m.now().AddDate(0, 0, -days)

	m.mu.RLock()
	out := []model.Reading{}
	for _, r := range m.readings {
		if r.IsForecast || r.RecordedAt.Before(since) || !MatchName(regionName, r.RegionName) {
			continue
		}
		out = append(out, r)
	}
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].RecordedAt.After(out[j].RecordedAt) })
	return out, nil
}

// CreateReading appends a reading stamped with the current time.
func (m *WeatherMemory) CreateReading(_ context.Context, in model.NewReading) (*model.Reading, error) {
	r := model.Reading{
		RegionName:    in.RegionName,
		Temperature:   in.Temperature,
		Condition:     in.Condition,
		Humidity:      in.Humidity,
		Pressure:      in.Pressure,
		WindSpeed:     in.WindSpeed,
		WindDirection: in.WindDirection,
		RecordedAt:    m.now(),
		IsForecast:    in.IsForecast,
		ForecastDay:   in.ForecastDay,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r.ID = m.nextReadingID
	m.nextReadingID++
	m.readings = append(m.readings, r)
	return &r, nil
}

// CreateForecast appends a forecast entry, deriving the day name from the date when missing.
func (m *WeatherMemory) CreateForecast(_ context.Context, in model.NewForecast) (*model.ForecastEntry, error) {
	now := m.now()
	f := model.ForecastEntry{
		RegionName:               in.RegionName,
		Date:                     StartOfDay(in.Date),
		DayName:                  in.DayName,
		TemperatureMin:           in.TemperatureMin,
		TemperatureMax:           in.TemperatureMax,
		TemperatureAvg:           in.TemperatureAvg,
		Condition:                in.Condition,
		Humidity:                 in.Humidity,
		Pressure:                 in.Pressure,
		WindSpeed:                in.WindSpeed,
		WindDirection:            in.WindDirection,
		PrecipitationProbability: in.PrecipitationProbability,
		CreatedAt:                &now,
	}
	if f.DayName == "" {
		f.DayName = normalize.DayName(f.Date)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	f.ID = m.nextForecastID
	m.nextForecastID++
	m.forecasts = append(m.forecasts, f)
	return &f, nil
}
