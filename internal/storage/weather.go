package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/amadeus/internal/model"
	"github.com/neexbeast/amadeus/internal/normalize"
	"github.com/neexbeast/amadeus/internal/repository"
)

const (
	readingColumns = `id, region_name, temperature, condition, humidity, pressure, wind_speed,
		wind_direction, recorded_at, is_forecast, forecast_day`

	forecastColumns = `id, region_name, forecast_date, day_name, temperature_min, temperature_max,
		temperature_avg, condition, humidity, pressure, wind_speed, wind_direction,
		precipitation_probability, created_at`

	// regionMatch matches $1 against region_name as a case-insensitive substring in either direction.
	regionMatch = `(strpos(lower(region_name), lower($1)) > 0 OR strpos(lower($1), lower(region_name)) > 0)`
)

// WeatherRepository provides database access for weather readings and forecasts.
type WeatherRepository struct {
	q       Querier
	timeout time.Duration
	now     func() time.Time
}

// NewWeatherRepository constructs a WeatherRepository backed by the given pool.
func NewWeatherRepository(pool *pgxpool.Pool, timeout time.Duration) *WeatherRepository {
	return &WeatherRepository{q: pool, timeout: timeout, now: time.Now}
}

// NewWeatherRepositoryWithQuerier constructs a WeatherRepository with a custom Querier and
// clock (for tests).
func NewWeatherRepositoryWithQuerier(q Querier, timeout time.Duration, now func() time.Time) *WeatherRepository {
	return &WeatherRepository{q: q, timeout: timeout, now: now}
}

// FetchCurrent returns the latest non-forecast reading for the region, or a default reading
// when none is stored.
func (r *WeatherRepository) FetchCurrent(ctx context.Context, regionName string) (*model.Reading, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	q := `SELECT ` + readingColumns + ` FROM weather_data
		WHERE is_forecast = FALSE AND ` + regionMatch + `
		ORDER BY recorded_at DESC
		LIMIT 1`

	reading, err := scanReading(r.q.QueryRow(ctx, q, regionName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.DefaultReading(regionName, r.now()), nil
		}
		return nil, fmt.Errorf("querying current weather for %s: %w", regionName, err)
	}
	return reading, nil
}

// FetchForecast returns up to days entries dated today through today+days, ascending.
// When none are stored it returns the synthesized default forecast.
func (r *WeatherRepository) FetchForecast(ctx context.Context, regionName string, days int) ([]model.ForecastEntry, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	today := repository.StartOfDay(r.now())
	end := today.AddDate(0, 0, days)

	q := `SELECT ` + forecastColumns + ` FROM weather_forecasts
		WHERE ` + regionMatch + `
		AND forecast_date >= $2
		AND forecast_date <= $3
		ORDER BY forecast_date
		LIMIT $4`

	rows, err := r.q.Query(ctx, q, regionName, today, end, days)
	if err != nil {
		return nil, fmt.Errorf("querying forecast for %s: %w", regionName, err)
	}
	defer rows.Close()

	var results []model.ForecastEntry
	for rows.Next() {
		f, err := scanForecast(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning forecast row: %w", err)
		}
		results = append(results, *f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating forecast rows: %w", err)
	}

	if len(results) == 0 {
		return repository.DefaultForecast(regionName, days, today), nil
	}
	return results, nil
}

// FetchHistory returns non-forecast readings of the trailing days window, newest first.
func (r *WeatherRepository) FetchHistory(ctx context.Context, regionName string, days int) ([]model.Reading, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	since := r.now().AddDate(0, 0, -days)

	q := `SELECT ` + readingColumns + ` FROM weather_data
		WHERE is_forecast = FALSE AND ` + regionMatch + `
		AND recorded_at >= $2
		ORDER BY recorded_at DESC`

	rows, err := r.q.Query(ctx, q, regionName, since)
	if err != nil {
		return nil, fmt.Errorf("querying weather history for %s: %w", regionName, err)
	}
	defer rows.Close()

	results := []model.Reading{}
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning reading row: %w", err)
		}
		results = append(results, *reading)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reading rows: %w", err)
	}

	return results, nil
}

// CreateReading inserts a reading and returns the stored row.
func (r *WeatherRepository) CreateReading(ctx context.Context, in model.NewReading) (*model.Reading, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	q := `INSERT INTO weather_data
		(region_name, temperature, condition, humidity, pressure, wind_speed, wind_direction, is_forecast, forecast_day)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + readingColumns

	reading, err := scanReading(r.q.QueryRow(ctx, q,
		in.RegionName,
		in.Temperature,
		in.Condition,
		in.Humidity,
		in.Pressure,
		in.WindSpeed,
		in.WindDirection,
		in.IsForecast,
		in.ForecastDay,
	))
	if err != nil {
		return nil, fmt.Errorf("inserting reading for %s: %w", in.RegionName, err)
	}
	return reading, nil
}

// CreateForecast inserts a forecast entry and returns the stored row.
func (r *WeatherRepository) CreateForecast(ctx context.Context, in model.NewForecast) (*model.ForecastEntry, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	date := repository.StartOfDay(in.Date)
	dayName := in.DayName
	if dayName == "" {
		dayName = normalize.DayName(date)
	}

	q := `INSERT INTO weather_forecasts
		(region_name, forecast_date, day_name, temperature_min, temperature_max, temperature_avg,
		 condition, humidity, pressure, wind_speed, wind_direction, precipitation_probability)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + forecastColumns

	f, err := scanForecast(r.q.QueryRow(ctx, q,
		in.RegionName,
		date,
		dayName,
		in.TemperatureMin,
		in.TemperatureMax,
		in.TemperatureAvg,
		in.Condition,
		in.Humidity,
		in.Pressure,
		in.WindSpeed,
		in.WindDirection,
		in.PrecipitationProbability,
	))
	if err != nil {
		return nil, fmt.Errorf("inserting forecast for %s: %w", in.RegionName, err)
	}
	return f, nil
}

func scanReading(row rowScanner) (*model.Reading, error) {
	var (
		reading         model.Reading
		temperature     pgtype.Numeric
		pressure, speed pgtype.Numeric
	)
	if err := row.Scan(
		&reading.ID,
		&reading.RegionName,
		&temperature,
		&reading.Condition,
		&reading.Humidity,
		&pressure,
		&speed,
		&reading.WindDirection,
		&reading.RecordedAt,
		&reading.IsForecast,
		&reading.ForecastDay,
	); err != nil {
		return nil, err
	}

	temp, err := normalize.Float(temperature)
	if err != nil {
		return nil, fmt.Errorf("reading temperature: %w", err)
	}
	reading.Temperature = temp
	reading.Pressure = normalize.NumericPtr(pressure)
	reading.WindSpeed = normalize.NumericPtr(speed)
	return &reading, nil
}

func scanForecast(row rowScanner) (*model.ForecastEntry, error) {
	var (
		f                model.ForecastEntry
		tMin, tMax, tAvg pgtype.Numeric
		pressure, speed  pgtype.Numeric
		createdAt        time.Time
	)
	if err := row.Scan(
		&f.ID,
		&f.RegionName,
		&f.Date,
		&f.DayName,
		&tMin,
		&tMax,
		&tAvg,
		&f.Condition,
		&f.Humidity,
		&pressure,
		&speed,
		&f.WindDirection,
		&f.PrecipitationProbability,
		&createdAt,
	); err != nil {
		return nil, err
	}

	f.TemperatureMin = normalize.NumericPtr(tMin)
	f.TemperatureMax = normalize.NumericPtr(tMax)
	f.TemperatureAvg = normalize.NumericPtr(tAvg)
	f.Pressure = normalize.NumericPtr(pressure)
	f.WindSpeed = normalize.NumericPtr(speed)
	f.CreatedAt = &createdAt
	return &f, nil
}
