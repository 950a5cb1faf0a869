package seed_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/amadeus/internal/model"
	"github.com/neexbeast/amadeus/internal/repository"
	"github.com/neexbeast/amadeus/internal/seed"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestLoad_IntoEmptyStores(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	regions := repository.NewRegionMemory()
	weather := repository.NewWeatherMemory(repository.WithClock(func() time.Time { return now }))

	res, err := seed.NewLoader(regions, weather, discard, 4).Load(context.Background(), now, 3)
	require.NoError(t, err)

	fixtures := repository.FixtureRegions()
	readings := repository.FixtureReadings(now)
	assert.Equal(t, int64(len(fixtures)), res.Regions)
	assert.Equal(t, int64(0), res.Skipped)
	assert.Equal(t, int64(len(readings)), res.Readings)
	assert.Equal(t, int64(len(readings)*3), res.Forecasts)

	all, err := regions.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, len(fixtures))

	forecast, err := weather.FetchForecast(context.Background(), "Lyon", 3)
	require.NoError(t, err)
	require.Len(t, forecast, 3)
	assert.Equal(t, "2026-10-20", forecast[0].Date.Format(model.DateLayout))
}

func TestLoad_SkipsExistingRegions(t *testing.T) {
	now := time.Now()
	regions := repository.NewRegionMemory(repository.FixtureRegions()[:2]...)
	weather := repository.NewWeatherMemory()

	res, err := seed.NewLoader(regions, weather, discard, 2).Load(context.Background(), now, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.Skipped)
	assert.Equal(t, int64(len(repository.FixtureRegions())-2), res.Regions)
}

func TestLoad_TwiceLeavesStoresUnchanged(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	regions := repository.NewRegionMemory()
	weather := repository.NewWeatherMemory(repository.WithClock(func() time.Time { return now }))
	loader := seed.NewLoader(regions, weather, discard, 4)

	_, err := loader.Load(context.Background(), now, 3)
	require.NoError(t, err)
	res, err := loader.Load(context.Background(), now, 3)
	require.NoError(t, err)

	assert.Equal(t, seed.Result{Skipped: int64(len(repository.FixtureRegions()))}, res)

	forecast, err := weather.FetchForecast(context.Background(), "Paris", 3)
	require.NoError(t, err)
	require.Len(t, forecast, 3)
	for i, want := range []string{"2026-10-20", "2026-10-21", "2026-10-22"} {
		assert.Equal(t, want, forecast[i].Date.Format(model.DateLayout))
	}

	history, err := weather.FetchHistory(context.Background(), "Paris", 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestLoad_SkipsWeatherForExistingRegions(t *testing.T) {
	now := time.Now()
	regions := repository.NewRegionMemory(repository.FixtureRegions()[:1]...)
	weather := repository.NewWeatherMemory()

	res, err := seed.NewLoader(regions, weather, discard, 2).Load(context.Background(), now, 2)
	require.NoError(t, err)

	weathered := int64(len(repository.FixtureReadings(now)) - 1)
	assert.Equal(t, weathered, res.Readings)
	assert.Equal(t, weathered*2, res.Forecasts)
}

type brokenWeather struct {
	repository.WeatherRepository
}

func (brokenWeather) CreateReading(_ context.Context, _ model.NewReading) (*model.Reading, error) {
	return nil, errors.New("disk full")
}

func (brokenWeather) CreateForecast(_ context.Context, _ model.NewForecast) (*model.ForecastEntry, error) {
	return &model.ForecastEntry{}, nil
}

func TestLoad_AbortsOnFailure(t *testing.T) {
	_, err := seed.NewLoader(repository.NewRegionMemory(), brokenWeather{}, discard, 1).
		Load(context.Background(), time.Now(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
