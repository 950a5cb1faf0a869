package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/amadeus/internal/model"
	"github.com/neexbeast/amadeus/internal/repository"
	"github.com/neexbeast/amadeus/internal/service"
)

func TestWeatherService_Current(t *testing.T) {
	repo := &fakeWeather{
		fetchCurrentFn: func(_ context.Context, name string) (*model.Reading, error) {
			assert.Equal(t, "Lyon", name)
			return &model.Reading{RegionName: "Lyon", Temperature: 25.119, Condition: "Sunny", Humidity: 58}, nil
		},
	}

	got, err := service.NewWeatherService(repo).Current(context.Background(), " Lyon ")
	require.NoError(t, err)
	assert.Equal(t, 25.12, got.Temperature)
	assert.Equal(t, "Sunny", got.Condition)
}

func TestWeatherService_Current_NilFallsBackToDefault(t *testing.T) {
	repo := &fakeWeather{
		fetchCurrentFn: func(_ context.Context, _ string) (*model.Reading, error) { return nil, nil },
	}

	got, err := service.NewWeatherService(repo).Current(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Equal(t, 50, got.Humidity)
	assert.Equal(t, "Unknown", got.Condition)
}

func TestWeatherService_Current_BlankRegion(t *testing.T) {
	_, err := service.NewWeatherService(&fakeWeather{}).Current(context.Background(), "")
	var verr *service.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestWeatherService_Forecast(t *testing.T) {
	today := repository.StartOfDay(time.Now())
	repo := &fakeWeather{
		fetchForecastFn: func(_ context.Context, name string, days int) ([]model.ForecastEntry, error) {
			return repository.DefaultForecast(name, days+2, today), nil
		},
	}
	svc := service.NewWeatherService(repo)

	got, err := svc.Forecast(context.Background(), "Paris", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, today.AddDate(0, 0, 1).Format(model.DateLayout), got[0].Date)

	_, err = svc.Forecast(context.Background(), "Paris", 0)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "day", verr.Field)
}

func TestWeatherService_History(t *testing.T) {
	cause := errors.New("timeout")
	repo := &fakeWeather{
		fetchHistoryFn: func(_ context.Context, name string, _ int) ([]model.Reading, error) {
			if name == "Broken" {
				return nil, cause
			}
			return nil, nil
		},
	}
	svc := service.NewWeatherService(repo)

	got, err := svc.History(context.Background(), "Nice", 7)
	require.NoError(t, err)
	assert.NotNil(t, got)

	_, err = svc.History(context.Background(), "Broken", 7)
	assert.ErrorIs(t, err, service.ErrStorage)
	assert.ErrorIs(t, err, cause)

	_, err = svc.History(context.Background(), "Nice", -1)
	var verr *service.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestWeatherService_RecordReading_Validates(t *testing.T) {
	repo := &fakeWeather{
		createReadingFn: func(_ context.Context, in model.NewReading) (*model.Reading, error) {
			return &model.Reading{ID: 1, RegionName: in.RegionName, Temperature: in.Temperature, Condition: in.Condition, Humidity: in.Humidity}, nil
		},
	}
	svc := service.NewWeatherService(repo)

	got, err := svc.RecordReading(context.Background(), model.NewReading{RegionName: "Paris", Temperature: 22.5, Condition: "Sunny", Humidity: 65})
	require.NoError(t, err)
	assert.Equal(t, "Paris", got.Region)

	cases := map[string]model.NewReading{
		"region_name": {Condition: "Sunny", Humidity: 50},
		"humidity":    {RegionName: "Paris", Condition: "Sunny", Humidity: 120},
		"wind_speed":  {RegionName: "Paris", Condition: "Sunny", Humidity: 50, WindSpeed: ptr(-1.0)},
	}
	for field, in := range cases {
		_, err := svc.RecordReading(context.Background(), in)
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr, field)
		assert.Equal(t, field, verr.Field)
	}
}

func TestWeatherService_RecordForecast_Validates(t *testing.T) {
	repo := &fakeWeather{
		createForecastFn: func(_ context.Context, in model.NewForecast) (*model.ForecastEntry, error) {
			return &model.ForecastEntry{ID: 3, RegionName: in.RegionName, Date: in.Date, Condition: in.Condition}, nil
		},
	}
	svc := service.NewWeatherService(repo)
	date := time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC)

	got, err := svc.RecordForecast(context.Background(), model.NewForecast{RegionName: "Nice", Date: date, Condition: "Sunny", Humidity: 40})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-24", got.Date)
	assert.Equal(t, "Samedi", got.Day)

	cases := map[string]model.NewForecast{
		"date":                      {RegionName: "Nice", Condition: "Sunny"},
		"precipitation_probability": {RegionName: "Nice", Date: date, Condition: "Sunny", PrecipitationProbability: 101},
	}
	for field, in := range cases {
		_, err := svc.RecordForecast(context.Background(), in)
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr, field)
		assert.Equal(t, field, verr.Field)
	}
}
