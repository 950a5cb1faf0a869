package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neexbeast/amadeus/internal/model"
	"github.com/neexbeast/amadeus/internal/normalize"
	"github.com/neexbeast/amadeus/internal/repository"
)

// WeatherService exposes weather readings and forecasts through one injected adapter.
type WeatherService struct {
	repo repository.WeatherRepository
}

// NewWeatherService constructs a WeatherService over repo.
func NewWeatherService(repo repository.WeatherRepository) *WeatherService {
	return &WeatherService{repo: repo}
}

// Current returns the latest reading for a region. Unknown regions get the default reading.
func (s *WeatherService) Current(ctx context.Context, regionName string) (model.WeatherResponse, error) {
	regionName, err := requireRegion(regionName)
	if err != nil {
		return model.WeatherResponse{}, err
	}

	r, err := s.repo.FetchCurrent(ctx, regionName)
	if err != nil {
		return model.WeatherResponse{}, adapterErr(fmt.Sprintf("fetching weather for %s", regionName), err)
	}
	if r == nil {
		r = repository.DefaultReading(regionName, time.Now())
	}
	return normalize.Reading(*r), nil
}

// Forecast returns the full forecast sequence for the next days days.
func (s *WeatherService) Forecast(ctx context.Context, regionName string, days int) ([]model.ForecastResponse, error) {
	regionName, err := requireRegion(regionName)
	if err != nil {
		return nil, err
	}
	if days < 1 {
		return nil, &ValidationError{Field: "day", Message: "must be at least 1"}
	}

	fs, err := s.repo.FetchForecast(ctx, regionName, days)
	if err != nil {
		return nil, adapterErr(fmt.Sprintf("fetching forecast for %s", regionName), err)
	}
	if len(fs) > days {
		fs = fs[:days]
	}
	return normalize.Forecasts(fs), nil
}

// History returns the readings of the trailing days window, newest first.
func (s *WeatherService) History(ctx context.Context, regionName string, days int) ([]model.WeatherResponse, error) {
	regionName, err := requireRegion(regionName)
	if err != nil {
		return nil, err
	}
	if days < 1 {
		return nil, &ValidationError{Field: "days", Message: "must be at least 1"}
	}

	rs, err := s.repo.FetchHistory(ctx, regionName, days)
	if err != nil {
		return nil, adapterErr(fmt.Sprintf("fetching weather history for %s", regionName), err)
	}
	return normalize.Readings(rs), nil
}

// RecordReading validates and appends a reading.
func (s *WeatherService) RecordReading(ctx context.Context, in model.NewReading) (model.WeatherResponse, error) {
	if err := check(in); err != nil {
		return model.WeatherResponse{}, err
	}

	r, err := s.repo.CreateReading(ctx, in)
	if err != nil {
		return model.WeatherResponse{}, adapterErr(fmt.Sprintf("recording reading for %s", in.RegionName), err)
	}
	return normalize.Reading(*r), nil
}

// RecordForecast validates and appends a forecast entry.
func (s *WeatherService) RecordForecast(ctx context.Context, in model.NewForecast) (model.ForecastResponse, error) {
	if err := check(in); err != nil {
		return model.ForecastResponse{}, err
	}

	f, err := s.repo.CreateForecast(ctx, in)
	if err != nil {
		return model.ForecastResponse{}, adapterErr(fmt.Sprintf("recording forecast for %s", in.RegionName), err)
	}
	return normalize.Forecast(*f), nil
}

func requireRegion(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Field: "region", Message: "is required"}
	}
	return name, nil
}
