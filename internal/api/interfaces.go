package api

import (
	"context"

	"github.com/neexbeast/amadeus/internal/model"
)

// RegionService defines the region operations needed by handlers.
type RegionService interface {
	Get(ctx context.Context, id int64) (model.RegionResponse, error)
	List(ctx context.Context) ([]model.RegionResponse, error)
	FindByName(ctx context.Context, name string) (model.RegionResponse, error)
	Create(ctx context.Context, patch model.RegionPatch) (model.RegionResponse, error)
	Update(ctx context.Context, id int64, patch model.RegionPatch) (model.RegionResponse, error)
	Delete(ctx context.Context, id int64) error
}

// WeatherService defines the weather operations needed by handlers.
type WeatherService interface {
	Current(ctx context.Context, regionName string) (model.WeatherResponse, error)
	Forecast(ctx context.Context, regionName string, days int) ([]model.ForecastResponse, error)
	History(ctx context.Context, regionName string, days int) ([]model.WeatherResponse, error)
	RecordReading(ctx context.Context, in model.NewReading) (model.WeatherResponse, error)
	RecordForecast(ctx context.Context, in model.NewForecast) (model.ForecastResponse, error)
}

// dbPinger reports database connectivity for the health check.
type dbPinger interface {
	Ping(ctx context.Context) error
}
