// Package repository defines the data source contracts shared by the in-memory and
// PostgreSQL adapters, and holds the in-memory variants.
//
// Adapters report an absent record as a nil result with a nil error. A non-nil error always
// means the backing store failed.
package repository

import (
	"context"
	"errors"

	"github.com/neexbeast/amadeus/internal/model"
)

// ErrDuplicateName is returned when a create or update would give two regions the same name.
var ErrDuplicateName = errors.New("region name already exists")

// RegionRepository is the data source contract for regions.
type RegionRepository interface {
	FetchByID(ctx context.Context, id int64) (*model.Region, error)
	// FetchAll returns every region ordered by name ascending.
	FetchAll(ctx context.Context) ([]model.Region, error)
	FetchByName(ctx context.Context, name string) (*model.Region, error)
	Create(ctx context.Context, patch model.RegionPatch) (*model.Region, error)
	Update(ctx context.Context, id int64, patch model.RegionPatch) (*model.Region, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// WeatherRepository is the data source contract for weather readings and forecasts.
type WeatherRepository interface {
	// FetchCurrent never reports absence: an unknown region yields DefaultReading.
	FetchCurrent(ctx context.Context, regionName string) (*model.Reading, error)
	// FetchForecast yields at most days entries dated within [today, today+days].
	FetchForecast(ctx context.Context, regionName string, days int) ([]model.ForecastEntry, error)
	FetchHistory(ctx context.Context, regionName string, days int) ([]model.Reading, error)
	CreateReading(ctx context.Context, in model.NewReading) (*model.Reading, error)
	CreateForecast(ctx context.Context, in model.NewForecast) (*model.ForecastEntry, error)
}
