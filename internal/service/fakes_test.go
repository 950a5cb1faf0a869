package service_test

import (
	"context"

	"github.com/neexbeast/amadeus/internal/model"
)

type fakeRegions struct {
	fetchByIDFn   func(ctx context.Context, id int64) (*model.Region, error)
	fetchAllFn    func(ctx context.Context) ([]model.Region, error)
	fetchByNameFn func(ctx context.Context, name string) (*model.Region, error)
	createFn      func(ctx context.Context, patch model.RegionPatch) (*model.Region, error)
	updateFn      func(ctx context.Context, id int64, patch model.RegionPatch) (*model.Region, error)
	deleteFn      func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeRegions) FetchByID(ctx context.Context, id int64) (*model.Region, error) {
	return f.fetchByIDFn(ctx, id)
}
func (f *fakeRegions) FetchAll(ctx context.Context) ([]model.Region, error) {
	return f.fetchAllFn(ctx)
}
func (f *fakeRegions) FetchByName(ctx context.Context, name string) (*model.Region, error) {
	return f.fetchByNameFn(ctx, name)
}
func (f *fakeRegions) Create(ctx context.Context, patch model.RegionPatch) (*model.Region, error) {
	return f.createFn(ctx, patch)
}
func (f *fakeRegions) Update(ctx context.Context, id int64, patch model.RegionPatch) (*model.Region, error) {
	return f.updateFn(ctx, id, patch)
}
func (f *fakeRegions) Delete(ctx context.Context, id int64) (bool, error) {
	return f.deleteFn(ctx, id)
}

type fakeWeather struct {
	fetchCurrentFn   func(ctx context.Context, name string) (*model.Reading, error)
	fetchForecastFn  func(ctx context.Context, name string, days int) ([]model.ForecastEntry, error)
	fetchHistoryFn   func(ctx context.Context, name string, days int) ([]model.Reading, error)
	createReadingFn  func(ctx context.Context, in model.NewReading) (*model.Reading, error)
	createForecastFn func(ctx context.Context, in model.NewForecast) (*model.ForecastEntry, error)
}

func (f *fakeWeather) FetchCurrent(ctx context.Context, name string) (*model.Reading, error) {
	return f.fetchCurrentFn(ctx, name)
}
func (f *fakeWeather) FetchForecast(ctx context.Context, name string, days int) ([]model.ForecastEntry, error) {
	return f.fetchForecastFn(ctx, name, days)
}
func (f *fakeWeather) FetchHistory(ctx context.Context, name string, days int) ([]model.Reading, error) {
	return f.fetchHistoryFn(ctx, name, days)
}
func (f *fakeWeather) CreateReading(ctx context.Context, in model.NewReading) (*model.Reading, error) {
	return f.createReadingFn(ctx, in)
}
func (f *fakeWeather) CreateForecast(ctx context.Context, in model.NewForecast) (*model.ForecastEntry, error) {
	return f.createForecastFn(ctx, in)
}

func ptr[T any](v T) *T { return &v }
