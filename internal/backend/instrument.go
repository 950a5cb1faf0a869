package backend

import (
	"context"
	"time"

	"github.com/neexbeast/amadeus/internal/model"
	"github.com/neexbeast/amadeus/internal/observability"
	"github.com/neexbeast/amadeus/internal/repository"
)

type instrumentedRegions struct {
	kind Kind
	next repository.RegionRepository
}

// Instrument wraps a region adapter so every call is recorded in the storage metrics.
func Instrument(kind Kind, next repository.RegionRepository) repository.RegionRepository {
	return &instrumentedRegions{kind: kind, next: next}
}

func (i *instrumentedRegions) record(op string, start time.Time, err error) {
	observability.RecordStorageOp(string(i.kind), op, start, err)
}

func (i *instrumentedRegions) FetchByID(ctx context.Context, id int64) (*model.Region, error) {
	start := time.Now()
	r, err := i.next.FetchByID(ctx, id)
	i.record("region_fetch_by_id", start, err)
	return r, err
}

func (i *instrumentedRegions) FetchAll(ctx context.Context) ([]model.Region, error) {
	start := time.Now()
	rs, err := i.next.FetchAll(ctx)
	i.record("region_fetch_all", start, err)
	return rs, err
}

func (i *instrumentedRegions) FetchByName(ctx context.Context, name string) (*model.Region, error) {
	start := time.Now()
	r, err := i.next.FetchByName(ctx, name)
	i.record("region_fetch_by_name", start, err)
	return r, err
}

func (i *instrumentedRegions) Create(ctx context.Context, patch model.RegionPatch) (*model.Region, error) {
	start := time.Now()
	r, err := i.next.Create(ctx, patch)
	i.record("region_create", start, err)
	return r, err
}

func (i *instrumentedRegions) Update(ctx context.Context, id int64, patch model.RegionPatch) (*model.Region, error) {
	start := time.Now()
	r, err := i.next.Update(ctx, id, patch)
	i.record("region_update", start, err)
	return r, err
}

func (i *instrumentedRegions) Delete(ctx context.Context, id int64) (bool, error) {
	start := time.Now()
	ok, err := i.next.Delete(ctx, id)
	i.record("region_delete", start, err)
	return ok, err
}

type instrumentedWeather struct {
	kind Kind
	next repository.WeatherRepository
}

// InstrumentWeather wraps a weather adapter so every call is recorded in the storage metrics.
func InstrumentWeather(kind Kind, next repository.WeatherRepository) repository.WeatherRepository {
	return &instrumentedWeather{kind: kind, next: next}
}

func (i *instrumentedWeather) record(op string, start time.Time, err error) {
	observability.RecordStorageOp(string(i.kind), op, start, err)
}

func (i *instrumentedWeather) FetchCurrent(ctx context.Context, regionName string) (*model.Reading, error) {
	start := time.Now()
	r, err := i.next.FetchCurrent(ctx, regionName)
	i.record("weather_fetch_current", start, err)
	return r, err
}

func (i *instrumentedWeather) FetchForecast(ctx context.Context, regionName string, days int) ([]model.ForecastEntry, error) {
	start := time.Now()
	fs, err := i.next.FetchForecast(ctx, regionName, days)
	i.record("weather_fetch_forecast", start, err)
	return fs, err
}

func (i *instrumentedWeather) FetchHistory(ctx context.Context, regionName string, days int) ([]model.Reading, error) {
	start := time.Now()
	rs, err := i.next.FetchHistory(ctx, regionName, days)
	i.record("weather_fetch_history", start, err)
	return rs, err
}

func (i *instrumentedWeather) CreateReading(ctx context.Context, in model.NewReading) (*model.Reading, error) {
	start := time.Now()
	r, err := i.next.CreateReading(ctx, in)
	i.record("weather_create_reading", start, err)
	return r, err
}

func (i *instrumentedWeather) CreateForecast(ctx context.Context, in model.NewForecast) (*model.ForecastEntry, error) {
	start := time.Now()
	f, err := i.next.CreateForecast(ctx, in)
	i.record("weather_create_forecast", start, err)
	return f, err
}
