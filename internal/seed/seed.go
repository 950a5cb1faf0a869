// Package seed loads the development fixtures into a data source.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/neexbeast/amadeus/internal/model"
	"github.com/neexbeast/amadeus/internal/normalize"
	"github.com/neexbeast/amadeus/internal/repository"
)

// Result counts what a Load call wrote.
type Result struct {
	Regions   int64
	Skipped   int64
	Readings  int64
	Forecasts int64
}

// Loader writes fixtures through the adapter contracts with bounded concurrency.
type Loader struct {
	regions repository.RegionRepository
	weather repository.WeatherRepository
	log     *slog.Logger
	limit   int
}

// NewLoader constructs a Loader running at most limit writes at a time.
func NewLoader(regions repository.RegionRepository, weather repository.WeatherRepository, log *slog.Logger, limit int) *Loader {
	if limit < 1 {
		limit = 1
	}
	return &Loader{regions: regions, weather: weather, log: log, limit: limit}
}

// Load inserts the fixture regions, then the current readings and a forecast for the
// days after now. Regions that already exist are skipped along with their weather rows,
// so repeated loads leave the stores unchanged. Any other failure aborts the load.
func (l *Loader) Load(ctx context.Context, now time.Time, forecastDays int) (Result, error) {
	var res Result

	created, err := l.loadRegions(ctx, &res)
	if err != nil {
		return res, err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit)

	for _, rd := range repository.FixtureReadings(now) {
		if !created[rd.RegionName] {
			continue
		}
		rd := rd

		g.Go(func() error {
			if _, err := l.weather.CreateReading(gCtx, readingOf(rd)); err != nil {
				return fmt.Errorf("seeding reading for %s: %w", rd.RegionName, err)
			}
			atomic.AddInt64(&res.Readings, 1)
			return nil
		})

		for _, f := range repository.DefaultForecast(rd.RegionName, forecastDays, repository.StartOfDay(now)) {
			f := f
			g.Go(func() error {
				if _, err := l.weather.CreateForecast(gCtx, forecastOf(f)); err != nil {
					return fmt.Errorf("seeding forecast for %s on %s: %w", f.RegionName, f.Date.Format(model.DateLayout), err)
				}
				atomic.AddInt64(&res.Forecasts, 1)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return res, err
	}
	return res, nil
}

// loadRegions creates the fixture regions and returns the names this call created.
func (l *Loader) loadRegions(ctx context.Context, res *Result) (map[string]bool, error) {
	var (
		mu      sync.Mutex
		created = make(map[string]bool)
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit)

	for _, r := range repository.FixtureRegions() {
		r := r
		g.Go(func() error {
			_, err := l.regions.Create(gCtx, patchOf(r))
			switch {
			case errors.Is(err, repository.ErrDuplicateName):
				l.log.Info("region already present", "region", r.Name)
				atomic.AddInt64(&res.Skipped, 1)
				return nil
			case err != nil:
				return fmt.Errorf("seeding region %s: %w", r.Name, err)
			}
			atomic.AddInt64(&res.Regions, 1)
			mu.Lock()
			created[r.Name] = true
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return created, nil
}

func patchOf(r model.Region) model.RegionPatch {
	name, lang, country, pop := r.Name, r.Language, r.Country, r.Population
	return model.RegionPatch{
		Name:       &name,
		Population: &pop,
		Language:   &lang,
		Country:    &country,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
	}
}

func readingOf(r model.Reading) model.NewReading {
	return model.NewReading{
		RegionName:    r.RegionName,
		Temperature:   r.Temperature,
		Condition:     r.Condition,
		Humidity:      r.Humidity,
		Pressure:      r.Pressure,
		WindSpeed:     r.WindSpeed,
		WindDirection: r.WindDirection,
	}
}

func forecastOf(f model.ForecastEntry) model.NewForecast {
	return model.NewForecast{
		RegionName:               f.RegionName,
		Date:                     f.Date,
		DayName:                  normalize.DayName(f.Date),
		TemperatureMin:           f.TemperatureMin,
		TemperatureMax:           f.TemperatureMax,
		TemperatureAvg:           f.TemperatureAvg,
		Condition:                f.Condition,
		Humidity:                 f.Humidity,
		Pressure:                 f.Pressure,
		WindSpeed:                f.WindSpeed,
		WindDirection:            f.WindDirection,
		PrecipitationProbability: f.PrecipitationProbability,
	}
}
