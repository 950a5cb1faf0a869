// Package backend chooses and builds the data source adapters for the process.
package backend

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/neexbeast/amadeus/internal/config"
	"github.com/neexbeast/amadeus/internal/repository"
	"github.com/neexbeast/amadeus/internal/storage"
)

// Kind names an adapter variant.
type Kind string

const (
	Mock     Kind = "mock"
	Postgres Kind = "postgres"
)

// Pinger reports backing store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Backend bundles the adapters chosen for this process.
type Backend struct {
	Kind    Kind
	Regions repository.RegionRepository
	Weather repository.WeatherRepository
	// DB is nil for the mock variant.
	DB    Pinger
	close func()
}

// Close releases the resources held by the adapters.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Select resolves the adapter variant from configuration.
// The test environment and USE_DATABASE=false both select the mock variant.
func Select(cfg *config.Config) Kind {
	if cfg.AppEnv == "test" || !cfg.UseDatabase {
		return Mock
	}
	return Postgres
}

// Open builds the adapters for Select(cfg). A postgres connection failure is returned as an
// error; there is no fallback to the mock variant.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	kind := Select(cfg)
	log.Info("data source selected", "backend", kind, "app_env", cfg.AppEnv)

	if kind == Mock {
		return NewMock(time.Now), nil
	}

	pool, err := storage.Connect(ctx, cfg.PostgresURL(), cfg.DBMaxConns)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	applied, err := storage.RunMigrations(ctx, pool, cfg.MigrationsDir)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	log.Info("migrations applied", "count", len(applied), "files", applied)

	return &Backend{
		Kind:    Postgres,
		Regions: Instrument(Postgres, storage.NewRegionRepository(pool, cfg.StorageTimeout)),
		Weather: InstrumentWeather(Postgres, storage.NewWeatherRepository(pool, cfg.StorageTimeout)),
		DB:      pool,
		close:   pool.Close,
	}, nil
}

// NewMock builds in-memory adapters seeded with the fixture regions and readings.
func NewMock(now func() time.Time) *Backend {
	regions := repository.NewRegionMemory(repository.FixtureRegions()...)
	weather := repository.NewWeatherMemory(
		repository.WithClock(now),
		repository.WithReadings(repository.FixtureReadings(now())...),
	)
	return &Backend{
		Kind:    Mock,
		Regions: Instrument(Mock, regions),
		Weather: InstrumentWeather(Mock, weather),
	}
}
