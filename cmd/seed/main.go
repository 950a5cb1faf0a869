package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/neexbeast/amadeus/internal/backend"
	"github.com/neexbeast/amadeus/internal/config"
	"github.com/neexbeast/amadeus/internal/repository"
	"github.com/neexbeast/amadeus/internal/seed"
)

func main() {
	concurrency := flag.Int("concurrency", 4, "maximum concurrent inserts")
	days := flag.Int("forecast-days", repository.MaxDefaultForecastDays, "forecast days to seed per city")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", "err", err)
		os.Exit(1)
	}
	log := cfg.NewLogger(os.Stdout)

	if err := run(cfg, log, *concurrency, *days); err != nil {
		log.Error("seeding failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger, concurrency, days int) error {
	if backend.Select(cfg) != backend.Postgres {
		return errors.New("seeding requires the postgres backend: set USE_DATABASE=true and APP_ENV other than test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	b, err := backend.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("opening backend: %w", err)
	}
	defer b.Close()

	res, err := seed.NewLoader(b.Regions, b.Weather, log, concurrency).Load(ctx, time.Now(), days)
	if err != nil {
		return err
	}

	log.Info("seed complete",
		"regions", res.Regions,
		"skipped", res.Skipped,
		"readings", res.Readings,
		"forecasts", res.Forecasts,
	)
	return nil
}
