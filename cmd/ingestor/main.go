package main

import (
	"context"
	"database/sql"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"trip_planner/internal/adapters/catalog"
	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/app"
	"trip_planner/internal/shared"
	mysqlrepo "trip_planner/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("base", cfg.CatalogBase).
		Int("workers", cfg.IngestWorkers).
		Int("rps", cfg.CatalogRPS).
		Msg("ingestor starting")

	observability.Serve(cfg.MetricsAddr, observability.InitRegistry())

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	client, err := catalog.New(cfg.CatalogBase, cfg.CatalogKey, cfg.CatalogRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize catalog client")
	}
	ing := app.NewIngestionService(client, mysqlrepo.New(db))

	ids := cfg.PlaceIDs
	if len(ids) == 0 {
		if ids, err = client.ListPlaceIDs(ctx); err != nil {
			log.Fatal().Err(err).Msg("list catalog places failed")
		}
	}
	log.Info().Int("places", len(ids)).Msg("ingesting")

	sem := semaphore.NewWeighted(int64(max(cfg.IngestWorkers, 1)))
	var (
		wg     sync.WaitGroup
		failed atomic.Int64
	)
	for _, id := range ids {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("ingestion interrupted")
			break
		}

		wg.Add(1)
		go func(placeID string) {
			defer wg.Done()
			defer sem.Release(1)

			if err := ing.IngestPlace(ctx, placeID); err != nil {
				failed.Add(1)
				log.Warn().Str("id", placeID).Err(err).Msg("ingest failed")
				return
			}
			log.Debug().Str("id", placeID).Msg("ingest ok")
		}(id)
	}

	wg.Wait()
	log.Info().Int("places", len(ids)).Int64("failed", failed.Load()).Msg("ingestion completed")
}
