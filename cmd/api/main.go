package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "trip_planner/internal/adapters/http_server"
	"trip_planner/internal/adapters/observability"
	redisad "trip_planner/internal/adapters/redis"
	"trip_planner/internal/app"
	"trip_planner/internal/itinerary"
	"trip_planner/internal/scoring"
	"trip_planner/internal/shared"
	mysqlrepo "trip_planner/internal/storage/mysql"
	"trip_planner/internal/tags"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// vocabulary: built-in tables, optionally overlaid from YAML
	vocab := tags.DefaultVocabulary()
	if cfg.TagVocabPath != "" {
		extra, err := tags.LoadVocabulary(cfg.TagVocabPath)
		if err != nil {
			log.Fatal().Err(err).Msg("tag vocabulary")
		}
		vocab = vocab.Merge(extra)
		log.Info().Str("path", cfg.TagVocabPath).Int("synonyms", len(vocab.Synonyms)).Msg("tag vocabulary loaded")
	}
	builder := itinerary.NewBuilder(scoring.NewScorer(tags.New(vocab)), nil)

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unavailable; itineraries cannot be stored")
	}

	planner := app.NewPlannerService(mysqlrepo.New(db), cache, builder, cfg.ScoreWorkers, cfg.CacheTTL)

	// http
	srv := server.New(server.Options{RatePerMin: cfg.RateLimitPerMin, CORSOrigins: cfg.CORSOrigins})
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{P: planner})
	observability.Serve(cfg.MetricsAddr, reg)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
