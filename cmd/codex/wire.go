package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/KirkDiggler/rpg-codex/internal/config"
	"github.com/KirkDiggler/rpg-codex/internal/engine"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/orchestrators/describe"
	redisclient "github.com/KirkDiggler/rpg-codex/internal/redis"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/locale"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/records"
	"github.com/KirkDiggler/rpg-codex/internal/sqlite"
)

// newService builds the describe service from config. Tests replace it.
var newService = buildService

// buildService wires the database, the optional locale cache and the engine.
// The returned func releases every connection opened.
func buildService(ctx context.Context, cfg *config.Config) (describe.Service, func(), error) {
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				slog.Warn("Failed to close resource", "error", err)
			}
		}
	}

	db, err := sqlite.Open(ctx, cfg.Database.Path, &sqlite.Options{
		ReadOnly:     cfg.Database.ReadOnly,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, db.Close)

	service, err := wire(ctx, cfg, db, &closers)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return service, cleanup, nil
}

func wire(ctx context.Context, cfg *config.Config, db *sql.DB, closers *[]func() error) (describe.Service, error) {
	recordRepo, err := records.NewSQLiteRepository(&records.Config{DB: db})
	if err != nil {
		return nil, err
	}

	localeRepo, err := locale.NewSQLiteRepository(&locale.SQLiteConfig{DB: db})
	if err != nil {
		return nil, err
	}

	if cfg.Redis.Enabled {
		client, err := newRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, client.Close)

		if err := redisclient.Ping(ctx, client); err != nil {
			return nil, err
		}

		cache, err := locale.NewRedisCache(&locale.RedisConfig{Client: client, TTL: cfg.Redis.TTL})
		if err != nil {
			return nil, err
		}

		localeRepo, err = locale.NewCachedRepository(&locale.CachedConfig{Source: localeRepo, Cache: cache})
		if err != nil {
			return nil, err
		}
		slog.Debug("Locale cache enabled", "endpoints", cfg.Redis.Endpoints)
	}

	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(engineCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	return describe.NewOrchestrator(&describe.Config{
		Records: recordRepo,
		Locale:  localeRepo,
		Engine:  eng,
		Icons:   engineCfg.Icons,
		Workers: cfg.Curves.Workers,
	})
}

// newRedisClient selects cluster mode when more than one endpoint is configured
func newRedisClient(cfg config.RedisConfig) (redisclient.Client, error) {
	opts := &redisclient.Options{
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: cfg.DialTimeout,
	}

	if len(cfg.Endpoints) > 1 {
		return redisclient.NewClusterClient(cfg.Endpoints, opts)
	}
	if len(cfg.Endpoints) == 0 {
		return nil, errors.InvalidArgument("redis endpoint is required")
	}
	return redisclient.NewClient(cfg.Endpoints[0], opts)
}
