package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tenantlookup/internal/adapter/filestore"
	"github.com/heartmarshall/tenantlookup/internal/adapter/postgres"
	"github.com/heartmarshall/tenantlookup/internal/adapter/postgres/cacheentry"
	"github.com/heartmarshall/tenantlookup/internal/adapter/provider/sheets"
	"github.com/heartmarshall/tenantlookup/internal/config"
	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/service/cache"
	"github.com/heartmarshall/tenantlookup/internal/service/dataset"
	"github.com/heartmarshall/tenantlookup/internal/service/geo"
	"github.com/heartmarshall/tenantlookup/internal/service/lookup"
	"github.com/heartmarshall/tenantlookup/internal/service/search"
	"github.com/heartmarshall/tenantlookup/migrations"
)

type cacheStore interface {
	Load(ctx context.Context) (*domain.CacheEntry, error)
	Save(ctx context.Context, entry *domain.CacheEntry) error
	Clear(ctx context.Context) error
}

// Components are the services shared by the HTTP server and the terminal
// client.
type Components struct {
	Source  *sheets.Provider
	Store   cacheStore
	Pool    *pgxpool.Pool
	Dataset *dataset.Service
	Lookup  *lookup.Service
	Geo     *geo.Service
}

// Build wires the data source, cache store and services. The caller owns
// the returned Components and must Close them.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{Source: sheets.NewProvider(cfg.Source, logger)}

	switch cfg.Cache.Backend {
	case config.BackendFile:
		c.Store = filestore.New(cfg.Cache.FilePath)
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		c.Pool = pool
		if cfg.Database.MigrateOnStart {
			if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		c.Store = cacheentry.New(pool)
	}

	logger.Info("cache store ready", slog.String("backend", cfg.Cache.Backend))

	c.Dataset = dataset.NewService(logger, c.Source, c.Store, cache.NewValidator(cfg.Cache),
		search.Options{StrictSynonyms: cfg.Search.StrictSynonyms})
	c.Lookup = lookup.NewService(logger, c.Dataset, cfg.Search)
	c.Geo = geo.NewService(logger, c.Source, cfg.Geo.RadiusMeters)

	return c, nil
}

// ClearCache removes the persisted dataset. It is a no-op without a store.
func (c *Components) ClearCache(ctx context.Context) error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Clear(ctx)
}

// Close releases the database pool, if any.
func (c *Components) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}
