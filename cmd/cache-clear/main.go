// Command cache-clear removes the persisted tenant dataset so that the next
// start fetches from the data source. It uses the configured cache backend.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/tenantlookup/internal/app"
	"github.com/heartmarshall/tenantlookup/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	c, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("build components", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	if err := c.ClearCache(ctx); err != nil {
		logger.Error("clear cache failed",
			slog.String("error", err.Error()),
			slog.String("backend", cfg.Cache.Backend),
		)
		os.Exit(1)
	}

	logger.Info("cache cleared", slog.String("backend", cfg.Cache.Backend))
}
