package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tenantlookup/internal/config"
	gql "github.com/heartmarshall/tenantlookup/internal/transport/graphql"
	"github.com/heartmarshall/tenantlookup/internal/transport/graphql/resolver"
	"github.com/heartmarshall/tenantlookup/internal/transport/middleware"
	"github.com/heartmarshall/tenantlookup/internal/transport/rest"
)

// Run is the HTTP server entry point. It loads configuration, wires the
// services, performs the initial dataset load and serves the API until ctx
// is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	c, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	// The server starts without data; /ready reports it until a load succeeds.
	if _, err := c.Dataset.Load(ctx); err != nil {
		logger.ErrorContext(ctx, "initial dataset load failed", slog.String("error", err.Error()))
	}

	var dbPinger interface {
		Ping(ctx context.Context) error
	}
	if c.Pool != nil {
		dbPinger = c.Pool
	}

	router := rest.NewRouter(
		rest.NewLookupHandler(c.Lookup, c.Geo, c.Dataset, logger),
		rest.NewHealthHandler(c.Dataset, dbPinger, BuildVersion()),
	)

	gqlHandler := gql.NewHandler(logger, resolver.NewResolver(logger, c.Lookup, c.Geo, c.Dataset), c.Dataset)
	router.Handle("POST /query", gqlHandler)
	router.Handle("GET /query", gqlHandler)
	router.Handle("OPTIONS /query", gqlHandler)

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.RequestsPerMinute))
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      middleware.Chain(mws...)(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg, c)
}

func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, cfg *config.Config, c *Components) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c.Dataset.Run(gctx, cfg.Cache.RefreshInterval)
		return nil
	})

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
