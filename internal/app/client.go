package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/heartmarshall/tenantlookup/internal/config"
	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/service/lookup"
	"github.com/heartmarshall/tenantlookup/internal/service/voice"
	"github.com/heartmarshall/tenantlookup/internal/transport/cli"
)

// ClientOptions are the terminal client's command-line settings.
type ClientOptions struct {
	ConfigPath string
	Mode       string
	ClearCache bool
}

// RunClient is the terminal client entry point.
func RunClient(ctx context.Context, opts ClientOptions) error {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadPath(opts.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	mode, err := domain.ParseSearchMode(opts.Mode)
	if err != nil {
		return err
	}

	c, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if opts.ClearCache {
		if err := c.ClearCache(ctx); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
		logger.Info("cache cleared")
	}

	if _, err := c.Dataset.Load(ctx); err != nil {
		// Geo lookups and :refresh still work without a dataset.
		logger.WarnContext(ctx, "initial dataset load failed", slog.String("error", err.Error()))
	}

	console, err := cli.OpenConsole(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer console.Close()

	voiceSvc := voice.NewService(logger, cli.NewLineRecognizer(console), c.Source, cfg.Voice)
	defer voiceSvc.Wait()

	session := lookup.NewSession(lookup.State{
		Mode:     mode,
		Language: domain.Language(cfg.Voice.DefaultLanguage),
	})

	fmt.Fprintf(console.Out, "Tenant lookup %s. Type :help for commands.\n", Version)
	repl := cli.New(logger, console, console.Out, session, c.Lookup, c.Geo, c.Dataset, voiceSvc)
	return repl.Run(ctx)
}
