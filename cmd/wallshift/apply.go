package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/wallshift/wallshift/internal/config"
	"github.com/wallshift/wallshift/internal/logging"
	"github.com/wallshift/wallshift/internal/orchestrator"
	"github.com/wallshift/wallshift/internal/wallpaper"
)

func apply(c *cli.Context) error {
	logger := logging.GetLogger("apply")

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	registerHooks(cfg)

	orch, err := newOrchestrator(cfg, c.Args().First(), true)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up the apply pipeline")
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	if _, err := orch.Run(ctx, time.Now()); err != nil {
		return err
	}
	return nil
}

// newOrchestrator builds the pipeline for the given profile argument.
// withSetter selects a real platform backend; read-only commands pass false
// so they work on machines without one.
func newOrchestrator(cfg *config.Config, profileArg string, withSetter bool) (*orchestrator.Orchestrator, error) {
	fsys := afero.NewOsFs()
	profilePath, err := cfg.ResolveProfile(fsys, profileArg)
	if err != nil {
		return nil, err
	}

	var setter wallpaper.SetterInterface = &wallpaper.NoopSetter{}
	if withSetter {
		if setter, err = wallpaper.New(cfg.Wallpaper.Backend, cfg.Wallpaper.Mode); err != nil {
			return nil, err
		}
	}
	return orchestrator.New(fsys, profilePath, setter), nil
}

// signalContext returns a context cancelled on SIGINT/SIGTERM
func signalContext(logger zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("Received signal, initiating shutdown")
		cancel()
	}()
	return ctx, cancel
}
