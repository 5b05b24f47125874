package main

import (
	"time"

	"github.com/urfave/cli"
	"go.uber.org/atomic"

	"github.com/wallshift/wallshift/internal/logging"
)

// watch is the foreground alternative to the OS scheduler: apply once after
// the startup delay, then again on every interval tick.
func watch(c *cli.Context) error {
	logger := logging.GetLogger("watch")

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	registerHooks(cfg)

	orch, err := newOrchestrator(cfg, c.Args().First(), true)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up the watch pipeline")
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	logger.Info().
		Dur("interval", cfg.Watch.Interval).
		Dur("startup_delay", cfg.Watch.StartupDelay).
		Msg("Starting watch loop")

	if cfg.Watch.StartupDelay > 0 {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(cfg.Watch.StartupDelay):
		}
	}

	// A cycle can outlast a tick when a backend hangs. The guard skips the
	// tick instead of queueing a second cycle.
	inFlight := atomic.NewBool(false)
	runCycle := func() {
		if !inFlight.CompareAndSwap(false, true) {
			logger.Warn().Msg("Previous cycle still in flight, skipping this tick")
			return
		}
		defer inFlight.Store(false)
		if _, err := orch.Run(ctx, time.Now()); err != nil {
			logger.Error().Err(err).Msg("Cycle failed, wallpaper left untouched")
		}
	}

	runCycle()

	ticker := time.NewTicker(cfg.Watch.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Context cancelled, watch loop stopped")
			return nil
		case <-ticker.C:
			logger.Debug().Msg("Apply tick received")
			go runCycle()
		}
	}
}
