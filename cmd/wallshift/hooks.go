package main

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/wallshift/wallshift/internal/config"
	"github.com/wallshift/wallshift/internal/logging"
	"github.com/wallshift/wallshift/internal/signals"
)

// registerHooks wires the configured hook commands to the application
// events. Emission waits for listeners, so hooks finish before a one-shot
// invocation exits.
func registerHooks(cfg *config.Config) {
	if command := cfg.Hooks.OnApply; command != "" {
		signals.OnWallpaperApplied(func(ctx context.Context, data signals.AppliedData) {
			runHook(ctx, command, map[string]string{
				"WALLSHIFT_THEME":   data.Theme,
				"WALLSHIFT_REASON":  data.Reason,
				"WALLSHIFT_TRIGGER": data.Trigger,
				"WALLSHIFT_IMAGE":   data.Image,
			})
		}, "hook-on-apply")
	}
	if command := cfg.Hooks.OnError; command != "" {
		signals.OnRunFailed(func(ctx context.Context, data signals.RunFailedData) {
			runHook(ctx, command, map[string]string{
				"WALLSHIFT_STAGE": data.Stage,
				"WALLSHIFT_ERROR": data.Err.Error(),
			})
		}, "hook-on-error")
	}
}

// runHook executes a hook command through the platform shell with the event
// details in the environment. Hook failures are logged, never propagated.
func runHook(ctx context.Context, command string, env map[string]string) {
	logger := logging.GetLogger("hooks")

	cmd := shellCommand(ctx, command)
	cmd.Env = os.Environ()
	for key, value := range env {
		cmd.Env = append(cmd.Env, key+"="+value)
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		logger.Warn().Err(err).
			Str("command", command).
			Str("output", strings.TrimSpace(string(out))).
			Msg("Hook command failed")
		return
	}
	logger.Debug().Str("command", command).Msg("Hook command completed")
}

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", command)
	}
	return exec.CommandContext(ctx, "sh", "-c", command)
}
