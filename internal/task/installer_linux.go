//go:build linux

package task

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/wallshift/wallshift/internal/logging"
)

const (
	serviceUnit = "wallshift.service"
	timerUnit   = "wallshift.timer"
)

// SystemdInstaller manages a systemd user service and timer pair.
// The timer covers both triggers: OnStartupSec fires shortly after the user
// session comes up, OnUnitActiveSec repeats from then on.
type SystemdInstaller struct {
	fsys    afero.Fs
	unitDir string
	logger  zerolog.Logger
}

// Ensure SystemdInstaller implements the InstallerInterface
var _ InstallerInterface = (*SystemdInstaller)(nil)

// NewInstaller creates the platform installer
func NewInstaller(fsys afero.Fs) (InstallerInterface, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("locating user config directory: %w", err)
	}
	return &SystemdInstaller{
		fsys:    fsys,
		unitDir: filepath.Join(base, "systemd", "user"),
		logger:  logging.GetLogger("task"),
	}, nil
}

// Install writes the unit pair and enables the timer. Re-running replaces
// the units and re-enables, so it doubles as an update.
func (i *SystemdInstaller) Install(ctx context.Context, opts Options) error {
	if err := i.fsys.MkdirAll(i.unitDir, 0o755); err != nil {
		return fmt.Errorf("creating unit directory %s: %w", i.unitDir, err)
	}

	servicePath := filepath.Join(i.unitDir, serviceUnit)
	if err := afero.WriteFile(i.fsys, servicePath, []byte(serviceContent(opts)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", servicePath, err)
	}
	timerPath := filepath.Join(i.unitDir, timerUnit)
	if err := afero.WriteFile(i.fsys, timerPath, []byte(timerContent(opts)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", timerPath, err)
	}
	i.logger.Debug().Str("service", servicePath).Str("timer", timerPath).Msg("Wrote systemd user units")

	if _, err := execCommand(ctx, "systemctl", "--user", "daemon-reload"); err != nil {
		return fmt.Errorf("reloading systemd user units: %w", err)
	}
	if _, err := execCommand(ctx, "systemctl", "--user", "enable", "--now", timerUnit); err != nil {
		return fmt.Errorf("enabling %s: %w", timerUnit, err)
	}
	i.logger.Info().Str("timer", timerUnit).Msg("Scheduled task installed")
	return nil
}

// Uninstall disables the timer and removes the unit pair
func (i *SystemdInstaller) Uninstall(ctx context.Context) error {
	if _, err := execCommand(ctx, "systemctl", "--user", "disable", "--now", timerUnit); err != nil {
		i.logger.Warn().Err(err).Msg("Timer was not disabled cleanly, removing units anyway")
	}

	for _, unit := range []string{timerUnit, serviceUnit} {
		path := filepath.Join(i.unitDir, unit)
		if err := i.fsys.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}
	if _, err := execCommand(ctx, "systemctl", "--user", "daemon-reload"); err != nil {
		return fmt.Errorf("reloading systemd user units: %w", err)
	}
	i.logger.Info().Str("timer", timerUnit).Msg("Scheduled task removed")
	return nil
}

// Installed reports whether the timer is enabled
func (i *SystemdInstaller) Installed(ctx context.Context) (bool, error) {
	out, err := execCommand(ctx, "systemctl", "--user", "is-enabled", timerUnit)
	if err != nil {
		// is-enabled exits non-zero for disabled or unknown units.
		return false, nil
	}
	return strings.TrimSpace(out) == "enabled", nil
}

func serviceContent(opts Options) string {
	return fmt.Sprintf(`[Unit]
Description=Apply the scheduled wallpaper

[Service]
Type=oneshot
ExecStart=%s
`, strings.Join(applyArgs(opts), " "))
}

func timerContent(opts Options) string {
	return fmt.Sprintf(`[Unit]
Description=Re-apply the scheduled wallpaper on a cadence

[Timer]
OnStartupSec=%d
OnUnitActiveSec=%d
Unit=%s

[Install]
WantedBy=timers.target
`, int(opts.LogonDelay.Seconds()), int(opts.Interval.Seconds()), serviceUnit)
}
