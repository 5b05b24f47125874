//go:build windows

package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/wallshift/wallshift/internal/logging"
)

const (
	logonTask    = "Wallshift Apply (Logon)"
	intervalTask = "Wallshift Apply (Interval)"
)

// SchtasksInstaller manages a pair of Task Scheduler entries, one firing
// after logon and one repeating on the configured interval.
type SchtasksInstaller struct {
	logger zerolog.Logger
}

// Ensure SchtasksInstaller implements the InstallerInterface
var _ InstallerInterface = (*SchtasksInstaller)(nil)

// NewInstaller creates the platform installer. The filesystem is unused on
// Windows since schtasks owns the task store.
func NewInstaller(_ afero.Fs) (InstallerInterface, error) {
	return &SchtasksInstaller{logger: logging.GetLogger("task")}, nil
}

// Install registers both tasks, replacing existing ones
func (i *SchtasksInstaller) Install(ctx context.Context, opts Options) error {
	run := taskCommand(opts)

	logonArgs := []string{
		"/Create", "/TN", logonTask, "/TR", run,
		"/SC", "ONLOGON", "/F",
	}
	if opts.LogonDelay > 0 {
		logonArgs = append(logonArgs, "/DELAY", schtasksDelay(opts.LogonDelay))
	}
	if _, err := execCommand(ctx, "schtasks", logonArgs...); err != nil {
		return fmt.Errorf("creating task %q: %w", logonTask, err)
	}

	intervalArgs := []string{
		"/Create", "/TN", intervalTask, "/TR", run,
		"/SC", "MINUTE", "/MO", fmt.Sprintf("%d", schtasksMinutes(opts.Interval)),
		"/F",
	}
	if _, err := execCommand(ctx, "schtasks", intervalArgs...); err != nil {
		return fmt.Errorf("creating task %q: %w", intervalTask, err)
	}
	i.logger.Info().Str("logon", logonTask).Str("interval", intervalTask).Msg("Scheduled tasks installed")
	return nil
}

// Uninstall deletes both tasks
func (i *SchtasksInstaller) Uninstall(ctx context.Context) error {
	for _, name := range []string{logonTask, intervalTask} {
		if _, err := execCommand(ctx, "schtasks", "/Delete", "/TN", name, "/F"); err != nil {
			i.logger.Warn().Err(err).Str("task", name).Msg("Task was not deleted cleanly")
		}
	}
	i.logger.Info().Msg("Scheduled tasks removed")
	return nil
}

// Installed reports whether the interval task is registered
func (i *SchtasksInstaller) Installed(ctx context.Context) (bool, error) {
	if _, err := execCommand(ctx, "schtasks", "/Query", "/TN", intervalTask); err != nil {
		// Query exits non-zero when the task does not exist.
		return false, nil
	}
	return true, nil
}

func taskCommand(opts Options) string {
	args := applyArgs(opts)
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.ContainsAny(arg, " \t") {
			arg = `"` + arg + `"`
		}
		quoted = append(quoted, arg)
	}
	return strings.Join(quoted, " ")
}

// schtasksDelay renders a duration in the mmmm:ss form /DELAY expects
func schtasksDelay(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%04d:%02d", total/60, total%60)
}

// schtasksMinutes clamps the interval to the 1..1439 range /SC MINUTE accepts
func schtasksMinutes(d time.Duration) int {
	minutes := int(d.Minutes())
	if minutes < 1 {
		return 1
	}
	if minutes > 1439 {
		return 1439
	}
	return minutes
}
