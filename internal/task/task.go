// Package task registers the apply command with the operating system's
// scheduler, on two triggers: at logon after a short delay, and on a
// repeating interval.
package task

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Options carries what the platform installers need to register the task
type Options struct {
	// Executable is the absolute path of the binary to invoke
	Executable string
	// Profile is the optional profile argument passed to apply
	Profile string
	// Interval is the repeating cadence
	Interval time.Duration
	// LogonDelay postpones the logon-triggered run
	LogonDelay time.Duration
}

// InstallerInterface defines scheduled-task management
type InstallerInterface interface {
	// Install registers the task, replacing any previous registration
	Install(ctx context.Context, opts Options) error

	// Uninstall removes the task registration
	Uninstall(ctx context.Context) error

	// Installed reports whether the task is currently registered
	Installed(ctx context.Context) (bool, error)
}

// applyArgs builds the command line the scheduler will run
func applyArgs(opts Options) []string {
	args := []string{opts.Executable, "apply"}
	if opts.Profile != "" {
		args = append(args, opts.Profile)
	}
	return args
}

// execCommand runs a scheduler control command and returns its combined
// output. Package variable so tests can intercept invocations.
var execCommand = func(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		if output != "" {
			return output, fmt.Errorf("%s: %w: %s", name, err, output)
		}
		return output, fmt.Errorf("%s: %w", name, err)
	}
	return output, nil
}
