//go:build darwin

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

const launchdLabel = "com.wallshift.apply"

// LaunchdInstaller manages a launchd agent that re-applies the wallpaper
// at login and on an interval. launchd has no native start delay, so the
// logon delay is approximated by RunAtLoad plus the regular interval.
type LaunchdInstaller struct {
	fsys      afero.Fs
	agentDir  string
	plistPath string
	logger    zerolog.Logger
}

// Ensure LaunchdInstaller implements the InstallerInterface
var _ InstallerInterface = (*LaunchdInstaller)(nil)

// NewInstaller creates the platform installer
func NewInstaller(fsys afero.Fs) (InstallerInterface, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("locating home directory: %w", err)
	}
	agentDir := filepath.Join(home, "Library", "LaunchAgents")
	return &LaunchdInstaller{
		fsys:      fsys,
		agentDir:  agentDir,
		plistPath: filepath.Join(agentDir, launchdLabel+".plist"),
		logger:    logging.GetLogger("task"),
	}, nil
}

// Install writes the agent plist and loads it
func (i *LaunchdInstaller) Install(ctx context.Context, opts Options) error {
	if err := i.fsys.MkdirAll(i.agentDir, 0o755); err != nil {
		return fmt.Errorf("creating agent directory %s: %w", i.agentDir, err)
	}
	if err := afero.WriteFile(i.fsys, i.plistPath, []byte(plistContent(opts)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", i.plistPath, err)
	}
	i.logger.Debug().Str("plist", i.plistPath).Msg("Wrote launchd agent")

	// Unload first so a re-install picks up the new plist.
	if _, err := execCommand(ctx, "launchctl", "unload", i.plistPath); err != nil {
		i.logger.Debug().Err(err).Msg("Agent was not loaded before install")
	}
	if _, err := execCommand(ctx, "launchctl", "load", i.plistPath); err != nil {
		return fmt.Errorf("loading agent %s: %w", launchdLabel, err)
	}
	i.logger.Info().Str("label", launchdLabel).Msg("Scheduled task installed")
	return nil
}

// Uninstall unloads the agent and removes the plist
func (i *LaunchdInstaller) Uninstall(ctx context.Context) error {
	if _, err := execCommand(ctx, "launchctl", "unload", i.plistPath); err != nil {
		i.logger.Warn().Err(err).Msg("Agent was not unloaded cleanly, removing plist anyway")
	}
	if err := i.fsys.Remove(i.plistPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", i.plistPath, err)
	}
	i.logger.Info().Str("label", launchdLabel).Msg("Scheduled task removed")
	return nil
}

// Installed reports whether the agent plist is in place
func (i *LaunchdInstaller) Installed(_ context.Context) (bool, error) {
	exists, err := afero.Exists(i.fsys, i.plistPath)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", i.plistPath, err)
	}
	return exists, nil
}

func plistContent(opts Options) string {
	var args strings.Builder
	for _, arg := range applyArgs(opts) {
		fmt.Fprintf(&args, "\t\t<string>%s</string>\n", arg)
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
%s	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>StartInterval</key>
	<integer>%d</integer>
</dict>
</plist>
`, launchdLabel, args.String(), int(opts.Interval.Seconds()))
}
