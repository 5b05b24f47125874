package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallshift/wallshift/internal/wallpaper"
)

// Helper function to create a temporary settings file
func createTempSettingsFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test_settings.toml")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err, "Failed to write temp settings file")
	return tmpFile
}

// Helper function to set environment variables for a test
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	originalValues := make(map[string]string)

	for key, value := range vars {
		originalValues[key] = os.Getenv(key)
		err := os.Setenv(key, value)
		require.NoError(t, err, "Failed to set env var %s", key)
	}

	// Cleanup function to restore original environment variables
	t.Cleanup(func() {
		for key, value := range originalValues {
			if value == "" {
				err := os.Unsetenv(key)
				require.NoError(t, err, "Failed to unset env var %s", key)
			} else {
				err := os.Setenv(key, value)
				require.NoError(t, err, "Failed to restore env var %s", key)
			}
		}
	})
}

func TestLoadSettings_Valid(t *testing.T) {
	validToml := `
[core]
profiles_dir = "profiles"
default_profile = "weekdays"

[wallpaper]
backend = "feh"
mode = "fit"

[watch]
interval = "45m"
startup_delay = "5s"

[task]
interval = "2h"
logon_delay = "1m"

[hooks]
on_apply = "notify-send wallshift"

[service]
log_level = "debug"
`
	settingsFile := createTempSettingsFile(t, validToml)

	cfg, err := Load(settingsFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "weekdays", cfg.Core.DefaultProfile)
	assert.Equal(t, wallpaper.BackendFeh, cfg.Wallpaper.Backend)
	assert.Equal(t, wallpaper.ModeFit, cfg.Wallpaper.Mode)
	assert.Equal(t, 45*time.Minute, cfg.Watch.Interval)
	assert.Equal(t, 5*time.Second, cfg.Watch.StartupDelay)
	assert.Equal(t, 2*time.Hour, cfg.Task.Interval)
	assert.Equal(t, time.Minute, cfg.Task.LogonDelay)
	assert.Equal(t, "notify-send wallshift", cfg.Hooks.OnApply)
	assert.Equal(t, "debug", cfg.Service.LogLevel)
	assert.Equal(t, settingsFile, cfg.SettingsPath)

	assert.True(t, filepath.IsAbs(cfg.Core.ProfilesDir), "Profiles dir should be absolute")
	assert.Equal(t, filepath.Join(filepath.Dir(settingsFile), "profiles"), cfg.Core.ProfilesDir,
		"Relative profiles_dir resolves against the settings file directory")
}

func TestLoadSettings_Defaults(t *testing.T) {
	settingsFile := createTempSettingsFile(t, "")

	cfg, err := Load(settingsFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "default", cfg.Core.DefaultProfile)
	assert.Equal(t, wallpaper.BackendAuto, cfg.Wallpaper.Backend)
	assert.Equal(t, wallpaper.ModeFill, cfg.Wallpaper.Mode)
	assert.Equal(t, time.Hour, cfg.Watch.Interval)
	assert.Equal(t, 15*time.Second, cfg.Watch.StartupDelay)
	assert.Equal(t, time.Hour, cfg.Task.Interval)
	assert.Equal(t, 30*time.Second, cfg.Task.LogonDelay)
	assert.Empty(t, cfg.Hooks.OnApply)
	assert.Empty(t, cfg.Hooks.OnError)
	assert.Equal(t, "info", cfg.Service.LogLevel)
	assert.Equal(t, filepath.Join(filepath.Dir(settingsFile), "profiles"), cfg.Core.ProfilesDir)
}

func TestLoadSettings_EnvVarOverrides(t *testing.T) {
	tomlContent := `
[watch]
interval = "1h"

[service]
log_level = "info"
`
	settingsFile := createTempSettingsFile(t, tomlContent)
	setEnvVars(t, map[string]string{
		"WALLSHIFT_WATCH_INTERVAL":       "30m",
		"WALLSHIFT_SERVICE_LOG_LEVEL":    "warn",
		"WALLSHIFT_CORE_DEFAULT_PROFILE": "travel",
	})

	cfg, err := Load(settingsFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 30*time.Minute, cfg.Watch.Interval, "Interval should be overridden by ENV var")
	assert.Equal(t, "warn", cfg.Service.LogLevel)
	assert.Equal(t, "travel", cfg.Core.DefaultProfile)
	assert.Equal(t, wallpaper.BackendAuto, cfg.Wallpaper.Backend, "Untouched keys keep their defaults")
}

func TestLoadSettings_InvalidToml(t *testing.T) {
	invalidToml := `
[watch
interval = "1h"
`
	settingsFile := createTempSettingsFile(t, invalidToml)

	_, err := Load(settingsFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing settings file")
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSettings_InvalidDurationEnvVar(t *testing.T) {
	settingsFile := createTempSettingsFile(t, "")
	setEnvVars(t, map[string]string{
		"WALLSHIFT_WATCH_INTERVAL": "not-a-duration",
	})

	_, err := Load(settingsFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding settings")
}

func TestLoadSettings_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name        string
		tomlContent string
		expectedErr string
	}{
		{
			name: "Unknown backend",
			tomlContent: `
[wallpaper]
backend = "nitrogen"`,
			expectedErr: "invalid wallpaper backend",
		},
		{
			name: "Unknown mode",
			tomlContent: `
[wallpaper]
mode = "span"`,
			expectedErr: "invalid wallpaper mode",
		},
		{
			name: "Zero watch interval",
			tomlContent: `
[watch]
interval = "0s"`,
			expectedErr: "watch interval must be positive",
		},
		{
			name: "Negative startup delay",
			tomlContent: `
[watch]
startup_delay = "-5s"`,
			expectedErr: "startup delay cannot be negative",
		},
		{
			name: "Zero task interval",
			tomlContent: `
[task]
interval = "0s"`,
			expectedErr: "task interval must be positive",
		},
		{
			name: "Bad log level",
			tomlContent: `
[service]
log_level = "loud"`,
			expectedErr: "invalid log level",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settingsFile := createTempSettingsFile(t, tc.tomlContent)
			_, err := Load(settingsFile)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}
}

func TestLoadSettings_ReportsAllValidationErrors(t *testing.T) {
	tomlContent := `
[wallpaper]
backend = "nitrogen"

[watch]
interval = "0s"
`
	settingsFile := createTempSettingsFile(t, tomlContent)

	_, err := Load(settingsFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid wallpaper backend")
	assert.Contains(t, err.Error(), "watch interval must be positive")
}

func TestEnvToKey(t *testing.T) {
	tests := []struct {
		name     string
		envVar   string
		expected string
	}{
		{"Simple key", "WALLSHIFT_WATCH_INTERVAL", "watch.interval"},
		{"Key with underscores", "WALLSHIFT_CORE_DEFAULT_PROFILE", "core.default_profile"},
		{"Hook key", "WALLSHIFT_HOOKS_ON_APPLY", "hooks.on_apply"},
		{"No section", "WALLSHIFT_SETTINGS", "settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, envToKey(tt.envVar))
		})
	}
}

func TestResolveProfile(t *testing.T) {
	fsys := afero.NewMemMapFs()

	cfg := &Config{}
	cfg.Core.ProfilesDir = "/profiles"
	cfg.Core.DefaultProfile = "default"

	tests := []struct {
		name     string
		arg      string
		expected string
	}{
		{"Bare name", "work", filepath.Join("/profiles", "work.json")},
		{"Empty uses default profile", "", filepath.Join("/profiles", "default.json")},
		{"Json suffix is a path", "/docs/schedule.json", "/docs/schedule.json"},
		{"Separator is a path", "/docs/anything", "/docs/anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := cfg.ResolveProfile(fsys, tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, path)
		})
	}
}

func TestResolveProfileExistingRelativeFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "around.conf", []byte("{}"), 0o644))

	cfg := &Config{}
	cfg.Core.ProfilesDir = "/profiles"

	// A bare name that exists as a file wins over the profiles directory.
	path, err := cfg.ResolveProfile(fsys, "around.conf")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "around.conf", filepath.Base(path))
}

func TestResolveProfileNoDefault(t *testing.T) {
	cfg := &Config{}

	_, err := cfg.ResolveProfile(afero.NewMemMapFs(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile given")
}
