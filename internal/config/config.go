// Package config loads the application settings: defaults first, then the
// TOML settings file, then WALLSHIFT_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-multierror"
	toml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/wallshift/wallshift/internal/constants"
	"github.com/wallshift/wallshift/internal/wallpaper"
)

// Config holds the application settings
type Config struct {
	Core      CoreConfig      `koanf:"core"`
	Wallpaper WallpaperConfig `koanf:"wallpaper"`
	Watch     WatchConfig     `koanf:"watch"`
	Task      TaskConfig      `koanf:"task"`
	Hooks     HooksConfig     `koanf:"hooks"`
	Service   ServiceConfig   `koanf:"service"`

	// SettingsPath is the file the settings were loaded from; it keeps its
	// value even when the file was absent and defaults applied
	SettingsPath string `koanf:"-"`
}

// CoreConfig holds profile lookup settings
type CoreConfig struct {
	ProfilesDir    string `koanf:"profiles_dir"`
	DefaultProfile string `koanf:"default_profile"`
}

// WallpaperConfig holds the wallpaper mechanism settings
type WallpaperConfig struct {
	Backend wallpaper.Backend `koanf:"backend"`
	Mode    wallpaper.Mode    `koanf:"mode"`
}

// WatchConfig holds the foreground watch-mode cadence
type WatchConfig struct {
	Interval     time.Duration `koanf:"interval"`
	StartupDelay time.Duration `koanf:"startup_delay"`
}

// TaskConfig holds the scheduled-task cadence used by the installer
type TaskConfig struct {
	Interval   time.Duration `koanf:"interval"`
	LogonDelay time.Duration `koanf:"logon_delay"`
}

// HooksConfig holds user commands run after a cycle
type HooksConfig struct {
	OnApply string `koanf:"on_apply"`
	OnError string `koanf:"on_error"`
}

// ServiceConfig holds diagnostics settings
type ServiceConfig struct {
	LogLevel string `koanf:"log_level"`
}

// DefaultPath returns the standard settings file location under the user
// config directory
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(base, constants.AppName, constants.SettingsFileName), nil
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"core.profiles_dir":    "",
		"core.default_profile": "default",
		"wallpaper.backend":    wallpaper.BackendAuto.String(),
		"wallpaper.mode":       wallpaper.ModeFill.String(),
		"watch.interval":       time.Hour,
		"watch.startup_delay":  15 * time.Second,
		"task.interval":        time.Hour,
		"task.logon_delay":     30 * time.Second,
		"hooks.on_apply":       "",
		"hooks.on_error":       "",
		"service.log_level":    "info",
	}
}

// envToKey maps WALLSHIFT_SECTION_KEY_NAME to section.key_name: only the
// first underscore after the prefix separates the section, the rest belong
// to the key.
func envToKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, constants.EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// Load reads the settings at path. An empty path selects the default
// location, where a missing file is fine and the defaults apply; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading default settings: %w", err)
	}

	exists := true
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("checking settings file %s: %w", path, err)
		}
		if explicit {
			return nil, fmt.Errorf("settings file %s: %w", path, err)
		}
		exists = false
	}
	if exists {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(constants.EnvPrefix, ".", envToKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           cfg,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	cfg.SettingsPath = path
	cfg.normalize(filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// normalize makes the profiles directory absolute, anchored at the settings
// file's directory the way all other relative references anchor at their
// referencing document
func (c *Config) normalize(settingsDir string) {
	if c.Core.ProfilesDir == "" {
		c.Core.ProfilesDir = filepath.Join(settingsDir, constants.ProfilesDirName)
	} else if !filepath.IsAbs(c.Core.ProfilesDir) {
		c.Core.ProfilesDir = filepath.Join(settingsDir, c.Core.ProfilesDir)
	}
	if abs, err := filepath.Abs(c.Core.ProfilesDir); err == nil {
		c.Core.ProfilesDir = abs
	}
}

// Validate checks the settings and reports every violation
func (c *Config) Validate() error {
	var result *multierror.Error
	if _, err := wallpaper.ParseBackend(c.Wallpaper.Backend.String()); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := wallpaper.ParseMode(c.Wallpaper.Mode.String()); err != nil {
		result = multierror.Append(result, err)
	}
	if c.Watch.Interval <= 0 {
		result = multierror.Append(result, fmt.Errorf("watch interval must be positive, got %s", c.Watch.Interval))
	}
	if c.Watch.StartupDelay < 0 {
		result = multierror.Append(result, fmt.Errorf("watch startup delay cannot be negative, got %s", c.Watch.StartupDelay))
	}
	if c.Task.Interval <= 0 {
		result = multierror.Append(result, fmt.Errorf("task interval must be positive, got %s", c.Task.Interval))
	}
	if c.Task.LogonDelay < 0 {
		result = multierror.Append(result, fmt.Errorf("task logon delay cannot be negative, got %s", c.Task.LogonDelay))
	}
	if _, err := zerolog.ParseLevel(c.Service.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid log level %q: %w", c.Service.LogLevel, err))
	}
	return result.ErrorOrNil()
}

// ResolveProfile maps a profile argument to a schedule document path. An
// argument that is an existing file, contains a path separator or carries a
// .json suffix is treated as a path; anything else names <name>.json inside
// the profiles directory. An empty argument selects the default profile.
func (c *Config) ResolveProfile(fsys afero.Fs, arg string) (string, error) {
	if arg == "" {
		arg = c.Core.DefaultProfile
	}
	if arg == "" {
		return "", errors.New("no profile given and no default profile configured")
	}

	looksLikePath := strings.ContainsRune(arg, '/') ||
		strings.ContainsRune(arg, os.PathSeparator) ||
		strings.EqualFold(filepath.Ext(arg), ".json")
	if !looksLikePath {
		if ok, _ := afero.Exists(fsys, arg); ok {
			looksLikePath = true
		}
	}

	if looksLikePath {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return "", fmt.Errorf("resolving profile path %s: %w", arg, err)
		}
		return abs, nil
	}
	return filepath.Join(c.Core.ProfilesDir, arg+".json"), nil
}
