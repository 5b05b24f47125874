//go:build linux

package wallpaper

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wallshift/wallshift/internal/logging"
)

// CommandSetter applies wallpapers by driving an external desktop tool
type CommandSetter struct {
	backend Backend
	mode    Mode
	logger  zerolog.Logger
}

// Ensure CommandSetter implements the SetterInterface
var _ SetterInterface = (*CommandSetter)(nil)

// New creates the platform setter. BackendAuto probes gsettings, swww and feh
// in that order and picks the first one installed; a concrete backend is only
// checked for presence.
func New(backend Backend, mode Mode) (SetterInterface, error) {
	resolved, err := resolveBackend(backend)
	if err != nil {
		return nil, err
	}
	if mode == "" {
		mode = ModeFill
	}
	return &CommandSetter{
		backend: resolved,
		mode:    mode,
		logger:  logging.GetLogger("wallpaper"),
	}, nil
}

func resolveBackend(backend Backend) (Backend, error) {
	if backend == "" {
		backend = BackendAuto
	}
	if backend != BackendAuto {
		if _, err := lookPath(backend.String()); err != nil {
			return "", fmt.Errorf("wallpaper backend %s is not installed: %w", backend, err)
		}
		return backend, nil
	}
	for _, candidate := range []Backend{BackendGsettings, BackendSwww, BackendFeh} {
		if _, err := lookPath(candidate.String()); err == nil {
			return candidate, nil
		}
	}
	return "", errors.New("no wallpaper backend found (tried gsettings, swww, feh)")
}

// Name identifies the mechanism in use
func (s *CommandSetter) Name() string {
	return s.backend.String()
}

// Set applies the image at path as the desktop background
func (s *CommandSetter) Set(ctx context.Context, path string) error {
	s.logger.Debug().
		Str("backend", s.backend.String()).
		Str("mode", s.mode.String()).
		Str("image", path).
		Msg("Setting wallpaper")

	switch s.backend {
	case BackendGsettings:
		uri := "file://" + path
		schema := "org.gnome.desktop.background"
		if err := runCommand(ctx, "gsettings", "set", schema, "picture-options", gsettingsOption(s.mode)); err != nil {
			return err
		}
		if err := runCommand(ctx, "gsettings", "set", schema, "picture-uri", uri); err != nil {
			return err
		}
		// GNOME consults picture-uri-dark when the dark style is active.
		return runCommand(ctx, "gsettings", "set", schema, "picture-uri-dark", uri)
	case BackendSwww:
		return runCommand(ctx, "swww", "img", path, "--resize", swwwResize(s.mode))
	case BackendFeh:
		return runCommand(ctx, "feh", fehFlag(s.mode), path)
	default:
		return fmt.Errorf("unsupported wallpaper backend %s", s.backend)
	}
}

// gsettingsOption maps a mode to GNOME's picture-options value
func gsettingsOption(mode Mode) string {
	switch mode {
	case ModeFit:
		return "scaled"
	case ModeCenter:
		return "centered"
	case ModeStretch:
		return "stretched"
	case ModeTile:
		return "wallpaper"
	default:
		return "zoom"
	}
}

// swwwResize maps a mode to swww's resize strategy. swww cannot distort or
// tile, so those fall back to cropping.
func swwwResize(mode Mode) string {
	switch mode {
	case ModeFit:
		return "fit"
	case ModeCenter:
		return "no"
	default:
		return "crop"
	}
}

func fehFlag(mode Mode) string {
	switch mode {
	case ModeFit:
		return "--bg-max"
	case ModeCenter:
		return "--bg-center"
	case ModeStretch:
		return "--bg-scale"
	case ModeTile:
		return "--bg-tile"
	default:
		return "--bg-fill"
	}
}
