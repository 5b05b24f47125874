//go:build darwin

package wallpaper

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/wallshift/wallshift/internal/logging"
)

// OsascriptSetter applies wallpapers by telling System Events to repaint
// every desktop
type OsascriptSetter struct {
	logger zerolog.Logger
}

// Ensure OsascriptSetter implements the SetterInterface
var _ SetterInterface = (*OsascriptSetter)(nil)

// New creates the platform setter. Backend and mode selection only apply to
// Linux; System Events keeps the desktop's own scaling preference.
func New(backend Backend, _ Mode) (SetterInterface, error) {
	logger := logging.GetLogger("wallpaper")
	if backend != "" && backend != BackendAuto {
		logger.Warn().Str("backend", backend.String()).Msg("Backend setting has no effect on macOS")
	}
	return &OsascriptSetter{logger: logger}, nil
}

// Name identifies the mechanism in use
func (s *OsascriptSetter) Name() string {
	return "osascript"
}

// Set applies the image at path as the desktop background
func (s *OsascriptSetter) Set(ctx context.Context, path string) error {
	s.logger.Debug().Str("image", path).Msg("Setting wallpaper")
	script := `tell application "System Events" to tell every desktop to set picture to ` + strconv.Quote(path)
	return runCommand(ctx, "osascript", "-e", script)
}
