//go:build windows

package wallpaper

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"

	"github.com/wallshift/wallshift/internal/logging"
)

const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateINIFile   = 0x01
	spifSendChange      = 0x02
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
)

// SpiSetter applies wallpapers through the user32 SystemParametersInfoW call
type SpiSetter struct {
	logger zerolog.Logger
}

// Ensure SpiSetter implements the SetterInterface
var _ SetterInterface = (*SpiSetter)(nil)

// New creates the platform setter. Backend and mode selection only apply to
// Linux; Windows keeps the style configured in its own personalization
// settings.
func New(backend Backend, _ Mode) (SetterInterface, error) {
	logger := logging.GetLogger("wallpaper")
	if backend != "" && backend != BackendAuto {
		logger.Warn().Str("backend", backend.String()).Msg("Backend setting has no effect on Windows")
	}
	return &SpiSetter{logger: logger}, nil
}

// Name identifies the mechanism in use
func (s *SpiSetter) Name() string {
	return "user32"
}

// Set applies the image at path as the desktop background
func (s *SpiSetter) Set(ctx context.Context, path string) error {
	s.logger.Debug().Str("image", path).Msg("Setting wallpaper")

	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("encoding wallpaper path: %w", err)
	}
	ret, _, callErr := procSystemParametersInfoW.Call(
		uintptr(spiSetDeskWallpaper),
		0,
		uintptr(unsafe.Pointer(pathPtr)),
		uintptr(spifUpdateINIFile|spifSendChange),
	)
	if ret == 0 {
		return fmt.Errorf("SystemParametersInfoW failed: %w", callErr)
	}
	return nil
}
