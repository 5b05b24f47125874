// Package wallpaper applies an image as the desktop background through the
// platform's wallpaper mechanism.
package wallpaper

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// SetterInterface defines the wallpaper-setting collaborator. Setting is
// synchronous and idempotent: applying the same image twice is a no-op in
// effect.
type SetterInterface interface {
	// Set applies the image at the given absolute path as the desktop background
	Set(ctx context.Context, path string) error

	// Name identifies the mechanism in use, for diagnostics
	Name() string
}

// NoopSetter discards every request. Read-only commands use it so resolution
// can run on machines without any wallpaper backend installed.
type NoopSetter struct{}

// Ensure NoopSetter implements the SetterInterface
var _ SetterInterface = (*NoopSetter)(nil)

// Set does nothing
func (*NoopSetter) Set(context.Context, string) error { return nil }

// Name identifies the no-op mechanism
func (*NoopSetter) Name() string { return "noop" }

var supportedExt = mapset.NewSet(
	".jpeg", ".jpg",
	".png",
	".bmp",
	".gif",
	".webp",
)

// SupportedImage reports whether the file extension names a common wallpaper
// image format. Backends may accept more, so an unknown extension is worth a
// warning rather than a refusal.
func SupportedImage(path string) bool {
	return supportedExt.Contains(strings.ToLower(filepath.Ext(path)))
}

// runCommand executes a backend command and folds its output into the error.
// Package variable so tests can intercept invocations.
var runCommand = func(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

var lookPath = exec.LookPath
