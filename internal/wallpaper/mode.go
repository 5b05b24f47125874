package wallpaper

import "fmt"

// Mode represents how the image is scaled onto the screen
type Mode string

const (
	// ModeFill zooms the image until it covers the screen, cropping overflow
	ModeFill Mode = "fill"
	// ModeFit scales the image to be fully visible, leaving borders
	ModeFit Mode = "fit"
	// ModeCenter places the image unscaled in the middle of the screen
	ModeCenter Mode = "center"
	// ModeStretch distorts the image to the exact screen dimensions
	ModeStretch Mode = "stretch"
	// ModeTile repeats the image across the screen
	ModeTile Mode = "tile"
)

// IsValid checks if the mode value is valid
func (m Mode) IsValid() bool {
	switch m {
	case ModeFill, ModeFit, ModeCenter, ModeStretch, ModeTile:
		return true
	}
	return false
}

// String returns the string representation of the mode
func (m Mode) String() string {
	return string(m)
}

// ParseMode parses a string into a Mode type
// Returns an error if the value is invalid
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid wallpaper mode: %s (must be one of %v)", s, GetAllModes())
	}
	return mode, nil
}

// GetAllModes returns all valid mode values
func GetAllModes() []Mode {
	return []Mode{ModeFill, ModeFit, ModeCenter, ModeStretch, ModeTile}
}
