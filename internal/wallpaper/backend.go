package wallpaper

import "fmt"

// Backend represents the mechanism used to apply the wallpaper
type Backend string

const (
	// BackendAuto probes for the first available mechanism
	BackendAuto Backend = "auto"
	// BackendGsettings drives the GNOME desktop via gsettings
	BackendGsettings Backend = "gsettings"
	// BackendSwww drives Wayland compositors via the swww daemon
	BackendSwww Backend = "swww"
	// BackendFeh sets the X root window via feh
	BackendFeh Backend = "feh"
)

// IsValid checks if the backend value is valid
func (b Backend) IsValid() bool {
	switch b {
	case BackendAuto, BackendGsettings, BackendSwww, BackendFeh:
		return true
	}
	return false
}

// String returns the string representation of the backend
func (b Backend) String() string {
	return string(b)
}

// ParseBackend parses a string into a Backend type
// Returns an error if the value is invalid
func ParseBackend(s string) (Backend, error) {
	backend := Backend(s)
	if !backend.IsValid() {
		return "", fmt.Errorf("invalid wallpaper backend: %s (must be one of %v)", s, GetAllBackends())
	}
	return backend, nil
}

// GetAllBackends returns all valid backend values
func GetAllBackends() []Backend {
	return []Backend{BackendAuto, BackendGsettings, BackendSwww, BackendFeh}
}
