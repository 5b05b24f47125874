// Package theme resolves which theme a day uses: the weekly schedule's
// explicit assignment when one exists, otherwise a deterministic date-seeded
// draw from the library.
package theme

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/wallshift/wallshift/internal/logging"
	"github.com/wallshift/wallshift/internal/schedule"
)

var (
	// ErrUnknownTheme marks a schedule entry naming a theme the library does
	// not contain. An explicit misconfiguration surfaces instead of silently
	// falling back to the draw.
	ErrUnknownTheme = errors.New("scheduled theme is not in the library")

	// ErrEmptyLibrary marks a fallback attempt over a library with no themes
	ErrEmptyLibrary = errors.New("theme library is empty")
)

// DateSeed derives the pseudo-random seed from a calendar date. The seed is
// constant for the whole date and changes only at rollover, so every
// invocation on the same day draws the same fallback theme.
func DateSeed(t time.Time) int64 {
	return int64(t.Year()*10000 + int(t.Month())*100 + t.Day())
}

// Resolve returns the theme assigned to day. A schedule entry always wins and
// must name a library theme. Unmapped days draw uniformly from the library's
// key set with a generator seeded by seed; the draw depends only on the seed
// and the set of theme names, never on map iteration order.
func Resolve(sched schedule.Weekly, lib schedule.Library, day time.Weekday, seed int64) (string, SelectionReason, error) {
	logger := logging.GetLogger("theme")

	if name, ok := sched[day]; ok {
		if _, known := lib[name]; !known {
			return "", "", fmt.Errorf("%s is scheduled for theme %q: %w", day, name, ErrUnknownTheme)
		}
		logger.Debug().
			Stringer("day", day).
			Str("theme", name).
			Str("reason", ReasonScheduled.String()).
			Msg("Resolved theme")
		return name, ReasonScheduled, nil
	}

	if len(lib) == 0 {
		return "", "", fmt.Errorf("no theme scheduled for %s and nothing to fall back to: %w", day, ErrEmptyLibrary)
	}

	names := make([]string, 0, len(lib))
	for name := range lib {
		names = append(names, name)
	}
	sort.Strings(names)

	rng := rand.New(rand.NewSource(seed))
	name := names[rng.Intn(len(names))]
	logger.Debug().
		Stringer("day", day).
		Int64("seed", seed).
		Str("theme", name).
		Str("reason", ReasonFallback.String()).
		Msg("Resolved theme")
	return name, ReasonFallback, nil
}
