package theme

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallshift/wallshift/internal/schedule"
)

func TestResolveScheduledThemeWins(t *testing.T) {
	sched := schedule.Weekly{time.Monday: "Dark"}
	lib := schedule.Library{"Dark": "dark.json", "Light": "light.json", "Neon": "neon.json"}

	// The explicit assignment must hold no matter what the seed is.
	for _, seed := range []int64{0, 1, 20260302, -7, 1 << 40} {
		name, reason, err := Resolve(sched, lib, time.Monday, seed)
		require.NoError(t, err)
		assert.Equal(t, "Dark", name)
		assert.Equal(t, ReasonScheduled, reason)
	}
}

func TestResolveUnknownTheme(t *testing.T) {
	sched := schedule.Weekly{time.Monday: "Ghost"}
	lib := schedule.Library{"Dark": "dark.json"}

	_, _, err := Resolve(sched, lib, time.Monday, 20260302)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTheme)
	assert.Contains(t, err.Error(), "Ghost")
}

func TestResolveFallbackIsDeterministic(t *testing.T) {
	lib := schedule.Library{"Dark": "d.json", "Light": "l.json", "Neon": "n.json"}
	seed := DateSeed(time.Date(2026, time.March, 3, 9, 0, 0, 0, time.Local))

	first, reason, err := Resolve(schedule.Weekly{}, lib, time.Tuesday, seed)
	require.NoError(t, err)
	assert.Equal(t, ReasonFallback, reason)
	assert.Contains(t, []string{"Dark", "Light", "Neon"}, first)

	// Hourly and login invocations repeat the call all day; the draw must
	// never change within the date.
	for i := 0; i < 24; i++ {
		again, _, err := Resolve(schedule.Weekly{}, lib, time.Tuesday, seed)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolveFallbackIndependentOfInsertionOrder(t *testing.T) {
	forward := schedule.Library{}
	backward := schedule.Library{}
	names := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"}
	for i, name := range names {
		forward[name] = name + ".json"
		backward[names[len(names)-1-i]] = names[len(names)-1-i] + ".json"
	}

	for seed := int64(1); seed <= 25; seed++ {
		a, _, err := Resolve(schedule.Weekly{}, forward, time.Sunday, seed)
		require.NoError(t, err)
		b, _, err := Resolve(schedule.Weekly{}, backward, time.Sunday, seed)
		require.NoError(t, err)
		assert.Equal(t, a, b, "seed %d: same key set must give the same draw", seed)
	}
}

func TestResolveFallbackVariesAcrossSeeds(t *testing.T) {
	lib := schedule.Library{"Dark": "d.json", "Light": "l.json", "Neon": "n.json"}

	seen := make(map[string]bool)
	for seed := int64(1); seed <= 50; seed++ {
		name, _, err := Resolve(schedule.Weekly{}, lib, time.Sunday, seed)
		require.NoError(t, err)
		seen[name] = true
	}
	assert.Greater(t, len(seen), 1, "different dates should not all draw the same theme")
}

func TestResolveEmptyLibrary(t *testing.T) {
	_, _, err := Resolve(schedule.Weekly{}, schedule.Library{}, time.Wednesday, 20260302)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyLibrary)
}

func TestDateSeed(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected int64
	}{
		{"Regular date", time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), 20260302},
		{"Single digit day", time.Date(2026, time.December, 9, 23, 59, 0, 0, time.UTC), 20261209},
		{"New year", time.Date(2027, time.January, 1, 12, 30, 0, 0, time.UTC), 20270101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DateSeed(tt.date))
		})
	}
}

func TestDateSeedIgnoresClockTime(t *testing.T) {
	morning := time.Date(2026, time.March, 2, 0, 1, 0, 0, time.Local)
	night := time.Date(2026, time.March, 2, 23, 59, 59, 0, time.Local)
	assert.Equal(t, DateSeed(morning), DateSeed(night))
}

func TestSelectionReasonString(t *testing.T) {
	assert.Equal(t, "Scheduled", ReasonScheduled.String())
	assert.Equal(t, "Fallback", ReasonFallback.String())
}
