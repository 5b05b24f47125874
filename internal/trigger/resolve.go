package trigger

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyTable marks a trigger table with no entries, from which no
// wallpaper can ever be resolved
var ErrEmptyTable = errors.New("trigger table has no entries")

// Resolve returns the trigger in effect at the given time of day: the latest
// trigger whose time is not after at. When at precedes every trigger, the
// day's final trigger is still in effect from the previous day, so the table
// wraps around to its latest entry.
//
// The receiver is not modified; resolution sorts a copy.
func (t *Table) Resolve(at TimeOfDay) (Trigger, error) {
	if len(t.Triggers) == 0 {
		return Trigger{}, fmt.Errorf("%s: %w", t.Path, ErrEmptyTable)
	}

	ordered := make([]Trigger, len(t.Triggers))
	copy(ordered, t.Triggers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Time < ordered[j].Time
	})

	// Wrap-around default: before the first trigger of the day, the latest
	// trigger is still in effect.
	selected := ordered[len(ordered)-1]
	for _, tr := range ordered {
		if tr.Time > at {
			break
		}
		selected = tr
	}
	return selected, nil
}
