// Package trigger models the per-theme trigger table: an unordered set of
// (time of day, image) pairs from which the entry in effect at a given clock
// time is resolved.
package trigger

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Trigger pairs a time of day with the image shown from that time onward,
// until the next trigger fires.
type Trigger struct {
	Time  TimeOfDay `json:"time"`
	Image string    `json:"path"`
}

// triggerDoc is the wire shape of a single trigger entry. The image location
// may appear under "path" or "image"; "path" wins when both are present.
type triggerDoc struct {
	Time  *TimeOfDay `json:"time"`
	Path  *string    `json:"path"`
	Image *string    `json:"image"`
}

// UnmarshalJSON decodes one trigger entry, accepting "path" and "image" as
// synonyms for the image location
func (tr *Trigger) UnmarshalJSON(data []byte) error {
	var doc triggerDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("malformed trigger entry: %w", err)
	}
	if doc.Time == nil {
		return errors.New(`trigger entry is missing "time"`)
	}
	switch {
	case doc.Path != nil:
		tr.Image = *doc.Path
	case doc.Image != nil:
		tr.Image = *doc.Image
	default:
		return errors.New(`trigger entry is missing an image location ("path" or "image")`)
	}
	tr.Time = *doc.Time
	return nil
}
