// Package schedule models the top-level scheduling document: the weekly
// day-to-theme assignment and the theme library mapping theme names to their
// trigger documents.
package schedule

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/wallshift/wallshift/internal/constants"
)

// Weekly assigns a theme name to days of the week. Days without an entry fall
// back to a deterministic draw from the library.
type Weekly map[time.Weekday]string

// Library maps theme names to their trigger document, as written in the
// source document (relative references are resolved by Document.TriggerPath)
type Library map[string]string

// UnmarshalJSON decodes a day-name keyed object. Day names accept full and
// three-letter spellings case-insensitively; two spellings of the same day
// are rejected rather than letting one silently shadow the other.
func (w *Weekly) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("schedule must map day names to theme names: %w", err)
	}

	var result *multierror.Error
	out := make(Weekly, len(raw))
	for name, themeName := range raw {
		day, err := constants.ParseWeekday(name)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("schedule key %q: %w", name, err))
			continue
		}
		if _, dup := out[day]; dup {
			result = multierror.Append(result, fmt.Errorf("schedule lists %s more than once", day))
			continue
		}
		out[day] = themeName
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	*w = out
	return nil
}
