package trigger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

var (
	// ErrInvalidTable marks a trigger document that could not be parsed or
	// failed validation
	ErrInvalidTable = errors.New("invalid trigger document")
	// ErrDuplicateTime marks two trigger entries sharing the same time of day
	ErrDuplicateTime = errors.New("duplicate trigger time")
)

// Table is the trigger set of one theme, loaded from a JSON document.
// Relative image locations are resolved against Dir at load time, so every
// Trigger in a loaded table carries an absolute image path.
type Table struct {
	Triggers []Trigger
	// Path is the document the table was loaded from, for diagnostics
	Path string
	// Dir is the document's directory, the base for relative image locations
	Dir string
}

// UnmarshalJSON decodes a trigger document. Two shapes are accepted: a bare
// array of entries, or an object carrying the array under "triggers".
func (t *Table) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return errors.New("empty document")
	}
	switch trimmed[0] {
	case '[':
		return json.Unmarshal(data, &t.Triggers)
	case '{':
		var doc struct {
			Triggers *[]Trigger `json:"triggers"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		if doc.Triggers == nil {
			return errors.New(`document object carries no "triggers" array`)
		}
		t.Triggers = *doc.Triggers
		return nil
	default:
		return errors.New("document must be a trigger array or an object containing one")
	}
}

// Load reads and validates the trigger document at path. Image locations are
// made absolute against the document's own directory, never the process
// working directory.
func Load(fsys afero.Fs, path string) (*Table, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading trigger document %s: %w", path, err)
	}

	table := &Table{Path: path, Dir: filepath.Dir(path)}
	if err := json.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("parsing trigger document %s: %w: %w", path, ErrInvalidTable, err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("validating trigger document %s: %w: %w", path, ErrInvalidTable, err)
	}

	for i := range table.Triggers {
		if !filepath.IsAbs(table.Triggers[i].Image) {
			table.Triggers[i].Image = filepath.Join(table.Dir, table.Triggers[i].Image)
		}
	}
	return table, nil
}

// Validate checks the structural rules of a table and reports every
// violation, not just the first. Duplicate times of day are rejected so the
// entry in effect is never order-dependent.
func (t *Table) Validate() error {
	var result *multierror.Error
	seen := make(map[TimeOfDay]bool, len(t.Triggers))
	for i, tr := range t.Triggers {
		if tr.Image == "" {
			result = multierror.Append(result, fmt.Errorf("entry %d (%s): image location is empty", i, tr.Time))
		}
		if seen[tr.Time] {
			result = multierror.Append(result, fmt.Errorf("entry %d: %w %s", i, ErrDuplicateTime, tr.Time))
		}
		seen[tr.Time] = true
	}
	return result.ErrorOrNil()
}
