package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// ErrInvalidDocument marks a schedule document that could not be parsed or
// failed validation
var ErrInvalidDocument = errors.New("invalid schedule document")

// Document is the loaded top-level configuration. Trigger references in
// Library stay as written; TriggerPath resolves them against Dir on demand.
type Document struct {
	Schedule Weekly  `json:"schedule"`
	Library  Library `json:"triggers"`

	// Path is the document the schedule was loaded from, for diagnostics
	Path string `json:"-"`
	// Dir is the document's directory, the base for relative trigger references
	Dir string `json:"-"`
}

// Load reads and validates the schedule document at path
func Load(fsys afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule document %s: %w", path, err)
	}

	doc := &Document{Path: path, Dir: filepath.Dir(path)}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing schedule document %s: %w: %w", path, ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("validating schedule document %s: %w: %w", path, ErrInvalidDocument, err)
	}
	return doc, nil
}

// Validate checks the structural rules of the document and reports every
// violation. Referential rules (a scheduled theme actually existing in the
// library) are resolution concerns and surface when the day in question is
// resolved.
func (d *Document) Validate() error {
	var result *multierror.Error
	for day, themeName := range d.Schedule {
		if themeName == "" {
			result = multierror.Append(result, fmt.Errorf("schedule entry for %s names no theme", day))
		}
	}
	for themeName, ref := range d.Library {
		if themeName == "" {
			result = multierror.Append(result, errors.New("library contains a theme with an empty name"))
		}
		if ref == "" {
			result = multierror.Append(result, fmt.Errorf("library theme %q references no trigger document", themeName))
		}
	}
	return result.ErrorOrNil()
}

// TriggerPath resolves the trigger document reference of a library theme
// against the schedule document's own directory. The second return reports
// whether the theme exists in the library.
func (d *Document) TriggerPath(themeName string) (string, bool) {
	ref, ok := d.Library[themeName]
	if !ok {
		return "", false
	}
	if !filepath.IsAbs(ref) {
		ref = filepath.Join(d.Dir, ref)
	}
	return ref, true
}

// Themes returns the library's theme names in no particular order
func (d *Document) Themes() []string {
	names := make([]string, 0, len(d.Library))
	for name := range d.Library {
		names = append(names, name)
	}
	return names
}
