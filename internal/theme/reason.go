package theme

// SelectionReason records why a theme was chosen for a day
type SelectionReason string

const (
	// ReasonScheduled means the weekly schedule named the theme explicitly
	ReasonScheduled SelectionReason = "Scheduled"

	// ReasonFallback means the day had no schedule entry and the theme came
	// from the deterministic date-seeded draw
	ReasonFallback SelectionReason = "Fallback"
)

// String returns the string representation of the selection reason
func (r SelectionReason) String() string {
	return string(r)
}
