package orchestrator

// Stage identifies the pipeline step a failure occurred in
type Stage string

const (
	// StageLoadSchedule covers reading and parsing the schedule document
	StageLoadSchedule Stage = "load-schedule"
	// StageResolveTheme covers the day-to-theme resolution
	StageResolveTheme Stage = "resolve-theme"
	// StageLoadTriggers covers reading and parsing the theme's trigger document
	StageLoadTriggers Stage = "load-triggers"
	// StageResolveTrigger covers the time-of-day trigger resolution
	StageResolveTrigger Stage = "resolve-trigger"
	// StageVerifyImage covers the existence check of the resolved image
	StageVerifyImage Stage = "verify-image"
	// StageApply covers the wallpaper-setting call itself
	StageApply Stage = "apply"
)

// String returns the string representation of the stage
func (s Stage) String() string {
	return string(s)
}
