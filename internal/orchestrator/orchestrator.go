// Package orchestrator drives one resolution cycle: load the schedule
// document, resolve today's theme, load that theme's trigger table, resolve
// the trigger in effect now, verify the image and apply it. Every failure
// aborts the cycle before the wallpaper is touched.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/wallshift/wallshift/internal/logging"
	"github.com/wallshift/wallshift/internal/schedule"
	"github.com/wallshift/wallshift/internal/signals"
	"github.com/wallshift/wallshift/internal/theme"
	"github.com/wallshift/wallshift/internal/trigger"
	"github.com/wallshift/wallshift/internal/wallpaper"
)

var (
	// ErrMissingImage marks a resolved trigger whose image does not exist on disk
	ErrMissingImage = errors.New("resolved image does not exist")

	// ErrApplyFailed marks a failure of the wallpaper-setting call itself
	ErrApplyFailed = errors.New("wallpaper could not be applied")
)

// Selection is the transient outcome of one resolution cycle. It lives for
// exactly one invocation and is never persisted.
type Selection struct {
	Theme   string                `json:"theme"`
	Reason  theme.SelectionReason `json:"reason"`
	Trigger trigger.TimeOfDay     `json:"trigger"`
	Image   string                `json:"image"`
}

// Orchestrator runs resolution cycles over one schedule document
type Orchestrator struct {
	fsys       afero.Fs
	configPath string
	setter     wallpaper.SetterInterface
	logger     zerolog.Logger
}

// New creates a new Orchestrator for the schedule document at configPath
func New(fsys afero.Fs, configPath string, setter wallpaper.SetterInterface) *Orchestrator {
	return &Orchestrator{
		fsys:       fsys,
		configPath: configPath,
		setter:     setter,
		logger:     logging.GetLogger("orchestrator"),
	}
}

// Resolve performs the read-only part of a cycle: everything up to and
// including the image existence check, without touching the wallpaper.
func (o *Orchestrator) Resolve(now time.Time) (*Selection, error) {
	sel, stage, err := o.resolve(now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", stage, err)
	}
	return sel, nil
}

// Run performs a full cycle. The wallpaper setter is invoked exactly once on
// success and not at all on failure, so a failed run leaves the previous
// wallpaper in effect.
func (o *Orchestrator) Run(ctx context.Context, now time.Time) (*Selection, error) {
	sel, stage, err := o.resolve(now)
	if err != nil {
		wrapped := fmt.Errorf("%s: %w", stage, err)
		o.logger.Error().Err(err).Stringer("stage", stage).Msg("Resolution failed, wallpaper left untouched")
		signals.EmitRunFailed(ctx, stage.String(), wrapped)
		return nil, wrapped
	}

	if err := o.setter.Set(ctx, sel.Image); err != nil {
		wrapped := fmt.Errorf("%s: setting %s via %s: %w: %w", StageApply, sel.Image, o.setter.Name(), ErrApplyFailed, err)
		o.logger.Error().Err(err).Stringer("stage", StageApply).Str("image", sel.Image).Msg("Apply failed")
		signals.EmitRunFailed(ctx, StageApply.String(), wrapped)
		return nil, wrapped
	}

	o.logger.Info().
		Str("theme", sel.Theme).
		Str("reason", sel.Reason.String()).
		Stringer("trigger", sel.Trigger).
		Str("image", sel.Image).
		Str("setter", o.setter.Name()).
		Msg("Wallpaper applied")
	signals.EmitWallpaperApplied(ctx, sel.Theme, sel.Reason.String(), sel.Trigger.String(), sel.Image)
	return sel, nil
}

// resolve walks the pipeline and reports the stage of the first failure
func (o *Orchestrator) resolve(now time.Time) (*Selection, Stage, error) {
	doc, err := schedule.Load(o.fsys, o.configPath)
	if err != nil {
		return nil, StageLoadSchedule, err
	}

	day := now.Weekday()
	seed := theme.DateSeed(now)
	themeName, reason, err := theme.Resolve(doc.Schedule, doc.Library, day, seed)
	if err != nil {
		return nil, StageResolveTheme, err
	}

	tablePath, ok := doc.TriggerPath(themeName)
	if !ok {
		return nil, StageResolveTheme, fmt.Errorf("theme %q: %w", themeName, theme.ErrUnknownTheme)
	}

	table, err := trigger.Load(o.fsys, tablePath)
	if err != nil {
		return nil, StageLoadTriggers, err
	}

	at := trigger.At(now)
	selected, err := table.Resolve(at)
	if err != nil {
		return nil, StageResolveTrigger, err
	}
	if selected.Time > at {
		o.logger.Debug().
			Stringer("now", at).
			Stringer("trigger", selected.Time).
			Msg("Before the day's first trigger, keeping the previous day's final image")
	}

	exists, err := afero.Exists(o.fsys, selected.Image)
	if err != nil {
		return nil, StageVerifyImage, fmt.Errorf("checking image %s: %w", selected.Image, err)
	}
	if !exists {
		return nil, StageVerifyImage, fmt.Errorf("theme %q trigger %s: image %s: %w", themeName, selected.Time, selected.Image, ErrMissingImage)
	}
	if !wallpaper.SupportedImage(selected.Image) {
		o.logger.Warn().Str("image", selected.Image).Msg("Image extension is not a known wallpaper format")
	}

	sel := &Selection{
		Theme:   themeName,
		Reason:  reason,
		Trigger: selected.Time,
		Image:   selected.Image,
	}
	o.logger.Debug().
		Str("theme", sel.Theme).
		Str("reason", sel.Reason.String()).
		Stringer("trigger", sel.Trigger).
		Str("image", sel.Image).
		Msg("Resolved selection")
	return sel, "", nil
}

// Validate checks the whole document tree, not just today's path through it:
// the schedule's referential integrity, every trigger document in the
// library and every image those documents point at. All problems are
// reported together.
func (o *Orchestrator) Validate() error {
	doc, err := schedule.Load(o.fsys, o.configPath)
	if err != nil {
		return err
	}

	var result *multierror.Error
	for day, name := range doc.Schedule {
		if _, ok := doc.Library[name]; !ok {
			result = multierror.Append(result, fmt.Errorf("%s is scheduled for theme %q: %w", day, name, theme.ErrUnknownTheme))
		}
	}
	if len(doc.Library) == 0 {
		result = multierror.Append(result, theme.ErrEmptyLibrary)
	}

	names := doc.Themes()
	sort.Strings(names)
	for _, name := range names {
		tablePath, _ := doc.TriggerPath(name)
		table, err := trigger.Load(o.fsys, tablePath)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("theme %q: %w", name, err))
			continue
		}
		if len(table.Triggers) == 0 {
			result = multierror.Append(result, fmt.Errorf("theme %q: %w", name, trigger.ErrEmptyTable))
			continue
		}
		for _, tr := range table.Triggers {
			exists, err := afero.Exists(o.fsys, tr.Image)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("theme %q trigger %s: checking image %s: %w", name, tr.Time, tr.Image, err))
				continue
			}
			if !exists {
				result = multierror.Append(result, fmt.Errorf("theme %q trigger %s: image %s: %w", name, tr.Time, tr.Image, ErrMissingImage))
			}
		}
	}
	return result.ErrorOrNil()
}
