package signals

import (
	"context"

	"github.com/maniartech/signals"
)

// AppliedData contains data associated with a successful wallpaper change
type AppliedData struct {
	Theme   string
	Reason  string
	Trigger string
	Image   string
}

// RunFailedData contains data associated with a failed resolution cycle
type RunFailedData struct {
	Stage string
	Err   error
}

// Signal definitions using generics
var WallpaperApplied = signals.New[AppliedData]()
var RunFailed = signals.New[RunFailedData]()

// EmitWallpaperApplied emits a signal when a wallpaper has been applied
func EmitWallpaperApplied(ctx context.Context, theme, reason, trigger, image string) {
	WallpaperApplied.Emit(ctx, AppliedData{
		Theme:   theme,
		Reason:  reason,
		Trigger: trigger,
		Image:   image,
	})
}

// EmitRunFailed emits a signal when a resolution cycle fails
func EmitRunFailed(ctx context.Context, stage string, err error) {
	RunFailed.Emit(ctx, RunFailedData{
		Stage: stage,
		Err:   err,
	})
}

// OnWallpaperApplied registers a handler for successful wallpaper changes
func OnWallpaperApplied(handler func(ctx context.Context, data AppliedData), key ...string) {
	if len(key) > 0 {
		WallpaperApplied.AddListener(handler, key[0])
	} else {
		WallpaperApplied.AddListener(handler)
	}
}

// OnRunFailed registers a handler for failed resolution cycles
func OnRunFailed(handler func(ctx context.Context, data RunFailedData), key ...string) {
	if len(key) > 0 {
		RunFailed.AddListener(handler, key[0])
	} else {
		RunFailed.AddListener(handler)
	}
}
