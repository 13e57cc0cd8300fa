package actions

import (
	"pancake.dev/pancake/internal/runtime"
	"pancake.dev/pancake/internal/tui"
)

// LogOptions contains options for the log command
type LogOptions struct {
	Short bool
}

// LogAction prints every tracked stack
func LogAction(ctx *runtime.Context, opts LogOptions) error {
	if ctx.Graph.Len() == 0 {
		ctx.Splog.Info("No tracked stacks yet. Create one with `pk branch create <name>`.")
		return nil
	}

	forest := ctx.Graph.BuildForest()
	if opts.Short {
		ctx.Splog.Page(tui.RenderForestShort(forest))
	} else {
		ctx.Splog.Page(tui.RenderForest(forest))
	}
	return nil
}
