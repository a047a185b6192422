package backend

import (
	"context"
	"fmt"

	"gioui.org/app"
	"git.sr.ht/~gioverse/skel/stream"
	"git.sr.ht/~whereswaldon/scrollchart/chart"
)

type WindowState struct {
	Bundle
	Controller *stream.Controller
}

func NewWindowState(ctx context.Context, bundle Bundle, win *app.Window) WindowState {
	return WindowState{
		Bundle:     bundle,
		Controller: stream.NewController(ctx, win.Invalidate),
	}
}

// Bundle holds the application's non-UI resources.
type Bundle struct {
	Datasource *Datasource
	// StatePath is where chart state is saved when the window closes.
	StatePath string
	// Saved holds the chart state loaded at startup, keyed by chart name.
	Saved map[string]chart.Snapshot
}

func NewBundle(ctx context.Context, statePath string) (Bundle, error) {
	ds, err := NewDatasource(ctx)
	if err != nil {
		return Bundle{}, err
	}
	saved, err := LoadState(statePath)
	if err != nil {
		return Bundle{}, fmt.Errorf("failed loading chart state: %w", err)
	}
	return Bundle{
		Datasource: ds,
		StatePath:  statePath,
		Saved:      saved,
	}, nil
}
