package main

import (
	"image"

	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"git.sr.ht/~whereswaldon/scrollchart/backend"
	"git.sr.ht/~whereswaldon/scrollchart/chart"
	"git.sr.ht/~whereswaldon/scrollchart/config"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// UI is responsible for holding the state of and drawing the top-level UI.
type UI struct {
	ws   backend.WindowState
	expl *explorer.Explorer

	panels      []*ChartPanel
	explorerBtn widget.Clickable

	th           *material.Theme
	seriesStream *stream.Stream[backend.SeriesData]
	data         backend.SeriesData
}

func NewUI(ws backend.WindowState, expl *explorer.Explorer, cfg *config.Config) (*UI, error) {
	dirs, err := cfg.Chart.ParseDirections()
	if err != nil {
		return nil, err
	}
	ui := &UI{
		ws:           ws,
		expl:         expl,
		seriesStream: stream.New(ws.Controller, ws.Bundle.Datasource.Series),
	}
	for _, dir := range dirs {
		opts, err := cfg.Chart.Options(dir)
		if err != nil {
			return nil, err
		}
		if ui.th == nil {
			ui.th = newTheme(opts.Colors)
		}
		var saved *chart.Snapshot
		if snap, ok := ws.Saved[dir.String()]; ok {
			saved = &snap
		}
		ui.panels = append(ui.panels, NewChartPanel(dir.String(), opts, nil, saved))
	}
	return ui, nil
}

// Snapshots returns the state of every chart, keyed by chart name.
func (ui *UI) Snapshots() map[string]chart.Snapshot {
	out := make(map[string]chart.Snapshot, len(ui.panels))
	for _, p := range ui.panels {
		if p.HasData() {
			out[p.Name] = p.Snapshot()
		}
	}
	return out
}

// Close stops the charts' animations.
func (ui *UI) Close() {
	for _, p := range ui.panels {
		p.Close()
	}
}

func (ui *UI) hasData() bool {
	for _, p := range ui.panels {
		if p.HasData() {
			return true
		}
	}
	return false
}

// Update the state of the UI from its input and the datasource.
func (ui *UI) Update(gtx C) {
	if data, isNew := ui.seriesStream.ReadNew(gtx); isNew {
		ui.data = data
		if data.Err == nil && len(data.Series) > 0 {
			for _, p := range ui.panels {
				p.SetSeries(data.Series)
			}
		}
	}
	if ui.explorerBtn.Clicked(gtx) {
		ui.ws.Bundle.Datasource.LoadFromFile(ui.expl)
	}
}

func (ui *UI) layoutStatus(gtx C) D {
	if ui.data.Err != nil {
		l := material.Body1(ui.th, ui.data.Err.Error())
		l.Color = errorColor
		return l.Layout(gtx)
	}
	return material.Body1(ui.th, ui.data.Path).Layout(gtx)
}

func (ui *UI) layoutMainArea(gtx C) D {
	children := []layout.FlexChild{
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(4).Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(material.Button(ui.th, &ui.explorerBtn, "Open CSV File").Layout),
					layout.Flexed(1, func(gtx C) D {
						return layout.UniformInset(8).Layout(gtx, ui.layoutStatus)
					}),
				)
			})
		}),
	}
	for _, p := range ui.panels {
		p := p
		children = append(children, layout.Flexed(1, func(gtx C) D {
			return p.Layout(gtx, ui.th)
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (ui *UI) layoutStartScreen(gtx C) D {
	l := material.Body1(ui.th, "No data yet.")
	return layout.Flex{
		Axis:      layout.Vertical,
		Alignment: layout.Middle,
		Spacing:   layout.SpaceAround,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return l.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return material.Button(ui.th, &ui.explorerBtn, "Open CSV File").Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return ui.layoutStatus(gtx)
		}),
	)
}

// Layout the UI into the provided context.
func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	if ui.hasData() {
		return ui.layoutMainArea(gtx)
	}
	return ui.layoutStartScreen(gtx)
}
