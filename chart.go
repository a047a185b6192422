package main

import (
	"fmt"
	"math"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"git.sr.ht/~whereswaldon/scrollchart/chart"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var replayIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AVReplay)
	return icon
}()

var labelsIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ActionLabel)
	return icon
}()

// ChartPanel is one titled chart with its controls.
type ChartPanel struct {
	Name      string
	state     *chart.BarChart
	replayBtn widget.Clickable
	labelsBtn widget.Clickable
}

// NewChartPanel creates a panel for series. If saved is non-nil the chart resumes from
// it instead.
func NewChartPanel(name string, opts chart.Options, series chart.Series, saved *chart.Snapshot) *ChartPanel {
	p := &ChartPanel{Name: name}
	if saved != nil {
		p.state = chart.RestoreBarChart(*saved, opts)
	} else {
		p.state = chart.NewBarChart(series, opts)
	}
	return p
}

func (p *ChartPanel) HasData() bool {
	return len(p.state.Viewport.Series()) > 0
}

func (p *ChartPanel) SetSeries(series chart.Series) {
	p.state.SetSeries(series)
}

func (p *ChartPanel) Snapshot() chart.Snapshot {
	return p.state.Snapshot()
}

func (p *ChartPanel) Close() {
	p.state.Close()
}

func (p *ChartPanel) Update(gtx C) {
	if p.replayBtn.Clicked(gtx) {
		p.state.Replay(gtx)
	}
	if p.labelsBtn.Clicked(gtx) {
		p.state.Viewport.ToggleLabels()
	}
}

// summary describes the visible window.
func (p *ChartPanel) summary() string {
	vp := p.state.Viewport
	n := len(vp.Series())
	if n == 0 {
		return "no data"
	}
	first := int(math.Round(vp.Offset()))
	last := min(first+vp.VisibleBars(), n)
	return fmt.Sprintf("bars %d-%d of %d, target %s", first+1, last, n, chart.FormatValue(vp.Target()))
}

func (p *ChartPanel) Layout(gtx C, th *material.Theme) D {
	p.Update(gtx)
	return layout.UniformInset(4).Layout(gtx, func(gtx C) D {
		return component.Surface(th).Layout(gtx, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					return p.layoutToolbar(gtx, th)
				}),
				layout.Flexed(1, chart.Chart(th, p.state).Layout),
			)
		})
	})
}

func (p *ChartPanel) layoutToolbar(gtx C, th *material.Theme) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(8).Layout(gtx, material.H6(th, p.Name).Layout)
		}),
		layout.Flexed(1, material.Body2(th, p.summary()).Layout),
		layout.Rigid(func(gtx C) D {
			btn := material.IconButton(th, &p.labelsBtn, labelsIcon, "Toggle value labels")
			btn.Size = unit.Dp(18)
			btn.Inset = layout.UniformInset(6)
			return btn.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			btn := material.IconButton(th, &p.replayBtn, replayIcon, "Replay animation")
			btn.Size = unit.Dp(18)
			btn.Inset = layout.UniformInset(6)
			return layout.UniformInset(4).Layout(gtx, btn.Layout)
		}),
	)
}
