package chart

import (
	"image"
	"math"

	"gioui.org/gesture"
	"gioui.org/layout"
	"gioui.org/op"
)

// BarChart holds the state of a scrollable bar chart widget: the viewport,
// the entrance animation and the gestures that drive them. Draw it with
// Chart.
type BarChart struct {
	Viewport *Viewport
	Options  Options

	anim Entrance
	// pan scrolls horizontally through the bars.
	pan gesture.Scroll
	// zoom changes the number of visible bars.
	zoom gesture.Scroll
	// tap toggles the value labels.
	tap gesture.Click
	// pendingZoom accumulates zoom ratios too small to change the number
	// of visible bars on their own.
	pendingZoom float64
}

// NewBarChart creates a chart of series. For right-to-left charts the
// series is reversed, so that its first point ends up next to the axis.
func NewBarChart(series Series, opts Options) *BarChart {
	series = orient(series, opts.Direction)
	g := Geometry{Direction: opts.Direction}
	return &BarChart{
		Options: opts,
		Viewport: NewViewport(series, ViewportConfig{
			VisibleBars: opts.VisibleBarCount,
			Target:      opts.Target,
			TargetSet:   opts.TargetSet,
			GridLines:   opts.YLinesCount,
			Offset:      g.InitialOffset(len(series), opts.VisibleBarCount),
		}),
		anim:        Entrance{Disabled: !opts.Animated},
		pendingZoom: 1,
	}
}

// RestoreBarChart recreates a chart saved with Snapshot. The snapshot's
// series is already in display order. Only the visual parameters are
// taken from opts.
func RestoreBarChart(s Snapshot, opts Options) *BarChart {
	return &BarChart{
		Options:     opts,
		Viewport:    RestoreViewport(s),
		anim:        Entrance{Disabled: !opts.Animated},
		pendingZoom: 1,
	}
}

func orient(series Series, dir Direction) Series {
	if dir == RightToLeft {
		return series.Reversed()
	}
	return NewSeries(series...)
}

// SetSeries replaces the data of the chart. If the chart had no data
// before, it scrolls to the starting position for its direction.
func (b *BarChart) SetSeries(series Series) {
	wasEmpty := len(b.Viewport.Series()) == 0
	series = orient(series, b.Options.Direction)
	b.Viewport.SetSeries(series)
	if wasEmpty {
		g := Geometry{Direction: b.Options.Direction}
		b.Viewport.offset = b.Viewport.clampOffset(g.InitialOffset(len(series), b.Viewport.VisibleBars()))
	}
}

// Snapshot returns the persistent state of the chart.
func (b *BarChart) Snapshot() Snapshot {
	return b.Viewport.Snapshot()
}

// Replay plays the entrance animation again.
func (b *BarChart) Replay(gtx layout.Context) {
	b.anim.Restart(gtx.Now)
	gtx.Execute(op.InvalidateCmd{})
}

// Close stops any running animation. It must be called when the chart is
// torn down.
func (b *BarChart) Close() {
	b.anim.Cancel()
}

// Update processes gestures. It is called by Layout, but may be called
// earlier in a frame to observe the new state before drawing.
func (b *BarChart) Update(gtx layout.Context) {
	dist := b.pan.Update(gtx.Metric, gtx.Source, gtx.Now, gesture.Horizontal, image.Rect(-1e6, 0, 1e6, 0))
	if dist != 0 {
		// Gio reports scrolling towards later content as positive, which
		// is a drag towards the start of the axis.
		b.Viewport.ScrollBy(-float64(dist))
	}
	dist = b.zoom.Update(gtx.Metric, gtx.Source, gtx.Now, gesture.Vertical, image.Rect(0, -1e6, 0, 1e6))
	if _, height := b.Viewport.ViewSize(); dist != 0 && height > 0 {
		b.zoomBy(math.Exp(-float64(dist) / height))
	}
	for {
		ev, ok := b.tap.Update(gtx.Source)
		if !ok {
			break
		}
		if ev.Kind == gesture.KindClick {
			b.Viewport.ToggleLabels()
		}
	}
}

// zoomBy applies a zoom ratio once enough has accumulated to change the
// number of visible bars.
func (b *BarChart) zoomBy(ratio float64) {
	if b.pendingZoom == 0 {
		b.pendingZoom = 1
	}
	b.pendingZoom *= ratio
	bars := b.Viewport.VisibleBars()
	if roundInt(float64(bars)/b.pendingZoom) == bars {
		return
	}
	b.Viewport.Zoom(b.pendingZoom)
	b.pendingZoom = 1
}

// progress returns the entrance animation factor for this frame and asks
// for another frame while the animation runs.
func (b *BarChart) progress(gtx layout.Context) float32 {
	b.anim.Start(gtx.Now)
	if b.anim.Running(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}
	return b.anim.Progress(gtx.Now)
}

// addGestures registers the chart's input handlers in the current clip
// area.
func (b *BarChart) addGestures(ops *op.Ops) {
	b.pan.Add(ops)
	b.zoom.Add(ops)
	b.tap.Add(ops)
}
