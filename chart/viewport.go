package chart

import "math"

// Viewport is the scroll and zoom state of one bar chart. It decides which
// slice of the series is visible, how tall the bars are, and where the
// horizontal gridlines sit. Every derived value is recomputed on request,
// so callers may mutate the viewport and lay out again without any
// invalidation step.
//
// A Viewport is owned by a single chart and must only be used from the
// goroutine that lays that chart out.
type Viewport struct {
	series Series
	// visibleBars is the number of bars displayed at once.
	visibleBars int
	// offset is the fractional index of the first visible bar.
	offset float64
	// target is the threshold separating on-target from below-target bars.
	// It is only authoritative when targetSet is true.
	target    float64
	targetSet bool
	// gridLines is the number of horizontal gridlines drawn.
	gridLines int
	// width and height are the pixel size of the plot area.
	width, height float64
	showLabels    bool
}

// ViewportConfig describes the initial state of a Viewport.
type ViewportConfig struct {
	// VisibleBars is the initial number of bars shown at once. Values below
	// one are treated as one.
	VisibleBars int
	// Target is the threshold value for bar coloring. Unless TargetSet is
	// true it only seeds the target, which then follows the tallest
	// visible bar.
	Target    float64
	TargetSet bool
	// GridLines is the number of horizontal gridlines. Zero disables them.
	GridLines int
	// Offset is the initial fractional scroll position. It is clamped into
	// the valid range.
	Offset float64
}

// NewViewport creates a viewport over series.
func NewViewport(series Series, cfg ViewportConfig) *Viewport {
	v := &Viewport{
		series:      series,
		visibleBars: max(cfg.VisibleBars, 1),
		target:      cfg.Target,
		targetSet:   cfg.TargetSet,
		gridLines:   max(cfg.GridLines, 0),
	}
	v.offset = v.clampOffset(cfg.Offset)
	return v
}

// Series returns the data displayed by the viewport.
func (v *Viewport) Series() Series {
	return v.series
}

// SetSeries replaces the displayed data, keeping the scroll position and
// zoom level as far as the new data allows.
func (v *Viewport) SetSeries(series Series) {
	v.series = series
	v.offset = v.clampOffset(v.offset)
}

// SetViewSize records the pixel size of the plot area. It must be called
// by the layout pass before scroll deltas or scale factors are meaningful.
func (v *Viewport) SetViewSize(width, height float64) {
	v.width = width
	v.height = height
}

// ViewSize returns the most recent plot size passed to SetViewSize.
func (v *Viewport) ViewSize() (width, height float64) {
	return v.width, v.height
}

// VisibleBars returns the number of bars shown at once.
func (v *Viewport) VisibleBars() int {
	return v.visibleBars
}

// Offset returns the fractional index of the first visible bar.
func (v *Viewport) Offset() float64 {
	return v.offset
}

// GridLines returns the number of horizontal gridlines.
func (v *Viewport) GridLines() int {
	return v.gridLines
}

// TargetSet reports whether the target was fixed by the caller rather than
// tracking the tallest visible bar.
func (v *Viewport) TargetSet() bool {
	return v.targetSet
}

// maxOffset is the largest scroll offset that still fills the window.
func (v *Viewport) maxOffset() float64 {
	return max(0, float64(len(v.series)-v.visibleBars))
}

func (v *Viewport) clampOffset(offset float64) float64 {
	if math.IsNaN(offset) {
		return 0
	}
	return clamp(offset, 0, v.maxOffset())
}

// ScrollBy moves the window by a drag of px pixels. A positive px is a
// drag towards the end of the axis, which reveals earlier bars. Scrolling
// stops at both ends of the series. ScrollBy does nothing when there is no
// data or the view has no width.
func (v *Viewport) ScrollBy(px float64) {
	if len(v.series) == 0 || v.width <= 0 || math.IsNaN(px) {
		return
	}
	bars := px * float64(v.visibleBars) / v.width
	if px > 0 {
		v.offset = max(0, v.offset-bars)
	} else {
		v.offset = min(float64(len(v.series)-1-(v.visibleBars-1)), v.offset-bars)
	}
	// The series may be shorter than the window, in which case the upper
	// bound above is negative.
	v.offset = v.clampOffset(v.offset)
}

// Zoom changes the number of visible bars by the ratio change. Ratios
// above one zoom in and show fewer bars; ratios below one zoom out. The
// result is kept between one bar and the length of the series.
func (v *Viewport) Zoom(change float64) {
	if change == 1 || change <= 0 || math.IsNaN(change) || math.IsInf(change, 0) {
		return
	}
	bars := max(roundInt(float64(v.visibleBars)/change), 1)
	if n := len(v.series); n > 0 {
		bars = min(bars, n)
	}
	v.visibleBars = bars
	v.offset = v.clampOffset(v.offset)
}

// window returns the index range [start,end) of the visible bars.
func (v *Viewport) window() (start, end int) {
	n := len(v.series)
	first := roundInt(v.offset)
	return clamp(first, 0, n), clamp(first+v.visibleBars, 0, n)
}

// Visible returns the slice of the series currently on screen. The
// returned Series shares storage with the viewport's series and must not
// be modified.
func (v *Viewport) Visible() Series {
	start, end := v.window()
	if start >= end {
		return nil
	}
	return v.series[start:end:end]
}

// Target returns the threshold used for bar coloring and gridlines. When
// the caller did not fix a target, it is the tallest visible bar.
func (v *Viewport) Target() float64 {
	if v.targetSet {
		return v.target
	}
	visible := v.Visible()
	if len(visible) == 0 {
		// Keep reporting the last resolved value so that an empty window
		// does not collapse the gridlines.
		return v.target
	}
	v.target = visible.MaxY()
	return v.target
}

// ScaleFactor returns the number of pixels per unit of Y. The scale fits
// the larger of the target and the tallest visible bar into the view
// height, so a low target never clips a tall bar. It is zero when nothing
// is visible.
func (v *Viewport) ScaleFactor() float64 {
	visible := v.Visible()
	if len(visible) == 0 {
		return 0
	}
	top := max(v.Target(), visible.MaxY())
	if top <= 0 {
		return 0
	}
	return v.height / top
}

// Gridlines returns the values at which horizontal gridlines are drawn,
// starting at the target and descending towards zero in equal steps. There
// are no gridlines without data.
func (v *Viewport) Gridlines() []float64 {
	if v.gridLines <= 0 || len(v.series) == 0 {
		return nil
	}
	target := v.Target()
	step := target / float64(v.gridLines)
	lines := make([]float64, v.gridLines)
	for i := range lines {
		lines[i] = target - step*float64(i)
	}
	return lines
}

// OnTarget reports whether a bar of height y meets the target.
func (v *Viewport) OnTarget(y float64) bool {
	return y >= v.Target()
}

// ShowLabels reports whether per-bar value labels are drawn.
func (v *Viewport) ShowLabels() bool {
	return v.showLabels
}

// ToggleLabels flips the visibility of per-bar value labels.
func (v *Viewport) ToggleLabels() {
	v.showLabels = !v.showLabels
}
