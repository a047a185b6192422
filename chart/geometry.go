package chart

import "gioui.org/f32"

// Direction selects which side of the chart the Y axis sits on and where
// scrolling starts.
type Direction uint8

const (
	// LeftToRight puts the Y axis on the left and starts at the first bar.
	LeftToRight Direction = iota
	// RightToLeft puts the Y axis on the right and starts at the last
	// bars. The series is displayed reversed.
	RightToLeft
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	default:
		return "unknown"
	}
}

// Line is a straight segment in pixel space.
type Line struct {
	From, To f32.Point
}

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	Min, Max f32.Point
}

// Dx returns the width of r.
func (r Rect) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rect) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Gridline is a horizontal reference line and the anchor of its label.
type Gridline struct {
	Value float64
	Line  Line
	// Label is the centre of the value label.
	Label f32.Point
}

// Bar is the on-screen geometry of one visible data point.
type Bar struct {
	Point
	Rect Rect
	// OnTarget is true when the bar's value meets the target.
	OnTarget bool
	// ValueLabel is the centre of the label above the bar.
	ValueLabel f32.Point
	// AxisLabel is the centre of the X value label below the axis.
	AxisLabel f32.Point
}

// Frame is everything a renderer needs to draw one frame of a chart.
type Frame struct {
	Plot         Rect
	XAxis, YAxis Line
	Gridlines    []Gridline
	Bars         []Bar
	ShowLabels   bool
	Target       float64
	Scale        float64
}

// Geometry converts viewport state into pixel positions. All lengths are
// in pixels.
type Geometry struct {
	Direction Direction
	// Width and Height are the size of the whole chart, labels included.
	Width, Height float32
	BarWidth      float32
	// LabelWidth and LabelHeight are the size of the widest gridline label.
	LabelWidth, LabelHeight float32
	// Small, Medium and Large are the spacings around the plot.
	Small, Medium, Large float32
}

// Plot returns the rectangle holding the bars. It leaves room for the
// gridline labels on the axis side, value labels above and X labels below.
func (g Geometry) Plot() Rect {
	gutter := g.LabelWidth + g.Medium
	r := Rect{
		Min: f32.Pt(0, g.LabelHeight+g.Small),
		Max: f32.Pt(g.Width, g.Height-g.Large),
	}
	if g.Direction == RightToLeft {
		r.Max.X -= gutter
	} else {
		r.Min.X += gutter
	}
	r.Max.X = max(r.Max.X, r.Min.X)
	r.Max.Y = max(r.Max.Y, r.Min.Y)
	return r
}

// InitialOffset returns the scroll offset a chart of length n starts at.
func (g Geometry) InitialOffset(n, visibleBars int) float64 {
	if g.Direction == RightToLeft {
		return float64(max(n-visibleBars, 0))
	}
	return 0
}

// axisX is the horizontal position of the Y axis.
func (g Geometry) axisX(plot Rect) float32 {
	if g.Direction == RightToLeft {
		return plot.Max.X
	}
	return plot.Min.X
}

// gridLabelX is the horizontal centre of the gridline labels.
func (g Geometry) gridLabelX(plot Rect) float32 {
	if g.Direction == RightToLeft {
		return plot.Max.X + g.Medium/2 + g.LabelWidth/2
	}
	return plot.Min.X - g.Medium/2 - g.LabelWidth/2
}

// Frame lays out the visible part of v. The viewport's view size should
// already match Plot. progress is the entrance animation factor and only
// scales bar heights.
func (g Geometry) Frame(v *Viewport, progress float32) Frame {
	plot := g.Plot()
	scale := v.ScaleFactor()
	axisX := g.axisX(plot)
	f := Frame{
		Plot:       plot,
		XAxis:      Line{From: f32.Pt(plot.Min.X, plot.Max.Y), To: plot.Max},
		YAxis:      Line{From: f32.Pt(axisX, plot.Min.Y), To: f32.Pt(axisX, plot.Max.Y)},
		ShowLabels: v.ShowLabels(),
		Target:     v.Target(),
		Scale:      scale,
	}
	if scale == 0 {
		return f
	}

	labelX := g.gridLabelX(plot)
	for _, value := range v.Gridlines() {
		y := plot.Max.Y - float32(value*scale)
		f.Gridlines = append(f.Gridlines, Gridline{
			Value: value,
			Line:  Line{From: f32.Pt(plot.Min.X, y), To: f32.Pt(plot.Max.X, y)},
			Label: f32.Pt(labelX, y),
		})
	}

	visible := v.Visible()
	slot := plot.Dx() / float32(v.VisibleBars())
	barWidth := min(g.BarWidth, slot)
	var barOffset float32
	if g.Direction == LeftToRight {
		// Keep the bars clear of the axis on the left.
		barOffset = slot - barWidth
	}
	f.Bars = make([]Bar, 0, len(visible))
	for i, p := range visible {
		x := plot.Min.X + plot.Dx()*float32(i)/float32(v.VisibleBars()) + barOffset
		full := max(float32(p.Y*scale), 0)
		height := full * progress
		centre := x + barWidth/2
		f.Bars = append(f.Bars, Bar{
			Point: p,
			Rect: Rect{
				Min: f32.Pt(x, plot.Max.Y-height),
				Max: f32.Pt(x+barWidth, plot.Max.Y),
			},
			OnTarget:   v.OnTarget(p.Y),
			ValueLabel: f32.Pt(centre, plot.Max.Y-full-g.Small-g.LabelHeight/2),
			AxisLabel:  f32.Pt(centre, plot.Max.Y+g.Large/2),
		})
	}
	return f
}
