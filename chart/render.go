package chart

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/stroke"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// BarChartStyle draws a BarChart.
type BarChartStyle struct {
	State *BarChart
	Theme *material.Theme

	Width, Height    unit.Dp
	BarWidth         unit.Dp
	BarCornerRadius  unit.Dp
	AxisStrokeWidth  unit.Dp
	YLineStrokeWidth unit.Dp
	TextSize         unit.Sp
	Colors           Colors
}

// Chart returns a style for drawing state with the visual parameters of
// its options.
func Chart(th *material.Theme, state *BarChart) BarChartStyle {
	o := state.Options
	return BarChartStyle{
		State:            state,
		Theme:            th,
		Width:            o.Width,
		Height:           o.Height,
		BarWidth:         o.BarWidth,
		BarCornerRadius:  o.BarCornerRadius,
		AxisStrokeWidth:  o.AxisStrokeWidth,
		YLineStrokeWidth: o.YLineStrokeWidth,
		TextSize:         o.TextSize,
		Colors:           o.Colors,
	}
}

func rec(gtx C, w layout.Widget) (D, op.CallOp) {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return dims, call
}

// FormatValue renders a chart value for a label, with at most two
// decimals and no trailing zeros.
func FormatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func (s BarChartStyle) label(txt string) material.LabelStyle {
	l := material.Label(s.Theme, s.TextSize, txt)
	l.Color = s.Colors.Axis
	l.Alignment = text.Middle
	l.MaxLines = 1
	return l
}

// size returns the chart size within the constraints.
func (s BarChartStyle) size(gtx C) image.Point {
	sz := gtx.Constraints.Max
	if s.Width > 0 {
		sz.X = gtx.Dp(s.Width)
	}
	if s.Height > 0 {
		sz.Y = gtx.Dp(s.Height)
	}
	return gtx.Constraints.Constrain(sz)
}

// Layout processes input and draws the chart.
func (s BarChartStyle) Layout(gtx C) D {
	s.State.Update(gtx)
	vp := s.State.Viewport
	size := s.size(gtx)
	gtx.Constraints = layout.Exact(size)

	// The gutter is sized to the target label, which is the widest
	// gridline label.
	labelGtx := gtx
	labelGtx.Constraints.Min = image.Point{}
	labelDims, _ := rec(labelGtx, s.label(FormatValue(vp.Target())).Layout)

	g := Geometry{
		Direction:   s.State.Options.Direction,
		Width:       float32(size.X),
		Height:      float32(size.Y),
		BarWidth:    float32(gtx.Dp(s.BarWidth)),
		LabelWidth:  float32(labelDims.Size.X),
		LabelHeight: float32(labelDims.Size.Y),
		Small:       float32(gtx.Dp(SpacingSmall)),
		Medium:      float32(gtx.Dp(SpacingMedium)),
		Large:       float32(gtx.Dp(SpacingLarge)),
	}
	plot := g.Plot()
	vp.SetViewSize(float64(plot.Dx()), float64(plot.Dy()))
	frame := g.Frame(vp, s.State.progress(gtx))

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, s.Colors.Background)
	s.State.addGestures(gtx.Ops)

	axisWidth := float32(gtx.Dp(s.AxisStrokeWidth))
	s.strokeLine(gtx, frame.XAxis, axisWidth, stroke.Dashes{})
	s.strokeLine(gtx, frame.YAxis, axisWidth, stroke.Dashes{})

	dashes := stroke.Dashes{
		Phase:  float32(gtx.Dp(DashPhase)),
		Dashes: []float32{float32(gtx.Dp(DashOn)), float32(gtx.Dp(DashOff))},
	}
	gridWidth := float32(gtx.Dp(s.YLineStrokeWidth))
	for _, line := range frame.Gridlines {
		s.strokeLine(gtx, line.Line, gridWidth, dashes)
		s.drawLabel(labelGtx, FormatValue(line.Value), line.Label)
	}

	radius := gtx.Dp(s.BarCornerRadius)
	for _, bar := range frame.Bars {
		col := s.Colors.BelowTarget
		if bar.OnTarget {
			col = s.Colors.OnTarget
		}
		s.fillBar(gtx, bar.Rect, radius, col)
		if frame.ShowLabels && bar.Y != 0 {
			s.drawLabel(labelGtx, FormatValue(bar.Y), bar.ValueLabel)
		}
		s.drawLabel(labelGtx, FormatValue(bar.X), bar.AxisLabel)
	}
	return D{Size: size}
}

func (s BarChartStyle) strokeLine(gtx C, l Line, width float32, dashes stroke.Dashes) {
	if width <= 0 {
		return
	}
	path := stroke.Path{Segments: []stroke.Segment{
		stroke.MoveTo(l.From),
		stroke.LineTo(l.To),
	}}
	paint.FillShape(gtx.Ops, s.Colors.Axis, stroke.Stroke{
		Path:   path,
		Width:  width,
		Dashes: dashes,
	}.Op(gtx.Ops))
}

func (s BarChartStyle) fillBar(gtx C, r Rect, radius int, col color.NRGBA) {
	rect := image.Rect(
		int(floor(r.Min.X)), int(floor(r.Min.Y)),
		int(ceil(r.Max.X)), int(ceil(r.Max.Y)),
	)
	if rect.Empty() {
		return
	}
	radius = min(radius, rect.Dx()/2, rect.Dy()/2)
	paint.FillShape(gtx.Ops, col, clip.UniformRRect(rect, radius).Op(gtx.Ops))
}

// drawLabel draws txt centred on pos.
func (s BarChartStyle) drawLabel(gtx C, txt string, pos f32.Point) {
	dims, call := rec(gtx, s.label(txt).Layout)
	stack := op.Offset(image.Point{
		X: int(math.Round(float64(pos.X))) - dims.Size.X/2,
		Y: int(math.Round(float64(pos.Y))) - dims.Size.Y/2,
	}).Push(gtx.Ops)
	call.Add(gtx.Ops)
	stack.Pop()
}
