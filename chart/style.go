package chart

import (
	"image/color"

	"gioui.org/unit"
)

// Spacing around the plot area.
const (
	SpacingSmall  unit.Dp = 16
	SpacingMedium unit.Dp = 32
	SpacingLarge  unit.Dp = 48
)

// Dash pattern of the gridlines.
const (
	DashOn    unit.Dp = 10
	DashOff   unit.Dp = 4
	DashPhase unit.Dp = 0
)

// Default chart parameters.
const (
	DefaultTarget          = 8
	DefaultVisibleBarCount = 6
	DefaultYLinesCount     = 4
	DefaultAnimated        = true

	DefaultAxisStrokeWidth  unit.Dp = 2
	DefaultYLineStrokeWidth unit.Dp = 1
	DefaultBarWidth         unit.Dp = 30
	DefaultBarCornerRadius  unit.Dp = 0
	DefaultTextSize         unit.Sp = 14
)

// Colors of the parts of a chart.
type Colors struct {
	Background color.NRGBA
	// Axis colors the axes, gridlines and labels.
	Axis color.NRGBA
	// OnTarget colors bars at or above the target.
	OnTarget color.NRGBA
	// BelowTarget colors bars under the target.
	BelowTarget color.NRGBA
}

// DefaultColors returns a light color scheme with green bars for values
// meeting the target and grey ones for the rest.
func DefaultColors() Colors {
	return Colors{
		Background:  color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Axis:        color.NRGBA{A: 0xff},
		OnTarget:    color.NRGBA{G: 0xff, A: 0xff},
		BelowTarget: color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
	}
}

// Options configures a chart. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Direction Direction
	// Width and Height bound the chart. Zero fills the available space.
	Width, Height unit.Dp
	// VisibleBarCount is the number of bars shown before any zooming.
	VisibleBarCount int
	// Target is the threshold between on-target and below-target bars.
	// When TargetSet is false the tallest visible bar is used instead.
	Target    float64
	TargetSet bool
	// YLinesCount is the number of dashed horizontal gridlines.
	YLinesCount int

	BarWidth         unit.Dp
	BarCornerRadius  unit.Dp
	AxisStrokeWidth  unit.Dp
	YLineStrokeWidth unit.Dp
	TextSize         unit.Sp
	Colors           Colors

	// Animated makes the bars grow into place when first shown.
	Animated bool
}

// DefaultOptions returns the options of a left-to-right chart with a fixed
// target.
func DefaultOptions() Options {
	return Options{
		Direction:        LeftToRight,
		VisibleBarCount:  DefaultVisibleBarCount,
		Target:           DefaultTarget,
		TargetSet:        true,
		YLinesCount:      DefaultYLinesCount,
		BarWidth:         DefaultBarWidth,
		BarCornerRadius:  DefaultBarCornerRadius,
		AxisStrokeWidth:  DefaultAxisStrokeWidth,
		YLineStrokeWidth: DefaultYLineStrokeWidth,
		TextSize:         DefaultTextSize,
		Colors:           DefaultColors(),
		Animated:         DefaultAnimated,
	}
}
