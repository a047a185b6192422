package chart

import "slices"

// Point is one bar in a chart: a label on the X axis and a magnitude on
// the Y axis.
type Point struct {
	X float64 `toml:"x" json:"x"`
	Y float64 `toml:"y" json:"y"`
}

// Series is an ordered sequence of points. The order is the left-to-right
// order of the bars. A Series must not be modified after it has been
// handed to a Viewport.
type Series []Point

// NewSeries returns a Series holding a copy of points.
func NewSeries(points ...Point) Series {
	return slices.Clone(Series(points))
}

// Reversed returns a reversed copy of the series.
func (s Series) Reversed() Series {
	out := slices.Clone(s)
	slices.Reverse(out)
	return out
}

// MaxY returns the largest Y value in the series, or zero if the series is
// empty.
func (s Series) MaxY() float64 {
	if len(s) == 0 {
		return 0
	}
	maxY := s[0].Y
	for _, p := range s[1:] {
		maxY = max(maxY, p.Y)
	}
	return maxY
}
