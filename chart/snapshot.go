package chart

// Snapshot is the persistent part of a Viewport. A host saves it when the
// process is suspended and restores the chart from it later, without
// replaying any gestures.
type Snapshot struct {
	Target          float64 `toml:"target" json:"target"`
	TargetSet       bool    `toml:"target_set" json:"targetSet"`
	VisibleBarCount int     `toml:"visible_bar_count" json:"visibleBarCount"`
	YLinesCount     int     `toml:"y_lines_count" json:"yLinesCount"`
	Series          Series  `toml:"series" json:"series"`
	ScrollOffset    float64 `toml:"scroll_offset" json:"scrollOffset"`
}

// Snapshot captures the state needed to rebuild the viewport.
func (v *Viewport) Snapshot() Snapshot {
	return Snapshot{
		Target:          v.Target(),
		TargetSet:       v.targetSet,
		VisibleBarCount: v.visibleBars,
		YLinesCount:     v.gridLines,
		Series:          NewSeries(v.series...),
		ScrollOffset:    v.offset,
	}
}

// RestoreViewport rebuilds a viewport from a snapshot. Values that no
// longer fit the series are clamped rather than trusted.
func RestoreViewport(s Snapshot) *Viewport {
	return NewViewport(NewSeries(s.Series...), ViewportConfig{
		VisibleBars: s.VisibleBarCount,
		Target:      s.Target,
		TargetSet:   s.TargetSet,
		GridLines:   s.YLinesCount,
		Offset:      s.ScrollOffset,
	})
}
