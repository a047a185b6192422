package chart

import "testing"

func TestNewBarChartDirection(t *testing.T) {
	ltr := NewBarChart(sampleSeries(), DefaultOptions())
	if ltr.Viewport.Offset() != 0 {
		t.Errorf("ltr chart should start at the first bar, got offset %v", ltr.Viewport.Offset())
	}
	if ltr.Viewport.Series()[0].X != 10 {
		t.Errorf("ltr chart should keep the series order")
	}

	opts := DefaultOptions()
	opts.Direction = RightToLeft
	rtl := NewBarChart(sampleSeries(), opts)
	if rtl.Viewport.Offset() != 5 {
		t.Errorf("rtl chart should start at the last bars, got offset %v", rtl.Viewport.Offset())
	}
	if rtl.Viewport.Series()[0].X != 20 {
		t.Errorf("rtl chart should reverse the series, got %v", rtl.Viewport.Series())
	}
}

func TestSetSeriesOnEmptyChart(t *testing.T) {
	opts := DefaultOptions()
	opts.Direction = RightToLeft
	b := NewBarChart(nil, opts)
	if b.Viewport.Offset() != 0 {
		t.Errorf("expected an empty chart at offset 0, got %v", b.Viewport.Offset())
	}
	b.SetSeries(sampleSeries())
	if b.Viewport.Offset() != 5 {
		t.Errorf("expected loading data to scroll to the start, got %v", b.Viewport.Offset())
	}

	b.Viewport.offset = 2
	b.SetSeries(sampleSeries())
	if b.Viewport.Offset() != 2 {
		t.Errorf("reloading data should keep the scroll position, got %v", b.Viewport.Offset())
	}
}

func TestZoomAccumulates(t *testing.T) {
	b := NewBarChart(sampleSeries(), DefaultOptions())
	b.zoomBy(0.95)
	if b.Viewport.VisibleBars() != 6 {
		t.Errorf("a small zoom should not change the bars yet, got %d", b.Viewport.VisibleBars())
	}
	b.zoomBy(0.95)
	if b.Viewport.VisibleBars() != 7 {
		t.Errorf("expected accumulated zoom to show 7 bars, got %d", b.Viewport.VisibleBars())
	}
	if b.pendingZoom != 1 {
		t.Errorf("expected the pending zoom to reset, got %v", b.pendingZoom)
	}
}

func TestRestoreBarChart(t *testing.T) {
	opts := DefaultOptions()
	opts.Direction = RightToLeft
	b := NewBarChart(sampleSeries(), opts)
	b.Viewport.ToggleLabels()
	r := RestoreBarChart(b.Snapshot(), opts)
	if r.Viewport.Offset() != b.Viewport.Offset() {
		t.Errorf("expected offset %v, got %v", b.Viewport.Offset(), r.Viewport.Offset())
	}
	if r.Viewport.Series()[0] != b.Viewport.Series()[0] {
		t.Errorf("restoring must not reverse the series again")
	}
}

func TestFormatValue(t *testing.T) {
	for _, tc := range []struct {
		in       float64
		expected string
	}{
		{in: 8, expected: "8"},
		{in: 0, expected: "0"},
		{in: -3, expected: "-3"},
		{in: 2.5, expected: "2.5"},
		{in: 2.6666, expected: "2.67"},
		{in: 0.1, expected: "0.1"},
	} {
		if out := FormatValue(tc.in); out != tc.expected {
			t.Errorf("FormatValue(%v): expected %q, got %q", tc.in, tc.expected, out)
		}
	}
}
