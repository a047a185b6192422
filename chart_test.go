package main

import (
	"testing"

	"git.sr.ht/~whereswaldon/scrollchart/chart"
)

func testSeries() chart.Series {
	return chart.Series{
		{X: 10, Y: 1},
		{X: 11, Y: 2},
		{X: 12, Y: 8},
		{X: 13, Y: 3},
		{X: 14, Y: 5},
		{X: 15, Y: 6},
		{X: 16, Y: 9},
		{X: 17, Y: 4},
	}
}

func TestChartPanelSummary(t *testing.T) {
	p := NewChartPanel("ltr", chart.DefaultOptions(), nil, nil)
	if p.HasData() {
		t.Errorf("expected an empty panel")
	}
	if s := p.summary(); s != "no data" {
		t.Errorf("unexpected summary %q", s)
	}
	p.SetSeries(testSeries())
	if !p.HasData() {
		t.Errorf("expected the panel to hold data")
	}
	if s, expected := p.summary(), "bars 1-6 of 8, target 8"; s != expected {
		t.Errorf("expected summary %q, got %q", expected, s)
	}

	opts := chart.DefaultOptions()
	opts.Direction = chart.RightToLeft
	rtl := NewChartPanel("rtl", opts, testSeries(), nil)
	if s, expected := rtl.summary(), "bars 3-8 of 8, target 8"; s != expected {
		t.Errorf("expected summary %q, got %q", expected, s)
	}
}

func TestChartPanelResumes(t *testing.T) {
	opts := chart.DefaultOptions()
	opts.Direction = chart.RightToLeft
	p := NewChartPanel("rtl", opts, testSeries(), nil)
	snap := p.Snapshot()
	resumed := NewChartPanel("rtl", opts, nil, &snap)
	if resumed.summary() != p.summary() {
		t.Errorf("expected %q, got %q", p.summary(), resumed.summary())
	}
	if resumed.state.Viewport.Series()[0] != p.state.Viewport.Series()[0] {
		t.Errorf("resuming must keep the series order")
	}
}
