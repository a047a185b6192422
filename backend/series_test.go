package backend

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"git.sr.ht/~whereswaldon/scrollchart/chart"
)

func TestReadSeries(t *testing.T) {
	type testcase struct {
		name     string
		input    string
		expected chart.Series
		err      error
	}
	for _, tc := range []testcase{
		{
			name:  "headings",
			input: "x, y\n10, 1\n11, 2\n",
			expected: chart.Series{
				{X: 10, Y: 1},
				{X: 11, Y: 2},
			},
		},
		{
			name:  "no headings",
			input: "10, 1\n11, 2.5\n",
			expected: chart.Series{
				{X: 10, Y: 1},
				{X: 11, Y: 2.5},
			},
		},
		{
			name:  "malformed rows",
			input: "x, y\n10, 1\nbogus, 3\n11\n12, NaN\n13, 4, extra\n",
			expected: chart.Series{
				{X: 10, Y: 1},
				{X: 13, Y: 4},
			},
		},
		{
			name:  "comments and trailing commas",
			input: "# generated\n10, 1, \n\n11, 2, \n",
			expected: chart.Series{
				{X: 10, Y: 1},
				{X: 11, Y: 2},
			},
		},
		{
			name:  "empty",
			input: "",
			err:   ErrNoData,
		},
		{
			name:  "headings only",
			input: "x, y\n",
			err:   ErrNoData,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			series, err := ReadSeries(strings.NewReader(tc.input))
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Errorf("expected error %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(series, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, series)
			}
		})
	}
}

func TestReadSeriesPartialLine(t *testing.T) {
	buf := bytes.NewBufferString("x, y\n10, 1\n11, 2\n12, 8")
	series, err := ReadSeries(NewLineReader(buf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 2 {
		t.Errorf("expected the unterminated line to be ignored, got %v", series)
	}
}

func TestWriteSeries(t *testing.T) {
	series := chart.Series{
		{X: 10, Y: 1},
		{X: 11, Y: 2.25},
		{X: 12, Y: 8},
	}
	var buf bytes.Buffer
	if err := WriteSeries(&buf, series); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "x,y\n10,1\n11,2.25\n12,8\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
	parsed, err := ReadSeries(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(parsed, series) {
		t.Errorf("expected %v, got %v", series, parsed)
	}
}
