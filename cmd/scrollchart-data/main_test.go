package main

import (
	"errors"
	"testing"

	"git.sr.ht/~whereswaldon/scrollchart/sensors"
)

type fixedSensor struct {
	values []float64
}

func (f *fixedSensor) Name() string       { return "fixed" }
func (f *fixedSensor) Unit() sensors.Unit { return sensors.Watts }

func (f *fixedSensor) Read() (float64, error) {
	if len(f.values) == 0 {
		return 0, errors.New("out of values")
	}
	v := f.values[0]
	f.values = f.values[1:]
	return v, nil
}

func TestGenerator(t *testing.T) {
	gen := &generator{
		sensor: &fixedSensor{values: []float64{3, 1.5}},
		next:   5,
	}
	for i, expected := range []float64{3, 1.5} {
		p, err := gen.point()
		if err != nil {
			t.Fatalf("[%d] unexpected error: %v", i, err)
		}
		if p.X != float64(5+i) || p.Y != expected {
			t.Errorf("[%d] expected (%d, %v), got %v", i, 5+i, expected, p)
		}
	}
	if _, err := gen.point(); err == nil {
		t.Errorf("expected sensor errors to be reported")
	}
	if gen.next != 7 {
		t.Errorf("a failed read must not consume an x value, next is %v", gen.next)
	}
}

func TestFindSensor(t *testing.T) {
	s, live, err := findSensor("random", "", 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if live || s.Name() != "random" {
		t.Errorf("expected the random sensor, got %q (live=%v)", s.Name(), live)
	}
	if _, _, err := findSensor("thermometer", "", 1, 10); err == nil {
		t.Errorf("expected an unknown source to fail")
	}
}
