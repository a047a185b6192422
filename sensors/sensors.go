// Package sensors provides sources of values to chart, read one sample at a time.
package sensors

import (
	"errors"
	"math"
	"math/rand"
)

type Unit uint8

func (u Unit) String() string {
	switch u {
	case Joules:
		return "J"
	case Watts:
		return "W"
	default:
		return "?"
	}
}

const (
	Joules Unit = iota
	Watts
	Unknown
)

const (
	// MicroToUnprefixed is the conversion factor from a micro SI unit to an unprefixed
	// one.
	MicroToUnprefixed = 1.0 / 1_000_000
)

// ErrUnsupported is returned when a sensor kind is not available on this platform.
var ErrUnsupported = errors.New("sensor not supported on this platform")

// Sensor yields one value per Read. Live sensors report the quantity measured since
// the previous Read.
type Sensor interface {
	Name() string
	Unit() Unit
	Read() (float64, error)
}

// Random is a sensor producing uniformly distributed values in [0, Max], rounded to
// one decimal.
type Random struct {
	rng *rand.Rand
	Max float64
}

var _ Sensor = (*Random)(nil)

func NewRandom(seed int64, max float64) *Random {
	return &Random{
		rng: rand.New(rand.NewSource(seed)),
		Max: max,
	}
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) Unit() Unit {
	return Unknown
}

func (r *Random) Read() (float64, error) {
	return math.Round(r.rng.Float64()*r.Max*10) / 10, nil
}
