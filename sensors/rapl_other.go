//go:build !linux

package sensors

func FindRAPL() ([]Sensor, error) {
	return nil, ErrUnsupported
}
