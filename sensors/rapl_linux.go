package sensors

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const raplRoot = "/sys/devices/virtual/powercap/intel-rapl"

// energyCounter reads a RAPL energy_uj counter and reports the energy used since the
// previous read.
type energyCounter struct {
	path       string
	deviceName string
	file       *os.File
	lastValue  int64
	maxRange   int64
}

func (w *energyCounter) Name() string {
	return w.deviceName
}

func (w *energyCounter) Unit() Unit {
	return Joules
}

func (w *energyCounter) current() (int64, error) {
	var buf [256]byte
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("failed rewinding %s: %w", w.path, err)
	}
	n, err := w.file.Read(buf[:])
	if err != nil {
		return 0, fmt.Errorf("failed reading %s: %w", w.path, err)
	}
	asInt, err := strconv.ParseInt(strings.TrimSpace(string(buf[:n])), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed parsing %s (%s): %w", w.path, string(buf[:n]), err)
	}
	return asInt, nil
}

func (w *energyCounter) Read() (float64, error) {
	asInt, err := w.current()
	if err != nil {
		return 0, err
	}
	increment := asInt - w.lastValue
	if asInt < w.lastValue {
		// Handle when the counter wraps back past zero.
		increment += w.maxRange
	}
	w.lastValue = asInt
	return float64(increment) * MicroToUnprefixed, nil
}

// FindRAPL returns a sensor for every RAPL power domain. Each is primed, so its first
// Read reports the energy used since FindRAPL returned. Reading RAPL usually requires
// root.
func FindRAPL() ([]Sensor, error) {
	return findRAPL(raplRoot)
}

func findRAPL(root string) ([]Sensor, error) {
	found := []Sensor{}
	if err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Name() != "energy_uj" {
			return nil
		}
		file, err := os.Open(path)
		if err != nil {
			log.Printf("failed opening file %q: %v", path, err)
			return nil
		}
		dir := filepath.Dir(path)
		name, err := os.ReadFile(filepath.Join(dir, "name"))
		if err != nil {
			log.Printf("failed resolving name for %q: %v", path, err)
			name = []byte(filepath.Base(dir))
		}
		maxRange, err := os.ReadFile(filepath.Join(dir, "max_energy_range_uj"))
		if err != nil {
			log.Printf("failed resolving max energy range for %q: %v", path, err)
		}
		maxRangeInt, err := strconv.ParseInt(strings.TrimSpace(string(maxRange)), 10, 64)
		if err != nil {
			log.Printf("failed parsing max energy range for %q %q: %v", path, string(maxRange), err)
		}
		w := &energyCounter{
			path:       path,
			deviceName: strings.TrimSpace(string(name)),
			file:       file,
			maxRange:   maxRangeInt,
		}
		if w.lastValue, err = w.current(); err != nil {
			log.Printf("skipping %q: %v", path, err)
			file.Close()
			return nil
		}
		found = append(found, w)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed traversing RAPL: %w", err)
	}
	return found, nil
}
