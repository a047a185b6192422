package backend

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"git.sr.ht/~whereswaldon/scrollchart/chart"
	"github.com/BurntSushi/toml"
)

// stateFile is the on-disk layout of saved chart state.
type stateFile struct {
	Charts map[string]chart.Snapshot `toml:"charts"`
}

// LoadState reads the chart snapshots saved at path, keyed by chart name. A missing
// file yields no snapshots and no error.
func LoadState(path string) (map[string]chart.Snapshot, error) {
	var state stateFile
	if _, err := toml.DecodeFile(path, &state); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]chart.Snapshot{}, nil
		}
		return nil, fmt.Errorf("failed decoding state %q: %w", path, err)
	}
	if state.Charts == nil {
		state.Charts = map[string]chart.Snapshot{}
	}
	return state.Charts, nil
}

// SaveState writes snapshots to path, replacing any previous state. The file is written
// beside its destination and renamed into place, so readers never see a partial file.
func SaveState(path string, snapshots map[string]chart.Snapshot) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed creating state dir: %w", err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed creating state file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(f.Name())
		}
	}()
	if err := toml.NewEncoder(f).Encode(stateFile{Charts: snapshots}); err != nil {
		f.Close()
		return fmt.Errorf("failed encoding state: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed writing state: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("failed replacing state: %w", err)
	}
	return nil
}
