package backend

import (
	"os"
	"path/filepath"
	"testing"

	"git.sr.ht/~whereswaldon/scrollchart/chart"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.toml")
	snapshots := map[string]chart.Snapshot{
		"ltr": {
			Target:          8,
			TargetSet:       true,
			VisibleBarCount: 3,
			YLinesCount:     4,
			Series:          chart.Series{{X: 10, Y: 1}, {X: 11, Y: 2.5}, {X: 12, Y: 8}, {X: 13, Y: 3}},
			ScrollOffset:    1.25,
		},
		"rtl": {
			Target:          9,
			VisibleBarCount: 6,
			YLinesCount:     2,
			Series:          chart.Series{{X: 13, Y: 3}, {X: 12, Y: 9}},
		},
	}
	require.NoError(t, SaveState(path, snapshots))

	loaded, err := LoadState(path)
	require.NoError(t, err)
	require.Equal(t, snapshots, loaded)

	restored := chart.RestoreViewport(loaded["ltr"])
	require.Equal(t, 1.25, restored.Offset())
	require.Equal(t, 3, restored.VisibleBars())
}

func TestStateOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, SaveState(path, map[string]chart.Snapshot{
		"ltr": {VisibleBarCount: 2, Series: chart.Series{{X: 1, Y: 1}}},
	}))
	require.NoError(t, SaveState(path, map[string]chart.Snapshot{
		"rtl": {VisibleBarCount: 4, Series: chart.Series{{X: 2, Y: 2}}},
	}))
	loaded, err := LoadState(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Contains(t, loaded, "rtl")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files should not be left behind")
}

func TestStateMissing(t *testing.T) {
	loaded, err := LoadState(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestStateCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("charts = [[["), 0o644))
	_, err := LoadState(path)
	require.Error(t, err)
}
