package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"git.sr.ht/~whereswaldon/scrollchart/chart"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMatchesChartDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	opts, err := cfg.Chart.Options(chart.LeftToRight)
	require.NoError(t, err)
	require.Equal(t, chart.DefaultOptions(), opts)

	dirs, err := cfg.Chart.ParseDirections()
	require.NoError(t, err)
	require.Equal(t, []chart.Direction{chart.LeftToRight, chart.RightToLeft}, dirs)
}

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[chart]
directions = ["rtl"]
visible_bar_count = 10
auto_target = true

[chart.colors]
on_target = "#00ff0080"
`), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"rtl"}, cfg.Chart.Directions)
	require.Equal(t, 10, cfg.Chart.VisibleBarCount)
	require.Equal(t, chart.DefaultYLinesCount, cfg.Chart.YLinesCount)

	opts, err := cfg.Chart.Options(chart.RightToLeft)
	require.NoError(t, err)
	require.False(t, opts.TargetSet)
	require.Equal(t, color.NRGBA{G: 0xff, A: 0x80}, opts.Colors.OnTarget)
	require.Equal(t, chart.DefaultColors().Axis, opts.Colors.Axis)
}

func TestLoadInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"syntax":    "[chart\n",
		"direction": "[chart]\ndirections = [\"up\"]\n",
		"bars":      "[chart]\nvisible_bar_count = 0\n",
		"color":     "[chart.colors]\naxis = \"black\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir", "config.toml")
	cfg := DefaultConfig()
	cfg.Chart.Target = 12.5
	cfg.Chart.Directions = []string{"ltr"}
	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := ConfigDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/tmp/xdg", "scrollchart"), dir)
	state, err := StatePath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "state.toml"), state)
}

func TestParseColor(t *testing.T) {
	type testcase struct {
		in       string
		expected color.NRGBA
		fail     bool
	}
	for _, tc := range []testcase{
		{in: "#ffffff", expected: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#88888880", expected: color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0x80}},
		{in: " #0A0b0C ", expected: color.NRGBA{R: 0x0a, G: 0x0b, B: 0x0c, A: 0xff}},
		{in: "ffffff", fail: true},
		{in: "#fff", fail: true},
		{in: "#gggggg", fail: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseColor(tc.in)
			if tc.fail {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, c)
			again, err := ParseColor(FormatColor(c))
			require.NoError(t, err)
			require.Equal(t, c, again)
		})
	}
}
