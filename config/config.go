// Package config loads the scrollchart configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gioui.org/unit"
	"git.sr.ht/~whereswaldon/scrollchart/chart"
	"github.com/BurntSushi/toml"
)

type Config struct {
	Chart ChartConfig `toml:"chart"`
}

type ChartConfig struct {
	// Directions lists the charts to show, one per entry, as "ltr" or "rtl".
	Directions      []string `toml:"directions"`
	Width           float32  `toml:"width"`
	Height          float32  `toml:"height"`
	VisibleBarCount int      `toml:"visible_bar_count"`
	YLinesCount     int      `toml:"y_lines_count"`
	Target          float64  `toml:"target"`
	// AutoTarget makes the target follow the tallest visible bar.
	AutoTarget       bool        `toml:"auto_target"`
	BarWidth         float32     `toml:"bar_width"`
	BarCornerRadius  float32     `toml:"bar_corner_radius"`
	AxisStrokeWidth  float32     `toml:"axis_stroke_width"`
	YLineStrokeWidth float32     `toml:"y_line_stroke_width"`
	TextSize         float32     `toml:"text_size"`
	Animated         bool        `toml:"animated"`
	Colors           ColorConfig `toml:"colors"`
}

type ColorConfig struct {
	Background  string `toml:"background"`
	Axis        string `toml:"axis"`
	OnTarget    string `toml:"on_target"`
	BelowTarget string `toml:"below_target"`
}

func DefaultConfig() *Config {
	opts := chart.DefaultOptions()
	return &Config{
		Chart: ChartConfig{
			Directions:       []string{chart.LeftToRight.String(), chart.RightToLeft.String()},
			VisibleBarCount:  opts.VisibleBarCount,
			YLinesCount:      opts.YLinesCount,
			Target:           opts.Target,
			AutoTarget:       !opts.TargetSet,
			BarWidth:         float32(opts.BarWidth),
			BarCornerRadius:  float32(opts.BarCornerRadius),
			AxisStrokeWidth:  float32(opts.AxisStrokeWidth),
			YLineStrokeWidth: float32(opts.YLineStrokeWidth),
			TextSize:         float32(opts.TextSize),
			Animated:         opts.Animated,
			Colors: ColorConfig{
				Background:  FormatColor(opts.Colors.Background),
				Axis:        FormatColor(opts.Colors.Axis),
				OnTarget:    FormatColor(opts.Colors.OnTarget),
				BelowTarget: FormatColor(opts.Colors.BelowTarget),
			},
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "scrollchart"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// StatePath returns the default location of saved chart state.
func StatePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.toml"), nil
}

// Load reads the config at path, or at ConfigPath if path is empty. Missing files and
// keys keep their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed reading config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed decoding config %q: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("ignoring unknown config key %q", key.String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// Validate reports every problem with the config at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Chart.ParseDirections(); err != nil {
		errs = append(errs, err)
	}
	if c.Chart.VisibleBarCount < 1 {
		errs = append(errs, fmt.Errorf("visible_bar_count must be at least 1, got %d", c.Chart.VisibleBarCount))
	}
	if c.Chart.YLinesCount < 0 {
		errs = append(errs, fmt.Errorf("y_lines_count must not be negative, got %d", c.Chart.YLinesCount))
	}
	if _, err := c.Chart.Colors.Parse(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseDirection parses "ltr" or "rtl".
func ParseDirection(s string) (chart.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case chart.LeftToRight.String():
		return chart.LeftToRight, nil
	case chart.RightToLeft.String():
		return chart.RightToLeft, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// ParseDirections returns the direction of each configured chart.
func (c ChartConfig) ParseDirections() ([]chart.Direction, error) {
	if len(c.Directions) == 0 {
		return nil, errors.New("at least one chart direction is required")
	}
	dirs := make([]chart.Direction, 0, len(c.Directions))
	for _, s := range c.Directions {
		dir, err := ParseDirection(s)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

// ParseColor parses a color written as #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.NRGBA{}, fmt.Errorf("color %q is not #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("failed parsing color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// FormatColor writes c in the form read by ParseColor, omitting an opaque alpha.
func FormatColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c ColorConfig) Parse() (chart.Colors, error) {
	var colors chart.Colors
	var errs []error
	for _, field := range []struct {
		name string
		in   string
		out  *color.NRGBA
	}{
		{"background", c.Background, &colors.Background},
		{"axis", c.Axis, &colors.Axis},
		{"on_target", c.OnTarget, &colors.OnTarget},
		{"below_target", c.BelowTarget, &colors.BelowTarget},
	} {
		col, err := ParseColor(field.in)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field.name, err))
			continue
		}
		*field.out = col
	}
	return colors, errors.Join(errs...)
}

// Options converts the chart config into widget options for a chart in direction dir.
func (c ChartConfig) Options(dir chart.Direction) (chart.Options, error) {
	colors, err := c.Colors.Parse()
	if err != nil {
		return chart.Options{}, err
	}
	return chart.Options{
		Direction:        dir,
		Width:            unit.Dp(c.Width),
		Height:           unit.Dp(c.Height),
		VisibleBarCount:  c.VisibleBarCount,
		Target:           c.Target,
		TargetSet:        !c.AutoTarget,
		YLinesCount:      c.YLinesCount,
		BarWidth:         unit.Dp(c.BarWidth),
		BarCornerRadius:  unit.Dp(c.BarCornerRadius),
		AxisStrokeWidth:  unit.Dp(c.AxisStrokeWidth),
		YLineStrokeWidth: unit.Dp(c.YLineStrokeWidth),
		TextSize:         unit.Sp(c.TextSize),
		Colors:           colors,
		Animated:         c.Animated,
	}, nil
}
