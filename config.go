package starbutton

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ThemeFile is the YAML form of a button Config. Colors are hex strings
// ("#rrggbb" or "#rrggbbaa"); empty fields keep the defaults.
type ThemeFile struct {
	Bounds struct {
		X      float64 `yaml:"x"`
		Y      float64 `yaml:"y"`
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"bounds"`
	Colors struct {
		Normal   string `yaml:"normal"`
		Selected string `yaml:"selected"`
		Ring     string `yaml:"ring"`
		Line     string `yaml:"line"`
	} `yaml:"colors"`
	Settle struct {
		Duration float64 `yaml:"duration"`
		Delay    float64 `yaml:"delay"`
	} `yaml:"settle"`
	// Image is a path to the star bitmap, resolved by the caller.
	Image string `yaml:"image"`
}

// LoadConfig parses a YAML theme into a Config. The returned Config has no
// Image; imagePath is the bitmap file the theme names, if any.
func LoadConfig(data []byte) (cfg Config, imagePath string, err error) {
	var tf ThemeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return Config{}, "", fmt.Errorf("parse theme: %w", err)
	}

	cfg.Bounds = Rect{X: tf.Bounds.X, Y: tf.Bounds.Y, Width: tf.Bounds.Width, Height: tf.Bounds.Height}
	cfg.SettleDuration = tf.Settle.Duration
	cfg.SettleDelay = tf.Settle.Delay

	for _, c := range []struct {
		name string
		hex  string
		dst  *Color
	}{
		{"normal", tf.Colors.Normal, &cfg.NormalColor},
		{"selected", tf.Colors.Selected, &cfg.SelectedColor},
		{"ring", tf.Colors.Ring, &cfg.RingColor},
		{"line", tf.Colors.Line, &cfg.LineColor},
	} {
		if c.hex == "" {
			continue
		}
		col, err := ParseHexColor(c.hex)
		if err != nil {
			return Config{}, "", fmt.Errorf("parse theme: %s color: %w", c.name, err)
		}
		*c.dst = col
	}
	return cfg, tf.Image, nil
}

// LoadConfigFile reads and parses a YAML theme file.
func LoadConfigFile(path string) (Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, "", fmt.Errorf("read theme: %w", err)
	}
	return LoadConfig(data)
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" (the leading # is optional).
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
