package starbutton

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

const testTheme = `
bounds:
  x: 10
  y: 20
  width: 96
  height: 96
colors:
  normal: "#8899a6"
  selected: "#ffac33"
  line: "#fa784480"
settle:
  duration: 0.75
  delay: 0.1
image: star.png
`

func colorApprox(a, b Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestLoadConfig(t *testing.T) {
	cfg, imagePath, err := LoadConfig([]byte(testTheme))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Bounds != (Rect{10, 20, 96, 96}) {
		t.Errorf("Bounds = %v", cfg.Bounds)
	}
	if imagePath != "star.png" {
		t.Errorf("imagePath = %q, want star.png", imagePath)
	}
	if cfg.SettleDuration != 0.75 || cfg.SettleDelay != 0.1 {
		t.Errorf("settle = %f/%f, want 0.75/0.1", cfg.SettleDuration, cfg.SettleDelay)
	}
	if !colorApprox(cfg.NormalColor, DefaultNormalColor) {
		t.Errorf("NormalColor = %v, want %v", cfg.NormalColor, DefaultNormalColor)
	}
	if !colorApprox(cfg.SelectedColor, DefaultSelectedColor) {
		t.Errorf("SelectedColor = %v, want %v", cfg.SelectedColor, DefaultSelectedColor)
	}
	if !cfg.RingColor.isZero() {
		t.Errorf("RingColor = %v, want unset", cfg.RingColor)
	}
	if math.Abs(cfg.LineColor.A-128.0/255) > 1e-9 {
		t.Errorf("LineColor alpha = %f, want 128/255", cfg.LineColor.A)
	}
	if cfg.Image != nil || cfg.Facility != nil {
		t.Error("theme should not set an image or facility")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "bounds: [1, 2"},
		{"bad color", "colors:\n  ring: \"#12345\"\n"},
		{"not hex", "colors:\n  normal: \"#zzzzzz\"\n"},
	}
	for _, tt := range tests {
		if _, _, err := LoadConfig([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(testTheme), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Bounds.Width != 96 {
		t.Errorf("Width = %f, want 96", cfg.Bounds.Width)
	}

	if _, _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestLoadedConfigBuildsButton(t *testing.T) {
	cfg, _, err := LoadConfig([]byte(testTheme))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Image = testStar()
	b, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := len(b.SettleValues()); got != 45 {
		t.Errorf("settle samples = %d, want 45", got)
	}
	if b.RingColor() != DefaultRingColor {
		t.Error("unset ring color should fall back to the default")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Color{1, 0, 0, 1}},
		{"00ff00", Color{0, 1, 0, 1}},
		{" #0000ff80 ", Color{0, 0, 1, 128.0 / 255}},
		{"#FFFFFF", Color{1, 1, 1, 1}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if !colorApprox(got, tt.want) {
			t.Errorf("%q = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}
