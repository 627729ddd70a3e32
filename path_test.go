package starbutton

import (
	"math"
	"testing"
)

func TestRectPathBounds(t *testing.T) {
	r := Rect{10, 20, 30, 40}
	if got := RectPath(r).Bounds(); got != r {
		t.Errorf("Bounds = %v, want %v", got, r)
	}
}

func TestOvalPathBounds(t *testing.T) {
	r := Rect{0, 0, 90, 90}
	b := OvalPath(r).Bounds()
	if !approxEqual(b.X, 0, 1e-9) || !approxEqual(b.Width, 90, 1e-9) {
		t.Errorf("Bounds = %v, want width 90 from x=0", b)
	}
	// 48 segments hit the top and bottom exactly (multiples of 12).
	if !approxEqual(b.Y, 0, 1e-9) || !approxEqual(b.Height, 90, 1e-9) {
		t.Errorf("Bounds = %v, want height 90 from y=0", b)
	}
}

func TestEvenOddHole(t *testing.T) {
	p := RectPath(Rect{0, 0, 100, 100})
	p.AddArc(Vec2{50, 50}, 10, 0, 2*math.Pi)
	p.FillRule = FillEvenOdd

	tests := []struct {
		pt   Vec2
		want bool
	}{
		{Vec2{50, 50}, false}, // in the hole
		{Vec2{5, 5}, true},    // in the frame
		{Vec2{50, 30}, true},  // just outside the hole
		{Vec2{150, 50}, false},
	}
	for _, tt := range tests {
		if got := p.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}

	// Non-zero fills the hole when both subpaths wind the same way.
	p.FillRule = FillNonZero
	if !p.Contains(Vec2{50, 50}) {
		t.Error("non-zero should fill the hole")
	}
}

func TestOpenPathContainsNothing(t *testing.T) {
	p := &Path{}
	p.MoveTo(Vec2{0, 0})
	p.LineTo(Vec2{10, 0})
	p.LineTo(Vec2{10, 10})
	if p.Contains(Vec2{8, 2}) {
		t.Error("open path should not contain points")
	}
	p.Close()
	if !p.Contains(Vec2{8, 2}) {
		t.Error("closed triangle should contain (8, 2)")
	}
}

func TestLineToWithoutMoveToPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	(&Path{}).LineTo(Vec2{1, 1})
}

func TestLength(t *testing.T) {
	if got := RectPath(Rect{0, 0, 10, 5}).Length(); !approxEqual(got, 30, 1e-9) {
		t.Errorf("rect length = %f, want 30", got)
	}
	p := &Path{}
	p.MoveTo(Vec2{0, 0})
	p.LineTo(Vec2{3, 4})
	if got := p.Length(); !approxEqual(got, 5, 1e-9) {
		t.Errorf("line length = %f, want 5", got)
	}
}

func TestTrim(t *testing.T) {
	p := &Path{}
	p.MoveTo(Vec2{0, 100})
	p.LineTo(Vec2{0, 0})

	tests := []struct {
		name       string
		start, end float64
		want       []Vec2
	}{
		{"full", 0, 1, []Vec2{{0, 100}, {0, 0}}},
		{"middle", 0.25, 0.75, []Vec2{{0, 75}, {0, 25}}},
		{"burst end", 0.92, 0.92, nil},
		{"reversed", 0.6, 0.4, nil},
		{"clamped", -1, 2, []Vec2{{0, 100}, {0, 0}}},
	}
	for _, tt := range tests {
		got := p.Trim(tt.start, tt.end)
		if len(got) != len(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
			continue
		}
		for i := range got {
			if !approxEqual(got[i].X, tt.want[i].X, 1e-9) || !approxEqual(got[i].Y, tt.want[i].Y, 1e-9) {
				t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
				break
			}
		}
	}
}

func TestTrimAcrossSegments(t *testing.T) {
	p := &Path{}
	p.MoveTo(Vec2{0, 0})
	p.LineTo(Vec2{10, 0})
	p.LineTo(Vec2{10, 10})

	got := p.Trim(0.25, 0.75)
	want := []Vec2{{5, 0}, {10, 0}, {10, 5}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if !approxEqual(got[i].X, want[i].X, 1e-9) || !approxEqual(got[i].Y, want[i].Y, 1e-9) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}
