package starbutton

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func TestAffineGeoMMatchesTransformPoint(t *testing.T) {
	l := NewContainerLayer("l", Rect{0, 0, 40, 20})
	l.Rotation = 0.7
	l.Position = Vec2{100, 50}
	m := computeLocalTransform(l, Scale2D{1.5, 0.5})
	g := affineGeoM(m)

	for _, p := range []Vec2{{0, 0}, {40, 20}, {13, 7}} {
		wx, wy := transformPoint(m, p.X, p.Y)
		gx, gy := g.Apply(p.X, p.Y)
		// GeoM stores float32 elements.
		if math.Abs(wx-gx) > 1e-3 || math.Abs(wy-gy) > 1e-3 {
			t.Errorf("(%v): GeoM = (%f, %f), want (%f, %f)", p, gx, gy, wx, wy)
		}
	}
}

func TestLineStrokeOptions(t *testing.T) {
	b := newTestButton(t)
	line := b.Rig().Lines[0].Layer
	m := [6]float64{2, 0, 0, 2, 10, 20}

	op := strokeOptions(line, m)
	if op.Width != 1.25 || op.MiterLimit != 1.25 {
		t.Errorf("width/miter = %v/%v, want 1.25/1.25", op.Width, op.MiterLimit)
	}
	if op.LineCap != vector.LineCapRound {
		t.Errorf("LineCap = %v, want round", op.LineCap)
	}
	if op.LineJoin != vector.LineJoinRound {
		t.Errorf("LineJoin = %v, want round", op.LineJoin)
	}
	// The transform applies after stroking.
	if x, y := op.GeoM.Apply(1, 1); x != 12 || y != 22 {
		t.Errorf("GeoM(1, 1) = (%v, %v), want (12, 22)", x, y)
	}
}

func TestLineStyleMapping(t *testing.T) {
	caps := []struct {
		in   LineCap
		want vector.LineCap
	}{
		{LineCapButt, vector.LineCapButt},
		{LineCapRound, vector.LineCapRound},
		{LineCapSquare, vector.LineCapSquare},
	}
	for _, tt := range caps {
		if got := tt.in.vectorCap(); got != tt.want {
			t.Errorf("cap %d = %v, want %v", tt.in, got, tt.want)
		}
	}

	joins := []struct {
		in   LineJoin
		want vector.LineJoin
	}{
		{LineJoinMiter, vector.LineJoinMiter},
		{LineJoinRound, vector.LineJoinRound},
		{LineJoinBevel, vector.LineJoinBevel},
	}
	for _, tt := range joins {
		if got := tt.in.vectorJoin(); got != tt.want {
			t.Errorf("join %d = %v, want %v", tt.in, got, tt.want)
		}
	}

	if FillNonZero.vectorRule() != vector.FillRuleNonZero {
		t.Error("non-zero fill rule not mapped")
	}
	if FillEvenOdd.vectorRule() != vector.FillRuleEvenOdd {
		t.Error("even-odd fill rule not mapped")
	}
}

func TestRingMaskFillsEvenOdd(t *testing.T) {
	b := newTestButton(t)
	if got := b.Rig().RingMask.Path.FillRule.vectorRule(); got != vector.FillRuleEvenOdd {
		t.Errorf("ring mask fill rule = %v, want even-odd", got)
	}
}

func TestDrawConcaveStrokedShape(t *testing.T) {
	// An L outline with a concave corner, open tail and every line style.
	p := &Path{FillRule: FillEvenOdd}
	p.MoveTo(Vec2{0, 0})
	p.LineTo(Vec2{30, 0})
	p.LineTo(Vec2{30, 10})
	p.LineTo(Vec2{10, 10})
	p.LineTo(Vec2{10, 30})
	p.LineTo(Vec2{0, 30})
	p.Close()
	p.MoveTo(Vec2{40, 0})
	p.LineTo(Vec2{40, 30})

	dst := ebiten.NewImage(64, 64)
	defer dst.Deallocate()

	var r renderer
	defer r.pool.Dispose()
	for _, lc := range []LineCap{LineCapButt, LineCapRound, LineCapSquare} {
		for _, join := range []LineJoin{LineJoinMiter, LineJoinRound, LineJoinBevel} {
			l := NewShapeLayer("l", Rect{0, 0, 40, 30}, p)
			l.FillColor = Color{1, 0, 0, 1}
			l.StrokeColor = Color{0, 0, 1, 1}
			l.LineWidth = 3
			l.LineCap = lc
			l.LineJoin = join
			l.MiterLimit = 1.25
			l.MasksToBounds = true
			// Should not panic.
			r.drawLayer(dst, l, 1)
		}
	}
}

func TestStrokeSkipsDegenerateTrim(t *testing.T) {
	dst := ebiten.NewImage(16, 16)
	defer dst.Deallocate()

	var r renderer
	l := NewShapeLayer("l", Rect{0, 0, 10, 10}, RectPath(Rect{0, 0, 10, 10}))
	l.StrokeColor = Color{1, 1, 1, 1}
	l.LineWidth = 1
	// A single point has nothing to stroke.
	r.strokePath(dst, l, []Vec2{{1, 1}}, [6]float64{1, 0, 0, 1, 0, 0}, l.StrokeColor)
	r.strokePath(dst, l, nil, [6]float64{1, 0, 0, 1, 0, 0}, l.StrokeColor)
}

func TestContentsImageCachedUntilInvalidate(t *testing.T) {
	var r renderer
	l := NewContentsLayer("mask", Rect{0, 0, 8, 8}, testStar())

	first := r.contentsImage(l)
	if first == nil {
		t.Fatal("expected an uploaded image")
	}
	if r.contentsImage(l) != first {
		t.Error("bitmap should be uploaded once")
	}

	r.invalidate()
	if len(r.contents) != 0 {
		t.Errorf("contents = %d, want 0 after invalidate", len(r.contents))
	}
}

func TestContentsImageUsesEbitenImage(t *testing.T) {
	var r renderer
	img := ebiten.NewImage(4, 4)
	defer img.Deallocate()
	l := NewContentsLayer("mask", Rect{0, 0, 4, 4}, img)
	if r.contentsImage(l) != img {
		t.Error("an *ebiten.Image should be drawn directly")
	}
	if len(r.contents) != 0 {
		t.Error("an *ebiten.Image should not be cached")
	}
}

func TestButtonDraw(t *testing.T) {
	b := newTestButton(t)
	defer b.Dispose()
	dst := ebiten.NewImage(128, 128)
	defer dst.Deallocate()

	// Should not panic in any phase of the burst.
	b.Draw(dst)
	b.Select()
	for i := 0; i < 10; i++ {
		b.Update(0.05)
		b.Draw(dst)
	}
	b.Deselect()
	b.Update(0.1)
	b.Draw(dst)
}

func TestButtonDrawTransparent(t *testing.T) {
	b := newTestButton(t)
	defer b.Dispose()
	dst := ebiten.NewImage(128, 128)
	defer dst.Deallocate()

	b.Alpha = 0
	b.Draw(dst)
	if len(b.renderer.contents) != 0 {
		t.Error("a transparent button should not upload its bitmap")
	}
}

func TestSetImageInvalidatesUpload(t *testing.T) {
	b := newTestButton(t)
	defer b.Dispose()
	dst := ebiten.NewImage(128, 128)
	defer dst.Deallocate()

	b.Draw(dst)
	if len(b.renderer.contents) != 1 {
		t.Fatalf("contents = %d, want 1 after drawing", len(b.renderer.contents))
	}
	if err := b.SetImage(testStar()); err != nil {
		t.Fatal(err)
	}
	if len(b.renderer.contents) != 0 {
		t.Error("rebuild should drop the old upload")
	}
}
