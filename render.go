package starbutton

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// renderer draws a rig onto an ebiten target. Masked layers are rendered to
// pooled offscreen images and clipped with a BlendMask composite.
type renderer struct {
	pool     renderTexturePool
	contents map[*Layer]*ebiten.Image

	// Scratch paths, reset per shape. vector.FillPath copies what it keeps.
	local vector.Path
	world vector.Path
}

// invalidate drops cached bitmap uploads; called when the rig is rebuilt.
func (r *renderer) invalidate() {
	for l, img := range r.contents {
		img.Deallocate()
		delete(r.contents, l)
	}
}

// Draw renders the button at its presentation values. dst coordinates are
// the coordinates Bounds is expressed in.
func (b *Button) Draw(dst *ebiten.Image) {
	root := b.rig.Root
	alpha := b.Alpha * root.Presentation().Opacity
	if alpha <= 0 {
		return
	}
	for _, l := range root.Sublayers() {
		b.renderer.drawLayer(dst, l, alpha)
	}
}

// Dispose releases GPU resources held by the button's renderer.
func (b *Button) Dispose() {
	b.renderer.invalidate()
	b.renderer.pool.Dispose()
}

func (r *renderer) drawLayer(dst *ebiten.Image, l *Layer, parentAlpha float64) {
	alpha := parentAlpha * l.Presentation().Opacity
	if alpha <= 0 {
		return
	}
	m := worldTransform(l)

	if l.Mask() == nil && !l.MasksToBounds {
		r.drawContent(dst, l, m, alpha)
		r.drawSublayers(dst, l, alpha)
		return
	}

	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	rt := r.pool.Acquire(w, h)
	r.drawContent(rt, l, m, 1)
	r.drawSublayers(rt, l, 1)

	if l.MasksToBounds {
		clip := r.pool.Acquire(w, h)
		r.fillPath(clip, RectPath(l.Bounds), m, Color{1, 1, 1, 1})
		r.composite(rt, clip, BlendMask, 1)
		r.pool.Release(clip)
	}
	if mask := l.Mask(); mask != nil {
		maskRT := r.pool.Acquire(w, h)
		ma := mask.Presentation().Opacity
		r.drawContent(maskRT, mask, worldTransform(mask), ma)
		r.composite(rt, maskRT, BlendMask, 1)
		r.pool.Release(maskRT)
	}

	r.composite(dst, rt, BlendNormal, alpha)
	r.pool.Release(rt)
}

func (r *renderer) drawSublayers(dst *ebiten.Image, l *Layer, alpha float64) {
	for _, child := range l.Sublayers() {
		r.drawLayer(dst, child, alpha)
	}
}

func (r *renderer) composite(dst, src *ebiten.Image, blend BlendMode, alpha float64) {
	var op ebiten.DrawImageOptions
	op.Blend = blend.EbitenBlend()
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(src, &op)
}

func (r *renderer) drawContent(dst *ebiten.Image, l *Layer, m [6]float64, alpha float64) {
	switch l.Kind {
	case LayerShape:
		r.drawShape(dst, l, m, alpha)
	case LayerContents:
		r.drawContents(dst, l, m, alpha)
	}
}

func (r *renderer) drawShape(dst *ebiten.Image, l *Layer, m [6]float64, alpha float64) {
	if l.Path == nil {
		return
	}
	if fill := l.FillColor.withAlpha(alpha); fill.A > 0 {
		r.fillPath(dst, l.Path, m, fill)
	}

	stroke := l.StrokeColor.withAlpha(alpha)
	if stroke.A <= 0 || l.LineWidth <= 0 {
		return
	}
	ps := l.Presentation()
	r.strokePath(dst, l, l.Path.Trim(ps.StrokeStart, ps.StrokeEnd), m, stroke)
}

// fillPath fills the closed subpaths of p under its fill rule. Open
// subpaths enclose nothing, matching Path.Contains.
func (r *renderer) fillPath(dst *ebiten.Image, p *Path, m [6]float64, fill Color) {
	r.local.Reset()
	n := 0
	for i, sp := range p.Subpaths {
		if p.Closed[i] && len(sp) >= 3 {
			appendPolyline(&r.local, sp, true)
			n++
		}
	}
	if n == 0 {
		return
	}
	r.world.Reset()
	r.world.AddPath(&r.local, &vector.AddPathOptions{GeoM: affineGeoM(m)})

	fo := &vector.FillOptions{FillRule: p.FillRule.vectorRule()}
	vector.FillPath(dst, &r.world, fo, drawPathOptions(fill))
}

// strokePath strokes the trimmed polyline pts in layer space.
func (r *renderer) strokePath(dst *ebiten.Image, l *Layer, pts []Vec2, m [6]float64, stroke Color) {
	if len(pts) < 2 {
		return
	}
	r.local.Reset()
	appendPolyline(&r.local, pts, false)

	r.world.Reset()
	r.world.AddStroke(&r.local, strokeOptions(l, m))

	// Stroke outlines are always filled non-zero.
	vector.FillPath(dst, &r.world, nil, drawPathOptions(stroke))
}

// strokeOptions carries the layer's line style. The transform is applied
// after stroking, so the width scales with the layer.
func strokeOptions(l *Layer, m [6]float64) *vector.AddStrokeOptions {
	op := &vector.AddStrokeOptions{}
	op.Width = float32(l.LineWidth)
	op.LineCap = l.LineCap.vectorCap()
	op.LineJoin = l.LineJoin.vectorJoin()
	op.MiterLimit = float32(l.MiterLimit)
	op.GeoM = affineGeoM(m)
	return op
}

func drawPathOptions(c Color) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c.toRGBA())
	return op
}

func appendPolyline(vp *vector.Path, pts []Vec2, closed bool) {
	vp.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		vp.LineTo(float32(pt.X), float32(pt.Y))
	}
	if closed {
		vp.Close()
	}
}

func (f FillRule) vectorRule() vector.FillRule {
	if f == FillEvenOdd {
		return vector.FillRuleEvenOdd
	}
	return vector.FillRuleNonZero
}

func (c LineCap) vectorCap() vector.LineCap {
	switch c {
	case LineCapRound:
		return vector.LineCapRound
	case LineCapSquare:
		return vector.LineCapSquare
	default:
		return vector.LineCapButt
	}
}

func (j LineJoin) vectorJoin() vector.LineJoin {
	switch j {
	case LineJoinRound:
		return vector.LineJoinRound
	case LineJoinBevel:
		return vector.LineJoinBevel
	default:
		return vector.LineJoinMiter
	}
}

func (r *renderer) drawContents(dst *ebiten.Image, l *Layer, m [6]float64, alpha float64) {
	img := r.contentsImage(l)
	if img == nil {
		return
	}
	sw, sh := img.Bounds().Dx(), img.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(l.Bounds.Width/float64(sw), l.Bounds.Height/float64(sh))
	op.GeoM.Translate(l.Bounds.X, l.Bounds.Y)
	op.GeoM.Concat(affineGeoM(m))
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, &op)
}

// contentsImage uploads the layer's bitmap once and reuses it.
func (r *renderer) contentsImage(l *Layer) *ebiten.Image {
	if l.Contents == nil {
		return nil
	}
	if img, ok := l.Contents.(*ebiten.Image); ok {
		return img
	}
	if img := r.contents[l]; img != nil {
		return img
	}
	if r.contents == nil {
		r.contents = make(map[*Layer]*ebiten.Image)
	}
	img := ebiten.NewImageFromImage(l.Contents)
	r.contents[l] = img
	return img
}

func affineGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
