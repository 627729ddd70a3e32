package starbutton

import (
	"fmt"
	"image"
	"math"
)

// LineCount is the number of burst lines around the star.
const LineCount = 5

// Frame scale factors relative to the control bounds.
const (
	imageFrameScale = 1.0
	maskFrameScale  = 0.7
	ringFrameScale  = 0.9
	lineFrameScale  = 1.05
)

// Line styling.
const (
	lineWidth      = 1.25
	lineMiterLimit = 1.25
)

// Palette holds the static colors of the rig.
type Palette struct {
	Normal   Color
	Selected Color
	Ring     Color
	Line     Color
}

// DefaultPalette returns the control's stock colors.
func DefaultPalette() Palette {
	return Palette{
		Normal:   DefaultNormalColor,
		Selected: DefaultSelectedColor,
		Ring:     DefaultRingColor,
		Line:     DefaultLineColor,
	}
}

// Frames are the rectangles every layer group is placed in, all centered on
// the control bounds.
type Frames struct {
	Center Vec2
	Image  Rect
	Mask   Rect
	Ring   Rect
	Line   Rect
}

// FramesFor derives the layer frames from the control bounds.
func FramesFor(bounds Rect) Frames {
	c := bounds.Center()
	return Frames{
		Center: c,
		Image:  bounds.ScaledAbout(imageFrameScale, c),
		Mask:   bounds.ScaledAbout(maskFrameScale, c),
		Ring:   bounds.ScaledAbout(ringFrameScale, c),
		Line:   bounds.ScaledAbout(lineFrameScale, c),
	}
}

// LineLayer is one burst line. Index determines its rotation.
type LineLayer struct {
	*Layer
	Index int
}

// LineAngle returns the rotation of burst line i: the lines sit 72 degrees
// apart, offset by 36 degrees from straight up.
func LineAngle(i int) float64 {
	return math.Pi / LineCount * float64(2*i+1)
}

// Rig owns the layers of one control: a ring clipped by an annulus mask,
// LineCount burst lines, and the image fill clipped by the bitmap.
type Rig struct {
	Root      *Layer
	Ring      *Layer
	RingMask  *Layer
	Lines     [LineCount]LineLayer
	Image     *Layer
	ImageMask *Layer

	Frames Frames

	// RingMaskTimeline is ringMaskScale bound to the current image frame.
	RingMaskTimeline *Timeline[Scale2D]
}

// NewRig builds a rig for bounds displaying img. fill is the current image
// fill color.
func NewRig(bounds Rect, img image.Image, palette Palette, fill Color) (*Rig, error) {
	r := &Rig{}
	if err := r.Rebuild(bounds, img, palette, fill); err != nil {
		return nil, err
	}
	return r, nil
}

// Rebuild discards every layer and builds fresh ones for bounds. Animations
// on the old layers are dropped by the facility on its next update.
func (r *Rig) Rebuild(bounds Rect, img image.Image, palette Palette, fill Color) error {
	if img == nil {
		return ErrNoImage
	}
	if bounds.Empty() {
		return fmt.Errorf("starbutton: rig bounds %vx%v are empty", bounds.Width, bounds.Height)
	}

	if r.Root != nil {
		r.Root.Dispose()
	}

	f := FramesFor(bounds)
	r.Frames = f
	r.Root = NewContainerLayer("star", bounds)

	// Ring, clipped by an even-odd annulus: a rect with a tiny hole at the
	// center. Scaling the mask grows the hole into a circular wipe.
	r.Ring = NewShapeLayer("ring", f.Ring, OvalPath(f.Ring))
	r.Ring.Position = f.Center
	r.Ring.FillColor = palette.Ring
	r.Ring.Scale = UniformScale(0)
	r.Root.AddSublayer(r.Ring)

	maskPath := RectPath(f.Ring)
	maskPath.AddArc(f.Center, RingMaskHoleRadius, 0, 2*math.Pi)
	maskPath.FillRule = FillEvenOdd
	r.RingMask = NewShapeLayer("ringMask", f.Ring, maskPath)
	r.RingMask.Position = f.Center
	r.Ring.SetMask(r.RingMask)

	for i := range r.Lines {
		path := &Path{}
		path.MoveTo(f.Line.Center())
		path.LineTo(Vec2{f.Line.X + f.Line.Width/2, f.Line.Y})

		line := NewShapeLayer(fmt.Sprintf("line%d", i), f.Line, path)
		line.Position = f.Center
		line.MasksToBounds = true
		line.FillColor = Color{}
		line.StrokeColor = palette.Line
		line.LineWidth = lineWidth
		line.MiterLimit = lineMiterLimit
		line.LineCap = LineCapRound
		line.LineJoin = LineJoinRound
		line.StrokeStart = 0
		line.StrokeEnd = 0
		line.Opacity = 0
		line.Rotation = LineAngle(i)
		r.Root.AddSublayer(line)
		r.Lines[i] = LineLayer{Layer: line, Index: i}
	}

	r.Image = NewShapeLayer("image", f.Image, RectPath(f.Image))
	r.Image.Position = f.Center
	r.Image.FillColor = fill
	r.Root.AddSublayer(r.Image)

	r.ImageMask = NewContentsLayer("imageMask", f.Mask, img)
	r.ImageMask.Position = f.Center
	r.Image.SetMask(r.ImageMask)

	r.RingMaskTimeline = BindRingMask(Vec2{f.Image.Width, f.Image.Height})
	return nil
}

// AnimatedLayers lists every layer the select burst animates, in the order
// animations are removed on deselect.
func (r *Rig) AnimatedLayers() []*Layer {
	layers := []*Layer{r.Ring, r.RingMask, r.Image}
	for _, l := range r.Lines {
		layers = append(layers, l.Layer)
	}
	return layers
}

// SetRingColor repaints the ring fill.
func (r *Rig) SetRingColor(c Color) {
	r.Ring.FillColor = c
}

// SetLineColor repaints every burst line stroke.
func (r *Rig) SetLineColor(c Color) {
	for _, l := range r.Lines {
		l.StrokeColor = c
	}
}

// SetImageFill repaints the image fill behind the bitmap mask.
func (r *Rig) SetImageFill(c Color) {
	r.Image.FillColor = c
}
