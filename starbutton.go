package starbutton

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorRGB255 builds an opaque Color from 0-255 channel values.
func ColorRGB255(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Default palette of the control.
var (
	DefaultNormalColor   = ColorRGB255(136, 153, 166)
	DefaultSelectedColor = ColorRGB255(255, 172, 51)
	DefaultRingColor     = ColorRGB255(255, 172, 51)
	DefaultLineColor     = ColorRGB255(250, 120, 68)
)

// isZero reports whether c is the zero value, which Config treats as "unset".
func (c Color) isZero() bool {
	return c == Color{}
}

// toRGBA converts the color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// withAlpha returns c with its alpha multiplied by a.
func (c Color) withAlpha(a float64) Color {
	c.A *= a
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, sizes, and path points.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// ScaledAbout returns a rectangle whose size is r's size multiplied by s and
// whose center is c.
func (r Rect) ScaledAbout(s float64, c Vec2) Rect {
	w, h := r.Width*s, r.Height*s
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Scale2D is a non-uniform scale transform. The zero value collapses a layer
// to a point; use IdentityScale for "no transform".
type Scale2D struct {
	X, Y float64
}

// IdentityScale leaves a layer at its natural size.
var IdentityScale = Scale2D{1, 1}

// UniformScale returns a Scale2D with both axes set to s.
func UniformScale(s float64) Scale2D {
	return Scale2D{s, s}
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendMask                    // clip destination to source alpha
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendMask:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorZero,
			BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
			BlendFactorDestinationRGB:   ebiten.BlendFactorSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

// LayerKind distinguishes rendering behavior for a Layer.
type LayerKind uint8

const (
	LayerContainer LayerKind = iota // group layer with no visual output
	LayerShape                      // fills and/or strokes a Path
	LayerContents                   // displays a bitmap (used as a mask)
)

// LineCap controls how open stroke ends are drawn.
type LineCap uint8

const (
	LineCapButt   LineCap = iota // stroke stops at the endpoint
	LineCapRound                 // semicircular cap centered on the endpoint
	LineCapSquare                // half-width square past the endpoint
)

// LineJoin controls how stroke segments meet.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota // sharp corner, bevelled past MiterLimit
	LineJoinRound
	LineJoinBevel
)
