package starbutton

import (
	"image"
)

// layerIDCounter is a plain counter; layers are only built on the render goroutine.
var layerIDCounter uint32

func nextLayerID() uint32 {
	layerIDCounter++
	return layerIDCounter
}

// LayerState holds the animatable properties of a layer. A layer carries two
// copies: the model state set by the rig, and the presentation state written
// by the animator while animations are attached.
type LayerState struct {
	Scale       Scale2D
	Opacity     float64
	StrokeStart float64
	StrokeEnd   float64
}

// Layer is the rig's scene graph element. A single flat struct is used for
// every layer kind, mirroring a shape layer: geometry is described by Bounds
// (the layer's own coordinate space) and Position (where the center of Bounds
// lands in the superlayer).
type Layer struct {
	// Identity
	ID   uint32
	Name string
	Kind LayerKind

	// Hierarchy
	Superlayer *Layer
	sublayers  []*Layer

	// Geometry
	Bounds   Rect
	Position Vec2
	Rotation float64

	// Model values of the animatable properties.
	LayerState

	// Shape fields (LayerShape)
	Path        *Path
	FillColor   Color
	StrokeColor Color
	LineWidth   float64
	MiterLimit  float64
	LineCap     LineCap
	LineJoin    LineJoin

	// Contents fields (LayerContents)
	Contents image.Image

	MasksToBounds bool

	mask      *Layer
	maskOwner *Layer

	presentation *LayerState
	disposed     bool
}

// layerDefaults sets the common default field values shared by all constructors.
func layerDefaults(l *Layer) {
	l.ID = nextLayerID()
	l.Scale = IdentityScale
	l.Opacity = 1
	l.StrokeEnd = 1
}

// NewContainerLayer creates a layer with no visual output of its own.
func NewContainerLayer(name string, bounds Rect) *Layer {
	l := &Layer{Name: name, Kind: LayerContainer, Bounds: bounds, Position: bounds.Center()}
	layerDefaults(l)
	return l
}

// NewShapeLayer creates a layer that fills and strokes path. The fill color
// defaults to opaque black so the layer is usable as a mask without styling.
func NewShapeLayer(name string, bounds Rect, path *Path) *Layer {
	l := &Layer{
		Name:      name,
		Kind:      LayerShape,
		Bounds:    bounds,
		Position:  bounds.Center(),
		Path:      path,
		FillColor: Color{0, 0, 0, 1},
	}
	layerDefaults(l)
	return l
}

// NewContentsLayer creates a layer that displays img stretched over bounds.
func NewContentsLayer(name string, bounds Rect, img image.Image) *Layer {
	l := &Layer{Name: name, Kind: LayerContents, Bounds: bounds, Position: bounds.Center(), Contents: img}
	layerDefaults(l)
	return l
}

// --- Tree manipulation ---

// AddSublayer appends child to this layer's sublayers.
// If child already has a superlayer, it is removed from that superlayer first.
// Panics if child is nil or child is an ancestor of this layer (cycle).
func (l *Layer) AddSublayer(child *Layer) {
	if child == nil {
		panic("starbutton: cannot add nil sublayer")
	}
	if globalDebug {
		debugCheckDisposed(l, "AddSublayer (parent)")
		debugCheckDisposed(child, "AddSublayer (child)")
	}
	if isAncestor(child, l) {
		panic("starbutton: adding sublayer would create a cycle")
	}
	if child.Superlayer != nil {
		child.Superlayer.removeSublayerByPtr(child)
	}
	child.Superlayer = l
	l.sublayers = append(l.sublayers, child)
}

// RemoveFromSuperlayer detaches this layer from its superlayer.
// No-op if this layer has no superlayer.
func (l *Layer) RemoveFromSuperlayer() {
	if l.Superlayer == nil {
		return
	}
	l.Superlayer.removeSublayerByPtr(l)
	l.Superlayer = nil
}

// Sublayers returns the sublayer list. The returned slice MUST NOT be mutated by the caller.
func (l *Layer) Sublayers() []*Layer {
	return l.sublayers
}

// DisposeSublayers disposes every sublayer and empties the list.
func (l *Layer) DisposeSublayers() {
	for _, child := range l.sublayers {
		child.Superlayer = nil
		child.dispose()
	}
	l.sublayers = nil
}

// --- Masking ---

// SetMask sets a mask layer for this layer. The mask's alpha channel
// determines which parts of this layer are visible. The mask is NOT part of
// the layer tree; its Position is relative to this layer's Bounds.
func (l *Layer) SetMask(mask *Layer) {
	if l.mask != nil {
		l.mask.maskOwner = nil
	}
	l.mask = mask
	if mask != nil {
		mask.maskOwner = l
	}
}

// Mask returns the current mask layer, or nil if no mask is set.
func (l *Layer) Mask() *Layer {
	return l.mask
}

// --- Presentation ---

// Presentation returns the values the layer should be drawn with: the
// animator's sampled values while animations are attached, the model values
// otherwise.
func (l *Layer) Presentation() LayerState {
	if l.presentation != nil {
		return *l.presentation
	}
	return l.LayerState
}

// resetPresentation starts a new frame of sampling from the model values.
func (l *Layer) resetPresentation() *LayerState {
	if l.presentation == nil {
		l.presentation = new(LayerState)
	}
	*l.presentation = l.LayerState
	return l.presentation
}

// clearPresentation snaps the layer back to its model values.
func (l *Layer) clearPresentation() {
	l.presentation = nil
}

// --- Disposal ---

// Dispose removes this layer from its superlayer, marks it as disposed,
// and recursively disposes all sublayers and the mask.
func (l *Layer) Dispose() {
	if l.disposed {
		return
	}
	l.RemoveFromSuperlayer()
	if l.maskOwner != nil {
		l.maskOwner.mask = nil
	}
	l.dispose()
}

func (l *Layer) dispose() {
	l.disposed = true
	l.ID = 0
	for _, child := range l.sublayers {
		child.Superlayer = nil
		child.dispose()
	}
	l.sublayers = nil
	if l.mask != nil {
		l.mask.maskOwner = nil
		l.mask.dispose()
		l.mask = nil
	}
	l.maskOwner = nil
	l.Superlayer = nil
	l.Path = nil
	l.Contents = nil
	l.presentation = nil
}

// IsDisposed returns true if this layer has been disposed.
func (l *Layer) IsDisposed() bool {
	return l.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of layer.
func isAncestor(candidate, layer *Layer) bool {
	for p := layer; p != nil; p = p.Superlayer {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeSublayerByPtr removes child from l.sublayers without clearing child.Superlayer.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (l *Layer) removeSublayerByPtr(child *Layer) {
	for i, c := range l.sublayers {
		if c == child {
			copy(l.sublayers[i:], l.sublayers[i+1:])
			l.sublayers[len(l.sublayers)-1] = nil
			l.sublayers = l.sublayers[:len(l.sublayers)-1]
			return
		}
	}
}
