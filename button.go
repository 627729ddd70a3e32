package starbutton

import (
	"errors"
	"fmt"
	"image"
)

// ErrNoImage is returned when a button is configured without a bitmap. There
// is no default rendering, so construction fails.
var ErrNoImage = errors.New("starbutton: please provide an image for the normal state")

// DefaultSettleDuration is the length of the deselect settle wobble in seconds.
const DefaultSettleDuration = 0.5

// State is the selection state of a button.
type State uint8

const (
	Deselected State = iota
	Selected
)

func (s State) String() string {
	switch s {
	case Deselected:
		return "deselected"
	case Selected:
		return "selected"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Config configures a Button. Zero-valued colors and durations take the
// control's defaults.
type Config struct {
	// Bounds is the control's rectangle; every layer is centered on it.
	Bounds Rect
	// Image is the bitmap whose alpha shapes the star. Required.
	Image image.Image

	NormalColor   Color
	SelectedColor Color
	RingColor     Color
	LineColor     Color

	// SettleDuration is the deselect wobble length in seconds.
	SettleDuration float64
	// SettleDelay postpones the wobble when deselecting from Selected.
	SettleDelay float64

	// Facility runs the animations. Nil gives the button its own Animator,
	// advanced by Button.Update.
	Facility Facility
}

// Button is a two-state star toggle. Select plays a burst of ring, lines and
// image bounce; Deselect cancels it and plays an elastic settle on the star.
// All methods are synchronous and must be called from the render goroutine.
type Button struct {
	rig      *Rig
	facility Facility
	animator *Animator

	state   State
	palette Palette
	bounds  Rect
	image   image.Image

	settleDuration float64
	settleDelay    float64
	settle         *Timeline[float64]

	// Alpha multiplies the opacity of every layer when drawing.
	Alpha float64

	renderer renderer
}

// New builds a button from cfg in the Deselected state.
func New(cfg Config) (*Button, error) {
	if cfg.Image == nil {
		return nil, ErrNoImage
	}
	b := &Button{
		facility:       cfg.Facility,
		palette:        DefaultPalette(),
		bounds:         cfg.Bounds,
		image:          cfg.Image,
		settleDuration: cfg.SettleDuration,
		settleDelay:    cfg.SettleDelay,
		Alpha:          1,
	}
	if b.facility == nil {
		b.animator = NewAnimator()
		b.facility = b.animator
	}
	if b.settleDuration == 0 {
		b.settleDuration = DefaultSettleDuration
	}
	for _, c := range []struct {
		src Color
		dst *Color
	}{
		{cfg.NormalColor, &b.palette.Normal},
		{cfg.SelectedColor, &b.palette.Selected},
		{cfg.RingColor, &b.palette.Ring},
		{cfg.LineColor, &b.palette.Line},
	} {
		if !c.src.isZero() {
			*c.dst = c.src
		}
	}

	rig, err := NewRig(b.bounds, b.image, b.palette, b.palette.Normal)
	if err != nil {
		return nil, fmt.Errorf("build button: %w", err)
	}
	b.rig = rig
	return b, nil
}

// State returns the current selection state.
func (b *Button) State() State {
	return b.state
}

// IsSelected reports whether the button is Selected.
func (b *Button) IsSelected() bool {
	return b.state == Selected
}

// Rig returns the button's layers. They are replaced on every rebuild.
func (b *Button) Rig() *Rig {
	return b.rig
}

// Facility returns the animation facility the button submits to.
func (b *Button) Facility() Facility {
	return b.facility
}

// Update advances the button's own Animator by dt seconds. No-op when the
// button was configured with an external Facility.
func (b *Button) Update(dt float32) {
	if b.animator != nil {
		b.animator.Update(dt)
	}
}

// Toggle deselects a Selected button and selects a Deselected one.
func (b *Button) Toggle() {
	if b.state == Selected {
		b.Deselect()
	} else {
		b.Select()
	}
}

// SetSelected changes the state without a burst: selecting only repaints the
// fill, deselecting runs Deselect. No-op when the state already matches.
func (b *Button) SetSelected(selected bool) {
	if selected == b.IsSelected() {
		return
	}
	if selected {
		b.state = Selected
		b.rig.SetImageFill(b.palette.Selected)
		debugLogTransition(Deselected, Selected, nil)
		return
	}
	b.Deselect()
}

// Select switches to Selected and submits the six burst timelines as one batch.
func (b *Button) Select() {
	prev := b.state
	b.state = Selected
	b.rig.SetImageFill(b.palette.Selected)

	r := b.rig
	batch := &AnimationBatch{}
	batch.Add(r.Ring, PropertyTransform, ringScale)
	batch.Add(r.RingMask, PropertyTransform, r.RingMaskTimeline)
	batch.Add(r.Image, PropertyTransform, imageScale)
	for _, line := range r.Lines {
		batch.Add(line.Layer, PropertyStrokeStart, lineStrokeStart)
		batch.Add(line.Layer, PropertyStrokeEnd, lineStrokeEnd)
		batch.Add(line.Layer, PropertyOpacity, lineOpacity)
	}
	b.facility.Commit(batch)
	debugLogTransition(prev, Selected, batch)
}

// Deselect switches to Deselected, cancels the burst, restores the normal
// fill and plays the settle wobble on the bitmap mask. Calling it while
// already Deselected replays the wobble.
func (b *Button) Deselect() {
	prev := b.state
	b.state = Deselected

	for _, l := range b.rig.AnimatedLayers() {
		b.facility.RemoveAllAnimations(l)
	}
	b.rig.SetImageFill(b.palette.Normal)

	batch := &AnimationBatch{}
	track := b.settleTrack()
	if prev == Selected && b.settleDelay > 0 {
		batch.AddAt(b.rig.ImageMask, PropertyScale, track, b.facility.Now()+b.settleDelay)
	} else {
		batch.Add(b.rig.ImageMask, PropertyScale, track)
	}
	b.facility.Commit(batch)
	debugLogTransition(prev, Deselected, batch)
}

// SettleValues returns the cached settle wobble samples.
func (b *Button) SettleValues() []float64 {
	return b.settleTrack().Values
}

// settleTrack returns the memoized settle timeline, regenerating it only
// when the settle duration has changed since it was computed.
func (b *Button) settleTrack() *Timeline[float64] {
	if b.settle == nil || b.settle.Duration != b.settleDuration {
		values := GenerateTweenValues(0, 1, b.settleDuration)
		b.settle = EvenTimeline(b.settleDuration, values)
	}
	return b.settle
}

// SetSettle changes the settle wobble duration and delay.
func (b *Button) SetSettle(duration, delay float64) {
	b.settleDuration = duration
	b.settleDelay = delay
}

// --- Colors ---

// NormalColor returns the fill used while Deselected.
func (b *Button) NormalColor() Color { return b.palette.Normal }

// SelectedColor returns the fill used while Selected.
func (b *Button) SelectedColor() Color { return b.palette.Selected }

// RingColor returns the ring fill.
func (b *Button) RingColor() Color { return b.palette.Ring }

// LineColor returns the burst line stroke.
func (b *Button) LineColor() Color { return b.palette.Line }

// SetNormalColor sets the Deselected fill, repainting now if Deselected.
func (b *Button) SetNormalColor(c Color) {
	b.palette.Normal = c
	if b.state == Deselected {
		b.rig.SetImageFill(c)
	}
}

// SetSelectedColor sets the Selected fill, repainting now if Selected.
func (b *Button) SetSelectedColor(c Color) {
	b.palette.Selected = c
	if b.state == Selected {
		b.rig.SetImageFill(c)
	}
}

// SetRingColor repaints the ring.
func (b *Button) SetRingColor(c Color) {
	b.palette.Ring = c
	b.rig.SetRingColor(c)
}

// SetLineColor repaints the burst lines.
func (b *Button) SetLineColor(c Color) {
	b.palette.Line = c
	b.rig.SetLineColor(c)
}

// --- Geometry ---

// Bounds returns the control rectangle.
func (b *Button) Bounds() Rect {
	return b.bounds
}

// SetBounds rebuilds every layer for the new rectangle. Running animations
// are discarded with the old layers.
func (b *Button) SetBounds(bounds Rect) error {
	if err := b.rebuild(bounds, b.image); err != nil {
		return err
	}
	b.bounds = bounds
	return nil
}

// SetImage swaps the bitmap and rebuilds every layer.
func (b *Button) SetImage(img image.Image) error {
	if err := b.rebuild(b.bounds, img); err != nil {
		return err
	}
	b.image = img
	return nil
}

func (b *Button) rebuild(bounds Rect, img image.Image) error {
	if img == nil {
		return ErrNoImage
	}
	old := append(b.rig.AnimatedLayers(), b.rig.ImageMask)

	fill := b.palette.Normal
	if b.state == Selected {
		fill = b.palette.Selected
	}
	if err := b.rig.Rebuild(bounds, img, b.palette, fill); err != nil {
		return fmt.Errorf("rebuild button: %w", err)
	}
	for _, l := range old {
		b.facility.RemoveAllAnimations(l)
	}
	b.renderer.invalidate()
	return nil
}
