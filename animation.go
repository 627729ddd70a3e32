package starbutton

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Property identifies an animatable layer property.
type Property uint8

const (
	PropertyTransform   Property = iota // layer scale, driven by a Scale2D timeline
	PropertyScale                       // uniform layer scale, driven by a scalar timeline
	PropertyStrokeStart                 // start fraction of a shape's stroke
	PropertyStrokeEnd                   // end fraction of a shape's stroke
	PropertyOpacity                     // layer opacity
)

func (p Property) String() string {
	switch p {
	case PropertyTransform:
		return "transform"
	case PropertyScale:
		return "transform.scale"
	case PropertyStrokeStart:
		return "strokeStart"
	case PropertyStrokeEnd:
		return "strokeEnd"
	case PropertyOpacity:
		return "opacity"
	default:
		return "unknown"
	}
}

// appliesTo reports whether a layer of kind k has property p.
func (p Property) appliesTo(k LayerKind) bool {
	switch p {
	case PropertyStrokeStart, PropertyStrokeEnd:
		return k == LayerShape
	case PropertyTransform, PropertyScale, PropertyOpacity:
		return true
	default:
		return false
	}
}

// Track is a timeline of any value type. *Timeline[float64] and
// *Timeline[Scale2D] implement it.
type Track interface {
	TotalDuration() float64
	Validate() error
	accepts(prop Property) bool
	apply(st *LayerState, prop Property, elapsed float64)
}

// Animation binds a track to a layer property. A zero BeginTime starts the
// animation on the next frame; otherwise it starts once the facility clock
// reaches BeginTime.
type Animation struct {
	Property  Property
	Track     Track
	BeginTime float64
}

type batchEntry struct {
	layer *Layer
	anim  Animation
}

// AnimationBatch collects animations that must begin compositing on the same
// frame. Build one, then hand it to Facility.Commit.
type AnimationBatch struct {
	entries []batchEntry
}

// Add queues track on the layer's prop, starting on the next frame.
func (b *AnimationBatch) Add(l *Layer, prop Property, track Track) {
	b.AddAt(l, prop, track, 0)
}

// AddAt queues track on the layer's prop, starting at begin on the facility clock.
func (b *AnimationBatch) AddAt(l *Layer, prop Property, track Track, begin float64) {
	b.entries = append(b.entries, batchEntry{layer: l, anim: Animation{Property: prop, Track: track, BeginTime: begin}})
}

// Len returns the number of queued animations.
func (b *AnimationBatch) Len() int {
	return len(b.entries)
}

// Facility is the layer animation capability the button drives. The button
// only submits and removes animations; interpolation is the facility's job.
type Facility interface {
	// Commit attaches every animation in the batch so they start together.
	// Animations on disposed layers are dropped silently.
	Commit(batch *AnimationBatch)
	// RemoveAllAnimations detaches every animation from l immediately; the
	// layer snaps back to its model values.
	RemoveAllAnimations(l *Layer)
	// Now reads the facility's monotonic clock in seconds.
	Now() float64
}

// playback is one attached animation.
type playback struct {
	layer     *Layer
	anim      Animation
	begin     float64
	scheduled bool
	clock     *gween.Tween
	elapsed   float64
	finished  bool
}

// Animator is the in-process Facility. There is no global animation
// manager: call Update(dt) once per frame. Finished animations hold their
// final value until removed.
type Animator struct {
	now       float64
	playbacks []*playback
	touched   map[*Layer]bool
}

// NewAnimator creates an Animator with its clock at zero.
func NewAnimator() *Animator {
	return &Animator{touched: make(map[*Layer]bool)}
}

// Now returns the animator clock in seconds.
func (a *Animator) Now() float64 {
	return a.now
}

// Commit attaches the batch. An animation for a property that already has
// one replaces it. Invalid or detached entries are dropped.
func (a *Animator) Commit(batch *AnimationBatch) {
	if batch == nil {
		return
	}
	for _, e := range batch.entries {
		if !a.admit(e) {
			continue
		}
		a.removeProperty(e.layer, e.anim.Property)
		pb := &playback{layer: e.layer, anim: e.anim}
		if e.anim.BeginTime != 0 {
			pb.begin = e.anim.BeginTime
			pb.scheduled = true
		}
		a.playbacks = append(a.playbacks, pb)
	}
}

func (a *Animator) admit(e batchEntry) bool {
	switch {
	case e.layer == nil || e.layer.IsDisposed():
		debugLogf("dropped %s animation on detached layer", e.anim.Property)
		return false
	case e.anim.Track == nil:
		debugLogf("dropped %s animation on %q: no track", e.anim.Property, e.layer.Name)
		return false
	case !e.anim.Property.appliesTo(e.layer.Kind) || !e.anim.Track.accepts(e.anim.Property):
		debugLogf("dropped %s animation on %q: property does not apply", e.anim.Property, e.layer.Name)
		return false
	}
	if err := e.anim.Track.Validate(); err != nil {
		debugLogf("dropped %s animation on %q: %v", e.anim.Property, e.layer.Name, err)
		return false
	}
	return true
}

// RemoveAllAnimations detaches every animation from l.
func (a *Animator) RemoveAllAnimations(l *Layer) {
	kept := a.playbacks[:0]
	for _, pb := range a.playbacks {
		if pb.layer != l {
			kept = append(kept, pb)
		}
	}
	clear(a.playbacks[len(kept):])
	a.playbacks = kept
	l.clearPresentation()
}

func (a *Animator) removeProperty(l *Layer, prop Property) {
	kept := a.playbacks[:0]
	for _, pb := range a.playbacks {
		if pb.layer != l || pb.anim.Property != prop {
			kept = append(kept, pb)
		}
	}
	clear(a.playbacks[len(kept):])
	a.playbacks = kept
}

// Update advances the clock by dt seconds, starts animations whose begin
// time has arrived, and writes sampled values into each layer's
// presentation state. Animations on disposed layers are discarded.
func (a *Animator) Update(dt float32) {
	a.now += float64(dt)

	kept := a.playbacks[:0]
	for _, pb := range a.playbacks {
		if pb.layer.IsDisposed() {
			continue
		}
		kept = append(kept, pb)
		if !pb.scheduled {
			pb.begin = a.now
			pb.scheduled = true
		}
		if a.now < pb.begin {
			continue
		}
		step := dt
		if pb.clock == nil {
			d := float32(pb.anim.Track.TotalDuration())
			pb.clock = gween.New(0, d, d, ease.Linear)
			step = float32(a.now - pb.begin)
		}
		if pb.finished {
			continue
		}
		elapsed, finished := pb.clock.Update(step)
		pb.elapsed = float64(elapsed)
		pb.finished = finished
	}
	clear(a.playbacks[len(kept):])
	a.playbacks = kept

	clear(a.touched)
	for _, pb := range a.playbacks {
		pb.layer.clearPresentation()
	}
	for _, pb := range a.playbacks {
		if pb.clock == nil {
			continue
		}
		if !a.touched[pb.layer] {
			pb.layer.resetPresentation()
			a.touched[pb.layer] = true
		}
		pb.anim.Track.apply(pb.layer.presentation, pb.anim.Property, pb.elapsed)
	}
}

// Animations returns the properties currently animated on l, in commit order.
func (a *Animator) Animations(l *Layer) []Property {
	var props []Property
	for _, pb := range a.playbacks {
		if pb.layer == l {
			props = append(props, pb.anim.Property)
		}
	}
	return props
}

// Animation returns the animation attached to l's prop, if any.
func (a *Animator) Animation(l *Layer, prop Property) (Animation, bool) {
	for _, pb := range a.playbacks {
		if pb.layer == l && pb.anim.Property == prop {
			return pb.anim, true
		}
	}
	return Animation{}, false
}

// HasAnimations reports whether any animation is attached to l.
func (a *Animator) HasAnimations(l *Layer) bool {
	for _, pb := range a.playbacks {
		if pb.layer == l {
			return true
		}
	}
	return false
}

// Finished reports whether every attached animation has played to its end.
func (a *Animator) Finished() bool {
	for _, pb := range a.playbacks {
		if !pb.finished {
			return false
		}
	}
	return true
}
