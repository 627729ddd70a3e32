package starbutton

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// ErrInvalidTimeline is wrapped by every Timeline.Validate failure.
var ErrInvalidTimeline = errors.New("invalid timeline")

// Value is the set of types a Timeline can animate.
type Value interface {
	float64 | Scale2D
}

// Timeline is a keyframe animation expressed as parallel key time and value
// arrays. KeyTimes are normalized to [0, 1] over Duration seconds; repeated
// key times express a hold (the value jumps at that instant). Ease shapes
// every segment between two keys; nil means linear.
type Timeline[V Value] struct {
	Duration float64
	KeyTimes []float64
	Values   []V
	Ease     ease.TweenFunc
}

// EvenTimeline spaces values evenly over duration, the way a keyframe
// animation without explicit key times is paced.
func EvenTimeline[V Value](duration float64, values []V) *Timeline[V] {
	tl := &Timeline[V]{Duration: duration}
	switch n := len(values); n {
	case 0:
	case 1:
		tl.KeyTimes = []float64{0, 1}
		tl.Values = []V{values[0], values[0]}
	default:
		tl.KeyTimes = make([]float64, n)
		for i := range tl.KeyTimes {
			tl.KeyTimes[i] = float64(i) / float64(n-1)
		}
		tl.KeyTimes[n-1] = 1
		tl.Values = append([]V(nil), values...)
	}
	return tl
}

// Validate checks the keyframe invariants: equal lengths, at least one key,
// keys within [0, 1] starting at 0 and ending at 1, non-decreasing keys, and
// a positive duration.
func (tl *Timeline[V]) Validate() error {
	if tl == nil {
		return fmt.Errorf("%w: nil timeline", ErrInvalidTimeline)
	}
	if tl.Duration <= 0 {
		return fmt.Errorf("%w: duration %v is not positive", ErrInvalidTimeline, tl.Duration)
	}
	if len(tl.KeyTimes) != len(tl.Values) {
		return fmt.Errorf("%w: %d key times but %d values", ErrInvalidTimeline, len(tl.KeyTimes), len(tl.Values))
	}
	if len(tl.KeyTimes) == 0 {
		return fmt.Errorf("%w: no keys", ErrInvalidTimeline)
	}
	if first := tl.KeyTimes[0]; first != 0 {
		return fmt.Errorf("%w: first key time is %v, want 0", ErrInvalidTimeline, first)
	}
	if last := tl.KeyTimes[len(tl.KeyTimes)-1]; last != 1 {
		return fmt.Errorf("%w: last key time is %v, want 1", ErrInvalidTimeline, last)
	}
	for i, k := range tl.KeyTimes {
		if k < 0 || k > 1 {
			return fmt.Errorf("%w: key time %d (%v) outside [0, 1]", ErrInvalidTimeline, i, k)
		}
		if i > 0 && k < tl.KeyTimes[i-1] {
			return fmt.Errorf("%w: key time %d (%v) precedes key time %d (%v)", ErrInvalidTimeline, i, k, i-1, tl.KeyTimes[i-1])
		}
	}
	return nil
}

// Clone returns a copy that shares no slices with tl.
func (tl *Timeline[V]) Clone() *Timeline[V] {
	return &Timeline[V]{
		Duration: tl.Duration,
		KeyTimes: append([]float64(nil), tl.KeyTimes...),
		Values:   append([]V(nil), tl.Values...),
		Ease:     tl.Ease,
	}
}

// TotalDuration returns the timeline's length in seconds.
func (tl *Timeline[V]) TotalDuration() float64 {
	return tl.Duration
}

// Final returns the value the timeline holds once it has finished.
func (tl *Timeline[V]) Final() V {
	var zero V
	if len(tl.Values) == 0 {
		return zero
	}
	return tl.Values[len(tl.Values)-1]
}

// At samples the timeline elapsed seconds after it began. Samples before the
// start return the first value; samples past the end hold the last value.
func (tl *Timeline[V]) At(elapsed float64) V {
	progress := 1.0
	if tl.Duration > 0 {
		progress = elapsed / tl.Duration
	}
	return tl.AtProgress(progress)
}

// AtProgress samples the timeline at a normalized progress in [0, 1].
func (tl *Timeline[V]) AtProgress(progress float64) V {
	n := len(tl.Values)
	if n == 0 || len(tl.KeyTimes) != n {
		var zero V
		return zero
	}
	if progress <= tl.KeyTimes[0] {
		return tl.Values[0]
	}
	if progress >= tl.KeyTimes[n-1] {
		return tl.Values[n-1]
	}
	// Last key at or before progress; the next key is strictly after it, so
	// a hold (duplicate key) has already been stepped over.
	i := sort.Search(n, func(i int) bool { return tl.KeyTimes[i] > progress }) - 1
	k0, k1 := tl.KeyTimes[i], tl.KeyTimes[i+1]
	fn := tl.Ease
	if fn == nil {
		fn = ease.Linear
	}
	return interpolate(tl.Values[i], tl.Values[i+1], progress-k0, k1-k0, fn)
}

// accepts reports whether the timeline's value type can drive prop.
func (tl *Timeline[V]) accepts(prop Property) bool {
	var zero V
	switch any(zero).(type) {
	case Scale2D:
		return prop == PropertyTransform
	case float64:
		return prop != PropertyTransform
	}
	return false
}

// apply writes the sample at elapsed into st.
func (tl *Timeline[V]) apply(st *LayerState, prop Property, elapsed float64) {
	switch v := any(tl.At(elapsed)).(type) {
	case Scale2D:
		st.Scale = v
	case float64:
		switch prop {
		case PropertyScale:
			st.Scale = UniformScale(v)
		case PropertyOpacity:
			st.Opacity = v
		case PropertyStrokeStart:
			st.StrokeStart = v
		case PropertyStrokeEnd:
			st.StrokeEnd = v
		}
	}
}

func interpolate[V Value](a, b V, t, d float64, fn ease.TweenFunc) V {
	switch av := any(a).(type) {
	case float64:
		return any(easeBetween(av, any(b).(float64), t, d, fn)).(V)
	case Scale2D:
		bv := any(b).(Scale2D)
		return any(Scale2D{
			X: easeBetween(av.X, bv.X, t, d, fn),
			Y: easeBetween(av.Y, bv.Y, t, d, fn),
		}).(V)
	}
	return a
}

// easeBetween evaluates fn for one keyframe segment. gween easing works in
// float32, which is the precision the renderer consumes anyway.
func easeBetween(a, b, t, d float64, fn ease.TweenFunc) float64 {
	if d <= 0 || a == b {
		return b
	}
	return float64(fn(float32(t), float32(a), float32(b-a), float32(d)))
}
