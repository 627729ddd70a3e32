package starbutton

import "fmt"

// The select burst choreography. Key times are fractions of each timeline's
// duration; the trailing comments give the source frame at ~30 fps.
// Buttons share these tables directly. Callers outside the package only see
// copies from the accessors below.

// ringScale grows the ring from nothing, overshooting to 1.4x, then holds.
var ringScale = &Timeline[Scale2D]{
	Duration: 0.333,
	KeyTimes: []float64{
		0.0, //  0/10
		0.1, //  1/10
		0.2, //  2/10
		0.3, //  3/10
		0.4, //  4/10
		0.5, //  5/10
		0.6, //  6/10
		1.0, // 10/10
	},
	Values: []Scale2D{
		UniformScale(0.0),
		UniformScale(0.5),
		UniformScale(1.0),
		UniformScale(1.2),
		UniformScale(1.3),
		UniformScale(1.37),
		UniformScale(1.4),
		UniformScale(1.4),
	},
}

// RingMaskIdentityKeys is the number of leading ringMaskScale keys that keep
// the mask at identity instead of being multiplied by the frame size.
const RingMaskIdentityKeys = 2

// RingMaskHoleRadius is the radius of the hole punched in the ring mask.
// ringMaskScale coefficients times the image frame size grow it into the
// reveal wipe.
const RingMaskHoleRadius = 0.1

// ringMaskScale expands the annulus mask's hole. Values are coefficients of
// the image frame size; see BindRingMask.
var ringMaskScale = &Timeline[Scale2D]{
	Duration: 0.333,
	KeyTimes: []float64{
		0.0, //  0/10
		0.2, //  2/10
		0.3, //  3/10
		0.4, //  4/10
		0.5, //  5/10
		0.6, //  6/10
		0.7, //  7/10
		0.9, //  9/10
		1.0, // 10/10
	},
	Values: []Scale2D{
		IdentityScale,
		IdentityScale,
		UniformScale(1.25),
		UniformScale(2.688),
		UniformScale(3.923),
		UniformScale(4.375),
		UniformScale(4.731),
		UniformScale(5.0),
		UniformScale(5.0),
	},
}

// lineStrokeStart trims the tail of each burst line.
var lineStrokeStart = &Timeline[float64]{
	Duration: 0.6,
	KeyTimes: []float64{
		0.0,   //  0/18
		0.056, //  1/18
		0.111, //  2/18
		0.167, //  3/18
		0.222, //  4/18
		0.278, //  5/18
		0.333, //  6/18
		0.389, //  7/18
		0.444, //  8/18
		0.944, // 17/18
		1.0,   // 18/18
	},
	Values: []float64{
		0.0,
		0.0,
		0.18,
		0.2,
		0.26,
		0.32,
		0.4,
		0.6,
		0.71,
		0.89,
		0.92,
	},
}

// lineStrokeEnd extends the head of each burst line.
var lineStrokeEnd = &Timeline[float64]{
	Duration: 0.6,
	KeyTimes: []float64{
		0.0,   //  0/18
		0.056, //  1/18
		0.111, //  2/18
		0.167, //  3/18
		0.222, //  4/18
		0.278, //  5/18
		0.944, // 17/18
		1.0,   // 18/18
	},
	Values: []float64{
		0.0,
		0.0,
		0.32,
		0.48,
		0.64,
		0.68,
		0.92,
		0.92,
	},
}

// lineOpacity keeps the lines opaque while they stroke out, then fades them.
// The final key holds the faded value to the end of the second.
var lineOpacity = &Timeline[float64]{
	Duration: 1.0,
	KeyTimes: []float64{
		0.0,   //  0/30
		0.4,   // 12/30
		0.567, // 17/30
		1.0,   // 30/30
	},
	Values: []float64{
		1.0,
		1.0,
		0.0,
		0.0,
	},
}

// imageScale pops the star in from nothing with a damped bounce.
var imageScale = &Timeline[Scale2D]{
	Duration: 1.0,
	KeyTimes: []float64{
		0.0,   //  0/30
		0.1,   //  3/30
		0.3,   //  9/30
		0.333, // 10/30
		0.367, // 11/30
		0.467, // 14/30
		0.5,   // 15/30
		0.533, // 16/30
		0.567, // 17/30
		0.667, // 20/30
		0.7,   // 21/30
		0.733, // 22/30
		0.833, // 25/30
		0.867, // 26/30
		0.9,   // 27/30
		0.967, // 29/30
		1.0,   // 30/30
	},
	Values: []Scale2D{
		UniformScale(0.0),
		UniformScale(0.0),
		UniformScale(1.2),
		UniformScale(1.25),
		UniformScale(1.2),
		UniformScale(0.9),
		UniformScale(0.875),
		UniformScale(0.875),
		UniformScale(0.9),
		UniformScale(1.013),
		UniformScale(1.025),
		UniformScale(1.013),
		UniformScale(0.96),
		UniformScale(0.95),
		UniformScale(0.96),
		UniformScale(0.99),
		IdentityScale,
	},
}

// TimelineInfo names one library timeline for iteration.
type TimelineInfo struct {
	Name   string
	Scalar *Timeline[float64]
	Scale  *Timeline[Scale2D]
}

// Validate validates whichever timeline the entry holds.
func (ti TimelineInfo) Validate() error {
	switch {
	case ti.Scalar != nil:
		return ti.Scalar.Validate()
	case ti.Scale != nil:
		return ti.Scale.Validate()
	default:
		return fmt.Errorf("%w: %q holds no timeline", ErrInvalidTimeline, ti.Name)
	}
}

// Library lists copies of the six select timelines in a fixed order.
func Library() []TimelineInfo {
	return []TimelineInfo{
		{Name: "ringScale", Scale: RingScale()},
		{Name: "ringMaskScale", Scale: RingMaskScale()},
		{Name: "lineStrokeStart", Scalar: LineStrokeStart()},
		{Name: "lineStrokeEnd", Scalar: LineStrokeEnd()},
		{Name: "lineOpacity", Scalar: LineOpacity()},
		{Name: "imageScale", Scale: ImageScale()},
	}
}

// RingScale returns a copy of the ring's grow timeline.
func RingScale() *Timeline[Scale2D] { return ringScale.Clone() }

// RingMaskScale returns a copy of the unbound ring mask timeline.
func RingMaskScale() *Timeline[Scale2D] { return ringMaskScale.Clone() }

// LineStrokeStart returns a copy of the line tail timeline.
func LineStrokeStart() *Timeline[float64] { return lineStrokeStart.Clone() }

// LineStrokeEnd returns a copy of the line head timeline.
func LineStrokeEnd() *Timeline[float64] { return lineStrokeEnd.Clone() }

// LineOpacity returns a copy of the line fade timeline.
func LineOpacity() *Timeline[float64] { return lineOpacity.Clone() }

// ImageScale returns a copy of the image bounce timeline.
func ImageScale() *Timeline[Scale2D] { return imageScale.Clone() }

// BindRingMask returns a copy of ringMaskScale whose expanding keys are
// multiplied by the image frame size, so the 0.1 px hole grows to cover
// frameSize*0.5 at full scale. Leading identity keys stay identity.
func BindRingMask(frameSize Vec2) *Timeline[Scale2D] {
	values := make([]Scale2D, len(ringMaskScale.Values))
	for i, v := range ringMaskScale.Values {
		if i < RingMaskIdentityKeys {
			values[i] = v
			continue
		}
		values[i] = Scale2D{v.X * frameSize.X, v.Y * frameSize.Y}
	}
	return &Timeline[Scale2D]{
		Duration: ringMaskScale.Duration,
		KeyTimes: append([]float64(nil), ringMaskScale.KeyTimes...),
		Values:   values,
		Ease:     ringMaskScale.Ease,
	}
}
