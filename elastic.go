package starbutton

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Tuned visual parameters of the deselect settle wobble. Changing either one
// changes the rendered curve.
const (
	// ElasticAmplitudeBias is added to the change in value to form the
	// elastic amplitude, keeping it just above |c| so the phase offset is
	// taken from asin instead of the p/4 fallback.
	ElasticAmplitudeBias = 0.001
	// ElasticPeriod is the oscillation period in seconds.
	ElasticPeriod = 0.39988
)

// TweenSampleRate is the number of settle tween samples per second.
const TweenSampleRate = 60

// ElasticOut is Penner's elastic ease-out with explicit amplitude a and
// period p: t is elapsed time, b the start value, c the change, d the
// duration.
func ElasticOut(t, b, c, d, a, p float64) float64 {
	if t == 0 || c == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	var s float64
	if a < math.Abs(c) {
		a = c
		s = p / 4
	} else {
		s = p / (2 * math.Pi) * math.Asin(c/a)
	}
	return a*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
}

// ElasticEase adapts ElasticOut to a gween easing function. The amplitude is
// c+amplitudeBias for every call, matching GenerateTweenValues.
func ElasticEase(amplitudeBias, period float64) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		cc := float64(c)
		return float32(ElasticOut(float64(t), float64(b), cc, float64(d), cc+amplitudeBias, period))
	}
}

// GenerateTweenValues samples the settle curve from -> to at TweenSampleRate
// for duration seconds. The result has floor(duration*60) samples, the first
// taken at t=0; it approaches but need not land on to. A non-positive
// duration yields an empty slice.
func GenerateTweenValues(from, to, duration float64) []float64 {
	if duration <= 0 {
		return []float64{}
	}
	n := int(math.Floor(duration * TweenSampleRate))
	c := to - from
	values := make([]float64, n)
	for i := range values {
		t := float64(i) / TweenSampleRate
		values[i] = ElasticOut(t, from, c, duration, c+ElasticAmplitudeBias, ElasticPeriod)
	}
	return values
}
