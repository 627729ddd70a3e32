package starbutton

import "math"

// FillRule decides which regions of a Path are inside.
type FillRule uint8

const (
	FillNonZero FillRule = iota // every enclosed region is filled
	FillEvenOdd                 // regions enclosed an odd number of times are filled
)

// arcSegments is the number of polygon edges used to flatten a full circle.
const arcSegments = 48

// Path is a flattened vector path made of subpaths. Curves are stored as
// polylines so rendering and hit testing never need to re-tessellate.
type Path struct {
	Subpaths [][]Vec2
	Closed   []bool
	FillRule FillRule
}

// RectPath returns a closed path tracing r.
func RectPath(r Rect) *Path {
	p := &Path{}
	p.AddRect(r)
	return p
}

// OvalPath returns a closed path tracing the ellipse inscribed in r.
func OvalPath(r Rect) *Path {
	p := &Path{}
	p.AddOval(r)
	return p
}

// AddRect appends a closed rectangle subpath.
func (p *Path) AddRect(r Rect) {
	p.Subpaths = append(p.Subpaths, []Vec2{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, r.Y + r.Height},
		{r.X, r.Y + r.Height},
	})
	p.Closed = append(p.Closed, true)
}

// AddOval appends a closed ellipse subpath inscribed in r.
func (p *Path) AddOval(r Rect) {
	c := r.Center()
	rx, ry := r.Width/2, r.Height/2
	pts := make([]Vec2, arcSegments)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / arcSegments)
		pts[i] = Vec2{c.X + rx*cos, c.Y + ry*sin}
	}
	p.Subpaths = append(p.Subpaths, pts)
	p.Closed = append(p.Closed, true)
}

// AddArc appends a closed circular subpath from start to end (radians,
// clockwise in a Y-down space).
func (p *Path) AddArc(center Vec2, radius, start, end float64) {
	sweep := end - start
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * arcSegments))
	if n < 1 {
		n = 1
	}
	pts := make([]Vec2, 0, n+1)
	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(start + sweep*float64(i)/float64(n))
		pts = append(pts, Vec2{center.X + radius*cos, center.Y + radius*sin})
	}
	// A full turn repeats the first point; drop it so the polygon stays simple.
	if math.Abs(sweep) >= 2*math.Pi {
		pts = pts[:len(pts)-1]
	}
	p.Subpaths = append(p.Subpaths, pts)
	p.Closed = append(p.Closed, true)
}

// MoveTo starts a new open subpath at pt.
func (p *Path) MoveTo(pt Vec2) {
	p.Subpaths = append(p.Subpaths, []Vec2{pt})
	p.Closed = append(p.Closed, false)
}

// LineTo extends the current subpath to pt. Panics if there is no current subpath.
func (p *Path) LineTo(pt Vec2) {
	if len(p.Subpaths) == 0 {
		panic("starbutton: LineTo without MoveTo")
	}
	last := len(p.Subpaths) - 1
	p.Subpaths[last] = append(p.Subpaths[last], pt)
}

// Close marks the current subpath as closed. No-op without a subpath.
func (p *Path) Close() {
	if len(p.Closed) > 0 {
		p.Closed[len(p.Closed)-1] = true
	}
}

// Bounds returns the axis-aligned bounding box of every point in the path.
func (p *Path) Bounds() Rect {
	first := true
	var minX, minY, maxX, maxY float64
	for _, sp := range p.Subpaths {
		for _, pt := range sp {
			if first {
				minX, minY, maxX, maxY = pt.X, pt.Y, pt.X, pt.Y
				first = false
				continue
			}
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Length returns the total length of the path's polylines. Closed subpaths
// include their closing edge.
func (p *Path) Length() float64 {
	var total float64
	for i, sp := range p.Subpaths {
		total += polylineLength(sp, p.Closed[i])
	}
	return total
}

// Contains reports whether pt is inside the path under its fill rule. Open
// subpaths enclose nothing.
func (p *Path) Contains(pt Vec2) bool {
	winding, crossings := 0, 0
	for i, sp := range p.Subpaths {
		if !p.Closed[i] || len(sp) < 3 {
			continue
		}
		for j := range sp {
			a, b := sp[j], sp[(j+1)%len(sp)]
			if (a.Y <= pt.Y) == (b.Y <= pt.Y) {
				continue
			}
			x := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < x {
				crossings++
				if b.Y > a.Y {
					winding++
				} else {
					winding--
				}
			}
		}
	}
	if p.FillRule == FillEvenOdd {
		return crossings%2 == 1
	}
	return winding != 0
}

// Trim returns the portion of the first subpath between the start and
// end fractions of its length, the way strokeStart/strokeEnd clip a stroke.
// Returns nil when the visible portion is empty.
func (p *Path) Trim(start, end float64) []Vec2 {
	if len(p.Subpaths) == 0 {
		return nil
	}
	start, end = clamp01(start), clamp01(end)
	if end <= start {
		return nil
	}
	sp := p.Subpaths[0]
	total := polylineLength(sp, false)
	if total == 0 {
		return nil
	}
	from, to := start*total, end*total

	var out []Vec2
	walked := 0.0
	for i := 0; i+1 < len(sp); i++ {
		a, b := sp[i], sp[i+1]
		seg := math.Hypot(b.X-a.X, b.Y-a.Y)
		segEnd := walked + seg
		if segEnd >= from && walked <= to && seg > 0 {
			lo := math.Max(from, walked)
			hi := math.Min(to, segEnd)
			if len(out) == 0 {
				out = append(out, lerpVec(a, b, (lo-walked)/seg))
			}
			out = append(out, lerpVec(a, b, (hi-walked)/seg))
		}
		walked = segEnd
	}
	return out
}

func polylineLength(pts []Vec2, closed bool) float64 {
	var total float64
	for i := 0; i+1 < len(pts); i++ {
		total += math.Hypot(pts[i+1].X-pts[i].X, pts[i+1].Y-pts[i].Y)
	}
	if closed && len(pts) > 1 {
		a, b := pts[len(pts)-1], pts[0]
		total += math.Hypot(b.X-a.X, b.Y-a.Y)
	}
	return total
}

func lerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}
