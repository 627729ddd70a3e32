package starbutton

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform maps the layer's own coordinate space into its
// superlayer's space using the given scale. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-boundsCenter) -> Scale -> Rotate -> Translate(Position)
func computeLocalTransform(l *Layer, scale Scale2D) [6]float64 {
	sin, cos := math.Sincos(l.Rotation)
	sx, sy := scale.X, scale.Y
	c := l.Bounds.Center()

	// Scale * Translate(-center):
	//   a=sx, d=sy, tx=-cx*sx, ty=-cy*sy
	preTx := -c.X * sx
	preTy := -c.Y * sy

	return [6]float64{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + l.Position.X,
		sin*preTx + cos*preTy + l.Position.Y,
	}
}

// presentationTransform is computeLocalTransform at the layer's presentation scale.
func presentationTransform(l *Layer) [6]float64 {
	return computeLocalTransform(l, l.Presentation().Scale)
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// worldTransform composes the presentation transforms from the root down to
// l. A mask layer continues from the layer it masks.
func worldTransform(l *Layer) [6]float64 {
	local := presentationTransform(l)
	switch {
	case l.Superlayer != nil:
		return multiplyAffine(worldTransform(l.Superlayer), local)
	case l.maskOwner != nil:
		return multiplyAffine(worldTransform(l.maskOwner), local)
	default:
		return local
	}
}

// LocalToWorld converts a point in the layer's coordinate space to the root's
// superlayer space at the current presentation values.
func (l *Layer) LocalToWorld(x, y float64) (float64, float64) {
	return transformPoint(worldTransform(l), x, y)
}
