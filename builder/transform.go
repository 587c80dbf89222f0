package builder

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/brep/bspline"
	"github.com/cpmech/brep/knot"
)

func isZeroVec(v la.Vector) bool {
	for _, x := range v {
		if math.Abs(x) > 1e-12 {
			return false
		}
	}
	return true
}

func translatePoint3(p, vec la.Vector) la.Vector {
	out := make(la.Vector, len(p))
	for i := range p {
		out[i] = p[i] + vec[i]
	}
	return out
}

// applyToPoint applies f to the Euclidean part of a control point,
// handling both plain 3D points and 4-component homogeneous ones (the
// weight is carried through unchanged, matching how circle_arc and
// line control points are represented, spec.md §3).
func applyToPoint(v la.Vector, f func(la.Vector) la.Vector) la.Vector {
	if len(v) == 4 {
		w := v[3]
		p := la.Vector{v[0] / w, v[1] / w, v[2] / w}
		rp := f(p)
		return la.Vector{rp[0] * w, rp[1] * w, rp[2] * w, w}
	}
	return f(v)
}

func translateCurve(c *bspline.Curve, vec la.Vector) *bspline.Curve {
	ctrl := c.ControlPoints()
	out := make([]la.Vector, len(ctrl))
	for i, v := range ctrl {
		out[i] = applyToPoint(v, func(p la.Vector) la.Vector { return translatePoint3(p, vec) })
	}
	nc, _ := bspline.NewCurve(c.Knots(), out)
	return nc
}

func rotatePoint3(p, origin, axis la.Vector, angle float64) la.Vector {
	k := make(la.Vector, 3)
	n := la.VecNorm(axis)
	for i := range k {
		k[i] = axis[i] / n
	}
	v := sub3(p, origin)
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	kxv := cross3(k, v)
	kdv := dot3(k, v)
	out := make(la.Vector, 3)
	for i := 0; i < 3; i++ {
		out[i] = v[i]*cosA + kxv[i]*sinA + k[i]*kdv*(1-cosA) + origin[i]
	}
	return out
}

func rotateCurve(c *bspline.Curve, origin, axis la.Vector, angle float64) *bspline.Curve {
	ctrl := c.ControlPoints()
	out := make([]la.Vector, len(ctrl))
	for i, v := range ctrl {
		out[i] = applyToPoint(v, func(p la.Vector) la.Vector { return rotatePoint3(p, origin, axis, angle) })
	}
	nc, _ := bspline.NewCurve(c.Knots(), out)
	return nc
}

// toHomogeneous4 returns v as a 4-component homogeneous point, giving
// plain 3D points an implicit weight of 1.
func toHomogeneous4(v la.Vector) la.Vector {
	if len(v) == 4 {
		out := make(la.Vector, 4)
		copy(out, v)
		return out
	}
	return la.Vector{v[0], v[1], v[2], 1}
}

// revolveMid computes the mid control point and weight of the rational
// quadratic arc that p traces when rotated by step radians about
// (origin, axis): the same circle_arc construction, specialized to the
// case where the rotation angle is already known exactly (no
// circumcenter solve needed) so the weight is simply cos(step/2).
func revolveMid(p, origin, axis la.Vector, step float64) (mid la.Vector, w float64) {
	transit := rotatePoint3(p, origin, axis, step/2)
	p1 := rotatePoint3(p, origin, axis, step)
	w = math.Cos(step / 2)
	mid = make(la.Vector, 3)
	for i := 0; i < 3; i++ {
		mid[i] = (1+w)/w*transit[i] - (p[i]+p1[i])/(2*w)
	}
	return mid, w
}

// revolveMidControlPoint is revolveMid generalized to (possibly
// already rational) control points: a point carrying its own weight wp
// combines with the revolution's own weight to wp*w, matching standard
// NURBS surface-of-revolution control-point construction.
func revolveMidControlPoint(v, origin, axis la.Vector, step float64) la.Vector {
	if len(v) == 4 {
		wp := v[3]
		p := la.Vector{v[0] / wp, v[1] / wp, v[2] / wp}
		mid, w := revolveMid(p, origin, axis, step)
		return la.Vector{mid[0] * wp * w, mid[1] * wp * w, mid[2] * wp * w, wp * w}
	}
	mid, w := revolveMid(v, origin, axis, step)
	return la.Vector{mid[0] * w, mid[1] * w, mid[2] * w, w}
}

// revolveSurfaceStep builds the rational surface swept by curve as it
// rotates by step radians (|step| <= pi/2) about (origin, axis): a
// degree-2 rational v-direction with three columns per control point
// (start, mid, end), the same circle-arc construction applied
// column-wise.
func revolveSurfaceStep(curve *bspline.Curve, origin, axis la.Vector, step float64) (*bspline.Surface, error) {
	ctrl := curve.ControlPoints()
	n := len(ctrl)
	grid := make([][]la.Vector, n)
	for i, v := range ctrl {
		row0 := toHomogeneous4(v)
		row2 := toHomogeneous4(applyToPoint(v, func(p la.Vector) la.Vector { return rotatePoint3(p, origin, axis, step) }))
		row1 := revolveMidControlPoint(v, origin, axis, step)
		grid[i] = []la.Vector{row0, row1, row2}
	}
	vk := knot.BezierKnot(2)
	return bspline.NewSurface(curve.Knots(), vk, grid)
}

func translateSurface(s *bspline.Surface, vec la.Vector) *bspline.Surface {
	rows, cols := s.Rows(), s.Cols()
	grid := make([][]la.Vector, rows)
	for i := 0; i < rows; i++ {
		grid[i] = make([]la.Vector, cols)
		for j := 0; j < cols; j++ {
			grid[i][j] = applyToPoint(s.ControlPoint(i, j), func(p la.Vector) la.Vector { return translatePoint3(p, vec) })
		}
	}
	ns, err := bspline.NewSurface(s.UKnots(), s.VKnots(), grid)
	if err != nil {
		chk.Panic("translateSurface: translated control grid is malformed: %v", err)
	}
	return ns
}
