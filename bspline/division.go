package bspline

import "github.com/cpmech/gosl/la"

// maxDivisionDepth bounds the recursive bisection in ParameterDivision
// so a degenerate (near-singular) curve cannot recurse forever.
const maxDivisionDepth = 32

// ParameterDivision produces an ordered, endpoint-inclusive, monotone
// sequence of parameters starting at Knots().First() and ending at
// Knots().Last() such that consecutive linear segments approximate
// the curve with chordal error <= tol (spec.md §4.2): recursive
// bisection — accept (a,b) once the midpoint of the curve lies within
// tol of the chord between Subs(a) and Subs(b), else subdivide.
func (c *Curve) ParameterDivision(tol float64) []float64 {
	a, b := c.knots.First(), c.knots.Last()
	params := []float64{a}
	c.subdivide(a, b, tol, maxDivisionDepth, &params)
	return params
}

func (c *Curve) subdivide(a, b, tol float64, depth int, params *[]float64) {
	mid := 0.5 * (a + b)
	if depth <= 0 {
		*params = append(*params, b)
		return
	}
	pa := Euclid(c.Subs(a))
	pb := Euclid(c.Subs(b))
	pm := Euclid(c.Subs(mid))
	if pointSegmentDistance(pm, pa, pb) <= tol {
		*params = append(*params, b)
		return
	}
	c.subdivide(a, mid, tol, depth-1, params)
	c.subdivide(mid, b, tol, depth-1, params)
}

// pointSegmentDistance returns the Euclidean distance from p to the
// line segment [a,b].
func pointSegmentDistance(p, a, b la.Vector) float64 {
	ab := sub(b, a)
	ap := sub(p, a)
	denom := dot(ab, ab)
	if denom < 1e-300 {
		return norm(ap)
	}
	t := dot(ap, ab) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := make(la.Vector, len(a))
	for i := range proj {
		proj[i] = a[i] + t*ab[i]
	}
	return norm(sub(p, proj))
}

func sub(a, b la.Vector) la.Vector {
	out := make(la.Vector, len(a))
	for i := range out {
		out[i] = a[i] - b[i]
	}
	return out
}

func dot(a, b la.Vector) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func norm(a la.Vector) float64 {
	return la.VecNorm(a)
}
