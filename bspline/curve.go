// Package bspline implements BSplineCurve and BSplineSurface
// (spec.md §4.2): evaluation, derivatives, parameter division,
// inverse search, homotopy and concatenation over rational B-splines
// with control points held in homogeneous or plain Euclidean form.
//
// Control points are la.Vector ([]float64, github.com/cpmech/gosl/la)
// rather than a fixed-size generic type: dimension is simply the
// slice length, following the slice-oriented numeric style gofem
// itself uses throughout (fem, msolid, shp all pass []float64
// around rather than introducing a generic point type).
package bspline

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/brep/kerr"
	"github.com/cpmech/brep/knot"
)

// Curve is a (possibly rational) B-spline curve: a knot vector paired
// with a control polygon.
type Curve struct {
	knots knot.Vector
	ctrl  []la.Vector
}

// NewCurve builds a Curve, enforcing len(ctrl) + degree + 1 == len(knots).
func NewCurve(knots knot.Vector, ctrl []la.Vector) (*Curve, error) {
	degree := knots.Len() - len(ctrl) - 1
	if degree < 0 {
		return nil, kerr.New(kerr.EmptyKnotVector, "knot vector of length %d cannot support %d control points", knots.Len(), len(ctrl))
	}
	return &Curve{knots: knots, ctrl: ctrl}, nil
}

// Degree returns the inferred polynomial degree.
func (c *Curve) Degree() int { return c.knots.Len() - len(c.ctrl) - 1 }

// Knots returns the curve's knot vector.
func (c *Curve) Knots() knot.Vector { return c.knots }

// ControlPoints returns the control polygon (read-only by convention).
func (c *Curve) ControlPoints() []la.Vector { return c.ctrl }

// Front returns the first control point (the front-vertex carrier).
func (c *Curve) Front() la.Vector { return c.ctrl[0] }

// Back returns the last control point (the back-vertex carrier).
func (c *Curve) Back() la.Vector { return c.ctrl[len(c.ctrl)-1] }

// Subs evaluates the curve at u via the de Boor recursion on the
// active span (spec.md §4.2, O(degree^2)).
func (c *Curve) Subs(u float64) la.Vector {
	p := c.Degree()
	k := c.knots.Floor(u)
	d := make([]la.Vector, p+1)
	for j := 0; j <= p; j++ {
		d[j] = cloneVec(c.ctrl[k-p+j])
	}
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			i := k - p + j
			denom := c.knots.At(i+p-r+1) - c.knots.At(i)
			var alpha float64
			if denom > knot.Tolerance {
				alpha = (u - c.knots.At(i)) / denom
			}
			d[j] = combine(d[j-1], d[j], alpha)
		}
	}
	return d[p]
}

// derivativeCurve returns the formal derivative of the de Boor
// control polygon: a degree p-1 B-spline curve over the interior
// knots, with control points Q_i = p/(u[i+p+1]-u[i+1]) * (P_{i+1}-P_i).
//
// This is the *formal* derivative of the (possibly homogeneous)
// control polygon, not the quotient-rule derivative of the rational
// curve's projected image — matching spec.md §4.2's "formal
// derivative of de Boor" wording exactly.
func (c *Curve) derivativeCurve() *Curve {
	p := c.Degree()
	if p == 0 {
		zero := make(la.Vector, len(c.ctrl[0]))
		return &Curve{knots: knot.MustFromSequence([]float64{c.knots.First(), c.knots.Last()}), ctrl: []la.Vector{zero}}
	}
	n := len(c.ctrl)
	newCtrl := make([]la.Vector, n-1)
	for i := 0; i < n-1; i++ {
		denom := c.knots.At(i+p+1) - c.knots.At(i+1)
		q := make(la.Vector, len(c.ctrl[i]))
		if denom > knot.Tolerance {
			scale := float64(p) / denom
			for d := range q {
				q[d] = scale * (c.ctrl[i+1][d] - c.ctrl[i][d])
			}
		}
		newCtrl[i] = q
	}
	newKnots := c.knots.Raw()[1 : c.knots.Len()-1]
	kv := knot.MustFromSequence(newKnots)
	return &Curve{knots: kv, ctrl: newCtrl}
}

// Der evaluates the formal derivative at u.
func (c *Curve) Der(u float64) la.Vector { return c.derivativeCurve().Subs(u) }

// Reverse returns a curve tracing the same image with parameterization
// reversed (used by GeometryBinding.OrientedCurve for inverted edges).
func (c *Curve) Reverse() *Curve {
	a, b := c.knots.First(), c.knots.Last()
	n := c.knots.Len()
	ru := make([]float64, n)
	for i, u := range c.knots.Raw() {
		ru[n-1-i] = a + b - u
	}
	rc := make([]la.Vector, len(c.ctrl))
	for i, p := range c.ctrl {
		rc[len(c.ctrl)-1-i] = p
	}
	return &Curve{knots: knot.MustFromSequence(ru), ctrl: rc}
}

// InsertKnot returns a new curve with u inserted once via Boehm's
// algorithm, raising the knot's multiplicity by one and the control
// point count by one, without changing the curve's image.
func (c *Curve) InsertKnot(u float64) *Curve {
	p := c.Degree()
	k := c.knots.Floor(u)
	n := len(c.ctrl)
	newCtrl := make([]la.Vector, n+1)
	for i := 0; i <= k-p; i++ {
		newCtrl[i] = c.ctrl[i]
	}
	for i := k - p + 1; i <= k; i++ {
		denom := c.knots.At(i+p) - c.knots.At(i)
		var alpha float64
		if denom > knot.Tolerance {
			alpha = (u - c.knots.At(i)) / denom
		}
		newCtrl[i] = combine(c.ctrl[i-1], c.ctrl[i], alpha)
	}
	for i := k; i < n; i++ {
		newCtrl[i+1] = c.ctrl[i]
	}
	return &Curve{knots: c.knots.InsertKnot(u), ctrl: newCtrl}
}

// AddControlPoint appends one control point by inserting a knot at
// the midpoint of the last non-degenerate span, leaving the curve's
// image unchanged except for the added degree of freedom at the end.
func (c *Curve) AddControlPoint() *Curve {
	distinct := c.knots.DistinctKnots()
	last := distinct[len(distinct)-1]
	prev := distinct[len(distinct)-2]
	return c.InsertKnot((prev + last) / 2)
}

// Euclid projects a (possibly homogeneous) evaluated point into plain
// Euclidean coordinates: a 4-component vector [x,y,z,w] becomes
// [x/w,y/w,z/w]; any other length is returned unchanged (it is
// already Euclidean).
func Euclid(v la.Vector) la.Vector {
	if len(v) != 4 {
		return v
	}
	w := v[3]
	out := make(la.Vector, 3)
	for i := 0; i < 3; i++ {
		out[i] = v[i] / w
	}
	return out
}

func cloneVec(v la.Vector) la.Vector {
	out := make(la.Vector, len(v))
	copy(out, v)
	return out
}

// combine returns (1-alpha)*a + alpha*b.
func combine(a, b la.Vector, alpha float64) la.Vector {
	out := make(la.Vector, len(a))
	for i := range out {
		out[i] = (1-alpha)*a[i] + alpha*b[i]
	}
	return out
}
