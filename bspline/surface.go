package bspline

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/brep/kerr"
	"github.com/cpmech/brep/knot"
)

// Surface is a (possibly rational) B-spline surface: a pair of knot
// vectors paired with a rectangular control grid, rows along u,
// columns along v.
type Surface struct {
	uknots, vknots knot.Vector
	ctrl           [][]la.Vector
}

// NewSurface builds a Surface, enforcing a rectangular control grid
// and the degree/knot relationship in both directions.
func NewSurface(uknots, vknots knot.Vector, ctrl [][]la.Vector) (*Surface, error) {
	if len(ctrl) == 0 {
		return nil, kerr.New(kerr.EmptyWire, "surface control grid must have at least one row")
	}
	cols := len(ctrl[0])
	for i, row := range ctrl {
		if len(row) != cols {
			return nil, kerr.New(kerr.EmptyWire, "surface control grid row %d has %d columns, want %d", i, len(row), cols)
		}
	}
	udeg := uknots.Len() - len(ctrl) - 1
	vdeg := vknots.Len() - cols - 1
	if udeg < 0 || vdeg < 0 {
		return nil, kerr.New(kerr.EmptyKnotVector, "surface knot vectors do not match control grid shape %dx%d", len(ctrl), cols)
	}
	return &Surface{uknots: uknots, vknots: vknots, ctrl: ctrl}, nil
}

// UKnots returns the u-direction knot vector.
func (s *Surface) UKnots() knot.Vector { return s.uknots }

// VKnots returns the v-direction knot vector.
func (s *Surface) VKnots() knot.Vector { return s.vknots }

// Rows returns the number of control-grid rows.
func (s *Surface) Rows() int { return len(s.ctrl) }

// Cols returns the number of control-grid columns.
func (s *Surface) Cols() int { return len(s.ctrl[0]) }

// ControlPoint returns the control point at grid position (i,j).
func (s *Surface) ControlPoint(i, j int) la.Vector { return s.ctrl[i][j] }

func (s *Surface) rowCurve(i int) *Curve { return &Curve{knots: s.vknots, ctrl: s.ctrl[i]} }

func (s *Surface) colCurve(j int) *Curve {
	col := make([]la.Vector, len(s.ctrl))
	for i := range s.ctrl {
		col[i] = s.ctrl[i][j]
	}
	return &Curve{knots: s.uknots, ctrl: col}
}

func (s *Surface) uCurveAt(v float64) *Curve {
	intermediate := make([]la.Vector, s.Rows())
	for i := 0; i < s.Rows(); i++ {
		intermediate[i] = s.rowCurve(i).Subs(v)
	}
	return &Curve{knots: s.uknots, ctrl: intermediate}
}

func (s *Surface) vCurveAt(u float64) *Curve {
	intermediate := make([]la.Vector, s.Cols())
	for j := 0; j < s.Cols(); j++ {
		intermediate[j] = s.colCurve(j).Subs(u)
	}
	return &Curve{knots: s.vknots, ctrl: intermediate}
}

// Subs evaluates S(u,v) by reducing to two 1D de Boor evaluations:
// first collapsing each row along v, then the resulting intermediate
// control polygon along u.
func (s *Surface) Subs(u, v float64) la.Vector { return s.uCurveAt(v).Subs(u) }

// DerU evaluates ∂S/∂u(u,v).
func (s *Surface) DerU(u, v float64) la.Vector { return s.uCurveAt(v).Der(u) }

// DerV evaluates ∂S/∂v(u,v).
func (s *Surface) DerV(u, v float64) la.Vector { return s.vCurveAt(u).Der(v) }

// ReverseU returns a surface tracing the same image with the
// u-direction parameterization reversed (used by
// GeometryBinding.OrientedSurface for inverted faces).
func (s *Surface) ReverseU() *Surface {
	a, b := s.uknots.First(), s.uknots.Last()
	n := s.uknots.Len()
	ru := make([]float64, n)
	for i, u := range s.uknots.Raw() {
		ru[n-1-i] = a + b - u
	}
	rows := len(s.ctrl)
	rctrl := make([][]la.Vector, rows)
	for i, row := range s.ctrl {
		rctrl[rows-1-i] = row
	}
	return &Surface{uknots: knot.MustFromSequence(ru), vknots: s.vknots, ctrl: rctrl}
}

// Homotopy lofts a surface interpolating c0 at v=0 and c1 at v=1
// (spec.md §4.2/§4.6): the two curves' knot vectors are unified by
// pairwise knot insertion (Boehm's algorithm, matching multiplicity
// patterns) and become the u-knot vector of the result; the v-knot
// vector is the clamped linear [0,0,1,1].
func Homotopy(c0, c1 *Curve) (*Surface, error) {
	u0, u1, err := UnifyKnots(c0, c1)
	if err != nil {
		return nil, err
	}
	n := len(u0.ctrl)
	grid := make([][]la.Vector, n)
	for i := 0; i < n; i++ {
		grid[i] = []la.Vector{u0.ctrl[i], u1.ctrl[i]}
	}
	vk := knot.MustFromSequence([]float64{0, 0, 1, 1})
	return NewSurface(u0.knots, vk, grid)
}

// UnifyKnots inserts knots into c0 and c1 until both share the same
// knot vector (matching every distinct knot's multiplicity), required
// before lofting two curves of the same degree but possibly differing
// subdivision (spec.md §9, "Knot-insertion during homotopy"). When the
// two curves span different parameter ranges, both knot vectors are
// first mapped onto [0,1].
func UnifyKnots(c0, c1 *Curve) (*Curve, *Curve, error) {
	if c0.Degree() != c1.Degree() {
		return nil, nil, kerr.New(kerr.DifferentHomotopyType, "cannot unify curves of different degree: %d != %d", c0.Degree(), c1.Degree())
	}
	out0, out1 := c0, c1
	dFirst := c0.knots.First() - c1.knots.First()
	dLast := c0.knots.Last() - c1.knots.Last()
	if dFirst*dFirst+dLast*dLast > knot.Tolerance*knot.Tolerance {
		out0 = &Curve{knots: c0.knots.Normalize(), ctrl: c0.ctrl}
		out1 = &Curve{knots: c1.knots.Normalize(), ctrl: c1.ctrl}
	}
	values := mergeSortedUnique(out0.knots.DistinctKnots(), out1.knots.DistinctKnots())
	for _, u := range values {
		m0 := out0.knots.MultiplicityOf(u)
		m1 := out1.knots.MultiplicityOf(u)
		for m0 < m1 {
			out0 = out0.InsertKnot(u)
			m0++
		}
		for m1 < m0 {
			out1 = out1.InsertKnot(u)
			m1++
		}
	}
	return out0, out1, nil
}

func mergeSortedUnique(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b) || (i < len(a) && a[i] < b[j]-knot.Tolerance):
			out = appendUnique(out, a[i])
			i++
		case i >= len(a) || (j < len(b) && b[j] < a[i]-knot.Tolerance):
			out = appendUnique(out, b[j])
			j++
		default:
			out = appendUnique(out, a[i])
			i++
			j++
		}
	}
	return out
}

func appendUnique(out []float64, x float64) []float64 {
	if len(out) > 0 {
		d := x - out[len(out)-1]
		if d < knot.Tolerance && d > -knot.Tolerance {
			return out
		}
	}
	return append(out, x)
}
