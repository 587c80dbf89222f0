// Package knot implements KnotVector (spec.md §4.1): an ordered,
// non-decreasing sequence of parameter breakpoints with multiplicity
// and span queries, in the style of gofem's shp package (plain
// []float64-backed data, a panic formatted with gosl/utl for
// invariant failures).
package knot

import (
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/brep/kerr"
)

// Tolerance is the global numeric equality threshold τ (spec.md §3).
const Tolerance = 1.0e-7

// Vector is a non-decreasing finite sequence of real numbers of
// length >= 2.
type Vector struct {
	u []float64
}

// FromSequence builds a Vector from xs, failing if xs is not
// non-decreasing or has fewer than 2 entries.
func FromSequence(xs []float64) (Vector, error) {
	if len(xs) < 2 {
		return Vector{}, kerr.New(kerr.EmptyKnotVector, "knot vector must have at least 2 entries, got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return Vector{}, kerr.New(kerr.NotSortedVector, "knot vector is not non-decreasing at index %d: %v > %v", i, xs[i-1], xs[i])
		}
	}
	u := make([]float64, len(xs))
	copy(u, xs)
	return Vector{u: u}, nil
}

// MustFromSequence is FromSequence but panics on error; reserved for
// call sites (e.g. bspline's Reverse and Homotopy) that construct the
// sequence themselves and can never violate the invariant.
func MustFromSequence(xs []float64) Vector {
	v, err := FromSequence(xs)
	if err != nil {
		panic(err)
	}
	return v
}

// BezierKnot returns the clamped knot vector [0...0, 1...1] with
// multiplicity degree+1 at each end.
func BezierKnot(degree int) Vector {
	n := 2 * (degree + 1)
	u := make([]float64, n)
	for i := 0; i <= degree; i++ {
		u[i] = 0.0
		u[n-1-i] = 1.0
	}
	return Vector{u: u}
}

// UniformKnot returns a clamped uniform knot vector for the given
// degree with the given number of interior divisions.
func UniformKnot(degree, divisions int) Vector {
	if divisions < 1 {
		divisions = 1
	}
	n := 2*(degree+1) + (divisions - 1)
	u := make([]float64, n)
	for i := 0; i <= degree; i++ {
		u[i] = 0.0
	}
	for i := 0; i <= degree; i++ {
		u[n-1-i] = 1.0
	}
	step := 1.0 / float64(divisions)
	for i := 1; i < divisions; i++ {
		u[degree+i] = float64(i) * step
	}
	return Vector{u: u}
}

// Len returns the number of knots.
func (v Vector) Len() int { return len(v.u) }

// At returns the i-th knot.
func (v Vector) At(i int) float64 { return v.u[i] }

// Raw returns the underlying slice (read-only by convention).
func (v Vector) Raw() []float64 { return v.u }

// First returns the first knot.
func (v Vector) First() float64 { return v.u[0] }

// Last returns the last knot.
func (v Vector) Last() float64 { return v.u[len(v.u)-1] }

// RangeLength returns last - first.
func (v Vector) RangeLength() float64 { return v.Last() - v.First() }

// Normalize returns a copy affine-mapped onto [0,1].
func (v Vector) Normalize() Vector {
	lo, rng := v.First(), v.RangeLength()
	if rng < Tolerance {
		chkPanic("cannot normalize a knot vector with zero range length")
	}
	u := make([]float64, len(v.u))
	for i, x := range v.u {
		u[i] = (x - lo) / rng
	}
	return Vector{u: u}
}

// Floor returns the index of the largest knot <= u (the active span
// start, in the de Boor sense: the largest i such that knots[i] <= u
// and knots[i] < knots[i+1], clamped at the right end).
func (v Vector) Floor(u float64) int {
	n := len(v.u)
	if u >= v.u[n-1]-Tolerance {
		// walk back to the leftmost knot tied with the last one, then
		// one more step to the start of the last non-degenerate span.
		i := n - 2
		for i > 0 && v.u[i-1] >= v.u[n-1]-Tolerance {
			i--
		}
		i--
		if i < 0 {
			i = 0
		}
		return i
	}
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if v.u[mid] <= u {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// MultiplicityOf returns the number of knots equal to u within Tolerance.
func (v Vector) MultiplicityOf(u float64) int {
	count := 0
	for _, x := range v.u {
		if absf(x-u) < Tolerance {
			count++
		}
	}
	return count
}

// Clone returns a deep copy.
func (v Vector) Clone() Vector {
	u := make([]float64, len(v.u))
	copy(u, v.u)
	return Vector{u: u}
}

// InsertKnot returns a copy of v with u inserted once (raising the
// multiplicity of u by one), used by bspline.UnifyKnots / knot
// refinement ahead of homotopy (spec.md §9, Boehm's insertion is
// applied one knot at a time by the caller via this primitive).
func (v Vector) InsertKnot(u float64) Vector {
	idx := len(v.u)
	for i, x := range v.u {
		if x > u {
			idx = i
			break
		}
	}
	out := make([]float64, len(v.u)+1)
	copy(out, v.u[:idx])
	out[idx] = u
	copy(out[idx+1:], v.u[idx:])
	return Vector{u: out}
}

// DistinctKnots returns the strictly increasing sequence of distinct
// knot values, used by bspline.Curve.AddControlPoint to find the last
// span and by knot-unification (UnifyKnots) when comparing the
// multiplicity pattern of two vectors.
func (v Vector) DistinctKnots() []float64 {
	out := make([]float64, 0, len(v.u))
	for i, x := range v.u {
		if i == 0 || absf(x-out[len(out)-1]) >= Tolerance {
			out = append(out, x)
		}
	}
	return out
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func chkPanic(format string, args ...interface{}) {
	panic(utl.Sf(format, args...))
}
