package bspline

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/brep/kerr"
)

// DefaultMaxIterations bounds the damped Newton iteration in
// SearchParameter (spec.md §4.2).
const DefaultMaxIterations = 100

// PresearchGrid is the resolution of the coarse grid sampled by
// Presearch before handing a hint to SearchParameter (spec.md §4.2:
// "sample surface on a 51x51 grid" — i.e. 50 divisions per axis).
const PresearchGrid = 50

// Presearch coarsely seeds a (u,v) hint for SearchParameter by
// sampling the surface on a PresearchGrid+1 square grid and keeping
// the closest sample to point, matching truck-rendimpl's presearch.
func Presearch(s *Surface, point la.Vector) (u, v float64) {
	us := utl.LinSpace(s.uknots.First(), s.uknots.Last(), PresearchGrid+1)
	vs := utl.LinSpace(s.vknots.First(), s.vknots.Last(), PresearchGrid+1)
	best := -1.0
	for _, uu := range us {
		for _, vv := range vs {
			d := distance2(Euclid(s.Subs(uu, vv)), point)
			if best < 0 || d < best {
				best = d
				u, v = uu, vv
			}
		}
	}
	return u, v
}

// SearchParameter inverse-searches for the (u,v) on s nearest to
// point, starting from hint, via damped Gauss-Newton minimization of
// |S(u,v)-point|^2. Converges when |S(u,v)-point| < tol; fails with
// kerr.NotConverge after maxIter steps without convergence.
func SearchParameter(s *Surface, point la.Vector, hintU, hintV, tol float64, maxIter int) (u, v float64, err error) {
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	u, v = hintU, hintV
	clampU := clamper(s.uknots.First(), s.uknots.Last())
	clampV := clamper(s.vknots.First(), s.vknots.Last())
	resid := func(uu, vv float64) la.Vector { return sub(Euclid(s.Subs(uu, vv)), point) }
	f := resid(u, v)
	for iter := 0; iter < maxIter; iter++ {
		if norm(f) < tol {
			return u, v, nil
		}
		du := Euclid3(s.DerU(u, v))
		dv := Euclid3(s.DerV(u, v))
		j := la.MatAlloc(2, 2)
		j[0][0] = dot(du, du)
		j[0][1] = dot(du, dv)
		j[1][0] = dot(dv, du)
		j[1][1] = dot(dv, dv)
		rhs := la.Vector{-dot(du, f), -dot(dv, f)}
		ji := la.MatAlloc(2, 2)
		if e := la.MatInvG(ji, j, 1e-14); e != nil {
			return 0, 0, kerr.New(kerr.NotConverge, "inverse search Jacobian is singular at iteration %d", iter)
		}
		deltaU := ji[0][0]*rhs[0] + ji[0][1]*rhs[1]
		deltaV := ji[1][0]*rhs[0] + ji[1][1]*rhs[1]

		// damped line search: halve the step until the residual shrinks
		step := 1.0
		for try := 0; try < 10; try++ {
			nu := clampU(u + step*deltaU)
			nv := clampV(v + step*deltaV)
			nf := resid(nu, nv)
			if norm(nf) < norm(f) || (deltaU == 0 && deltaV == 0) {
				u, v, f = nu, nv, nf
				break
			}
			step *= 0.5
		}
	}
	if norm(f) < tol {
		return u, v, nil
	}
	return 0, 0, kerr.New(kerr.NotConverge, "inverse search did not converge after %d iterations (residual=%g, tol=%g)", maxIter, norm(f), tol)
}

// Euclid3 drops a homogeneous derivative's weight row to a 3-vector
// tangent, matching Euclid's projection for position vectors; plain
// (non-rational) tangents of length <= 3 are returned unchanged.
func Euclid3(v la.Vector) la.Vector {
	if len(v) > 3 {
		return v[:3]
	}
	return v
}

func distance2(a, b la.Vector) float64 {
	d := sub(a, b)
	return dot(d, d)
}

func clamper(lo, hi float64) func(float64) float64 {
	return func(x float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}
}
