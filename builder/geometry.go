package builder

import (
	"fmt"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/brep/knot"
)

// cross3 is the 3D cross product. la.Vector carries no fixed
// dimension, so unlike dot/VecNorm this has no generic gosl
// counterpart; its callers (circumcenter3 for circle_arc, and
// rotatePoint3) always supply 3-component points.
func cross3(a, b la.Vector) la.Vector {
	return la.Vector{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// circumcenter3 returns the center and radius of the circle passing
// through three non-collinear 3D points, via the standard
// cross-product construction (the center lies on the perpendicular
// bisector plane of each side, and on the triangle's plane).
func circumcenter3(a, b, c la.Vector) (center la.Vector, radius float64, err error) {
	ab := sub3(b, a)
	ac := sub3(c, a)
	abXac := cross3(ab, ac)
	denom := dot3(abXac, abXac)
	if denom < knot.Tolerance*knot.Tolerance {
		return nil, 0, fmt.Errorf("points are collinear")
	}
	toCenter := make(la.Vector, 3)
	t1 := cross3(abXac, ab)
	s1 := dot3(ac, ac)
	t2 := cross3(ac, abXac)
	s2 := dot3(ab, ab)
	for i := 0; i < 3; i++ {
		toCenter[i] = (t1[i]*s1 + t2[i]*s2) / (2 * denom)
	}
	center = make(la.Vector, 3)
	for i := 0; i < 3; i++ {
		center[i] = a[i] + toCenter[i]
	}
	radius = la.VecNorm(toCenter)
	return center, radius, nil
}
