package builder

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/brep/bspline"
	"github.com/cpmech/brep/kerr"
	"github.com/cpmech/brep/knot"
	"github.com/cpmech/brep/topo"
)

// Builder is the mutation handle passed to the function given to
// Director.Building. Every method registers topology and geometry
// atomically: on success both the TopologyGraph and GeometryBinding
// reflect the new entity; on failure neither is left referencing it.
type Builder struct {
	d *Director
}

// Director returns the builder's owning director, for operations
// (like CheckIntegrity) that need director-level, read-only access
// mid-session.
func (b *Builder) Director() *Director { return b.d }

// Vertex registers a fresh vertex bound to point.
func (b *Builder) Vertex(point la.Vector) (topo.Vertex, error) {
	id := b.d.allocID()
	v := topo.NewVertex(id)
	b.d.binding.InsertPoint(id, point)
	b.d.logf("builder: vertex %d at %v", id, point)
	return v, nil
}

func (b *Builder) point(v topo.Vertex) (la.Vector, error) { return b.d.binding.Point(v) }

// Line registers a degree-1 edge from v0 to v1.
func (b *Builder) Line(v0, v1 topo.Vertex) (topo.Edge, error) {
	p0, err := b.point(v0)
	if err != nil {
		return topo.Edge{}, err
	}
	p1, err := b.point(v1)
	if err != nil {
		return topo.Edge{}, err
	}
	curve, err := bspline.NewCurve(knot.BezierKnot(1), []la.Vector{p0, p1})
	if err != nil {
		return topo.Edge{}, err
	}
	return b.registerEdge(v0, v1, curve), nil
}

func (b *Builder) registerEdge(v0, v1 topo.Vertex, curve *bspline.Curve) topo.Edge {
	id := b.d.allocID()
	e := topo.NewEdge(id, v0, v1)
	b.d.binding.InsertCurve(id, curve)
	return e
}

// CircleArc registers a rational-quadratic edge from v0 to v1 passing
// through transit at parameter 0.5, computing the rational weight so
// transit lands exactly at the curve's midpoint (spec.md §4.5).
func (b *Builder) CircleArc(v0, v1 topo.Vertex, transit la.Vector) (topo.Edge, error) {
	p0, err := b.point(v0)
	if err != nil {
		return topo.Edge{}, err
	}
	p1, err := b.point(v1)
	if err != nil {
		return topo.Edge{}, err
	}
	w, mid, err := circleArcWeight(p0, p1, transit)
	if err != nil {
		return topo.Edge{}, err
	}
	ctrl := []la.Vector{
		homogeneous(p0, 1),
		homogeneous(mid, w),
		homogeneous(p1, 1),
	}
	curve, err := bspline.NewCurve(knot.BezierKnot(2), ctrl)
	if err != nil {
		return topo.Edge{}, err
	}
	return b.registerEdge(v0, v1, curve), nil
}

// circleArcWeight solves for the mid control point M and weight w of a
// rational quadratic Bezier P0,(M,w),P1 tracing the circular arc
// through p0, transit, p1, with transit at parameter 0.5.
//
// The construction is in two steps. First, circumcenter3 locates the
// center O of the circle through the three points; the weight of a
// conic arc is w = cos(theta/2), where theta is the angle P0-O-P1
// measured through transit — and because transit sits at the arc's
// own angular midpoint, the half-angle theta/2 is exactly the angle
// between (p0-O) and (transit-O), giving w directly as their
// normalized dot product. Second, M is the unique point making a
// rational quadratic Bezier of that weight pass through transit at
// u=0.5: at u=0.5 the curve evaluates to (p0 + 2*w*M + p1)/(2+2*w),
// which rearranges to the closed form below.
func circleArcWeight(p0, p1, transit la.Vector) (w float64, mid la.Vector, err error) {
	n := len(p0)
	o, r, cerr := circumcenter3(p0, transit, p1)
	if cerr != nil {
		return 0, nil, kerr.New(kerr.ZeroRange, "circle_arc: %v", cerr)
	}
	u0 := sub3(p0, o)
	um := sub3(transit, o)
	w = dot3(u0, um) / (r * r)
	if math.Abs(w) < knot.Tolerance {
		return 0, nil, kerr.New(kerr.ZeroRange, "circle_arc: arc spans 180 degrees, which a single quadratic segment cannot represent")
	}
	mid = make(la.Vector, n)
	for i := 0; i < n; i++ {
		mid[i] = (w+1)/w*transit[i] - (p0[i]+p1[i])/(2*w)
	}
	return w, mid, nil
}

// Bezier registers a non-rational degree len(inner)+1 Bezier edge.
func (b *Builder) Bezier(v0, v1 topo.Vertex, inner []la.Vector) (topo.Edge, error) {
	p0, err := b.point(v0)
	if err != nil {
		return topo.Edge{}, err
	}
	p1, err := b.point(v1)
	if err != nil {
		return topo.Edge{}, err
	}
	ctrl := make([]la.Vector, 0, len(inner)+2)
	ctrl = append(ctrl, p0)
	ctrl = append(ctrl, inner...)
	ctrl = append(ctrl, p1)
	curve, err := bspline.NewCurve(knot.BezierKnot(len(inner)+1), ctrl)
	if err != nil {
		return topo.Edge{}, err
	}
	return b.registerEdge(v0, v1, curve), nil
}

// Plane registers a face whose surface is a degree-1 ruled surface
// between the two halves of a closed wire, split at half its edge
// count (spec.md §4.5): the same split used by homotopy's closed case.
func (b *Builder) Plane(wire topo.Wire) (topo.Face, error) {
	if !wire.IsClosed() {
		return topo.Face{}, kerr.New(kerr.NotClosedWire, "plane: boundary wire does not close")
	}
	half := wire.Len() / 2
	lower := wire.Clone()
	upper := lower.SplitOff(half)

	c0, err := b.d.binding.BSplineByWire(lower)
	if err != nil {
		return topo.Face{}, err
	}
	c1, err := b.d.binding.BSplineByWire(upper.Inverse())
	if err != nil {
		return topo.Face{}, err
	}
	surf, err := bspline.Homotopy(c0, c1)
	if err != nil {
		return topo.Face{}, err
	}
	id := b.d.allocID()
	face, err := topo.TryNewFace(id, wire)
	if err != nil {
		return topo.Face{}, err
	}
	b.d.binding.InsertSurface(id, surf)
	return face, nil
}

func homogeneous(p la.Vector, w float64) la.Vector {
	out := make(la.Vector, len(p)+1)
	for i, x := range p {
		out[i] = x * w
	}
	out[len(p)] = w
	return out
}

func sub3(a, b la.Vector) la.Vector {
	out := make(la.Vector, len(a))
	for i := range out {
		out[i] = a[i] - b[i]
	}
	return out
}

func dot3(a, b la.Vector) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func norm3(a la.Vector) float64 { return la.VecNorm(a) }
