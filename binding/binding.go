// Package binding implements GeometryBinding (spec.md §4.4): the map
// from topological identity (topo.Vertex/Edge/Face) to geometric
// carrier (a point, a BSplineCurve, a BSplineSurface). Topology and
// geometry are kept as separate graphs joined only by ID, following
// gofem's own split between shp (shape/connectivity) and the
// coordinate data fed in separately at assembly time.
package binding

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/brep/bspline"
	"github.com/cpmech/brep/kerr"
	"github.com/cpmech/brep/topo"
)

// Binding owns the point/curve/surface geometry keyed by topological
// identity. A Binding is not safe for concurrent mutation: callers
// mutate it only from within a single Builder session (spec.md §5).
type Binding struct {
	points   map[topo.ID]la.Vector
	curves   map[topo.ID]*bspline.Curve
	surfaces map[topo.ID]*bspline.Surface
}

// New returns an empty Binding.
func New() *Binding {
	return &Binding{
		points:   make(map[topo.ID]la.Vector),
		curves:   make(map[topo.ID]*bspline.Curve),
		surfaces: make(map[topo.ID]*bspline.Surface),
	}
}

// InsertPoint binds a point to a vertex identity.
func (b *Binding) InsertPoint(id topo.ID, p la.Vector) { b.points[id] = p }

// InsertCurve binds a curve to an edge identity, in the edge's
// forward (construction-time) direction.
func (b *Binding) InsertCurve(id topo.ID, c *bspline.Curve) { b.curves[id] = c }

// InsertSurface binds a surface to a face identity, in the face's
// forward (construction-time) direction.
func (b *Binding) InsertSurface(id topo.ID, s *bspline.Surface) { b.surfaces[id] = s }

// Point looks up the point bound to a vertex, returning kerr.NoGeometry
// on a miss.
func (b *Binding) Point(v topo.Vertex) (la.Vector, error) {
	p, ok := b.points[v.ID()]
	if !ok {
		return nil, kerr.New(kerr.NoGeometry, "no point bound to vertex %d", v.ID())
	}
	return p, nil
}

// Curve looks up the curve bound to an edge's identity, ignoring the
// edge's current orientation, returning kerr.NoGeometry on a miss.
func (b *Binding) Curve(e topo.Edge) (*bspline.Curve, error) {
	c, ok := b.curves[e.ID()]
	if !ok {
		return nil, kerr.New(kerr.NoGeometry, "no curve bound to edge %d", e.ID())
	}
	return c, nil
}

// Surface looks up the surface bound to a face's identity, ignoring
// the face's current orientation, returning kerr.NoGeometry on a miss.
func (b *Binding) Surface(f topo.Face) (*bspline.Surface, error) {
	s, ok := b.surfaces[f.ID()]
	if !ok {
		return nil, kerr.New(kerr.NoGeometry, "no surface bound to face %d", f.ID())
	}
	return s, nil
}

// OrientedCurve returns the curve bound to e, reversed if e is
// currently inverted, so that its parameterization always runs from
// e.Front() to e.Back() (spec.md §4.4).
func (b *Binding) OrientedCurve(e topo.Edge) (*bspline.Curve, error) {
	c, err := b.Curve(e)
	if err != nil {
		return nil, err
	}
	if e.Inverted() {
		return c.Reverse(), nil
	}
	return c, nil
}

// OrientedSurface returns the surface bound to f, with its u-direction
// reversed if f is currently inverted, so the surface's outward sense
// always matches the face's current orientation (spec.md §4.4).
func (b *Binding) OrientedSurface(f topo.Face) (*bspline.Surface, error) {
	s, err := b.Surface(f)
	if err != nil {
		return nil, err
	}
	if f.Inverted() {
		return s.ReverseU(), nil
	}
	return s, nil
}

// BSplineByWire concatenates the oriented curves bound to each edge of
// a wire, in order, into a single curve spanning the whole wire
// (spec.md §4.4, via bspline.Collector exactly as truck's
// CurveCollector folds a boundary loop into one curve).
func (b *Binding) BSplineByWire(w topo.Wire) (*bspline.Curve, error) {
	var cc bspline.Collector
	for _, e := range w.Edges() {
		oc, err := b.OrientedCurve(e)
		if err != nil {
			return nil, err
		}
		if err := cc.Concat(oc); err != nil {
			return nil, err
		}
	}
	return cc.Curve()
}
