package builder

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/brep/bspline"
	"github.com/cpmech/brep/topo"
)

// rotatedVertices clones vertices under a rigid rotation, caching one
// fresh vertex per distinct source identity so that edges sharing an
// endpoint in the source still share an endpoint in the rotated copy.
type rotatedVertices struct {
	b      *Builder
	origin la.Vector
	axis   la.Vector
	angle  float64
	cache  map[topo.ID]topo.Vertex
}

func (b *Builder) newRotatedVertices(origin, axis la.Vector, angle float64) *rotatedVertices {
	return &rotatedVertices{b: b, origin: origin, axis: axis, angle: angle, cache: make(map[topo.ID]topo.Vertex)}
}

func (r *rotatedVertices) get(v topo.Vertex) (topo.Vertex, error) {
	if nv, ok := r.cache[v.ID()]; ok {
		return nv, nil
	}
	p, err := r.b.point(v)
	if err != nil {
		return topo.Vertex{}, err
	}
	nv, err := r.b.Vertex(rotatePoint3(p, r.origin, r.axis, r.angle))
	if err != nil {
		return topo.Vertex{}, err
	}
	r.cache[v.ID()] = nv
	return nv, nil
}

// RotatedEdge clones e under a rigid-body rotation about (origin,
// axis) by angle radians: fresh identities throughout, rotated
// geometry registered for both the endpoints and the curve (spec.md §4.5).
func (b *Builder) RotatedEdge(e topo.Edge, origin, axis la.Vector, angle float64) (topo.Edge, error) {
	rv := b.newRotatedVertices(origin, axis, angle)
	return b.rotateEdge(rv, e)
}

func (b *Builder) rotateEdge(rv *rotatedVertices, e topo.Edge) (topo.Edge, error) {
	nf, err := rv.get(e.Front())
	if err != nil {
		return topo.Edge{}, err
	}
	nb, err := rv.get(e.Back())
	if err != nil {
		return topo.Edge{}, err
	}
	curve, err := b.d.binding.OrientedCurve(e)
	if err != nil {
		return topo.Edge{}, err
	}
	return b.registerEdge(nf, nb, rotateCurve(curve, rv.origin, rv.axis, rv.angle)), nil
}

// RotatedWire clones every edge of w under the rotation, sharing one
// rotated vertex per distinct source vertex so the copy remains a
// connected (and, if w was closed, closed) wire.
func (b *Builder) RotatedWire(w topo.Wire, origin, axis la.Vector, angle float64) (topo.Wire, error) {
	rv := b.newRotatedVertices(origin, axis, angle)
	edges := make([]topo.Edge, 0, w.Len())
	for _, e := range w.Edges() {
		ne, err := b.rotateEdge(rv, e)
		if err != nil {
			return topo.Wire{}, err
		}
		edges = append(edges, ne)
	}
	return topo.WireOf(edges)
}

// RotatedFace clones f's boundary wire and surface under the rotation.
func (b *Builder) RotatedFace(f topo.Face, origin, axis la.Vector, angle float64) (topo.Face, error) {
	rv := b.newRotatedVertices(origin, axis, angle)
	edges := make([]topo.Edge, 0, f.Boundary().Len())
	for _, e := range f.BoundaryEdges() {
		ne, err := b.rotateEdge(rv, e)
		if err != nil {
			return topo.Face{}, err
		}
		edges = append(edges, ne)
	}
	wire, err := topo.WireOf(edges)
	if err != nil {
		return topo.Face{}, err
	}
	surf, err := b.d.binding.OrientedSurface(f)
	if err != nil {
		return topo.Face{}, err
	}
	nsurf := rotateSurface(surf, origin, axis, angle)
	id := b.d.allocID()
	nface, err := topo.TryNewFace(id, wire)
	if err != nil {
		return topo.Face{}, err
	}
	b.d.binding.InsertSurface(id, nsurf)
	return nface, nil
}

func rotateSurface(s *bspline.Surface, origin, axis la.Vector, angle float64) *bspline.Surface {
	rows := s.Rows()
	cols := s.Cols()
	grid := make([][]la.Vector, rows)
	for i := 0; i < rows; i++ {
		grid[i] = make([]la.Vector, cols)
		for j := 0; j < cols; j++ {
			grid[i][j] = applyToPoint(s.ControlPoint(i, j), func(p la.Vector) la.Vector {
				return rotatePoint3(p, origin, axis, angle)
			})
		}
	}
	ns, err := bspline.NewSurface(s.UKnots(), s.VKnots(), grid)
	if err != nil {
		chk.Panic("rotateSurface: rotated control grid is malformed: %v", err)
	}
	return ns
}
