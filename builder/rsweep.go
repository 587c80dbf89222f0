package builder

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/brep/kerr"
	"github.com/cpmech/brep/topo"
)

// maxArcAngle is the largest single rational-quadratic arc span this
// kernel builds (spec.md §4.5): revolution splits into steps of at
// most this many radians, which keeps each step's arc weight
// cos(step/2) at or above cos(pi/4).
const maxArcAngle = math.Pi / 2

// revolvedVertices is rsweep's analogue of translatedVertices: it
// clones a vertex through every angular step of the revolution,
// caching one ring of positions and connecting arcs per distinct
// source identity.
type revolvedVertices struct {
	b            *Builder
	origin, axis la.Vector
	step         float64
	n            int
	full         bool
	rings        map[topo.ID]*vertexRing
}

type vertexRing struct {
	positions []topo.Vertex
	arcs      []topo.Edge
}

// newRevolvedVertices precomputes the step count and per-step angle
// for a revolution of angle radians: |angle| <= pi/2 sweeps in one
// rational-quadratic step, otherwise it is divided into equal steps of
// at most pi/2 each.
func (b *Builder) newRevolvedVertices(origin, axis la.Vector, angle float64) (*revolvedVertices, error) {
	if isZeroVec(axis) {
		return nil, kerr.New(kerr.ZeroRange, "rsweep: zero rotation axis")
	}
	if angle == 0 {
		return nil, kerr.New(kerr.ZeroRange, "rsweep: zero rotation angle")
	}
	n := int(math.Ceil(math.Abs(angle) / maxArcAngle))
	if n < 1 {
		n = 1
	}
	step := angle / float64(n)
	full := math.Abs(math.Abs(angle)-2*math.Pi) < 1e-9
	return &revolvedVertices{b: b, origin: origin, axis: axis, step: step, n: n, full: full, rings: make(map[topo.ID]*vertexRing)}, nil
}

func (r *revolvedVertices) ring(v topo.Vertex) (*vertexRing, error) {
	if ring, ok := r.rings[v.ID()]; ok {
		return ring, nil
	}
	p, err := r.b.point(v)
	if err != nil {
		return nil, err
	}
	ring := &vertexRing{positions: make([]topo.Vertex, r.n+1), arcs: make([]topo.Edge, r.n)}
	ring.positions[0] = v
	cur := p
	for i := 0; i < r.n; i++ {
		var nv topo.Vertex
		if i == r.n-1 && r.full {
			nv = ring.positions[0]
		} else {
			next := rotatePoint3(cur, r.origin, r.axis, r.step)
			nv, err = r.b.Vertex(next)
			if err != nil {
				return nil, err
			}
		}
		mid := rotatePoint3(cur, r.origin, r.axis, r.step/2)
		arc, err := r.b.CircleArc(ring.positions[i], nv, mid)
		if err != nil {
			return nil, err
		}
		ring.positions[i+1] = nv
		ring.arcs[i] = arc
		cur = rotatePoint3(cur, r.origin, r.axis, r.step)
	}
	r.rings[v.ID()] = ring
	return ring, nil
}

// rsweepWireSides is rsweep's analogue of tsweepWireSides: it builds
// n side faces per edge of w, one per angular step, sharing vertex
// rings and connecting arcs at every junction. It returns the side
// shell and the far boundary wire traced at the full revolution angle,
// which a face-level revolve uses as its far cap's boundary.
func (b *Builder) rsweepWireSides(rv *revolvedVertices, w topo.Wire) (topo.Shell, topo.Wire, error) {
	sh := topo.NewShell(b.d.allocID())
	farEdges := make([]topo.Edge, 0, w.Len())
	for _, e := range w.Edges() {
		front, back := e.Front(), e.Back()
		ringF, err := rv.ring(front)
		if err != nil {
			return topo.Shell{}, topo.Wire{}, err
		}
		ringB, err := rv.ring(back)
		if err != nil {
			return topo.Shell{}, topo.Wire{}, err
		}
		curve, err := b.d.binding.OrientedCurve(e)
		if err != nil {
			return topo.Shell{}, topo.Wire{}, err
		}

		chain := make([]topo.Edge, rv.n+1)
		chain[0] = e
		for i := 1; i <= rv.n; i++ {
			if i == rv.n && rv.full {
				chain[i] = e
				continue
			}
			rotated := rotateCurve(curve, rv.origin, rv.axis, float64(i)*rv.step)
			chain[i] = b.registerEdge(ringF.positions[i], ringB.positions[i], rotated)
		}

		for i := 0; i < rv.n; i++ {
			e0, e1 := chain[i], chain[i+1]
			stepCurve := rotateCurve(curve, rv.origin, rv.axis, float64(i)*rv.step)
			surf, err := revolveSurfaceStep(stepCurve, rv.origin, rv.axis, rv.step)
			if err != nil {
				return topo.Shell{}, topo.Wire{}, err
			}

			var wire topo.Wire
			if err := wire.PushBack(e0.Inverse()); err != nil {
				return topo.Shell{}, topo.Wire{}, err
			}
			if err := wire.PushBack(ringF.arcs[i]); err != nil {
				return topo.Shell{}, topo.Wire{}, err
			}
			if err := wire.PushBack(e1); err != nil {
				return topo.Shell{}, topo.Wire{}, err
			}
			if err := wire.PushBack(ringB.arcs[i].Inverse()); err != nil {
				return topo.Shell{}, topo.Wire{}, err
			}

			id := b.d.allocID()
			face, err := topo.TryNewFace(id, wire)
			if err != nil {
				return topo.Shell{}, topo.Wire{}, err
			}
			b.d.binding.InsertSurface(id, surf)
			sh.Push(face)
		}
		farEdges = append(farEdges, chain[rv.n])
	}
	farWire, err := topo.WireOf(farEdges)
	if err != nil {
		return topo.Shell{}, topo.Wire{}, err
	}
	return sh, farWire, nil
}

// RsweepEdge revolves e about (origin, axis) by angle radians,
// producing the side shell of rational-quadratic arc-steps (spec.md §4.5).
func (b *Builder) RsweepEdge(e topo.Edge, origin, axis la.Vector, angle float64) (topo.Shell, error) {
	rv, err := b.newRevolvedVertices(origin, axis, angle)
	if err != nil {
		return topo.Shell{}, err
	}
	wire, err := topo.WireOf([]topo.Edge{e})
	if err != nil {
		return topo.Shell{}, err
	}
	sh, _, err := b.rsweepWireSides(rv, wire)
	return sh, err
}

// RsweepWire revolves every edge of w about (origin, axis) by angle
// radians, sharing vertex rings and arcs at junctions (the torus and
// tsudsumi scenarios: a profile wire revolved by a full turn).
func (b *Builder) RsweepWire(w topo.Wire, origin, axis la.Vector, angle float64) (topo.Shell, error) {
	rv, err := b.newRevolvedVertices(origin, axis, angle)
	if err != nil {
		return topo.Shell{}, err
	}
	sh, _, err := b.rsweepWireSides(rv, w)
	return sh, err
}

// RsweepFace revolves f about (origin, axis) by angle radians into a
// solid (the half_torus scenario): f stands as the near cap, a
// rotated copy of f as the far cap, and an rsweepWireSides side shell
// joining them. A full 2*pi revolution needs no caps at all, since the
// far cap would coincide exactly with the near one; the side shell
// alone already closes into a solid (truck_torus).
func (b *Builder) RsweepFace(f topo.Face, origin, axis la.Vector, angle float64) (topo.Solid, error) {
	rv, err := b.newRevolvedVertices(origin, axis, angle)
	if err != nil {
		return topo.Solid{}, err
	}
	boundary, err := topo.WireOf(f.BoundaryEdges())
	if err != nil {
		return topo.Solid{}, err
	}
	sideShell, farWire, err := b.rsweepWireSides(rv, boundary)
	if err != nil {
		return topo.Solid{}, err
	}
	if rv.full {
		return topo.TryNewSolid(b.d.allocID(), []topo.Shell{sideShell})
	}

	surf, err := b.d.binding.OrientedSurface(f)
	if err != nil {
		return topo.Solid{}, err
	}
	farSurf := rotateSurface(surf, origin, axis, angle)
	farID := b.d.allocID()
	farFace, err := topo.TryNewFace(farID, farWire.Inverse())
	if err != nil {
		return topo.Solid{}, err
	}
	b.d.binding.InsertSurface(farID, farSurf)

	solidShell := topo.NewShell(b.d.allocID())
	solidShell.Push(f)
	solidShell.Push(farFace)
	for _, sf := range sideShell.Faces() {
		solidShell.Push(sf)
	}
	return topo.TryNewSolid(b.d.allocID(), []topo.Shell{solidShell})
}
