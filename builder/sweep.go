package builder

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/brep/bspline"
	"github.com/cpmech/brep/kerr"
	"github.com/cpmech/brep/topo"
)

// translatedVertices clones vertices under a fixed translation,
// caching one fresh vertex (and one bridging edge to it) per distinct
// source identity, so that two adjacent wire edges sweeping past a
// shared vertex still share the same far vertex and the same vertical
// bridge edge (spec.md §4.5, tsweep).
type translatedVertices struct {
	b      *Builder
	vec    la.Vector
	vcache map[topo.ID]topo.Vertex
	ecache map[topo.ID]topo.Edge
}

func (b *Builder) newTranslatedVertices(vec la.Vector) *translatedVertices {
	return &translatedVertices{b: b, vec: vec, vcache: make(map[topo.ID]topo.Vertex), ecache: make(map[topo.ID]topo.Edge)}
}

func (t *translatedVertices) vertex(v topo.Vertex) (topo.Vertex, error) {
	if nv, ok := t.vcache[v.ID()]; ok {
		return nv, nil
	}
	p, err := t.b.point(v)
	if err != nil {
		return topo.Vertex{}, err
	}
	nv, err := t.b.Vertex(translatePoint3(p, t.vec))
	if err != nil {
		return topo.Vertex{}, err
	}
	t.vcache[v.ID()] = nv
	return nv, nil
}

// bridge returns the Line edge from v to its translated copy, built
// once per distinct v.
func (t *translatedVertices) bridge(v topo.Vertex) (topo.Edge, error) {
	if e, ok := t.ecache[v.ID()]; ok {
		return e, nil
	}
	nv, err := t.vertex(v)
	if err != nil {
		return topo.Edge{}, err
	}
	e, err := t.b.Line(v, nv)
	if err != nil {
		return topo.Edge{}, err
	}
	t.ecache[v.ID()] = e
	return e, nil
}

// tsweepWireSides builds one ruled side face per edge of w, translated
// by tv, sharing bridging vertices and edges at every junction between
// consecutive wire edges. It returns the side shell together with the
// far boundary wire (the translated copy of w, traced in the same
// direction as w), which a face-level sweep uses as its far cap's
// boundary.
//
// Each side face's boundary uses the original edge inverted and the
// translated edge forward: wire = [e.Inverse(), bridge(front), te,
// bridge(back).Inverse()]. That choice is deliberate, not arbitrary: it
// leaves e usable forward by a cap face built directly from w (as
// TsweepFace does), so the edge's two uses across the eventual solid
// are in opposite orientations, as TryNewSolid requires.
func (b *Builder) tsweepWireSides(tv *translatedVertices, w topo.Wire) (topo.Shell, topo.Wire, error) {
	sh := topo.NewShell(b.d.allocID())
	farEdges := make([]topo.Edge, 0, w.Len())
	for _, e := range w.Edges() {
		front, back := e.Front(), e.Back()
		tf, err := tv.vertex(front)
		if err != nil {
			return topo.Shell{}, topo.Wire{}, err
		}
		tb, err := tv.vertex(back)
		if err != nil {
			return topo.Shell{}, topo.Wire{}, err
		}
		curve, err := b.d.binding.OrientedCurve(e)
		if err != nil {
			return topo.Shell{}, topo.Wire{}, err
		}
		tcurve := translateCurve(curve, tv.vec)
		te := b.registerEdge(tf, tb, tcurve)
		farEdges = append(farEdges, te)

		bf, err := tv.bridge(front)
		if err != nil {
			return topo.Shell{}, topo.Wire{}, err
		}
		bb, err := tv.bridge(back)
		if err != nil {
			return topo.Shell{}, topo.Wire{}, err
		}

		var wire topo.Wire
		if err := wire.PushBack(e.Inverse()); err != nil {
			return topo.Shell{}, topo.Wire{}, err
		}
		if err := wire.PushBack(bf); err != nil {
			return topo.Shell{}, topo.Wire{}, err
		}
		if err := wire.PushBack(te); err != nil {
			return topo.Shell{}, topo.Wire{}, err
		}
		if err := wire.PushBack(bb.Inverse()); err != nil {
			return topo.Shell{}, topo.Wire{}, err
		}

		surf, err := bspline.Homotopy(curve, tcurve)
		if err != nil {
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
	farWire, err := topo.WireOf(farEdges)
	if err != nil {
		return topo.Shell{}, topo.Wire{}, err
	}
	return sh, farWire, nil
}

// TsweepVertex registers the Line edge from v to its translated copy
// (spec.md §4.5).
func (b *Builder) TsweepVertex(v topo.Vertex, vec la.Vector) (topo.Edge, error) {
	if isZeroVec(vec) {
		return topo.Edge{}, kerr.New(kerr.ZeroRange, "tsweep: zero translation vector")
	}
	p, err := b.point(v)
	if err != nil {
		return topo.Edge{}, err
	}
	nv, err := b.Vertex(translatePoint3(p, vec))
	if err != nil {
		return topo.Edge{}, err
	}
	return b.Line(v, nv)
}

// TsweepEdge sweeps e along vec, producing the single ruled face
// between e and its translated copy.
func (b *Builder) TsweepEdge(e topo.Edge, vec la.Vector) (topo.Face, error) {
	if isZeroVec(vec) {
		return topo.Face{}, kerr.New(kerr.ZeroRange, "tsweep: zero translation vector")
	}
	wire, err := topo.WireOf([]topo.Edge{e})
	if err != nil {
		return topo.Face{}, err
	}
	tv := b.newTranslatedVertices(vec)
	sh, _, err := b.tsweepWireSides(tv, wire)
	if err != nil {
		return topo.Face{}, err
	}
	return sh.Faces()[0], nil
}

// TsweepWire sweeps every edge of w along vec, sharing vertices and
// bridge edges at junctions so the result is a single connected (and,
// if w was closed, closed) side shell.
func (b *Builder) TsweepWire(w topo.Wire, vec la.Vector) (topo.Shell, error) {
	if isZeroVec(vec) {
		return topo.Shell{}, kerr.New(kerr.ZeroRange, "tsweep: zero translation vector")
	}
	tv := b.newTranslatedVertices(vec)
	sh, _, err := b.tsweepWireSides(tv, w)
	return sh, err
}

// TsweepFace sweeps f along vec into a solid: f stands as the near
// cap, a translated (and inverted) copy of f as the far cap, and a
// tsweepWireSides side shell joining them (spec.md §4.5).
func (b *Builder) TsweepFace(f topo.Face, vec la.Vector) (topo.Solid, error) {
	if isZeroVec(vec) {
		return topo.Solid{}, kerr.New(kerr.ZeroRange, "tsweep: zero translation vector")
	}
	boundary, err := topo.WireOf(f.BoundaryEdges())
	if err != nil {
		return topo.Solid{}, err
	}
	tv := b.newTranslatedVertices(vec)
	sideShell, farWire, err := b.tsweepWireSides(tv, boundary)
	if err != nil {
		return topo.Solid{}, err
	}
	surf, err := b.d.binding.OrientedSurface(f)
	if err != nil {
		return topo.Solid{}, err
	}
	farSurf := translateSurface(surf, vec)
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

// TsweepShell sweeps every face of sh along vec into solids, one per
// closed shell formed (spec.md §4.5). Faces of sh share a single
// translation cache, so adjacent faces' side walls share vertices and
// bridge edges exactly as TsweepFace does for a single face.
func (b *Builder) TsweepShell(sh topo.Shell, vec la.Vector) ([]topo.Solid, error) {
	if isZeroVec(vec) {
		return nil, kerr.New(kerr.ZeroRange, "tsweep: zero translation vector")
	}
	tv := b.newTranslatedVertices(vec)
	solidShell := topo.NewShell(b.d.allocID())
	for _, f := range sh.Faces() {
		boundary, err := topo.WireOf(f.BoundaryEdges())
		if err != nil {
			return nil, err
		}
		sideShell, farWire, err := b.tsweepWireSides(tv, boundary)
		if err != nil {
			return nil, err
		}
		surf, err := b.d.binding.OrientedSurface(f)
		if err != nil {
			return nil, err
		}
		farSurf := translateSurface(surf, vec)
		farID := b.d.allocID()
		farFace, err := topo.TryNewFace(farID, farWire.Inverse())
		if err != nil {
			return nil, err
		}
		b.d.binding.InsertSurface(farID, farSurf)

		solidShell.Push(f)
		solidShell.Push(farFace)
		for _, sf := range sideShell.Faces() {
			solidShell.Push(sf)
		}
	}
	solid, err := topo.TryNewSolid(b.d.allocID(), []topo.Shell{solidShell})
	if err != nil {
		return nil, err
	}
	return []topo.Solid{solid}, nil
}
