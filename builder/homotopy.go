package builder

import (
	"github.com/cpmech/brep/bspline"
	"github.com/cpmech/brep/kerr"
	"github.com/cpmech/brep/topo"
)

// Homotopy lofts a surface between two CurveElement operands (spec.md
// §4.5/§4.6, §9): both closed yields two lofted faces, both open
// yields one, and a mix fails with DifferentHomotopyType. The
// dispatch and the bridging-edge construction follow
// truck_shape/curve_element.rs's trait-default `homotopy` method.
func (b *Builder) Homotopy(e0, e1 CurveElement) (topo.Shell, error) {
	switch {
	case e0.IsClosed() && e1.IsClosed():
		return b.closedHomotopy(e0, e1)
	case !e0.IsClosed() && !e1.IsClosed():
		return b.openHomotopy(e0, e1)
	default:
		return topo.Shell{}, kerr.New(kerr.DifferentHomotopyType, "homotopy: one operand is closed and the other is open")
	}
}

// reversedEdges collects e's edges and returns them reversed in order
// with each flipped — spec.md §4.5's "c1.reversed" — so the bridge
// construction below chains validly regardless of how many edges the
// operand carries (the Rust source's literal for_each-without-reorder
// only chains correctly for the single-edge operands its own examples
// happen to use).
func reversedEdges(e CurveElement) []topo.Edge {
	var edges []topo.Edge
	e.ForEach(func(ed topo.Edge) { edges = append(edges, ed) })
	out := make([]topo.Edge, len(edges))
	n := len(edges)
	for i, ed := range edges {
		out[n-1-i] = ed.Inverse()
	}
	return out
}

func (b *Builder) openHomotopy(e0, e1 CurveElement) (topo.Shell, error) {
	curve0, err := e0.Geometry(b.d)
	if err != nil {
		return topo.Shell{}, err
	}
	curve1, err := e1.Geometry(b.d)
	if err != nil {
		return topo.Shell{}, err
	}
	surface, err := bspline.Homotopy(curve0, curve1)
	if err != nil {
		return topo.Shell{}, err
	}
	bridgeBack, err := b.Line(e0.BackVertex(), e1.BackVertex())
	if err != nil {
		return topo.Shell{}, err
	}
	bridgeFront, err := b.Line(e1.FrontVertex(), e0.FrontVertex())
	if err != nil {
		return topo.Shell{}, err
	}
	wire := e0.CloneWire()
	if err := wire.PushBack(bridgeBack); err != nil {
		return topo.Shell{}, err
	}
	for _, e := range reversedEdges(e1) {
		if err := wire.PushBack(e); err != nil {
			return topo.Shell{}, err
		}
	}
	if err := wire.PushBack(bridgeFront); err != nil {
		return topo.Shell{}, err
	}
	id := b.d.allocID()
	face, err := topo.TryNewFace(id, wire)
	if err != nil {
		return topo.Shell{}, err
	}
	b.d.binding.InsertSurface(id, surface)
	sh := topo.NewShell(b.d.allocID())
	sh.Push(face)
	return sh, nil
}

func (b *Builder) closedHomotopy(e0, e1 CurveElement) (topo.Shell, error) {
	wire0, wire1, ok := e0.SplitWire()
	if !ok {
		return topo.Shell{}, kerr.New(kerr.DifferentHomotopyType, "homotopy: closed operand %T cannot be split in half", e0)
	}
	wire2, wire3, ok := e1.SplitWire()
	if !ok {
		return topo.Shell{}, kerr.New(kerr.DifferentHomotopyType, "homotopy: closed operand %T cannot be split in half", e1)
	}

	curve0, err := b.d.binding.BSplineByWire(wire0)
	if err != nil {
		return topo.Shell{}, err
	}
	curve2, err := b.d.binding.BSplineByWire(wire2)
	if err != nil {
		return topo.Shell{}, err
	}
	surface0, err := bspline.Homotopy(curve0, curve2)
	if err != nil {
		return topo.Shell{}, err
	}

	curve1, err := b.d.binding.BSplineByWire(wire1)
	if err != nil {
		return topo.Shell{}, err
	}
	curve3, err := b.d.binding.BSplineByWire(wire3)
	if err != nil {
		return topo.Shell{}, err
	}
	surface1, err := bspline.Homotopy(curve1, curve3)
	if err != nil {
		return topo.Shell{}, err
	}

	front0, _ := wire0.FrontVertex()
	front2, _ := wire2.FrontVertex()
	back0, _ := wire0.BackVertex()
	back2, _ := wire2.BackVertex()
	edge0, err := b.Line(front0, front2)
	if err != nil {
		return topo.Shell{}, err
	}
	edge1, err := b.Line(back0, back2)
	if err != nil {
		return topo.Shell{}, err
	}

	if err := wire0.PushBack(edge1); err != nil {
		return topo.Shell{}, err
	}
	if err := wire0.Append(wire2.Inverse()); err != nil {
		return topo.Shell{}, err
	}
	if err := wire0.PushBack(edge0.Inverse()); err != nil {
		return topo.Shell{}, err
	}

	if err := wire1.PushBack(edge0); err != nil {
		return topo.Shell{}, err
	}
	if err := wire1.Append(wire3.Inverse()); err != nil {
		return topo.Shell{}, err
	}
	if err := wire1.PushBack(edge1.Inverse()); err != nil {
		return topo.Shell{}, err
	}

	id0 := b.d.allocID()
	face0, err := topo.TryNewFace(id0, wire0)
	if err != nil {
		return topo.Shell{}, err
	}
	b.d.binding.InsertSurface(id0, surface0)

	id1 := b.d.allocID()
	face1, err := topo.TryNewFace(id1, wire1)
	if err != nil {
		return topo.Shell{}, err
	}
	b.d.binding.InsertSurface(id1, surface1)

	sh := topo.NewShell(b.d.allocID())
	sh.Push(face0)
	sh.Push(face1)
	return sh, nil
}
