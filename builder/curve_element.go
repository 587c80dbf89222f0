package builder

import (
	"github.com/cpmech/brep/bspline"
	"github.com/cpmech/brep/topo"
)

// CurveElement is the capability set shared by Edge and Wire that lets
// Homotopy be written once against either operand (spec.md §9): front/
// back vertex, the curve it carries, iteration over its edges, whether
// it is closed, and how to split it in half for the closed-homotopy
// case. Grounded directly on truck_shape's curve_element.rs trait.
type CurveElement interface {
	FrontVertex() topo.Vertex
	BackVertex() topo.Vertex
	Geometry(d *Director) (*bspline.Curve, error)
	CloneWire() topo.Wire
	ForEach(f func(topo.Edge))
	IsClosed() bool
	// SplitWire returns the two halves of a closed wire, split at half
	// its edge count, or ok=false if the element cannot be split (an
	// Edge never can, matching curve_element.rs's impl for Edge).
	SplitWire() (first, second topo.Wire, ok bool)
}

// EdgeElement adapts a single topo.Edge to CurveElement.
type EdgeElement struct{ Edge topo.Edge }

func (e EdgeElement) FrontVertex() topo.Vertex { return e.Edge.Front() }
func (e EdgeElement) BackVertex() topo.Vertex  { return e.Edge.Back() }

func (e EdgeElement) Geometry(d *Director) (*bspline.Curve, error) {
	return d.binding.OrientedCurve(e.Edge)
}

func (e EdgeElement) CloneWire() topo.Wire {
	w, _ := topo.WireOf([]topo.Edge{e.Edge})
	return w
}

func (e EdgeElement) ForEach(f func(topo.Edge)) { f(e.Edge) }
func (e EdgeElement) IsClosed() bool            { return false }
func (e EdgeElement) SplitWire() (topo.Wire, topo.Wire, bool) {
	return topo.Wire{}, topo.Wire{}, false
}

// WireElement adapts a topo.Wire to CurveElement.
type WireElement struct{ Wire topo.Wire }

func (w WireElement) FrontVertex() topo.Vertex {
	v, _ := w.Wire.FrontVertex()
	return v
}

func (w WireElement) BackVertex() topo.Vertex {
	v, _ := w.Wire.BackVertex()
	return v
}

func (w WireElement) Geometry(d *Director) (*bspline.Curve, error) {
	return d.binding.BSplineByWire(w.Wire)
}

func (w WireElement) CloneWire() topo.Wire { return w.Wire.Clone() }

func (w WireElement) ForEach(f func(topo.Edge)) {
	w.Wire.ForEach(func(e topo.Edge) bool { f(e); return true })
}

func (w WireElement) IsClosed() bool { return w.Wire.IsClosed() }

func (w WireElement) SplitWire() (topo.Wire, topo.Wire, bool) {
	if w.Wire.Len() < 2 {
		return topo.Wire{}, topo.Wire{}, false
	}
	first := w.Wire.Clone()
	second := first.SplitOff(w.Wire.Len() / 2)
	return first, second, true
}
