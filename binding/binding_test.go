package binding

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/brep/bspline"
	"github.com/cpmech/brep/kerr"
	"github.com/cpmech/brep/knot"
	"github.com/cpmech/brep/topo"
)

func TestPointMissReturnsNoGeometry(t *testing.T) {
	chk.PrintTitle("binding: point miss returns NoGeometry")
	b := New()
	_, err := b.Point(topo.NewVertex(1))
	if !errors.Is(err, kerr.Sentinel(kerr.NoGeometry)) {
		t.Fatalf("expected NoGeometry, got %v", err)
	}
}

func TestOrientedCurveReversesOnInvertedEdge(t *testing.T) {
	chk.PrintTitle("binding: oriented curve follows edge orientation")
	b := New()
	kv := knot.BezierKnot(1)
	c, err := bspline.NewCurve(kv, []la.Vector{{0, 0, 0}, {1, 0, 0}})
	if err != nil {
		t.Fatal(err)
	}
	v0, v1 := topo.NewVertex(1), topo.NewVertex(2)
	e := topo.NewEdge(10, v0, v1)
	b.InsertCurve(e.ID(), c)

	forward, err := b.OrientedCurve(e)
	if err != nil {
		t.Fatal(err)
	}
	chk.Vector(t, "forward(0)", 1e-14, forward.Subs(0), []float64{0, 0, 0})

	reversed, err := b.OrientedCurve(e.Inverse())
	if err != nil {
		t.Fatal(err)
	}
	chk.Vector(t, "reversed(0)", 1e-14, reversed.Subs(0), []float64{1, 0, 0})
	chk.Vector(t, "reversed(1)", 1e-14, reversed.Subs(1), []float64{0, 0, 0})
}

func TestBSplineByWireConcatenatesInOrder(t *testing.T) {
	chk.PrintTitle("binding: BSplineByWire concatenates edges in wire order")
	b := New()
	kv := knot.BezierKnot(1)
	c0, _ := bspline.NewCurve(kv, []la.Vector{{0, 0}, {1, 0}})
	c1, _ := bspline.NewCurve(kv, []la.Vector{{1, 0}, {1, 1}})

	v0, v1, v2 := topo.NewVertex(1), topo.NewVertex(2), topo.NewVertex(3)
	e0 := topo.NewEdge(10, v0, v1)
	e1 := topo.NewEdge(11, v1, v2)
	b.InsertCurve(e0.ID(), c0)
	b.InsertCurve(e1.ID(), c1)

	w, err := topo.WireOf([]topo.Edge{e0, e1})
	if err != nil {
		t.Fatal(err)
	}
	merged, err := b.BSplineByWire(w)
	if err != nil {
		t.Fatal(err)
	}
	chk.Vector(t, "merged.Front", 1e-14, merged.Front(), []float64{0, 0})
	chk.Vector(t, "merged.Back", 1e-14, merged.Back(), []float64{1, 1})
}
