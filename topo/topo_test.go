package topo

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/brep/kerr"
)

// square builds a closed, four-edge wire around the unit square,
// vertex identities 0..3, edge identities 100..103.
func square(t *testing.T) (Wire, []Vertex) {
	v := []Vertex{NewVertex(0), NewVertex(1), NewVertex(2), NewVertex(3)}
	edges := []Edge{
		NewEdge(100, v[0], v[1]),
		NewEdge(101, v[1], v[2]),
		NewEdge(102, v[2], v[3]),
		NewEdge(103, v[3], v[0]),
	}
	w, err := WireOf(edges)
	if err != nil {
		t.Fatalf("unexpected error building square wire: %v", err)
	}
	return w, v
}

func TestEdgeInverseInvolutionAndIdentity(t *testing.T) {
	chk.PrintTitle("topo: edge inverse is an involution, identity survives")
	a, b := NewVertex(1), NewVertex(2)
	e := NewEdge(10, a, b)
	inv := e.Inverse()
	if inv.Front().ID() != b.ID() || inv.Back().ID() != a.ID() {
		t.Fatalf("inverse did not swap endpoints")
	}
	if !e.SameEdge(inv) {
		t.Fatalf("inverse must share identity with the original edge")
	}
	if e.ID() != inv.ID() {
		t.Fatalf("inverse must keep the same ID")
	}
	if inv.Inverse().Inverted() {
		t.Fatalf("double inverse must return to forward orientation")
	}
}

func TestWirePushBackRejectsMismatch(t *testing.T) {
	chk.PrintTitle("topo: wire rejects endpoint mismatch")
	a, b, c := NewVertex(1), NewVertex(2), NewVertex(3)
	var w Wire
	if err := w.PushBack(NewEdge(10, a, b)); err != nil {
		t.Fatal(err)
	}
	err := w.PushBack(NewEdge(11, c, a))
	if !errors.Is(err, kerr.Sentinel(kerr.CannotAddEdge)) {
		t.Fatalf("expected CannotAddEdge, got %v", err)
	}
}

func TestWireIsClosed(t *testing.T) {
	chk.PrintTitle("topo: wire closure")
	w, _ := square(t)
	if !w.IsClosed() {
		t.Fatal("expected square wire to be closed")
	}
	open := w.Clone()
	open.SplitOff(3)
	if open.IsClosed() {
		t.Fatal("three-edge prefix of a square must not be closed")
	}
}

func TestWireInverseReversesOrder(t *testing.T) {
	chk.PrintTitle("topo: wire inverse reverses traversal")
	w, v := square(t)
	r := w.Inverse()
	if r.Len() != w.Len() {
		t.Fatalf("inverse must preserve edge count")
	}
	front, _ := r.FrontVertex()
	if front.ID() != v[0].ID() {
		t.Fatalf("inverse of a closed wire starting at v0 must still start at v0, got %d", front.ID())
	}
	if !r.IsClosed() {
		t.Fatal("inverse of a closed wire must be closed")
	}
}

func TestFaceTryNewRejectsEmptyAndOpenWires(t *testing.T) {
	chk.PrintTitle("topo: face validates its boundary")
	var empty Wire
	if _, err := TryNewFace(1, empty); !errors.Is(err, kerr.Sentinel(kerr.EmptyWire)) {
		t.Fatalf("expected EmptyWire, got %v", err)
	}
	a, b := NewVertex(1), NewVertex(2)
	open, _ := WireOf([]Edge{NewEdge(10, a, b)})
	if _, err := TryNewFace(2, open); !errors.Is(err, kerr.Sentinel(kerr.NotClosedWire)) {
		t.Fatalf("expected NotClosedWire, got %v", err)
	}
}

func TestFaceInverseFlipsBoundary(t *testing.T) {
	chk.PrintTitle("topo: face inverse flips and reverses its boundary")
	w, v := square(t)
	f, err := TryNewFace(1, w)
	if err != nil {
		t.Fatal(err)
	}
	inv := f.Inverse()
	edges := inv.BoundaryEdges()
	if len(edges) != 4 {
		t.Fatalf("expected 4 boundary edges, got %d", len(edges))
	}
	if edges[0].Front().ID() != v[0].ID() || edges[0].Back().ID() != v[3].ID() {
		t.Fatalf("inverted face must traverse its boundary backward")
	}
	if !edges[0].Inverted() {
		t.Fatalf("inverted face's boundary edges must themselves be flipped")
	}
}

func TestShellExtractBoundariesOfOpenPatch(t *testing.T) {
	chk.PrintTitle("topo: open single-face shell exposes its own boundary")
	w, _ := square(t)
	f, err := TryNewFace(1, w)
	if err != nil {
		t.Fatal(err)
	}
	sh := NewShell(1)
	sh.Push(f)
	bnds := sh.ExtractBoundaries()
	if len(bnds) != 1 || bnds[0].Len() != 4 {
		t.Fatalf("expected one 4-edge boundary, got %v", bnds)
	}
}

// cubeShell builds a closed, manifold, orientable six-face cube shell
// out of 8 vertices (0,0,0)..(1,1,1) and 12 edges, each face boundary
// walked counter-clockwise as seen from outside the cube, consistent
// with spec.md §8's canonical cube test scenario.
func cubeShell(t *testing.T) Shell {
	v := make([]Vertex, 8)
	for i := range v {
		v[i] = NewVertex(ID(i))
	}
	// 0..3 is the z=0 square, 4..7 the z=1 square directly above it:
	// 0=(0,0,0) 1=(1,0,0) 2=(1,1,0) 3=(0,1,0) 4=(0,0,1) 5=(1,0,1) 6=(1,1,1) 7=(0,1,1)
	e0 := NewEdge(0, v[0], v[3])
	e1 := NewEdge(1, v[3], v[2])
	e2 := NewEdge(2, v[2], v[1])
	e3 := NewEdge(3, v[1], v[0])
	e4 := NewEdge(4, v[4], v[5])
	e5 := NewEdge(5, v[5], v[6])
	e6 := NewEdge(6, v[6], v[7])
	e7 := NewEdge(7, v[7], v[4])
	e8 := NewEdge(8, v[0], v[4])
	e9 := NewEdge(9, v[1], v[5])
	e10 := NewEdge(10, v[2], v[6])
	e11 := NewEdge(11, v[3], v[7])

	bottom, _ := WireOf([]Edge{e0, e1, e2, e3})
	top, _ := WireOf([]Edge{e4, e5, e6, e7})
	front, _ := WireOf([]Edge{e3.Inverse(), e9, e4.Inverse(), e8.Inverse()})
	right, _ := WireOf([]Edge{e2.Inverse(), e10, e5.Inverse(), e9.Inverse()})
	back, _ := WireOf([]Edge{e1.Inverse(), e11, e6.Inverse(), e10.Inverse()})
	left, _ := WireOf([]Edge{e8, e7.Inverse(), e11.Inverse(), e0.Inverse()})

	faces := []Wire{bottom, top, front, right, back, left}
	sh := NewShell(1)
	for i, w := range faces {
		f, err := TryNewFace(ID(100+i), w)
		if err != nil {
			t.Fatalf("face %d: %v", i, err)
		}
		sh.Push(f)
	}
	return sh
}

func TestSolidTryNewAcceptsClosedCube(t *testing.T) {
	chk.PrintTitle("topo: closed cube shell yields a valid solid")
	sh := cubeShell(t)
	if len(sh.ExtractBoundaries()) != 0 {
		t.Fatalf("expected a fully closed cube shell to have no free boundary")
	}
	if _, err := TryNewSolid(1, []Shell{sh}); err != nil {
		t.Fatalf("expected a valid solid, got %v", err)
	}
}

func TestSolidTryNewRejectsOpenShell(t *testing.T) {
	chk.PrintTitle("topo: an open shell cannot become a solid")
	w, _ := square(t)
	f, err := TryNewFace(1, w)
	if err != nil {
		t.Fatal(err)
	}
	sh := NewShell(1)
	sh.Push(f)
	if _, err := TryNewSolid(1, []Shell{sh}); !errors.Is(err, kerr.Sentinel(kerr.NotClosedShell)) {
		t.Fatalf("expected NotClosedShell, got %v", err)
	}
}
