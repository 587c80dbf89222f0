package builder

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/brep/bspline"
	"github.com/cpmech/brep/kerr"
	"github.com/cpmech/brep/topo"
)

func TestLineEndpointsMatchControlPoints(t *testing.T) {
	chk.PrintTitle("builder: line endpoints match its control points")
	d := New()
	var e topo.Edge
	err := d.Building(func(b *Builder) error {
		v0, err := b.Vertex(la.Vector{0, 0, 0})
		if err != nil {
			return err
		}
		v1, err := b.Vertex(la.Vector{1, 0, 0})
		if err != nil {
			return err
		}
		e, err = b.Line(v0, v1)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	c, err := d.Binding().OrientedCurve(e)
	if err != nil {
		t.Fatal(err)
	}
	chk.Vector(t, "front", 1e-14, c.Subs(0), []float64{0, 0, 0})
	chk.Vector(t, "back", 1e-14, c.Subs(1), []float64{1, 0, 0})
}

func TestCircleArcPassesThroughTransitAtMidparameter(t *testing.T) {
	chk.PrintTitle("builder: circle_arc passes through transit at u=0.5")
	d := New()
	var e topo.Edge
	err := d.Building(func(b *Builder) error {
		v0, err := b.Vertex(la.Vector{1, 0, 0})
		if err != nil {
			return err
		}
		v1, err := b.Vertex(la.Vector{0, 1, 0})
		if err != nil {
			return err
		}
		e, err = b.CircleArc(v0, v1, la.Vector{math.Sqrt2 / 2, math.Sqrt2 / 2, 0})
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	c, err := d.Binding().OrientedCurve(e)
	if err != nil {
		t.Fatal(err)
	}
	mid := bspline.Euclid(c.Subs(0.5))
	chk.Vector(t, "transit", 1e-9, mid, []float64{math.Sqrt2 / 2, math.Sqrt2 / 2, 0})
	for _, u := range []float64{0, 0.25, 0.5, 0.75, 1} {
		p := bspline.Euclid(c.Subs(u))
		r2 := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
		if math.Abs(r2-1) > 1e-9 {
			t.Fatalf("u=%v: r^2=%v, want 1", u, r2)
		}
	}
}

func TestPlaneOnSquareWireIsFlat(t *testing.T) {
	chk.PrintTitle("builder: plane over a square wire is flat at z=0")
	d := New()
	var f topo.Face
	err := d.Building(func(b *Builder) error {
		v0, err := b.Vertex(la.Vector{0, 0, 0})
		if err != nil {
			return err
		}
		v1, err := b.Vertex(la.Vector{1, 0, 0})
		if err != nil {
			return err
		}
		v2, err := b.Vertex(la.Vector{1, 1, 0})
		if err != nil {
			return err
		}
		v3, err := b.Vertex(la.Vector{0, 1, 0})
		if err != nil {
			return err
		}
		e0, err := b.Line(v0, v1)
		if err != nil {
			return err
		}
		e1, err := b.Line(v1, v2)
		if err != nil {
			return err
		}
		e2, err := b.Line(v2, v3)
		if err != nil {
			return err
		}
		e3, err := b.Line(v3, v0)
		if err != nil {
			return err
		}
		w, err := topo.WireOf([]topo.Edge{e0, e1, e2, e3})
		if err != nil {
			return err
		}
		f, err = b.Plane(w)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	surf, err := d.Binding().OrientedSurface(f)
	if err != nil {
		t.Fatal(err)
	}
	for _, uv := range [][2]float64{{0, 0}, {1, 1}, {0.5, 0.5}} {
		p := bspline.Euclid(surf.Subs(uv[0], uv[1]))
		if math.Abs(p[2]) > 1e-12 {
			t.Fatalf("(u,v)=%v: z=%v, want 0", uv, p[2])
		}
	}
	if err := d.CheckIntegrity([]topo.Face{f}); err != nil {
		t.Fatalf("CheckIntegrity: %v", err)
	}
}

// cubeViaSweep builds a unit cube by sweeping a square face along the
// z axis, mirroring the original_source cube scenario's
// vertex/tsweep_vertex/tsweep_edge/tsweep_face chain.
func cubeViaSweep(t *testing.T) (*Director, topo.Solid) {
	d := New()
	var solid topo.Solid
	err := d.Building(func(b *Builder) error {
		v0, err := b.Vertex(la.Vector{0, 0, 0})
		if err != nil {
			return err
		}
		e0, err := b.TsweepVertex(v0, la.Vector{1, 0, 0})
		if err != nil {
			return err
		}
		f0, err := b.TsweepEdge(e0, la.Vector{0, 1, 0})
		if err != nil {
			return err
		}
		solid, err = b.TsweepFace(f0, la.Vector{0, 0, 1})
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	return d, solid
}

func TestTsweepFaceBuildsClosedCube(t *testing.T) {
	chk.PrintTitle("builder: tsweep_face closes a unit cube")
	d, solid := cubeViaSweep(t)
	if len(solid.Shells()) != 1 {
		t.Fatalf("expected 1 shell, got %d", len(solid.Shells()))
	}
	sh := solid.Shells()[0]
	if sh.Len() != 6 {
		t.Fatalf("expected 6 faces, got %d", sh.Len())
	}
	if bounds := sh.ExtractBoundaries(); len(bounds) != 0 {
		t.Fatalf("expected a fully closed shell, got %d boundary wires", len(bounds))
	}
	var faces []topo.Face
	faces = append(faces, sh.Faces()...)
	if err := d.CheckIntegrity(faces); err != nil {
		t.Fatalf("CheckIntegrity: %v", err)
	}
}

func TestTsweepZeroVectorRejected(t *testing.T) {
	chk.PrintTitle("builder: tsweep rejects a zero translation vector")
	d := New()
	err := d.Building(func(b *Builder) error {
		v0, err := b.Vertex(la.Vector{0, 0, 0})
		if err != nil {
			return err
		}
		_, err = b.TsweepVertex(v0, la.Vector{0, 0, 0})
		return err
	})
	if err == nil {
		t.Fatal("expected an error sweeping by the zero vector")
	}
}

// rsweepTorus builds a torus by revolving a circular profile wire (two
// arcs) a full turn about the z axis, mirroring the original_source
// torus scenario.
func rsweepTorus(t *testing.T) (*Director, topo.Shell) {
	d := New()
	var shell topo.Shell
	err := d.Building(func(b *Builder) error {
		const R = 2.0
		const r = 0.5
		v0, err := b.Vertex(la.Vector{R + r, 0, 0})
		if err != nil {
			return err
		}
		v1, err := b.Vertex(la.Vector{R - r, 0, 0})
		if err != nil {
			return err
		}
		arc0, err := b.CircleArc(v0, v1, la.Vector{R, 0, r})
		if err != nil {
			return err
		}
		arc1, err := b.CircleArc(v1, v0, la.Vector{R, 0, -r})
		if err != nil {
			return err
		}
		profile, err := topo.WireOf([]topo.Edge{arc0, arc1})
		if err != nil {
			return err
		}
		shell, err = b.RsweepWire(profile, la.Vector{0, 0, 0}, la.Vector{0, 0, 1}, 2*math.Pi)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	return d, shell
}

func TestRsweepWireBuildsClosedTorusShell(t *testing.T) {
	chk.PrintTitle("builder: rsweep_wire of a full turn closes a torus shell")
	d, shell := rsweepTorus(t)
	if bounds := shell.ExtractBoundaries(); len(bounds) != 0 {
		t.Fatalf("expected a fully closed torus shell, got %d boundary wires", len(bounds))
	}
	if err := d.CheckIntegrity(shell.Faces()); err != nil {
		t.Fatalf("CheckIntegrity: %v", err)
	}
}

// ngonWire builds a regular N-gon in the xy plane, centered at the
// origin with circumradius 1.
func ngonWire(b *Builder, n int) (topo.Wire, error) {
	verts := make([]topo.Vertex, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		v, err := b.Vertex(la.Vector{math.Cos(theta), math.Sin(theta), 0})
		if err != nil {
			return topo.Wire{}, err
		}
		verts[i] = v
	}
	edges := make([]topo.Edge, n)
	for i := 0; i < n; i++ {
		e, err := b.Line(verts[i], verts[(i+1)%n])
		if err != nil {
			return topo.Wire{}, err
		}
		edges[i] = e
	}
	return topo.WireOf(edges)
}

// solidEdgeAndVertexCounts counts the distinct edges and vertices
// reachable from a solid's faces, since neither Shell nor Solid
// exposes a flat edge/vertex list directly.
func solidEdgeAndVertexCounts(solid topo.Solid) (edges, vertices int) {
	edgeSeen := make(map[topo.ID]bool)
	vertexSeen := make(map[topo.ID]bool)
	for _, sh := range solid.Shells() {
		for _, f := range sh.Faces() {
			for _, e := range f.BoundaryEdges() {
				edgeSeen[e.ID()] = true
				vertexSeen[e.Front().ID()] = true
				vertexSeen[e.Back().ID()] = true
			}
		}
	}
	return len(edgeSeen), len(vertexSeen)
}

func TestNgonPrismHasExpectedCounts(t *testing.T) {
	chk.PrintTitle("builder: N-gon prism has N+2 faces, 3N edges, 2N vertices")
	for n := 3; n <= 8; n++ {
		d := New()
		var solid topo.Solid
		err := d.Building(func(b *Builder) error {
			w, err := ngonWire(b, n)
			if err != nil {
				return err
			}
			f, err := b.Plane(w)
			if err != nil {
				return err
			}
			solid, err = b.TsweepFace(f, la.Vector{0, 0, 1})
			return err
		})
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		sh := solid.Shells()[0]
		if sh.Len() != n+2 {
			t.Fatalf("n=%d: expected %d faces, got %d", n, n+2, sh.Len())
		}
		edges, vertices := solidEdgeAndVertexCounts(solid)
		if edges != 3*n {
			t.Fatalf("n=%d: expected %d edges, got %d", n, 3*n, edges)
		}
		if vertices != 2*n {
			t.Fatalf("n=%d: expected %d vertices, got %d", n, 2*n, vertices)
		}
		if err := d.CheckIntegrity(sh.Faces()); err != nil {
			t.Fatalf("n=%d: CheckIntegrity: %v", n, err)
		}
	}
}

func TestHomotopyClosedOpenMismatchReturnsDifferentHomotopyType(t *testing.T) {
	chk.PrintTitle("builder: homotopy(closed, open) fails with DifferentHomotopyType")
	d := New()
	err := d.Building(func(b *Builder) error {
		w, err := ngonWire(b, 4)
		if err != nil {
			return err
		}
		v0, err := b.Vertex(la.Vector{5, 0, 0})
		if err != nil {
			return err
		}
		v1, err := b.Vertex(la.Vector{5, 1, 0})
		if err != nil {
			return err
		}
		e, err := b.Line(v0, v1)
		if err != nil {
			return err
		}
		_, err = b.Homotopy(WireElement{Wire: w}, EdgeElement{Edge: e})
		return err
	})
	if !errors.Is(err, kerr.Sentinel(kerr.DifferentHomotopyType)) {
		t.Fatalf("expected DifferentHomotopyType, got %v", err)
	}
}

func TestRsweepRejectsZeroAngle(t *testing.T) {
	chk.PrintTitle("builder: rsweep rejects a zero rotation angle")
	d := New()
	err := d.Building(func(b *Builder) error {
		v0, err := b.Vertex(la.Vector{1, 0, 0})
		if err != nil {
			return err
		}
		v1, err := b.Vertex(la.Vector{0, 1, 0})
		if err != nil {
			return err
		}
		e, err := b.Line(v0, v1)
		if err != nil {
			return err
		}
		_, err = b.RsweepEdge(e, la.Vector{0, 0, 0}, la.Vector{0, 0, 1}, 0)
		return err
	})
	if err == nil {
		t.Fatal("expected an error sweeping by a zero angle")
	}
}
