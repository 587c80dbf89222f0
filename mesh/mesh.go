// Package mesh implements FaceTessellator (C6, spec.md §4.6): turning
// a Face's bound surface and boundary into the structured triangle
// mesh plus the parameter-space boundary polyline that a renderer
// needs to fragment-discard trimmed regions (spec.md §6, "Downward to
// renderer").
package mesh

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/brep/binding"
	"github.com/cpmech/brep/bspline"
	"github.com/cpmech/brep/kerr"
	"github.com/cpmech/brep/topo"
)

// Policy resolves spec.md §9's open question about a face that fails
// tessellation mid-batch (the Rust source's IntoInstance unwrap):
// either drop that one face and keep going, or fail the whole batch.
type Policy int

const (
	// SkipFace omits a face that fails to tessellate and continues
	// with the rest of the batch.
	SkipFace Policy = iota
	// FailInstance aborts the whole Meshing call on the first
	// tessellation failure.
	FailInstance
)

// FaceMesh is one face's tessellation result: a structured triangle
// mesh in the vertex layout spec.md §6 hands to the renderer
// (position/normal/uv per vertex, u32 triangle indices) plus its
// parameter-space boundary segments for the even-odd fragment test.
type FaceMesh struct {
	FaceID topo.ID

	// Positions, Normals are Euclidean (3-component) per vertex; UVs
	// is the corresponding (u,v) the vertex was sampled at.
	Positions []la.Vector
	Normals   []la.Vector
	UVs       [][2]float64

	// Indices is a flat triangle list (three entries per triangle),
	// two triangles per cell of the sampled grid (spec.md §4.6,
	// bullet 1).
	Indices []uint32

	// BoundarySegments is the flat [u0,v0,u1,v1] buffer spec.md §4.6
	// bullet 2 and §6 describe; BoundarySegmentCount is its entry
	// count (the uniform a renderer binds alongside it).
	BoundarySegments     [][4]float32
	BoundarySegmentCount uint32
}

// Mesher is the read-only session that produces FaceMesh buffers from
// a Binding (spec.md §6, "director.get_mesher()"). It never mutates
// the binding and is safe to use concurrently across distinct faces
// once no Building session is active (spec.md §5).
type Mesher struct {
	binding *binding.Binding
	tol     float64
	maxIter int
}

// NewMesher binds a Mesher to b, using tol as the default inverse-
// search convergence tolerance and maxIter as the Newton iteration
// cap (mirrors Director.Config's Tolerance/MaxNewtonIterations).
func NewMesher(b *binding.Binding, tol float64, maxIter int) *Mesher {
	return &Mesher{binding: b, tol: tol, maxIter: maxIter}
}

// Tessellate builds the structured mesh and boundary polyline for a
// single face at the given chord tolerance (spec.md §4.6).
func (m *Mesher) Tessellate(f topo.Face, tol float64) (*FaceMesh, error) {
	surf, err := m.binding.OrientedSurface(f)
	if err != nil {
		return nil, kerr.New(kerr.NoGeometry, "mesh: face %d has no surface: %v", f.ID(), err)
	}
	fm := &FaceMesh{FaceID: f.ID()}
	fromSurface(surf, tol, fm)

	boundary, err := m.boundarySegments(surf, f.BoundaryEdges(), tol)
	if err != nil {
		return nil, err
	}
	fm.BoundarySegments = boundary
	fm.BoundarySegmentCount = uint32(len(boundary))
	return fm, nil
}

// Meshing tessellates every face of an element (a shell's or solid's
// face list) at the given tolerance, applying policy to any face that
// fails (spec.md §6, "director.get_mesher().meshing(&element, tol)").
func (m *Mesher) Meshing(faces []topo.Face, tol float64, policy Policy) ([]*FaceMesh, error) {
	out := make([]*FaceMesh, 0, len(faces))
	for _, f := range faces {
		fm, err := m.Tessellate(f, tol)
		if err != nil {
			if policy == FailInstance {
				return nil, err
			}
			continue
		}
		out = append(out, fm)
	}
	return out, nil
}

// fromSurface samples surf on the adaptive grid ParameterDivision
// returns and fills fm's structured-mesh fields (spec.md §4.6 bullet
// 1): position and normal at every grid node, plus the triangle list
// covering each grid cell.
func fromSurface(surf *bspline.Surface, tol float64, fm *FaceMesh) {
	udiv, vdiv := surf.ParameterDivision(tol)
	rows, cols := len(udiv), len(vdiv)
	n := rows * cols
	fm.Positions = make([]la.Vector, n)
	fm.Normals = make([]la.Vector, n)
	fm.UVs = make([][2]float64, n)

	index := func(i, j int) uint32 { return uint32(i*cols + j) }

	for i, u := range udiv {
		for j, v := range vdiv {
			k := index(i, j)
			fm.Positions[k] = bspline.Euclid(surf.Subs(u, v))
			du := bspline.Euclid3(surf.DerU(u, v))
			dv := bspline.Euclid3(surf.DerV(u, v))
			fm.Normals[k] = normalize3(cross3(du, dv))
			fm.UVs[k] = [2]float64{u, v}
		}
	}

	fm.Indices = make([]uint32, 0, (rows-1)*(cols-1)*6)
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			a, b, c, d := index(i, j), index(i+1, j), index(i, j+1), index(i+1, j+1)
			fm.Indices = append(fm.Indices, a, b, c, b, d, c)
		}
	}
}

// boundarySegments extracts the parameter-space boundary polyline
// (spec.md §4.6 bullet 2): for each edge, a chordal-error division of
// its curve is inverse-searched onto surf, seeded once per edge by a
// coarse presearch and propagated by SearchParameter across the rest
// of that edge's division points, matching truck-rendimpl's
// face_buffer construction.
func (m *Mesher) boundarySegments(surf *bspline.Surface, edges []topo.Edge, tol float64) ([][4]float32, error) {
	var segments [][4]float32
	for _, e := range edges {
		curve, err := m.binding.OrientedCurve(e)
		if err != nil {
			return nil, kerr.New(kerr.NoGeometry, "mesh: edge %d has no curve: %v", e.ID(), err)
		}
		division := curve.ParameterDivision(tol)
		hintU, hintV := bspline.Presearch(surf, bspline.Euclid(curve.Subs(division[0])))
		points := make([][2]float64, len(division))
		for i, t := range division {
			target := bspline.Euclid(curve.Subs(t))
			u, v, err := bspline.SearchParameter(surf, target, hintU, hintV, m.tol, m.maxIter)
			if err != nil {
				return nil, kerr.New(kerr.NotConverge, "mesh: boundary point at t=%v on edge %d: %v", t, e.ID(), err)
			}
			points[i] = [2]float64{u, v}
			hintU, hintV = u, v
		}
		for i := 0; i+1 < len(points); i++ {
			segments = append(segments, [4]float32{
				float32(points[i][0]), float32(points[i][1]),
				float32(points[i+1][0]), float32(points[i+1][1]),
			})
		}
	}
	return segments, nil
}

func cross3(a, b la.Vector) la.Vector {
	return la.Vector{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize3(v la.Vector) la.Vector {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n < 1e-300 {
		return la.Vector{0, 0, 0}
	}
	return la.Vector{v[0] / n, v[1] / n, v[2] / n}
}
