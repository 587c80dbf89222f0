package topo

import "github.com/cpmech/brep/kerr"

// faceData is the orientation-independent state of a face: its
// identity and a single closed boundary wire. Faces with inner holes
// are not constructed by any Builder operation in this kernel and are
// accordingly not represented here.
type faceData struct {
	id       ID
	boundary Wire
}

// Face is a single closed boundary loop plus an orientation bit that
// flips which side of the underlying surface is "outward" (spec.md §3).
type Face struct {
	data     *faceData
	inverted bool
}

// TryNewFace builds a Face from a boundary wire, requiring it to be
// non-empty and closed.
func TryNewFace(id ID, boundary Wire) (Face, error) {
	if boundary.Len() == 0 {
		return Face{}, kerr.New(kerr.EmptyWire, "face %d: boundary wire has no edges", id)
	}
	if !boundary.IsClosed() {
		return Face{}, kerr.New(kerr.NotClosedWire, "face %d: boundary wire does not close", id)
	}
	return Face{data: &faceData{id: id, boundary: boundary}}, nil
}

// ID returns the face's identity, independent of orientation.
func (f Face) ID() ID { return f.data.id }

// Inverted reports whether this reference to the face is flipped
// relative to its construction orientation.
func (f Face) Inverted() bool { return f.inverted }

// Inverse returns the same identity with the orientation bit flipped.
func (f Face) Inverse() Face { return Face{data: f.data, inverted: !f.inverted} }

// Boundary returns the face's boundary wire in its forward
// (construction-time) orientation, regardless of f.Inverted.
func (f Face) Boundary() Wire { return f.data.boundary }

// BoundaryEdges returns the face's boundary edges, traversed and
// oriented consistently with the face's current orientation: if the
// face is inverted, the loop is walked backward with each edge
// flipped, so the boundary remains a closed, consistently-oriented wire.
func (f Face) BoundaryEdges() []Edge {
	edges := f.data.boundary.Edges()
	if !f.inverted {
		out := make([]Edge, len(edges))
		copy(out, edges)
		return out
	}
	out := make([]Edge, len(edges))
	n := len(edges)
	for i, e := range edges {
		out[n-1-i] = e.Inverse()
	}
	return out
}
