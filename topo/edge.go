package topo

// edgeData is the shared, orientation-independent state of an edge:
// its identity and its two endpoints in the edge's forward direction.
type edgeData struct {
	id          ID
	front, back Vertex
}

// Edge is an ordered pair (front, back) of Vertex plus an orientation
// bit. Edge.Inverse() returns the same identity with the bit flipped
// (spec.md §3): inverting never allocates a new identity.
type Edge struct {
	data     *edgeData
	inverted bool
}

// NewEdge builds a fresh Edge with forward orientation from front to back.
func NewEdge(id ID, front, back Vertex) Edge {
	return Edge{data: &edgeData{id: id, front: front, back: back}}
}

// ID returns the edge's identity, independent of orientation.
func (e Edge) ID() ID { return e.data.id }

// Front returns the edge's start vertex in its current orientation.
func (e Edge) Front() Vertex {
	if e.inverted {
		return e.data.back
	}
	return e.data.front
}

// Back returns the edge's end vertex in its current orientation.
func (e Edge) Back() Vertex {
	if e.inverted {
		return e.data.front
	}
	return e.data.back
}

// Inverted reports whether this reference to the edge is flipped
// relative to the edge's original construction direction.
func (e Edge) Inverted() bool { return e.inverted }

// Inverse returns the same identity with the orientation bit flipped.
func (e Edge) Inverse() Edge { return Edge{data: e.data, inverted: !e.inverted} }

// SameEdge reports whether two Edge values refer to the same
// identity, regardless of orientation (spec.md §3: "Equality of
// identity is independent of orientation").
func (e Edge) SameEdge(other Edge) bool { return e.data == other.data }
