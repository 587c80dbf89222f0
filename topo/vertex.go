package topo

// Vertex carries identity only; its associated point is looked up in
// package binding by Vertex identity (spec.md §3).
type Vertex struct {
	id ID
}

// NewVertex wraps id as a Vertex. Called by the Builder session,
// which owns the identity counter.
func NewVertex(id ID) Vertex { return Vertex{id: id} }

// ID returns the vertex's stable identity.
func (v Vertex) ID() ID { return v.id }
