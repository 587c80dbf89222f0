package topo

import "github.com/cpmech/brep/kerr"

// Wire is an ordered, connected chain of Edge: each edge's Front must
// equal the previous edge's Back (spec.md §3). A Wire with zero edges
// is valid but carries no endpoints.
type Wire struct {
	edges []Edge
}

// NewWire returns an empty Wire ready for PushBack.
func NewWire() Wire { return Wire{} }

// WireOf builds a Wire from a pre-chained slice of edges, checking
// connectivity exactly as repeated PushBack calls would.
func WireOf(edges []Edge) (Wire, error) {
	var w Wire
	for _, e := range edges {
		if err := w.PushBack(e); err != nil {
			return Wire{}, err
		}
	}
	return w, nil
}

// Len returns the number of edges in the wire.
func (w Wire) Len() int { return len(w.edges) }

// Edges returns the wire's edges in order. The returned slice aliases
// the wire's storage and must not be mutated by the caller.
func (w Wire) Edges() []Edge { return w.edges }

// FrontVertex returns the start vertex of the first edge, if any.
func (w Wire) FrontVertex() (Vertex, bool) {
	if len(w.edges) == 0 {
		return Vertex{}, false
	}
	return w.edges[0].Front(), true
}

// BackVertex returns the end vertex of the last edge, if any.
func (w Wire) BackVertex() (Vertex, bool) {
	if len(w.edges) == 0 {
		return Vertex{}, false
	}
	return w.edges[len(w.edges)-1].Back(), true
}

// IsClosed reports whether the wire is non-empty and its back vertex
// coincides with its front vertex.
func (w Wire) IsClosed() bool {
	front, ok := w.FrontVertex()
	if !ok {
		return false
	}
	back, _ := w.BackVertex()
	return front.ID() == back.ID()
}

// PushBack appends e to the wire, requiring e.Front() to equal the
// wire's current back vertex (or accepting any edge if the wire is
// still empty). Returns kerr.CannotAddEdge on mismatch.
func (w *Wire) PushBack(e Edge) error {
	if back, ok := w.BackVertex(); ok && back.ID() != e.Front().ID() {
		return kerr.New(kerr.CannotAddEdge, "wire back vertex %d does not match edge front vertex %d", back.ID(), e.Front().ID())
	}
	w.edges = append(w.edges, e)
	return nil
}

// Append joins other onto the end of w, requiring w's back vertex to
// match other's front vertex. An empty w or other is accepted.
func (w *Wire) Append(other Wire) error {
	for _, e := range other.edges {
		if err := w.PushBack(e); err != nil {
			return err
		}
	}
	return nil
}

// Inverse returns a new wire traversing the same edges in reverse
// order, each with its orientation flipped.
func (w Wire) Inverse() Wire {
	out := make([]Edge, len(w.edges))
	n := len(w.edges)
	for i, e := range w.edges {
		out[n-1-i] = e.Inverse()
	}
	return Wire{edges: out}
}

// Clone returns a wire with an independent backing slice but the same
// edge identities.
func (w Wire) Clone() Wire {
	out := make([]Edge, len(w.edges))
	copy(out, w.edges)
	return Wire{edges: out}
}

// SplitOff truncates w to its first k edges and returns the remaining
// edges as a new Wire, mirroring the split_wire operation used by
// homotopy to separate an already-consumed prefix from what remains
// (spec.md §5, curve_element.rs).
func (w *Wire) SplitOff(k int) Wire {
	tail := make([]Edge, len(w.edges)-k)
	copy(tail, w.edges[k:])
	w.edges = w.edges[:k]
	return Wire{edges: tail}
}

// ForEach calls f with every edge in order, stopping early if f
// returns false.
func (w Wire) ForEach(f func(Edge) bool) {
	for _, e := range w.edges {
		if !f(e) {
			return
		}
	}
}
