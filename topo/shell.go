package topo

// Shell is a connected collection of faces forming (or partially
// forming) the boundary of a solid. Shell itself carries no manifold
// or orientability guarantee; those are validated by TryNewSolid.
type Shell struct {
	id    ID
	faces []Face
}

// NewShell returns an empty shell with the given identity.
func NewShell(id ID) Shell { return Shell{id: id} }

// ID returns the shell's identity.
func (s Shell) ID() ID { return s.id }

// Push appends a face to the shell.
func (s *Shell) Push(f Face) { s.faces = append(s.faces, f) }

// Faces returns the shell's faces. The returned slice aliases the
// shell's storage and must not be mutated by the caller.
func (s Shell) Faces() []Face { return s.faces }

// Len returns the number of faces in the shell.
func (s Shell) Len() int { return len(s.faces) }

// ExtractBoundaries walks every face's boundary edges and returns the
// wires formed by edges that occur exactly once across the whole
// shell (an edge occurring twice, once per adjoining face, is
// interior and not part of the shell's outer boundary). A fully
// closed shell yields no boundaries.
func (s Shell) ExtractBoundaries() []Wire {
	type occurrence struct {
		edge  Edge
		count int
	}
	occ := make(map[*edgeData]*occurrence)
	for _, f := range s.faces {
		for _, e := range f.BoundaryEdges() {
			o, ok := occ[e.data]
			if !ok {
				occ[e.data] = &occurrence{edge: e, count: 1}
				continue
			}
			o.count++
		}
	}
	var loose []Edge
	for _, o := range occ {
		if o.count == 1 {
			loose = append(loose, o.edge)
		}
	}
	return chainEdgesIntoWires(loose)
}

// chainEdgesIntoWires greedily assembles wires from an unordered set
// of edges by matching each wire's back vertex to an unused edge's
// front vertex, starting a new wire whenever none matches.
func chainEdgesIntoWires(edges []Edge) []Wire {
	remaining := make([]Edge, len(edges))
	copy(remaining, edges)
	var wires []Wire
	for len(remaining) > 0 {
		var w Wire
		w.PushBack(remaining[0])
		remaining = remaining[1:]
		progressed := true
		for progressed && !w.IsClosed() {
			progressed = false
			back, ok := w.BackVertex()
			if !ok {
				break
			}
			for i, e := range remaining {
				if e.Front().ID() == back.ID() {
					w.PushBack(e)
					remaining = append(remaining[:i], remaining[i+1:]...)
					progressed = true
					break
				}
			}
		}
		wires = append(wires, w)
	}
	return wires
}
