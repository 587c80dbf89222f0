package topo

import "github.com/cpmech/brep/kerr"

// Solid is one or more shells bounding a region of space. TryNewSolid is
// the only constructor and is where manifoldness, closure and
// orientability are enforced (spec.md §3, §4.3).
type Solid struct {
	id     ID
	shells []Shell
}

// ID returns the solid's identity.
func (s Solid) ID() ID { return s.id }

// Shells returns the solid's shells.
func (s Solid) Shells() []Shell { return s.shells }

type edgeUse struct {
	edge       Edge
	uses       int
	sawForward bool
	sawReverse bool
}

// TryNewSolid validates shells and, on success, returns a Solid.
//
// An edge used by more than two faces across the solid makes it
// NotManifold. Any edge used by exactly one face leaves the solid
// NotClosedShell. An edge used by exactly two faces must appear once
// in each orientation; if both uses agree in orientation the solid is
// NotOrientable (the two adjoining faces would agree on which side is
// outward, which is inconsistent for a closed boundary).
func TryNewSolid(id ID, shells []Shell) (Solid, error) {
	uses := make(map[*edgeData]*edgeUse)
	for _, sh := range shells {
		for _, f := range sh.Faces() {
			for _, e := range f.BoundaryEdges() {
				u, ok := uses[e.data]
				if !ok {
					u = &edgeUse{edge: e}
					uses[e.data] = u
				}
				u.uses++
				if e.Inverted() {
					u.sawReverse = true
				} else {
					u.sawForward = true
				}
			}
		}
	}
	for _, u := range uses {
		switch {
		case u.uses > 2:
			return Solid{}, kerr.New(kerr.NotManifold, "solid %d: edge %d used by %d faces", id, u.edge.ID(), u.uses)
		case u.uses == 1:
			return Solid{}, kerr.New(kerr.NotClosedShell, "solid %d: edge %d has an unpaired boundary use", id, u.edge.ID())
		case u.uses == 2 && !(u.sawForward && u.sawReverse):
			return Solid{}, kerr.New(kerr.NotOrientable, "solid %d: edge %d used twice with the same orientation", id, u.edge.ID())
		}
	}
	return Solid{id: id, shells: shells}, nil
}
