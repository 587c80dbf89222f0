// Package kerr defines the tagged error-kind union shared by every
// layer of the kernel (knot vectors, B-spline geometry, topology,
// geometry binding, and the builder). Every fallible operation in
// this module returns an error built with New, so callers can
// recover the discriminant with errors.As/Kind and still get a
// gofem-style formatted message via Error().
package kerr

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Kind is the discriminant of a kernel error, following spec.md §7.
type Kind int

const (
	// EmptyKnotVector: knot.FromSequence was given fewer than 2 knots.
	EmptyKnotVector Kind = iota
	// NotSortedVector: knot.FromSequence was given a non-monotone sequence.
	NotSortedVector
	// CannotAddEdge: wire.PushBack found an endpoint mismatch.
	CannotAddEdge
	// EmptyWire: topo.TryNewFace was given an empty wire.
	EmptyWire
	// NotClosedWire: topo.TryNewFace was given a wire that does not close.
	NotClosedWire
	// NoGeometry: a GeometryBinding lookup missed.
	NoGeometry
	// NotConverge: inverse search exceeded its iteration bound.
	NotConverge
	// DifferentHomotopyType: one operand closed, the other open.
	DifferentHomotopyType
	// NotManifold: a shell has an edge shared by more than two faces.
	NotManifold
	// NotOrientable: a shell's face orientations are inconsistent across a shared edge.
	NotOrientable
	// NotClosedShell: topo.TryNewSolid found an unpaired boundary edge.
	NotClosedShell
	// ZeroRange: a sweep was requested with a zero vector or zero angle.
	ZeroRange
	// IntegrityError: a post-hoc integrity check failed.
	IntegrityError
)

var names = map[Kind]string{
	EmptyKnotVector:       "EmptyKnotVector",
	NotSortedVector:       "NotSortedVector",
	CannotAddEdge:         "CannotAddEdge",
	EmptyWire:             "EmptyWire",
	NotClosedWire:         "NotClosedWire",
	NoGeometry:            "NoGeometry",
	NotConverge:           "NotConverge",
	DifferentHomotopyType: "DifferentHomotopyType",
	NotManifold:           "NotManifold",
	NotOrientable:         "NotOrientable",
	NotClosedShell:        "NotClosedShell",
	ZeroRange:             "ZeroRange",
	IntegrityError:        "IntegrityError",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "UnknownKind"
}

// Error is the concrete error type carrying a Kind plus a gofem-style
// formatted message built with chk.Err.
type Error struct {
	Kind Kind
	msg  string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.msg }

// Is lets errors.Is(err, kerr.Sentinel(kind)) match on Kind alone.
func (e *Error) Is(target error) bool {
	o, ok := target.(*Error)
	return ok && o.Kind == e.Kind
}

// New builds a kernel error of the given Kind with a chk-style
// formatted message (same convention as gofem's chk.Err call sites).
func New(kind Kind, format string, args ...interface{}) *Error {
	err := chk.Err(format, args...)
	return &Error{Kind: kind, msg: fmt.Sprintf("%s: %s", kind, err.Error())}
}

// Sentinel is a bare error of the given Kind carrying only the kind's
// name, for use with errors.Is comparisons in tests and callers that
// do not need a detailed message.
func Sentinel(kind Kind) *Error { return &Error{Kind: kind, msg: kind.String()} }
