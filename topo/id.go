// Package topo implements the topological B-rep graph (spec.md §3,
// §4.3): Vertex, Edge, Wire, Face, Shell and Solid, with orientation
// carried as a bit alongside a stable identity. Identity is shared
// and reference-like; geometry is looked up separately in package
// binding, keyed by these identities.
package topo

// ID is a stable, monotonically-allocated topological identity.
// Identities are allocated from a counter owned by the Builder
// session (spec.md §5); topo itself never mints identities, only
// wraps the ones it is given.
type ID uint64
