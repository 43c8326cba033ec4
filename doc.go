// Package posets implements finite partially ordered sets and lattices
// as first-class values.
//
// A Poset is built from an element set together with either an explicit
// relation or a cover (Hasse diagram) relation; the transitive closure
// is materialized at construction and antisymmetry is validated while
// closing, so every later order query is a constant-time lookup on an
// internally consistent structure.
//
//	p, err := posets.FromCoverRelations([]string{"0", "a", "b", "1"},
//	    []posets.Pair[string]{{"0", "a"}, {"0", "b"}, {"a", "1"}, {"b", "1"}})
//
// A Lattice additionally verifies, eagerly and exhaustively, that every
// pair of elements has a unique meet and join; the verification pass
// fills the meet/join memo tables, making later algebra queries
// constant-time as well. BoundedLattice also requires a unique top and
// bottom at construction.
//
//	l, err := posets.LatticeFromCoverRelations(elements, covers)
//	m, err := l.Meet(posets.Val("a"), posets.Val("b"))
//
// Member values can be wrapped into Element handles bound to their
// owning structure. Handles memoize operation results privately,
// support custom hashes, and enforce the cross-structure compatibility
// protocol: ordering queries against an unrelated structure answer
// false, while meet and join fail with *IncompatibleStructureError
// unless one structure is a proven sublattice of the other.
//
// The hasse subpackage holds the pure diagram algorithms (transitive
// closure and reduction, linear extension, lattice detection) consumed
// by external renderers and serializers.
package posets
