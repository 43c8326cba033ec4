package posets

// BoundedLattice is a lattice with a unique top and bottom element,
// verified at construction rather than on first access.
type BoundedLattice[T comparable] struct {
	*Lattice[T]
}

// BoundedFromRelation builds a lattice from relation pairs and verifies
// that both bounds exist, failing with *AmbiguousBoundError otherwise.
func BoundedFromRelation[T comparable](elements []T, pairs []Pair[T]) (*BoundedLattice[T], error) {
	l, err := LatticeFromRelation(elements, pairs)
	if err != nil {
		return nil, err
	}
	return newBounded(l)
}

// BoundedFromCoverRelations is the cover-relation variant of
// BoundedFromRelation.
func BoundedFromCoverRelations[T comparable](elements []T, covers []Pair[T]) (*BoundedLattice[T], error) {
	l, err := LatticeFromCoverRelations(elements, covers)
	if err != nil {
		return nil, err
	}
	return newBounded(l)
}

func newBounded[T comparable](l *Lattice[T]) (*BoundedLattice[T], error) {
	if _, err := l.Top(); err != nil {
		return nil, err
	}
	if _, err := l.Bottom(); err != nil {
		return nil, err
	}
	return &BoundedLattice[T]{l}, nil
}

// Dual returns the bounded lattice with the order reversed; top and
// bottom trade places.
func (b *BoundedLattice[T]) Dual() *BoundedLattice[T] {
	return &BoundedLattice[T]{b.Lattice.Dual()}
}

// IsComplemented reports whether every element has a complement.
func (b *BoundedLattice[T]) IsComplemented() bool {
	for _, x := range b.elements {
		if _, ok, err := b.Complement(Val(x)); err != nil || !ok {
			return false
		}
	}
	return true
}

func (b *BoundedLattice[T]) String() string {
	return b.describe("bounded lattice")
}
