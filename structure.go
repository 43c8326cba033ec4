package posets

import "iter"

// Structure is the capability surface every ordered structure exposes
// to element handles and external collaborators.
type Structure[T comparable] interface {
	Has(x T) bool
	Le(x, y T) (bool, error)
	Lt(x, y T) (bool, error)
	Ge(x, y T) (bool, error)
	Gt(x, y T) (bool, error)
	IsComparable(x, y T) (bool, error)
	Elements() iter.Seq[T]
	UpperCovers(x T) ([]T, error)
	LowerCovers(x T) ([]T, error)
}

// Algebra extends Structure with the lattice operations. Compatibility
// between handles from different structures is decided through
// IsSublatticeOf, as a direct call rather than reflection: a structure
// that does not implement Algebra can never be proven compatible.
type Algebra[T comparable] interface {
	Structure[T]
	Meet(x, y Operand[T]) (T, error)
	Join(x, y Operand[T]) (T, error)
	Top() (T, error)
	Bottom() (T, error)
	IsSublatticeOf(other Algebra[T]) bool
}

var (
	_ Structure[int] = (*Poset[int])(nil)
	_ Algebra[int]   = (*Lattice[int])(nil)
	_ Algebra[int]   = (*BoundedLattice[int])(nil)
)
