package posets

import (
	"maps"
	"slices"

	"github.com/benbjohnson/immutable"

	"github.com/eric-downes/posets/utils"
)

// pairKey canonicalizes an unordered element pair by index, lo ≤ hi.
// Meet and join are commutative, so one table entry serves both
// argument orders.
type pairKey struct {
	lo, hi int
}

func (k pairKey) Hash() uint32 {
	return utils.HashCombine(uint32(k.lo), uint32(k.hi))
}

func (k pairKey) Equal(o pairKey) bool {
	return k == o
}

// Lattice is a finite poset in which every pair of elements has a
// unique meet and join. The property is verified exhaustively at
// construction, so a live Lattice is always safe to query; the
// verification pass doubles as the population of the meet/join memo
// tables, which are immutable afterwards and therefore safe for
// concurrent reads.
type Lattice[T comparable] struct {
	*Poset[T]

	meets *immutable.Map[pairKey, T]
	joins *immutable.Map[pairKey, T]

	// Default hash for handles created afterwards. Reassignable; the
	// only mutable state besides handle caches.
	hashFn func(T) uint32
}

// LatticeFromRelation builds a poset from the given relation pairs and
// verifies the lattice property, failing with *NotALatticeError naming
// the first offending pair.
func LatticeFromRelation[T comparable](elements []T, pairs []Pair[T]) (*Lattice[T], error) {
	p, err := FromRelation(elements, pairs)
	if err != nil {
		return nil, err
	}
	return newLattice(p)
}

// LatticeFromCoverRelations is the cover-relation variant of
// LatticeFromRelation.
func LatticeFromCoverRelations[T comparable](elements []T, covers []Pair[T]) (*Lattice[T], error) {
	p, err := FromCoverRelations(elements, covers)
	if err != nil {
		return nil, err
	}
	return newLattice(p)
}

func newLattice[T comparable](p *Poset[T]) (*Lattice[T], error) {
	l := &Lattice[T]{Poset: p}
	if err := l.verify(); err != nil {
		return nil, err
	}
	return l, nil
}

// verify checks meet/join existence for every unordered pair and fills
// the memo tables.
func (l *Lattice[T]) verify() error {
	n := len(l.elements)
	hasher := utils.HashableHasher[pairKey]()
	mb := immutable.NewMapBuilder[pairKey, T](hasher)
	jb := immutable.NewMapBuilder[pairKey, T](hasher)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			m, ok := l.bound(i, j, true)
			if !ok {
				return &NotALatticeError{l.elements[i], l.elements[j], "meet"}
			}
			jn, ok := l.bound(i, j, false)
			if !ok {
				return &NotALatticeError{l.elements[i], l.elements[j], "join"}
			}
			mb.Set(pairKey{i, j}, l.elements[m])
			jb.Set(pairKey{i, j}, l.elements[jn])
		}
	}
	l.meets = mb.Map()
	l.joins = jb.Map()
	return nil
}

// bound finds the unique extremum of the common lower (lower = true) or
// upper bound set of elements i and j. It scans the bound set linearly,
// keeping a running candidate, then keeps the candidate only if every
// bound compares against it; uniqueness then follows from antisymmetry.
func (l *Lattice[T]) bound(i, j int, lower bool) (int, bool) {
	n := len(l.elements)
	in := func(k int) bool {
		if lower {
			return l.rel[k][i] && l.rel[k][j]
		}
		return l.rel[i][k] && l.rel[j][k]
	}
	// For lower bounds the extremum is the greatest, so "a yields to b"
	// means a ≤ b; for upper bounds it is the least, so b ≤ a.
	yields := func(a, b int) bool {
		if lower {
			return l.rel[a][b]
		}
		return l.rel[b][a]
	}
	cand, found := 0, false
	for k := 0; k < n; k++ {
		if !in(k) {
			continue
		}
		if !found || yields(cand, k) {
			cand, found = k, true
		}
	}
	if !found {
		return 0, false
	}
	for k := 0; k < n; k++ {
		if in(k) && !yields(k, cand) {
			return 0, false
		}
	}
	return cand, true
}

// lookup resolves both operands to member indices and reads the memo
// table. Handles are unwrapped to their raw values first; foreign
// values fail with *MembershipError.
func (l *Lattice[T]) lookup(x, y Operand[T], memo *immutable.Map[pairKey, T]) (T, error) {
	var zero T
	xv, _ := x.operand()
	yv, _ := y.operand()
	i, err := l.at(xv)
	if err != nil {
		return zero, err
	}
	j, err := l.at(yv)
	if err != nil {
		return zero, err
	}
	if j < i {
		i, j = j, i
	}
	v, _ := memo.Get(pairKey{i, j})
	return v, nil
}

// Meet returns the greatest lower bound of x and y.
func (l *Lattice[T]) Meet(x, y Operand[T]) (T, error) {
	return l.lookup(x, y, l.meets)
}

// Join returns the least upper bound of x and y.
func (l *Lattice[T]) Join(x, y Operand[T]) (T, error) {
	return l.lookup(x, y, l.joins)
}

// meetAt and joinAt read the memo tables by index, skipping membership
// checks.
func (l *Lattice[T]) meetAt(i, j int) T {
	if j < i {
		i, j = j, i
	}
	v, _ := l.meets.Get(pairKey{i, j})
	return v
}

func (l *Lattice[T]) joinAt(i, j int) T {
	if j < i {
		i, j = j, i
	}
	v, _ := l.joins.Get(pairKey{i, j})
	return v
}

// Infimum folds Meet over the given operands. An empty sequence has no
// bound: it yields ok == false and no error.
func (l *Lattice[T]) Infimum(xs ...Operand[T]) (T, bool, error) {
	return l.fold(l.meets, xs)
}

// Supremum folds Join over the given operands. An empty sequence has no
// bound: it yields ok == false and no error.
func (l *Lattice[T]) Supremum(xs ...Operand[T]) (T, bool, error) {
	return l.fold(l.joins, xs)
}

func (l *Lattice[T]) fold(memo *immutable.Map[pairKey, T], xs []Operand[T]) (T, bool, error) {
	var zero T
	if len(xs) == 0 {
		return zero, false, nil
	}
	acc, _ := xs[0].operand()
	if _, err := l.at(acc); err != nil {
		return zero, false, err
	}
	for _, x := range xs[1:] {
		v, err := l.lookup(Val(acc), x, memo)
		if err != nil {
			return zero, false, err
		}
		acc = v
	}
	return acc, true, nil
}

// Top returns the unique maximal element, failing with
// *AmbiguousBoundError if it does not exist.
func (l *Lattice[T]) Top() (T, error) {
	return l.uniqueBound(l.MaximalElements(), "top")
}

// Bottom returns the unique minimal element, failing with
// *AmbiguousBoundError if it does not exist.
func (l *Lattice[T]) Bottom() (T, error) {
	return l.uniqueBound(l.MinimalElements(), "bottom")
}

func (l *Lattice[T]) uniqueBound(seq func(func(T) bool), kind string) (T, error) {
	var zero T
	found := []T{}
	for x := range seq {
		found = append(found, x)
	}
	if len(found) != 1 {
		return zero, &AmbiguousBoundError{Bound: kind, Count: len(found)}
	}
	return found[0], nil
}

// Complement searches for a y with meet(x, y) = bottom and
// join(x, y) = top. ok is false when no such element exists.
func (l *Lattice[T]) Complement(x Operand[T]) (T, bool, error) {
	var zero T
	xv, _ := x.operand()
	i, err := l.at(xv)
	if err != nil {
		return zero, false, err
	}
	bot, err := l.Bottom()
	if err != nil {
		return zero, false, err
	}
	top, err := l.Top()
	if err != nil {
		return zero, false, err
	}
	for j, y := range l.elements {
		if l.meetAt(i, j) == bot && l.joinAt(i, j) == top {
			return y, true, nil
		}
	}
	return zero, false, nil
}

// Dual returns the lattice over the same elements with every ordered
// pair reversed. The meet and join of the dual are exactly the join and
// meet of the original, so the already-verified memo tables are reused
// with their roles swapped.
func (l *Lattice[T]) Dual() *Lattice[T] {
	return &Lattice[T]{
		Poset: &Poset[T]{
			elements: slices.Clone(l.elements),
			index:    maps.Clone(l.index),
			rel:      transpose(l.rel),
			covers:   transpose(l.covers),
		},
		meets: l.joins,
		joins: l.meets,
	}
}

func transpose(m [][]bool) [][]bool {
	n := len(m)
	out := make([][]bool, n)
	for i := range out {
		out[i] = make([]bool, n)
		for j := range out[i] {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// IsSublatticeOf reports whether this lattice's elements are a subset
// of other's and meet/join agree with other's on every pair. Any
// mismatch, missing element or query failure yields false, never an
// error.
func (l *Lattice[T]) IsSublatticeOf(other Algebra[T]) bool {
	for _, x := range l.elements {
		if !other.Has(x) {
			return false
		}
	}
	n := len(l.elements)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			x, y := Val(l.elements[i]), Val(l.elements[j])
			om, err := other.Meet(x, y)
			if err != nil || om != l.meetAt(i, j) {
				return false
			}
			oj, err := other.Join(x, y)
			if err != nil || oj != l.joinAt(i, j) {
				return false
			}
		}
	}
	return true
}

// Element wraps a member value in a handle bound to this lattice, using
// the lattice's current default hash function, if any.
func (l *Lattice[T]) Element(x T) (*Element[T], error) {
	return newElement[T](l, x, l.hashFn)
}

// ElementWithHash wraps a member value in a handle with a custom hash
// function; the hash is precomputed at creation.
func (l *Lattice[T]) ElementWithHash(x T, fn func(T) uint32) (*Element[T], error) {
	return newElement[T](l, x, fn)
}

// SetHashFunc reassigns the default hash function used by handles
// created afterwards. Existing handles are unaffected.
func (l *Lattice[T]) SetHashFunc(fn func(T) uint32) {
	l.hashFn = fn
}

func (l *Lattice[T]) String() string {
	return l.describe("lattice")
}
