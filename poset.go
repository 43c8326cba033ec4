package posets

import (
	"fmt"
	"iter"
	"strings"
)

// Pair is an ordered pair (X, Y) of a relation, read as X ≤ Y (or, for
// cover relations, Y covers X).
type Pair[T comparable] struct {
	X, Y T
}

// Poset is a finite partially ordered set. The order relation is stored
// fully transitively closed, so every comparability query is a constant
// time lookup, and the cover relation (Hasse diagram edges) is derived
// once at construction.
//
// A Poset is immutable after construction.
type Poset[T comparable] struct {
	elements []T
	index    map[T]int
	rel      [][]bool // transitive closure, rel[i][j] ⇔ elements[i] ≤ elements[j]
	covers   [][]bool // transitive reduction
}

// FromRelation constructs a poset from an element set and a list of
// related pairs. The pairs need not include reflexive or transitive
// entries; the full closure is computed with a fixpoint over pairwise
// compositions. Duplicate elements are dropped, preserving first-seen
// order. Fails with *RelationError if the closed relation violates
// antisymmetry, and with *MembershipError if a pair names an element
// outside the element set.
func FromRelation[T comparable](elements []T, pairs []Pair[T]) (*Poset[T], error) {
	p := newPoset(elements)
	for _, pr := range pairs {
		i, ok := p.index[pr.X]
		if !ok {
			return nil, &MembershipError{pr.X}
		}
		j, ok := p.index[pr.Y]
		if !ok {
			return nil, &MembershipError{pr.Y}
		}
		p.rel[i][j] = true
	}
	if err := p.close(); err != nil {
		return nil, err
	}
	p.reduce()
	return p, nil
}

// FromCoverRelations constructs a poset from an element set and its
// cover relation: every pair (x, y) reachable through a cover path
// becomes related. This is the canonical reconstruction entry point for
// the compact Hasse-diagram representation.
func FromCoverRelations[T comparable](elements []T, covers []Pair[T]) (*Poset[T], error) {
	return FromRelation(elements, covers)
}

func newPoset[T comparable](elements []T) *Poset[T] {
	p := &Poset[T]{index: make(map[T]int, len(elements))}
	for _, x := range elements {
		if _, seen := p.index[x]; seen {
			continue
		}
		p.index[x] = len(p.elements)
		p.elements = append(p.elements, x)
	}
	n := len(p.elements)
	p.rel = make([][]bool, n)
	for i := range p.rel {
		p.rel[i] = make([]bool, n)
		p.rel[i][i] = true
	}
	return p
}

// close computes the transitive closure in place and validates
// antisymmetry. Closing an already-closed relation changes nothing.
func (p *Poset[T]) close() error {
	n := len(p.elements)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !p.rel[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if p.rel[k][j] {
					p.rel[i][j] = true
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p.rel[i][j] && p.rel[j][i] {
				return &RelationError{p.elements[i], p.elements[j]}
			}
		}
	}
	return nil
}

// reduce derives the cover relation: a related pair (x, y) is a cover
// unless some intermediate z satisfies x < z < y.
func (p *Poset[T]) reduce() {
	n := len(p.elements)
	p.covers = make([][]bool, n)
	for i := range p.covers {
		p.covers[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || !p.rel[i][j] {
				continue
			}
			direct := true
			for k := 0; k < n && direct; k++ {
				if k != i && k != j && p.rel[i][k] && p.rel[k][j] {
					direct = false
				}
			}
			p.covers[i][j] = direct
		}
	}
}

// at resolves an element to its index, failing with *MembershipError
// for foreign values.
func (p *Poset[T]) at(x T) (int, error) {
	i, ok := p.index[x]
	if !ok {
		return 0, &MembershipError{x}
	}
	return i, nil
}

// leq skips membership checking. Only use with indices obtained from at.
func (p *Poset[T]) leq(i, j int) bool {
	return p.rel[i][j]
}

// Len returns the number of elements.
func (p *Poset[T]) Len() int {
	return len(p.elements)
}

// Has reports whether x belongs to the element set.
func (p *Poset[T]) Has(x T) bool {
	_, ok := p.index[x]
	return ok
}

// Le reports whether x ≤ y.
func (p *Poset[T]) Le(x, y T) (bool, error) {
	i, err := p.at(x)
	if err != nil {
		return false, err
	}
	j, err := p.at(y)
	if err != nil {
		return false, err
	}
	return p.rel[i][j], nil
}

// Lt reports whether x < y.
func (p *Poset[T]) Lt(x, y T) (bool, error) {
	i, err := p.at(x)
	if err != nil {
		return false, err
	}
	j, err := p.at(y)
	if err != nil {
		return false, err
	}
	return i != j && p.rel[i][j], nil
}

// Ge reports whether x ≥ y.
func (p *Poset[T]) Ge(x, y T) (bool, error) {
	return p.Le(y, x)
}

// Gt reports whether x > y.
func (p *Poset[T]) Gt(x, y T) (bool, error) {
	return p.Lt(y, x)
}

// IsComparable reports whether x ≤ y or y ≤ x.
func (p *Poset[T]) IsComparable(x, y T) (bool, error) {
	i, err := p.at(x)
	if err != nil {
		return false, err
	}
	j, err := p.at(y)
	if err != nil {
		return false, err
	}
	return p.rel[i][j] || p.rel[j][i], nil
}

// UpperCovers returns the elements immediately above x in the cover relation.
func (p *Poset[T]) UpperCovers(x T) ([]T, error) {
	i, err := p.at(x)
	if err != nil {
		return nil, err
	}
	out := []T{}
	for j, c := range p.covers[i] {
		if c {
			out = append(out, p.elements[j])
		}
	}
	return out, nil
}

// LowerCovers returns the elements immediately below x in the cover relation.
func (p *Poset[T]) LowerCovers(x T) ([]T, error) {
	j, err := p.at(x)
	if err != nil {
		return nil, err
	}
	out := []T{}
	for i := range p.covers {
		if p.covers[i][j] {
			out = append(out, p.elements[i])
		}
	}
	return out, nil
}

// Elements iterates over all elements in construction order. The
// sequence is finite and restartable.
func (p *Poset[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range p.elements {
			if !yield(x) {
				return
			}
		}
	}
}

// MinimalElements iterates over the elements with no strictly lesser
// comparable element, in construction order.
func (p *Poset[T]) MinimalElements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for j, x := range p.elements {
			minimal := true
			for i := range p.elements {
				if i != j && p.rel[i][j] {
					minimal = false
					break
				}
			}
			if minimal && !yield(x) {
				return
			}
		}
	}
}

// MaximalElements iterates over the elements with no strictly greater
// comparable element, in construction order.
func (p *Poset[T]) MaximalElements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, x := range p.elements {
			maximal := true
			for j := range p.elements {
				if i != j && p.rel[i][j] {
					maximal = false
					break
				}
			}
			if maximal && !yield(x) {
				return
			}
		}
	}
}

// CoverRelations returns all cover pairs (x, y) with y covering x, in
// construction order. Together with Elements this is the export surface
// for external serializers; FromCoverRelations rebuilds an equivalent
// poset from it.
func (p *Poset[T]) CoverRelations() []Pair[T] {
	out := []Pair[T]{}
	for i := range p.covers {
		for j, c := range p.covers[i] {
			if c {
				out = append(out, Pair[T]{p.elements[i], p.elements[j]})
			}
		}
	}
	return out
}

// Element wraps a member value in a handle bound to this poset.
func (p *Poset[T]) Element(x T) (*Element[T], error) {
	return newElement[T](p, x, nil)
}

func (p *Poset[T]) String() string {
	return p.describe("poset")
}

func (p *Poset[T]) describe(kind string) string {
	elems := make([]string, len(p.elements))
	for i, x := range p.elements {
		elems[i] = colorize.Element(fmt.Sprint(x))
	}
	edges := []string{}
	for _, pr := range p.CoverRelations() {
		edges = append(edges, fmt.Sprintf("%v %s %v", pr.X, colorize.Attr("⋖"), pr.Y))
	}
	return colorize.Structure(kind) + "({" + strings.Join(elems, ", ") + "}; " +
		strings.Join(edges, ", ") + ")"
}
