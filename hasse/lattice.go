package hasse

import (
	uf "github.com/spakin/disjoint"
)

// IsLattice reports whether every pair of elements has a unique meet
// and join. It reuses the same bound-existence check as lattice
// construction but answers with a boolean, for non-destructive probing.
// A disconnected diagram with more than one element is rejected
// outright: no pair across components can have a join.
func IsLattice[T comparable](p Diagram[T]) bool {
	els := elems(p)
	n := len(els)
	if n > 1 && len(components(p, els)) > 1 {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if !hasBound(p, els, els[i], els[j], true) ||
				!hasBound(p, els, els[i], els[j], false) {
				return false
			}
		}
	}
	return true
}

// hasBound checks for a unique extremum of the common lower
// (lower = true) or upper bound set of x and y.
func hasBound[T comparable](p Diagram[T], els []T, x, y T, lower bool) bool {
	in := func(z T) bool {
		if lower {
			return le(p, z, x) && le(p, z, y)
		}
		return le(p, x, z) && le(p, y, z)
	}
	yields := func(a, b T) bool {
		if lower {
			return le(p, a, b)
		}
		return le(p, b, a)
	}
	var cand T
	found := false
	for _, z := range els {
		if !in(z) {
			continue
		}
		if !found || yields(cand, z) {
			cand, found = z, true
		}
	}
	if !found {
		return false
	}
	for _, z := range els {
		if in(z) && !yields(z, cand) {
			return false
		}
	}
	return true
}

// ConnectedComponents partitions the elements into the connected
// components of the comparability graph. Elements within a component
// and the components themselves follow the element sequence order.
func ConnectedComponents[T comparable](p Diagram[T]) [][]T {
	return components(p, elems(p))
}

func components[T comparable](p Diagram[T], els []T) [][]T {
	nodes := make(map[T]*uf.Element, len(els))
	for _, x := range els {
		nodes[x] = uf.NewElement()
	}
	for i, x := range els {
		for _, y := range els[i+1:] {
			if le(p, x, y) || le(p, y, x) {
				uf.Union(nodes[x], nodes[y])
			}
		}
	}
	order := []*uf.Element{}
	grouped := map[*uf.Element][]T{}
	for _, x := range els {
		root := nodes[x].Find()
		if _, seen := grouped[root]; !seen {
			order = append(order, root)
		}
		grouped[root] = append(grouped[root], x)
	}
	out := make([][]T, 0, len(order))
	for _, root := range order {
		out = append(out, grouped[root])
	}
	return out
}
