// Package hasse provides pure algorithms over the order surface of a
// finite poset: transitive closure and reduction, linear extension,
// lattice detection and connectivity. External collaborators such as
// diagram renderers and serializers consume posets through this
// package.
package hasse

import (
	"iter"

	"github.com/eric-downes/posets/utils/worklist"
)

// Diagram is the minimal surface the algorithms need: a finite,
// restartable element sequence and the order relation.
type Diagram[T comparable] interface {
	Elements() iter.Seq[T]
	Le(x, y T) (bool, error)
}

func elems[T comparable](p Diagram[T]) []T {
	out := []T{}
	for x := range p.Elements() {
		out = append(out, x)
	}
	return out
}

// le only ever receives members of p, for which Le cannot fail.
func le[T comparable](p Diagram[T], x, y T) bool {
	r, _ := p.Le(x, y)
	return r
}

// TransitiveReduction maps each element to its immediate successors:
// the cover relation of the diagram. A related pair is dropped whenever
// an intermediate element breaks the direct cover. Successor order
// follows the element sequence.
func TransitiveReduction[T comparable](p Diagram[T]) map[T][]T {
	els := elems(p)
	out := make(map[T][]T, len(els))
	for _, x := range els {
		out[x] = []T{}
		for _, y := range els {
			if x == y || !le(p, x, y) {
				continue
			}
			direct := true
			for _, z := range els {
				if z != x && z != y && le(p, x, z) && le(p, z, y) {
					direct = false
					break
				}
			}
			if direct {
				out[x] = append(out[x], y)
			}
		}
	}
	return out
}

// TransitiveClosure maps each element to the set of elements reachable
// via the order relation, inclusive of the element itself. Reachability
// is recovered from the cover edges with a breadth-first worklist pass
// per element.
func TransitiveClosure[T comparable](p Diagram[T]) map[T]map[T]bool {
	els := elems(p)
	covers := TransitiveReduction(p)
	out := make(map[T]map[T]bool, len(els))
	for _, x := range els {
		reach := map[T]bool{x: true}
		worklist.Start(x, func(next T, add func(T)) {
			for _, y := range covers[next] {
				if !reach[y] {
					reach[y] = true
					add(y)
				}
			}
		})
		out[x] = reach
	}
	return out
}
