package hasse

// LinearExtension returns a total ordering of all elements consistent
// with the partial order: no element appears before one of its order
// predecessors. Among simultaneously minimal candidates the element
// that appears first in the diagram's element sequence wins, so the
// result is deterministic for a given construction order.
func LinearExtension[T comparable](p Diagram[T]) []T {
	els := elems(p)
	n := len(els)
	covers := TransitiveReduction(p)

	pending := make(map[T]int, n) // remaining strict predecessors
	for _, x := range els {
		pending[x] = 0
	}
	for _, x := range els {
		for _, y := range covers[x] {
			pending[y]++
		}
	}

	out := make([]T, 0, n)
	emitted := make(map[T]bool, n)
	for len(out) < n {
		for _, x := range els {
			if emitted[x] || pending[x] != 0 {
				continue
			}
			out = append(out, x)
			emitted[x] = true
			for _, y := range covers[x] {
				pending[y]--
			}
			break
		}
	}
	return out
}
