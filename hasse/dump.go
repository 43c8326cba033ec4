package hasse

import (
	"fmt"
	"strings"
)

// Dump renders the Hasse diagram as plain text, one line per element in
// sequence order, each followed by its immediate successors. The output
// is deterministic and uncolored, suitable for golden files and as
// input to external renderers.
func Dump[T comparable](p Diagram[T]) string {
	var b strings.Builder
	covers := TransitiveReduction(p)
	for _, x := range elems(p) {
		fmt.Fprintf(&b, "%v", x)
		if succs := covers[x]; len(succs) > 0 {
			parts := make([]string, len(succs))
			for i, y := range succs {
				parts[i] = fmt.Sprint(y)
			}
			b.WriteString(" -> " + strings.Join(parts, " "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
