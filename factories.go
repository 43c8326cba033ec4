package posets

import (
	"fmt"
	"strings"
)

// must unwraps construction results for factory-built structures whose
// inputs are well-formed by construction.
func must[S any](s S, err error) S {
	if err != nil {
		panic(err)
	}
	return s
}

// Chain returns the total order 0 < 1 < ... < n-1.
func Chain(n int) *Lattice[int] {
	elements := make([]int, n)
	covers := []Pair[int]{}
	for i := 0; i < n; i++ {
		elements[i] = i
		if i > 0 {
			covers = append(covers, Pair[int]{i - 1, i})
		}
	}
	return must(LatticeFromCoverRelations(elements, covers))
}

// Antichain returns the discrete poset over 0 .. n-1, in which no two
// distinct elements are comparable.
func Antichain(n int) *Poset[int] {
	elements := make([]int, n)
	for i := range elements {
		elements[i] = i
	}
	return must(FromRelation(elements, nil))
}

// Subset is a powerset-lattice element: a bitmask over members 1 .. 64.
type Subset uint64

// NewSubset returns the subset containing the given members. Members
// must lie in 1 .. 64.
func NewSubset(members ...int) Subset {
	var s Subset
	for _, m := range members {
		if m < 1 || m > 64 {
			panic(fmt.Sprintf("subset member %d out of range 1..64", m))
		}
		s |= 1 << (m - 1)
	}
	return s
}

// Contains reports whether member m belongs to the subset.
func (s Subset) Contains(m int) bool {
	return m >= 1 && m <= 64 && s&(1<<(m-1)) != 0
}

// Members returns the members in ascending order.
func (s Subset) Members() []int {
	out := []int{}
	for m := 1; m <= 64; m++ {
		if s.Contains(m) {
			out = append(out, m)
		}
	}
	return out
}

func (s Subset) String() string {
	if s == 0 {
		return "∅"
	}
	parts := []string{}
	for _, m := range s.Members() {
		parts = append(parts, fmt.Sprint(m))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// PowersetLattice returns the lattice of all subsets of the given
// members, ordered by inclusion. Meet is intersection, join is union.
func PowersetLattice(members ...int) *BoundedLattice[Subset] {
	k := len(members)
	elements := make([]Subset, 0, 1<<k)
	for mask := 0; mask < 1<<k; mask++ {
		var s Subset
		for b := 0; b < k; b++ {
			if mask&(1<<b) != 0 {
				s |= NewSubset(members[b])
			}
		}
		elements = append(elements, s)
	}
	pairs := []Pair[Subset]{}
	for _, s := range elements {
		for _, t := range elements {
			if s&t == s {
				pairs = append(pairs, Pair[Subset]{s, t})
			}
		}
	}
	return must(BoundedFromRelation(elements, pairs))
}

// BooleanLattice returns the powerset lattice of {1, ..., n}.
func BooleanLattice(n int) *BoundedLattice[Subset] {
	members := make([]int, n)
	for i := range members {
		members[i] = i + 1
	}
	return PowersetLattice(members...)
}

// DivisorLattice returns the divisors of n ordered by divisibility.
// Meet is gcd, join is lcm.
func DivisorLattice(n int) *BoundedLattice[int] {
	if n < 1 {
		panic(fmt.Sprintf("divisor lattice requires n >= 1, got %d", n))
	}
	divisors := []int{}
	for d := 1; d <= n; d++ {
		if n%d == 0 {
			divisors = append(divisors, d)
		}
	}
	pairs := []Pair[int]{}
	for _, d := range divisors {
		for _, e := range divisors {
			if e%d == 0 {
				pairs = append(pairs, Pair[int]{d, e})
			}
		}
	}
	return must(BoundedFromRelation(divisors, pairs))
}
