package posets

import (
	"errors"
	"testing"
)

// The pentagon N5: 0 < a < c < 1 and 0 < b < 1.
func pentagon(t *testing.T) *Lattice[string] {
	t.Helper()
	l, err := LatticeFromCoverRelations(
		[]string{"0", "a", "b", "c", "1"},
		[]Pair[string]{
			{"0", "a"}, {"0", "b"},
			{"a", "c"},
			{"b", "1"},
			{"c", "1"},
		})
	if err != nil {
		t.Fatalf("pentagon construction failed: %v", err)
	}
	return l
}

func TestDiamondMeetJoin(t *testing.T) {
	l := diamond(t)

	tests := []struct {
		x, y     string
		op       string
		expected string
	}{
		{"a", "b", "∧", "0"},
		{"a", "b", "∨", "1"},
		{"a", "c", "∧", "0"},
		{"b", "c", "∨", "1"},
		{"a", "1", "∧", "a"},
		{"a", "0", "∨", "a"},
		{"0", "1", "∧", "0"},
		{"0", "1", "∨", "1"},
	}

	for _, test := range tests {
		var res string
		var err error
		switch test.op {
		case "∧":
			res, err = l.Meet(Val(test.x), Val(test.y))
		case "∨":
			res, err = l.Join(Val(test.x), Val(test.y))
		}
		if err != nil {
			t.Fatalf("%s %s %s failed: %v", test.x, test.op, test.y, err)
		}
		if res != test.expected {
			t.Errorf("%s %s %s = %s, expected %s", test.x, test.op, test.y, res, test.expected)
		}
	}
}

func TestVShapeIsNotALattice(t *testing.T) {
	_, err := LatticeFromCoverRelations(
		[]string{"a", "b", "c"},
		[]Pair[string]{{"c", "a"}, {"c", "b"}},
	)
	var latErr *NotALatticeError
	if !errors.As(err, &latErr) {
		t.Fatalf("expected *NotALatticeError, got %v", err)
	}
	if latErr.Op != "join" {
		t.Errorf("offending operation = %s, expected join", latErr.Op)
	}
	if latErr.X != "a" || latErr.Y != "b" {
		t.Errorf("offending pair = (%v, %v), expected (a, b)", latErr.X, latErr.Y)
	}
}

func TestDivisorLattice(t *testing.T) {
	l := DivisorLattice(60)

	tests := []struct {
		x, y     int
		op       string
		expected int
	}{
		{12, 20, "∧", 4},
		{12, 20, "∨", 60},
		{12, 15, "∧", 3},
		{12, 15, "∨", 60},
		{4, 6, "∧", 2},
		{4, 6, "∨", 12},
		{5, 12, "∧", 1},
	}

	for _, test := range tests {
		var res int
		var err error
		switch test.op {
		case "∧":
			res, err = l.Meet(Val(test.x), Val(test.y))
		case "∨":
			res, err = l.Join(Val(test.x), Val(test.y))
		}
		if err != nil {
			t.Fatalf("%d %s %d failed: %v", test.x, test.op, test.y, err)
		}
		if res != test.expected {
			t.Errorf("%d %s %d = %d, expected %d", test.x, test.op, test.y, res, test.expected)
		}
	}

	if top, err := l.Top(); err != nil || top != 60 {
		t.Errorf("Top = %d, %v, expected 60", top, err)
	}
	if bot, err := l.Bottom(); err != nil || bot != 1 {
		t.Errorf("Bottom = %d, %v, expected 1", bot, err)
	}
}

func TestPowersetLattice(t *testing.T) {
	l := PowersetLattice(1, 2, 3)

	m, err := l.Meet(Val(NewSubset(1, 2)), Val(NewSubset(2, 3)))
	if err != nil {
		t.Fatalf("meet failed: %v", err)
	}
	if m != NewSubset(2) {
		t.Errorf("{1, 2} ∧ {2, 3} = %v, expected {2}", m)
	}
	j, err := l.Join(Val(NewSubset(1, 2)), Val(NewSubset(2, 3)))
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if j != NewSubset(1, 2, 3) {
		t.Errorf("{1, 2} ∨ {2, 3} = %v, expected {1, 2, 3}", j)
	}

	// Powerset lattices are distributive.
	for x := range l.Elements() {
		for y := range l.Elements() {
			for z := range l.Elements() {
				yz, _ := l.Join(Val(y), Val(z))
				lhs, _ := l.Meet(Val(x), Val(yz))
				xy, _ := l.Meet(Val(x), Val(y))
				xz, _ := l.Meet(Val(x), Val(z))
				rhs, _ := l.Join(Val(xy), Val(xz))
				if lhs != rhs {
					t.Errorf("%v ∧ (%v ∨ %v) = %v, but (%v∧%v) ∨ (%v∧%v) = %v",
						x, y, z, lhs, x, y, x, z, rhs)
				}
			}
		}
	}
}

func TestMeetJoinAlgebraLaws(t *testing.T) {
	l := pentagon(t)

	for x := range l.Elements() {
		if m, _ := l.Meet(Val(x), Val(x)); m != x {
			t.Errorf("%s ∧ %s = %s, expected idempotence", x, x, m)
		}
		for y := range l.Elements() {
			xy, _ := l.Meet(Val(x), Val(y))
			yx, _ := l.Meet(Val(y), Val(x))
			if xy != yx {
				t.Errorf("meet not commutative on (%s, %s): %s vs %s", x, y, xy, yx)
			}
			jxy, _ := l.Join(Val(x), Val(y))
			jyx, _ := l.Join(Val(y), Val(x))
			if jxy != jyx {
				t.Errorf("join not commutative on (%s, %s): %s vs %s", x, y, jxy, jyx)
			}
			if abs, _ := l.Meet(Val(x), Val(jxy)); abs != x {
				t.Errorf("%s ∧ (%s ∨ %s) = %s, expected absorption", x, x, y, abs)
			}
			for z := range l.Elements() {
				yz, _ := l.Meet(Val(y), Val(z))
				left, _ := l.Meet(Val(xy), Val(z))
				right, _ := l.Meet(Val(x), Val(yz))
				if left != right {
					t.Errorf("meet not associative on (%s, %s, %s): %s vs %s", x, y, z, left, right)
				}
			}
		}
	}
}

func TestInfimumSupremum(t *testing.T) {
	l := DivisorLattice(60)

	if inf, ok, err := l.Infimum(Val(12), Val(20), Val(15)); err != nil || !ok || inf != 1 {
		t.Errorf("Infimum(12, 20, 15) = %d, %v, %v, expected 1", inf, ok, err)
	}
	if sup, ok, err := l.Supremum(Val(12), Val(20), Val(15)); err != nil || !ok || sup != 60 {
		t.Errorf("Supremum(12, 20, 15) = %d, %v, %v, expected 60", sup, ok, err)
	}
	if inf, ok, err := l.Infimum(Val(12)); err != nil || !ok || inf != 12 {
		t.Errorf("Infimum(12) = %d, %v, %v, expected 12", inf, ok, err)
	}

	// An empty sequence has no bound: not an error, just no result.
	if _, ok, err := l.Infimum(); ok || err != nil {
		t.Errorf("Infimum() = ok %v, err %v, expected no result", ok, err)
	}
	if _, ok, err := l.Supremum(); ok || err != nil {
		t.Errorf("Supremum() = ok %v, err %v, expected no result", ok, err)
	}

	var memErr *MembershipError
	if _, _, err := l.Infimum(Val(12), Val(7)); !errors.As(err, &memErr) {
		t.Errorf("Infimum with foreign operand: expected *MembershipError, got %v", err)
	}
}

func TestAmbiguousBounds(t *testing.T) {
	empty, err := LatticeFromRelation([]int{}, nil)
	if err != nil {
		t.Fatalf("empty lattice construction failed: %v", err)
	}
	var boundErr *AmbiguousBoundError
	if _, err := empty.Top(); !errors.As(err, &boundErr) {
		t.Errorf("Top on empty lattice: expected *AmbiguousBoundError, got %v", err)
	}
	if _, err := BoundedFromRelation([]int{}, nil); !errors.As(err, &boundErr) {
		t.Errorf("bounded construction without bounds: expected *AmbiguousBoundError, got %v", err)
	}
}

func TestDual(t *testing.T) {
	l := DivisorLattice(60)
	d := l.Dual()

	for x := range l.Elements() {
		for y := range l.Elements() {
			dm, _ := d.Meet(Val(x), Val(y))
			oj, _ := l.Join(Val(x), Val(y))
			if dm != oj {
				t.Errorf("dual meet(%d, %d) = %d, original join = %d", x, y, dm, oj)
			}
			dj, _ := d.Join(Val(x), Val(y))
			om, _ := l.Meet(Val(x), Val(y))
			if dj != om {
				t.Errorf("dual join(%d, %d) = %d, original meet = %d", x, y, dj, om)
			}
		}
	}

	if top, err := d.Top(); err != nil || top != 1 {
		t.Errorf("dual Top = %d, %v, expected 1", top, err)
	}

	// Reversing twice reconstructs the original order and algebra.
	dd := d.Dual()
	for x := range l.Elements() {
		for y := range l.Elements() {
			a, _ := l.Le(x, y)
			b, _ := dd.Le(x, y)
			if a != b {
				t.Errorf("%d ≤ %d diverged after double dual: %v vs %v", x, y, a, b)
			}
		}
	}
}

func TestComplement(t *testing.T) {
	b := BooleanLattice(3)

	c, ok, err := b.Complement(Val(NewSubset(1)))
	if err != nil || !ok {
		t.Fatalf("Complement({1}) = %v, %v", ok, err)
	}
	if c != NewSubset(2, 3) {
		t.Errorf("Complement({1}) = %v, expected {2, 3}", c)
	}
	if !b.IsComplemented() {
		t.Errorf("boolean lattice not complemented")
	}

	d := DivisorLattice(12)
	if _, ok, err := d.Complement(Val(2)); err != nil || ok {
		t.Errorf("Complement(2) in divisors of 12 = found %v, err %v, expected none", ok, err)
	}
	if c, ok, _ := d.Complement(Val(1)); !ok || c != 12 {
		t.Errorf("Complement(1) = %d, %v, expected 12", c, ok)
	}
	if d.IsComplemented() {
		t.Errorf("divisor lattice of 12 reported complemented")
	}
}

func divisibilityLattice(t *testing.T, elements []int) *Lattice[int] {
	t.Helper()
	pairs := []Pair[int]{}
	for _, d := range elements {
		for _, e := range elements {
			if e%d == 0 {
				pairs = append(pairs, Pair[int]{d, e})
			}
		}
	}
	l, err := LatticeFromRelation(elements, pairs)
	if err != nil {
		t.Fatalf("divisibility lattice over %v failed: %v", elements, err)
	}
	return l
}

func TestIsSublatticeOf(t *testing.T) {
	parent := DivisorLattice(60)

	sub := divisibilityLattice(t, []int{1, 2, 6, 60})
	if !sub.IsSublatticeOf(parent) {
		t.Errorf("{1, 2, 6, 60} not recognized as sublattice of divisors of 60")
	}

	// {1, 4, 6, 12} is a lattice, but its meet of 4 and 6 is 1 while the
	// parent's is 2.
	p12 := DivisorLattice(12)
	diverging := divisibilityLattice(t, []int{1, 4, 6, 12})
	if diverging.IsSublatticeOf(p12) {
		t.Errorf("{1, 4, 6, 12} reported as sublattice of divisors of 12 despite diverging meet")
	}

	foreign := divisibilityLattice(t, []int{1, 7})
	if foreign.IsSublatticeOf(parent) {
		t.Errorf("lattice with foreign elements reported as sublattice")
	}
}
