package posets

import "fmt"

// MembershipError reports an operand that is not a member of the
// structure being queried.
type MembershipError struct {
	Value any
}

func (e *MembershipError) Error() string {
	return fmt.Sprintf("element %v is not a member of the structure", e.Value)
}

// RelationError reports a supplied relation that cannot be closed into
// a valid partial order.
type RelationError struct {
	X, Y any
}

func (e *RelationError) Error() string {
	return fmt.Sprintf("antisymmetry violated: %v and %v are mutually comparable", e.X, e.Y)
}

// NotALatticeError reports a pair of elements lacking a unique meet or
// join, found during eager construction-time verification.
type NotALatticeError struct {
	X, Y any
	Op   string // "meet" or "join"
}

func (e *NotALatticeError) Error() string {
	return fmt.Sprintf("not a lattice: no %s exists for %v and %v", e.Op, e.X, e.Y)
}

// AmbiguousBoundError reports a top or bottom request on a structure
// without a unique maximal or minimal element.
type AmbiguousBoundError struct {
	Bound string // "top" or "bottom"
	Count int
}

func (e *AmbiguousBoundError) Error() string {
	return fmt.Sprintf("no unique %s element: found %d candidates", e.Bound, e.Count)
}

// IncompatibleStructureError reports a strict algebraic operation
// attempted across two structures with no proven sublattice relation in
// either direction.
type IncompatibleStructureError struct {
	Op string
}

func (e *IncompatibleStructureError) Error() string {
	return fmt.Sprintf("cannot compute %s across incompatible structures", e.Op)
}
