package posets

import (
	"fmt"

	"github.com/eric-downes/posets/utils"
)

type opKind uint8

const (
	opLt opKind = iota
	opLe
	opGt
	opGe
	opComparable
	opMeet
	opJoin
)

// cacheKey memoizes one operation against one operand value. Lt and Gt
// are distinct kinds, so the ordered single-operand key cannot collide
// across converse operations.
type cacheKey[T comparable] struct {
	op      opKind
	operand T
}

// Element is a lightweight handle for a member value, bound to its
// owning structure. All order and algebra operations delegate to the
// owner after a compatibility check against the other operand, and each
// result is memoized in a private per-instance cache.
//
// Handles are short-lived, independent values; the cache dies with the
// handle and is never shared.
type Element[T comparable] struct {
	value  T
	owner  Structure[T]
	cache  map[cacheKey[T]]any
	hash   uint32
	hashed bool
}

func newElement[T comparable](owner Structure[T], value T, fn func(T) uint32) (*Element[T], error) {
	if !owner.Has(value) {
		return nil, &MembershipError{value}
	}
	e := &Element[T]{
		value: value,
		owner: owner,
		cache: make(map[cacheKey[T]]any),
	}
	if fn != nil {
		e.hash = fn(value)
		e.hashed = true
	}
	return e, nil
}

func (e *Element[T]) operand() (T, Structure[T]) {
	return e.value, e.owner
}

// Value returns the wrapped raw value.
func (e *Element[T]) Value() T {
	return e.value
}

// Structure returns the owning structure.
func (e *Element[T]) Structure() Structure[T] {
	return e.owner
}

// compatible resolves an operand against the receiver's owner. Bare
// values and handles from the same structure are always compatible;
// handles from different structures are compatible only when both
// owners carry the algebra capability and one is a sublattice of the
// other. A missing capability means "not provably compatible".
func (e *Element[T]) compatible(o Operand[T]) (T, bool) {
	v, owner := o.operand()
	if owner == nil || owner == e.owner {
		return v, true
	}
	a, ok := e.owner.(Algebra[T])
	b, ok2 := owner.(Algebra[T])
	if ok && ok2 && (a.IsSublatticeOf(b) || b.IsSublatticeOf(a)) {
		return v, true
	}
	return v, false
}

// order runs a permissive relational operation: incompatible operands
// yield false, never an error. A bare foreign value still fails with
// *MembershipError.
func (e *Element[T]) order(op opKind, o Operand[T], query func(x, y T) (bool, error)) (bool, error) {
	v, ok := e.compatible(o)
	if !ok {
		return false, nil
	}
	key := cacheKey[T]{op, v}
	if r, hit := e.cache[key]; hit {
		return r.(bool), nil
	}
	r, err := query(e.value, v)
	if err != nil {
		return false, err
	}
	e.cache[key] = r
	return r, nil
}

// Lt reports whether the handle is strictly below the operand.
func (e *Element[T]) Lt(o Operand[T]) (bool, error) {
	return e.order(opLt, o, e.owner.Lt)
}

// Le reports whether the handle is below or equal to the operand.
func (e *Element[T]) Le(o Operand[T]) (bool, error) {
	return e.order(opLe, o, e.owner.Le)
}

// Gt reports whether the handle is strictly above the operand.
func (e *Element[T]) Gt(o Operand[T]) (bool, error) {
	return e.order(opGt, o, e.owner.Gt)
}

// Ge reports whether the handle is above or equal to the operand.
func (e *Element[T]) Ge(o Operand[T]) (bool, error) {
	return e.order(opGe, o, e.owner.Ge)
}

// IsComparable reports whether the handle and the operand are related
// in either direction.
func (e *Element[T]) IsComparable(o Operand[T]) (bool, error) {
	return e.order(opComparable, o, e.owner.IsComparable)
}

// algebra runs a strict combining operation: incompatible operands fail
// with *IncompatibleStructureError, and so does an owner without the
// algebra capability. Results are wrapped into fresh handles bound to
// the receiver's owner.
func (e *Element[T]) algebra(op opKind, o Operand[T], name string) (*Element[T], error) {
	v, ok := e.compatible(o)
	if !ok {
		return nil, &IncompatibleStructureError{Op: name}
	}
	alg, isAlg := e.owner.(Algebra[T])
	if !isAlg {
		return nil, &IncompatibleStructureError{Op: name}
	}
	key := cacheKey[T]{op, v}
	if r, hit := e.cache[key]; hit {
		return r.(*Element[T]), nil
	}
	var rv T
	var err error
	if op == opMeet {
		rv, err = alg.Meet(Val(e.value), Val(v))
	} else {
		rv, err = alg.Join(Val(e.value), Val(v))
	}
	if err != nil {
		return nil, err
	}
	res := &Element[T]{
		value: rv,
		owner: e.owner,
		cache: make(map[cacheKey[T]]any),
	}
	e.cache[key] = res
	return res, nil
}

// Meet returns the greatest lower bound of the handle and the operand
// as a fresh handle bound to the receiver's structure.
func (e *Element[T]) Meet(o Operand[T]) (*Element[T], error) {
	return e.algebra(opMeet, o, "meet")
}

// Join returns the least upper bound of the handle and the operand as a
// fresh handle bound to the receiver's structure.
func (e *Element[T]) Join(o Operand[T]) (*Element[T], error) {
	return e.algebra(opJoin, o, "join")
}

// Equal reports operand equality. Bare values compare by value alone;
// handles additionally require the owning structures to be compatible.
func (e *Element[T]) Equal(o Operand[T]) bool {
	v, owner := o.operand()
	if owner == nil {
		return e.value == v
	}
	_, ok := e.compatible(o)
	return ok && e.value == v
}

// Hash returns the precomputed custom hash when one was supplied at
// creation; otherwise it derives the hash from the value and the
// identity of the owning structure. Two handles with equal values but
// unrelated owners generally hash differently, scoping their use as map
// keys to a structure.
func (e *Element[T]) Hash() uint32 {
	if e.hashed {
		return e.hash
	}
	return utils.HashCombine(
		utils.HashComparable(e.value),
		utils.PointerHasher[Structure[T]]{}.Hash(e.owner),
	)
}

// ClearCache empties the per-instance memo table. This is the only
// cache invalidation; owning structures are otherwise immutable.
func (e *Element[T]) ClearCache() {
	clear(e.cache)
}

func (e *Element[T]) String() string {
	return colorize.Element(fmt.Sprint(e.value))
}
