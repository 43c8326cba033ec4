package posets

// Operand is an argument to an order or algebra operation. It has
// exactly two variants: a bare value (Value) and a handle bound to an
// owning structure (*Element). Every operation unwraps its operands
// through this interface exactly once before touching a structure.
type Operand[T comparable] interface {
	operand() (value T, owner Structure[T])
}

// Value is a bare operand carrying no owning structure. Bare values are
// compatible with any structure and are compared by value alone.
type Value[T comparable] struct {
	V T
}

// Val wraps a raw value as an operand.
func Val[T comparable](v T) Value[T] {
	return Value[T]{v}
}

func (v Value[T]) operand() (T, Structure[T]) {
	return v.V, nil
}
