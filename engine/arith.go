package engine

import (
	"math"
)

type handler func(e *Engine) error

type number interface {
	~uint8 | ~uint64 | ~int64 | ~float64
}

// Slot codecs for the four primitive types. Bytes occupy the low byte
// of a slot, zero-extended.
func asB(v uint64) uint8   { return uint8(v) }
func asU(v uint64) uint64  { return v }
func asI(v uint64) int64   { return int64(v) }
func asR(v uint64) float64 { return math.Float64frombits(v) }

func fromB(v uint8) uint64   { return uint64(v) }
func fromU(v uint64) uint64  { return v }
func fromI(v int64) uint64   { return uint64(v) }
func fromR(v float64) uint64 { return math.Float64bits(v) }

// binaryOp pops the top (left) and below (right) operands, and pushes
// left OP right.
func binaryOp[T number](from func(uint64) T, to func(T) uint64, fn func(left, right T) (T, error)) handler {
	return func(e *Engine) (err error) {
		left, err := e.Stack.Pop()
		if err != nil {
			return
		}
		right, err := e.Stack.Pop()
		if err != nil {
			return
		}
		result, err := fn(from(left), from(right))
		if err != nil {
			return
		}
		err = e.Stack.Push(to(result))
		if err != nil {
			return
		}
		e.advance(0)
		return
	}
}

// unary rewrites the top slot in place.
func unary[T number](from func(uint64) T, to func(T) uint64, fn func(T) T) handler {
	return func(e *Engine) (err error) {
		value, err := e.Stack.Peek()
		if err != nil {
			return
		}
		err = e.Stack.Set(to(fn(from(value))))
		if err != nil {
			return
		}
		e.advance(0)
		return
	}
}

// convert rewrites the top slot from type S to type D.
func convert[S, D number](from func(uint64) S, to func(D) uint64) handler {
	return unary(asU, fromU, func(v uint64) uint64 {
		return to(D(from(v)))
	})
}

func add[T number](a, b T) (T, error) { return a + b, nil }
func sub[T number](a, b T) (T, error) { return a - b, nil }
func mul[T number](a, b T) (T, error) { return a * b, nil }

func div[T ~uint8 | ~uint64 | ~int64](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

func mod[T ~uint8 | ~uint64 | ~int64](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a % b, nil
}

func divR(a, b float64) (float64, error) { return a / b, nil }

func and(a, b uint64) (uint64, error) { return a & b, nil }
func or(a, b uint64) (uint64, error)  { return a | b, nil }
func xor(a, b uint64) (uint64, error) { return a ^ b, nil }
func lsh(a, b uint64) (uint64, error) { return a << b, nil }
func rsh(a, b uint64) (uint64, error) { return a >> b, nil }

func inc[T number](v T) T { return v + 1 }
func dec[T number](v T) T { return v - 1 }

// compare pushes 1 if top and below are equal (or unequal, for neq),
// leaving both operands in place.
func compare(equal bool) handler {
	return func(e *Engine) (err error) {
		top, below, err := e.Stack.Peek2()
		if err != nil {
			return
		}
		var result uint64
		if (top == below) == equal {
			result = 1
		}
		err = e.Stack.Push(result)
		if err != nil {
			return
		}
		e.advance(0)
		return
	}
}

func (e *Engine) opNot() error {
	return unary(asU, fromU, func(v uint64) uint64 { return ^v })(e)
}
