package engine

import (
	"github.com/ezrec/tyson/opcode"
)

func (e *Engine) opDie() (err error) {
	e.Status = EXIT_DIE
	return
}

func (e *Engine) opNop() (err error) {
	e.advance(0)
	return
}

// opReserved terminates the run for opcodes with no defined action.
func (e *Engine) opReserved() (err error) {
	e.Status = EXIT_RESERVED
	if e.Traced {
		op, _ := e.Image.Byte(e.Ip)
		e.Log.Printf("tyson: reserved opcode %v at %#x", opcode.Opcode(op), e.Ip)
	}
	return
}

func (e *Engine) opJmp() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	e.Ip = arg[0]
	return
}

func (e *Engine) opCall() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	err = e.Return.Push(e.Ip + 1 + WORD_SIZE)
	if err != nil {
		return
	}
	e.Ip = arg[0]
	return
}

func (e *Engine) opRet() (err error) {
	addr, err := e.Return.Pop()
	if err != nil {
		return
	}
	e.Ip = addr
	return
}

// opSwch pops a byte index into the jump table that follows the opcode.
func (e *Engine) opSwch() (err error) {
	index, err := e.Stack.Pop()
	if err != nil {
		return
	}
	target, err := e.Image.Word(e.Ip + 1 + index)
	if err != nil {
		return
	}
	e.Ip = target
	return
}

// jumpIf returns a conditional jump handler comparing top against below.
func jumpIf[T number](from func(uint64) T, cmp func(top, below T) bool) handler {
	return func(e *Engine) (err error) {
		top, below, err := e.Stack.Peek2()
		if err != nil {
			return
		}
		if !cmp(from(top), from(below)) {
			e.advance(WORD_SIZE)
			return
		}
		arg, err := e.args(1)
		if err != nil {
			return
		}
		e.Ip = arg[0]
		return
	}
}

func jumpFast(n int) handler {
	return func(e *Engine) (err error) {
		e.Ip = e.Fast[n]
		return
	}
}

func setFast(n int) handler {
	return func(e *Engine) (err error) {
		arg, err := e.args(1)
		if err != nil {
			return
		}
		e.Fast[n] = arg[0]
		e.advance(WORD_SIZE)
		return
	}
}

func (e *Engine) opLstart() (err error) {
	arg, err := e.args(3)
	if err != nil {
		return
	}
	e.Loop = Loop{Count: arg[0], Cont: arg[1], Stop: arg[2]}
	e.Ip = e.Loop.Cont
	return
}

func (e *Engine) opLtest() (err error) {
	if e.Loop.Count > 0 {
		e.Loop.Count--
		e.Ip = e.Loop.Cont
	} else {
		e.Ip = e.Loop.Stop
	}
	return
}

func (e *Engine) opLcont() (err error) {
	e.Ip = e.Loop.Cont
	return
}

func (e *Engine) opLstop() (err error) {
	e.Ip = e.Loop.Stop
	return
}

// opBreakpoint enters single-step mode when traced.
func (e *Engine) opBreakpoint() (err error) {
	if e.Traced {
		e.SingleStep = true
	}
	e.advance(0)
	return
}

func eq[T number](a, b T) bool  { return a == b }
func neq[T number](a, b T) bool { return a != b }
func geq[T number](a, b T) bool { return a >= b }
func leq[T number](a, b T) bool { return a <= b }
func gt[T number](a, b T) bool  { return a > b }
func lt[T number](a, b T) bool  { return a < b }
