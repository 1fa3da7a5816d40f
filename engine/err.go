package engine

import (
	"errors"

	"github.com/ezrec/tyson/opcode"
	"github.com/ezrec/tyson/translate"
)

var f = translate.From

var (
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrStackEmpty    = errors.New(f("stack empty"))
	ErrStackFull     = errors.New(f("stack full"))
	ErrStackRange    = errors.New(f("stack offset out of range"))
	ErrReturnEmpty   = errors.New(f("return stack empty"))
	ErrReturnFull    = errors.New(f("return stack full"))
	ErrDivideByZero  = errors.New(f("integer divide by zero"))
	ErrCountRange    = errors.New(f("operand count out of range"))
)

// ErrOpcode locates a fatal trap at an instruction.
type ErrOpcode struct {
	Ip uint64
	Op opcode.Opcode
}

func (eo ErrOpcode) Error() string {
	return f("ip %#x opcode %v", eo.Ip, eo.Op.String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
