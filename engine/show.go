package engine

import (
	"fmt"
)

// showTop writes the top of the stack, formatted as a type.
func showTop(kind string, format func(uint64) string) handler {
	return func(e *Engine) (err error) {
		value, err := e.Stack.Peek()
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(e.Output, "stack-top(%s): %s\n", kind, format(value))
		if err != nil {
			return
		}
		e.advance(0)
		return
	}
}

// showMem writes an addressed image cell, formatted as a type.
func showMem(kind string, format func(uint64) string, byteCell bool) handler {
	return func(e *Engine) (err error) {
		arg, err := e.args(1)
		if err != nil {
			return
		}
		var value uint64
		if byteCell {
			var b byte
			b, err = e.Image.Byte(arg[0])
			value = uint64(b)
		} else {
			value, err = e.Image.Word(arg[0])
		}
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(e.Output, "heap[%d] = (%s) %s\n", arg[0], kind, format(value))
		if err != nil {
			return
		}
		e.advance(WORD_SIZE)
		return
	}
}

func (e *Engine) opShowMemS() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	str, err := e.Image.CString(arg[0])
	if err != nil {
		return
	}
	_, err = fmt.Fprintf(e.Output, "heap[%d] = (str) \"%s\"\n", arg[0], str)
	if err != nil {
		return
	}
	e.advance(WORD_SIZE)
	return
}

func formatB(v uint64) string { return fmt.Sprintf("%d", asB(v)) }
func formatU(v uint64) string { return fmt.Sprintf("%d", v) }
func formatI(v uint64) string { return fmt.Sprintf("%d", asI(v)) }
func formatR(v uint64) string { return fmt.Sprintf("%f", asR(v)) }
