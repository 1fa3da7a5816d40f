package engine

import (
	"bytes"
)

// Widths of the fixed-size movement variants.
const (
	SIZE_B  = 1
	SIZE_HW = 4
	SIZE_W  = 8
	SIZE_DW = 16
	SIZE_QW = 32
)

// put copies size immediate bytes to the destination address.
func put(size uint64) handler {
	return func(e *Engine) (err error) {
		arg, err := e.args(1)
		if err != nil {
			return
		}
		data, err := e.argBytes(WORD_SIZE, size)
		if err != nil {
			return
		}
		dst, err := e.Image.Bytes(arg[0], size)
		if err != nil {
			return
		}
		copy(dst, data)
		e.advance(WORD_SIZE + size)
		return
	}
}

// putN copies a counted immediate of unit-sized elements.
func putN(unit uint64) handler {
	return func(e *Engine) (err error) {
		arg, err := e.args(2)
		if err != nil {
			return
		}
		size := arg[1] * unit
		if size/unit != arg[1] {
			err = ErrCountRange
			return
		}
		data, err := e.argBytes(2*WORD_SIZE, size)
		if err != nil {
			return
		}
		dst, err := e.Image.Bytes(arg[0], size)
		if err != nil {
			return
		}
		copy(dst, data)
		e.advance(2*WORD_SIZE + size)
		return
	}
}

// opPutS copies an inline nul-terminated string, terminator included.
func (e *Engine) opPutS() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	str, err := e.Image.CString(e.Ip + 1 + WORD_SIZE)
	if err != nil {
		return
	}
	size := uint64(len(str)) + 1
	dst, err := e.Image.Bytes(arg[0], size)
	if err != nil {
		return
	}
	copy(dst, e.Image.Data[e.Ip+1+WORD_SIZE:])
	e.advance(WORD_SIZE + size)
	return
}

// region returns the image bytes at addr, size bytes long.
func (e *Engine) region(addr uint64, size uint64) ([]byte, error) {
	return e.Image.Bytes(addr, size)
}

// move returns a handler for a two-address instruction with fixed width,
// applying fn to the destination and source regions.
func move(size uint64, fn func(dst, src []byte)) handler {
	return func(e *Engine) (err error) {
		arg, err := e.args(2)
		if err != nil {
			return
		}
		dst, err := e.region(arg[0], size)
		if err != nil {
			return
		}
		src, err := e.region(arg[1], size)
		if err != nil {
			return
		}
		fn(dst, src)
		e.advance(2 * WORD_SIZE)
		return
	}
}

// moveN returns a handler for a two-address instruction with a counted
// width of unit-sized elements.
func moveN(unit uint64, fn func(dst, src []byte)) handler {
	return func(e *Engine) (err error) {
		arg, err := e.args(3)
		if err != nil {
			return
		}
		size := arg[2] * unit
		if size/unit != arg[2] {
			err = ErrCountRange
			return
		}
		dst, err := e.region(arg[0], size)
		if err != nil {
			return
		}
		src, err := e.region(arg[1], size)
		if err != nil {
			return
		}
		fn(dst, src)
		e.advance(3 * WORD_SIZE)
		return
	}
}

// moveFromStack returns a handler for a _fs instruction, whose
// destination address is the value on top of the stack.
func moveFromStack(size uint64, fn func(dst, src []byte)) handler {
	return func(e *Engine) (err error) {
		addr, err := e.Stack.Peek()
		if err != nil {
			return
		}
		arg, err := e.args(1)
		if err != nil {
			return
		}
		dst, err := e.region(addr, size)
		if err != nil {
			return
		}
		src, err := e.region(arg[0], size)
		if err != nil {
			return
		}
		fn(dst, src)
		e.advance(WORD_SIZE)
		return
	}
}

func copyTo(dst, src []byte) {
	copy(dst, src)
}

// swap exchanges two regions through a local scratch buffer.
func swap(dst, src []byte) {
	scratch := bytes.Clone(dst)
	copy(dst, src)
	copy(src, scratch)
}

// putFromStack returns a handler for put_*_fs.
func putFromStack(size uint64) handler {
	return func(e *Engine) (err error) {
		addr, err := e.Stack.Peek()
		if err != nil {
			return
		}
		data, err := e.argBytes(0, size)
		if err != nil {
			return
		}
		dst, err := e.region(addr, size)
		if err != nil {
			return
		}
		copy(dst, data)
		e.advance(size)
		return
	}
}

// opCpyS copies a nul-terminated string, terminator included.
func (e *Engine) opCpyS() (err error) {
	arg, err := e.args(2)
	if err != nil {
		return
	}
	src, err := e.Image.CString(arg[1])
	if err != nil {
		return
	}
	size := uint64(len(src)) + 1
	dst, err := e.region(arg[0], size)
	if err != nil {
		return
	}
	copy(dst, e.Image.Data[arg[1]:arg[1]+size])
	e.advance(2 * WORD_SIZE)
	return
}

// opXchS exchanges two nul-terminated strings.
func (e *Engine) opXchS() (err error) {
	arg, err := e.args(2)
	if err != nil {
		return
	}
	a, err := e.Image.CString(arg[0])
	if err != nil {
		return
	}
	b, err := e.Image.CString(arg[1])
	if err != nil {
		return
	}
	// Both destinations must hold the other string and its terminator.
	_, err = e.region(arg[0], uint64(len(b))+1)
	if err != nil {
		return
	}
	_, err = e.region(arg[1], uint64(len(a))+1)
	if err != nil {
		return
	}
	scratch := append(bytes.Clone(a), 0)
	copy(e.Image.Data[arg[0]:], append(bytes.Clone(b), 0))
	copy(e.Image.Data[arg[1]:], scratch)
	e.advance(2 * WORD_SIZE)
	return
}
