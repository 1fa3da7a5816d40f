package engine

import (
	"bytes"
)

// cmpSign compares two byte strings, returning -1, 0 or 1.
func cmpSign(a, b []byte) uint64 {
	return uint64(int64(bytes.Compare(a, b)))
}

// prefix limits a string to n bytes.
func prefix(str []byte, n uint64) []byte {
	if uint64(len(str)) > n {
		return str[:n]
	}
	return str
}

// strings2 reads the two strings addressed by the first two operands.
func (e *Engine) strings2() (a, b []byte, arg [5]uint64, err error) {
	arg, err = e.args(2)
	if err != nil {
		return
	}
	a, err = e.Image.CString(arg[0])
	if err != nil {
		return
	}
	b, err = e.Image.CString(arg[1])
	return
}

// strCmp pushes the comparison of two strings, optionally bounded by a
// length operand.
func strCmp(bounded bool) handler {
	return func(e *Engine) (err error) {
		a, b, arg, err := e.strings2()
		if err != nil {
			return
		}
		size := uint64(2 * WORD_SIZE)
		if bounded {
			arg, err = e.args(3)
			if err != nil {
				return
			}
			a, b = prefix(a, arg[2]), prefix(b, arg[2])
			size += WORD_SIZE
		}
		err = e.Stack.Push(cmpSign(a, b))
		if err != nil {
			return
		}
		e.advance(size)
		return
	}
}

// jmpStrCmp jumps when a string comparison matches an expected result.
func jmpStrCmp(bounded bool) handler {
	return func(e *Engine) (err error) {
		a, b, _, err := e.strings2()
		if err != nil {
			return
		}
		words := 4
		if bounded {
			words = 5
		}
		arg, err := e.args(words)
		if err != nil {
			return
		}
		expected, target := arg[2], arg[3]
		if bounded {
			a, b = prefix(a, arg[2]), prefix(b, arg[2])
			expected, target = arg[3], arg[4]
		}
		if cmpSign(a, b) == expected {
			e.Ip = target
			return
		}
		e.advance(uint64(words) * WORD_SIZE)
		return
	}
}

// opStrChr pushes the address of the first occurrence of a byte in a
// string, or 0 if absent. The terminator itself may be searched for.
func (e *Engine) opStrChr() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	c, err := e.argByte(WORD_SIZE)
	if err != nil {
		return
	}
	str, err := e.Image.CString(arg[0])
	if err != nil {
		return
	}
	var found uint64
	if c == 0 {
		found = arg[0] + uint64(len(str))
	} else if n := bytes.IndexByte(str, c); n >= 0 {
		found = arg[0] + uint64(n)
	}
	err = e.Stack.Push(found)
	if err != nil {
		return
	}
	e.advance(WORD_SIZE + 1)
	return
}

// opStrCspn pushes the length of the leading span of a that has no
// bytes in common with b.
func (e *Engine) opStrCspn() (err error) {
	a, b, _, err := e.strings2()
	if err != nil {
		return
	}
	var reject [256]bool
	for _, c := range b {
		reject[c] = true
	}
	span := len(a)
	for n, c := range a {
		if reject[c] {
			span = n
			break
		}
	}
	err = e.Stack.Push(uint64(span))
	if err != nil {
		return
	}
	e.advance(2 * WORD_SIZE)
	return
}

// opStrStr pushes the address of the first occurrence of b in a, or 0
// if absent.
func (e *Engine) opStrStr() (err error) {
	a, b, arg, err := e.strings2()
	if err != nil {
		return
	}
	var found uint64
	if n := bytes.Index(a, b); n >= 0 {
		found = arg[0] + uint64(n)
	}
	err = e.Stack.Push(found)
	if err != nil {
		return
	}
	e.advance(2 * WORD_SIZE)
	return
}

// strCat appends a string, optionally bounded by a length operand.
func strCat(bounded bool) handler {
	return func(e *Engine) (err error) {
		a, b, arg, err := e.strings2()
		if err != nil {
			return
		}
		size := uint64(2 * WORD_SIZE)
		if bounded {
			arg, err = e.args(3)
			if err != nil {
				return
			}
			b = prefix(b, arg[2])
			size += WORD_SIZE
		}
		tail := bytes.Clone(b)
		dst, err := e.region(arg[0]+uint64(len(a)), uint64(len(tail))+1)
		if err != nil {
			return
		}
		copy(dst, tail)
		dst[len(tail)] = 0
		e.advance(size)
		return
	}
}

func (e *Engine) opStrLen() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	str, err := e.Image.CString(arg[0])
	if err != nil {
		return
	}
	err = e.Stack.Push(uint64(len(str)))
	if err != nil {
		return
	}
	e.advance(WORD_SIZE)
	return
}
