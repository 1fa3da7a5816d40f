package engine

// Table cursor directions.
const (
	forward  = 1
	backward = -1
)

// step moves the table cursor by width bytes in a direction.
func (e *Engine) step(width uint64, dir int) {
	if dir == forward {
		e.Tdx += width
	} else {
		e.Tdx -= width
	}
}

func (e *Engine) opSetTdxFc() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	e.Tdx = arg[0]
	e.advance(WORD_SIZE)
	return
}

// opSetTdxFh loads the table cursor from a word in the image.
func (e *Engine) opSetTdxFh() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	e.Tdx, err = e.Image.Word(arg[0])
	if err != nil {
		return
	}
	e.advance(WORD_SIZE)
	return
}

// opSetTdxFs loads the table cursor from the top of the stack.
func (e *Engine) opSetTdxFs() (err error) {
	e.Tdx, err = e.Stack.Peek()
	if err != nil {
		return
	}
	e.advance(0)
	return
}

func tdxStep(width uint64, dir int) handler {
	return func(e *Engine) (err error) {
		e.step(width, dir)
		e.advance(0)
		return
	}
}

// tablePut stores an immediate at the cursor.
func tablePut(width uint64, dir int) handler {
	return func(e *Engine) (err error) {
		data, err := e.argBytes(0, width)
		if err != nil {
			return
		}
		dst, err := e.region(e.Tdx, width)
		if err != nil {
			return
		}
		copy(dst, data)
		e.step(width, dir)
		e.advance(width)
		return
	}
}

// tableCpy copies from an addressed region to the cursor.
func tableCpy(width uint64, dir int) handler {
	return func(e *Engine) (err error) {
		arg, err := e.args(1)
		if err != nil {
			return
		}
		src, err := e.region(arg[0], width)
		if err != nil {
			return
		}
		dst, err := e.region(e.Tdx, width)
		if err != nil {
			return
		}
		copy(dst, src)
		e.step(width, dir)
		e.advance(WORD_SIZE)
		return
	}
}

// tablePop pops the top of the stack into the cursor.
func tablePop(width uint64, dir int) handler {
	return func(e *Engine) (err error) {
		dst, err := e.region(e.Tdx, width)
		if err != nil {
			return
		}
		value, err := e.Stack.Pop()
		if err != nil {
			return
		}
		var slot [WORD_SIZE]byte
		putWord(slot[:], value)
		copy(dst, slot[:width])
		e.step(width, dir)
		e.advance(0)
		return
	}
}

// tablePsh pushes the value at the cursor, zero-extended.
func tablePsh(width uint64, dir int) handler {
	return func(e *Engine) (err error) {
		src, err := e.region(e.Tdx, width)
		if err != nil {
			return
		}
		var slot [WORD_SIZE]byte
		copy(slot[:], src)
		err = e.Stack.Push(wordOf(slot[:]))
		if err != nil {
			return
		}
		e.step(width, dir)
		e.advance(0)
		return
	}
}
