package engine

// pushConst pushes a literal.
func pushConst(value uint64) handler {
	return func(e *Engine) (err error) {
		err = e.Stack.Push(value)
		if err != nil {
			return
		}
		e.advance(0)
		return
	}
}

// overwriteConst replaces the top of the stack with a literal.
func overwriteConst(value uint64) handler {
	return func(e *Engine) (err error) {
		err = e.Stack.Set(value)
		if err != nil {
			return
		}
		e.advance(0)
		return
	}
}

func (e *Engine) opStkPsh() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	value, err := e.Image.Word(arg[0])
	if err != nil {
		return
	}
	err = e.Stack.Push(value)
	if err != nil {
		return
	}
	e.advance(WORD_SIZE)
	return
}

func (e *Engine) opStkPshc() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	err = e.Stack.Push(arg[0])
	if err != nil {
		return
	}
	e.advance(WORD_SIZE)
	return
}

func (e *Engine) opStkOvwr() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	value, err := e.Image.Word(arg[0])
	if err != nil {
		return
	}
	err = e.Stack.Set(value)
	if err != nil {
		return
	}
	e.advance(WORD_SIZE)
	return
}

func (e *Engine) opStkOvwrc() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	err = e.Stack.Set(arg[0])
	if err != nil {
		return
	}
	e.advance(WORD_SIZE)
	return
}

func (e *Engine) opStkStor() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	value, err := e.Stack.Peek()
	if err != nil {
		return
	}
	err = e.Image.SetWord(arg[0], value)
	if err != nil {
		return
	}
	e.advance(WORD_SIZE)
	return
}

func (e *Engine) opStkPop() (err error) {
	err = e.opStkStor()
	if err != nil {
		return
	}
	_, err = e.Stack.Pop()
	return
}

// opStkTapsh replaces the top of the stack with the word it addresses.
func (e *Engine) opStkTapsh() (err error) {
	addr, err := e.Stack.Peek()
	if err != nil {
		return
	}
	value, err := e.Image.Word(addr)
	if err != nil {
		return
	}
	err = e.Stack.Set(value)
	if err != nil {
		return
	}
	e.advance(0)
	return
}

// dup pushes n copies of the top of the stack.
func dup(n int) handler {
	return func(e *Engine) (err error) {
		value, err := e.Stack.Peek()
		if err != nil {
			return
		}
		for range n {
			err = e.Stack.Push(value)
			if err != nil {
				return
			}
		}
		e.advance(0)
		return
	}
}

func (e *Engine) opStkXcht() (err error) {
	top, below, err := e.Stack.Peek2()
	if err != nil {
		return
	}
	putWord(e.Stack.slot(e.Stack.Sp), below)
	putWord(e.Stack.slot(e.Stack.Sp-WORD_SIZE), top)
	e.advance(0)
	return
}

// opStkSpoffs pushes the new stack cursor offset.
func (e *Engine) opStkSpoffs() (err error) {
	err = e.Stack.Up()
	if err != nil {
		return
	}
	err = e.Stack.Set(e.Stack.Sp)
	if err != nil {
		return
	}
	e.advance(0)
	return
}

// opStkSave copies the whole stack buffer into the image.
func (e *Engine) opStkSave() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	dst, err := e.region(arg[0], uint64(len(e.Stack.Data)))
	if err != nil {
		return
	}
	copy(dst, e.Stack.Data)
	e.advance(WORD_SIZE)
	return
}

// opStkLoad copies the whole stack buffer from the image.
func (e *Engine) opStkLoad() (err error) {
	arg, err := e.args(1)
	if err != nil {
		return
	}
	src, err := e.region(arg[0], uint64(len(e.Stack.Data)))
	if err != nil {
		return
	}
	copy(e.Stack.Data, src)
	e.advance(WORD_SIZE)
	return
}

func (e *Engine) opStkUp() (err error) {
	err = e.Stack.Up()
	if err != nil {
		return
	}
	e.advance(0)
	return
}

func (e *Engine) opStkDwn() (err error) {
	err = e.Stack.Down()
	if err != nil {
		return
	}
	e.advance(0)
	return
}

func (e *Engine) opStkRst() (err error) {
	e.Stack.Reset()
	e.advance(0)
	return
}

func (e *Engine) opStkClr() (err error) {
	e.Stack.Clear()
	e.advance(0)
	return
}

// stackSet copies from the image into the stack, relative to the top.
func stackSet(counted bool) handler {
	return func(e *Engine) (err error) {
		words := 2
		if counted {
			words = 3
		}
		arg, err := e.args(words)
		if err != nil {
			return
		}
		size := uint64(WORD_SIZE)
		if counted {
			size = arg[2]
		}
		dst, err := e.Stack.Bytes(arg[0], size)
		if err != nil {
			return
		}
		src, err := e.region(arg[1], size)
		if err != nil {
			return
		}
		copy(dst, src)
		e.advance(uint64(words) * WORD_SIZE)
		return
	}
}

// opStkSetc stores an immediate word into the stack, relative to the top.
func (e *Engine) opStkSetc() (err error) {
	arg, err := e.args(2)
	if err != nil {
		return
	}
	dst, err := e.Stack.Bytes(arg[0], WORD_SIZE)
	if err != nil {
		return
	}
	putWord(dst, arg[1])
	e.advance(2 * WORD_SIZE)
	return
}

// opStkSetcn stores counted immediate bytes into the stack, relative to
// the top.
func (e *Engine) opStkSetcn() (err error) {
	arg, err := e.args(2)
	if err != nil {
		return
	}
	data, err := e.argBytes(2*WORD_SIZE, arg[1])
	if err != nil {
		return
	}
	dst, err := e.Stack.Bytes(arg[0], arg[1])
	if err != nil {
		return
	}
	copy(dst, data)
	e.advance(2*WORD_SIZE + arg[1])
	return
}

// stackMove applies fn to two stack regions, relative to the top.
func stackMove(counted bool, fn func(dst, src []byte)) handler {
	return func(e *Engine) (err error) {
		words := 2
		if counted {
			words = 3
		}
		arg, err := e.args(words)
		if err != nil {
			return
		}
		size := uint64(WORD_SIZE)
		if counted {
			size = arg[2]
		}
		dst, err := e.Stack.Bytes(arg[0], size)
		if err != nil {
			return
		}
		src, err := e.Stack.Bytes(arg[1], size)
		if err != nil {
			return
		}
		fn(dst, src)
		e.advance(uint64(words) * WORD_SIZE)
		return
	}
}

// heapExchange swaps an image region with a stack region.
func heapExchange(counted bool) handler {
	return func(e *Engine) (err error) {
		words := 2
		if counted {
			words = 3
		}
		arg, err := e.args(words)
		if err != nil {
			return
		}
		size := uint64(WORD_SIZE)
		if counted {
			size = arg[2]
		}
		heap, err := e.region(arg[0], size)
		if err != nil {
			return
		}
		stack, err := e.Stack.Bytes(arg[1], size)
		if err != nil {
			return
		}
		swap(heap, stack)
		e.advance(uint64(words) * WORD_SIZE)
		return
	}
}

// opStkGcol reports the stack depth against the collection threshold.
func (e *Engine) opStkGcol() (err error) {
	if e.Traced && e.Stack.Sp > e.Limits.GcolThreshold {
		e.Log.Printf("tyson: stk_gcol: depth %d over threshold %d", e.Stack.Sp, e.Limits.GcolThreshold)
	}
	e.advance(0)
	return
}

func (e *Engine) opRstkUp() (err error) {
	err = e.Return.Up()
	if err != nil {
		return
	}
	e.advance(0)
	return
}

func (e *Engine) opRstkDwn() (err error) {
	err = e.Return.Down()
	if err != nil {
		return
	}
	e.advance(0)
	return
}

func (e *Engine) opRstkRst() (err error) {
	e.Return.Rp = 0
	e.advance(0)
	return
}
