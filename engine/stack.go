package engine

import (
	"encoding/binary"
)

const (
	WORD_SIZE      = 8      // Size of a stack slot.
	STACK_SIZE     = 120000 // Default data stack size, in bytes.
	RECUR_LIMIT    = 200    // Default return stack depth.
	GCOL_THRESHOLD = 2400   // Default stk_gcol depth threshold, in bytes.
)

// Stack is the word-granular data stack. Slot 0 is the empty base slot;
// Sp is the byte offset of the top slot.
type Stack struct {
	Data []byte
	Sp   uint64
}

// NewStack creates a data stack of size bytes.
func NewStack(size uint64) Stack {
	if size < 2*WORD_SIZE {
		size = 2 * WORD_SIZE
	}
	return Stack{Data: make([]byte, size)}
}

func (s *Stack) slot(offset uint64) []byte {
	return s.Data[offset : offset+WORD_SIZE]
}

// Empty returns true if only the base slot is present.
func (s *Stack) Empty() bool {
	return s.Sp == 0
}

// Full returns true if no further slot can be pushed.
func (s *Stack) Full() bool {
	return s.Sp+2*WORD_SIZE > uint64(len(s.Data))
}

// Depth in slots, excluding the base slot.
func (s *Stack) Depth() int {
	return int(s.Sp / WORD_SIZE)
}

// Up moves the cursor up a slot without writing.
func (s *Stack) Up() (err error) {
	if s.Full() {
		return ErrStackFull
	}
	s.Sp += WORD_SIZE
	return
}

// Down moves the cursor down a slot without reading.
func (s *Stack) Down() (err error) {
	if s.Empty() {
		return ErrStackEmpty
	}
	s.Sp -= WORD_SIZE
	return
}

// Push a value in a new top slot.
func (s *Stack) Push(value uint64) (err error) {
	err = s.Up()
	if err != nil {
		return
	}
	binary.LittleEndian.PutUint64(s.slot(s.Sp), value)
	return
}

// Pop the top slot.
func (s *Stack) Pop() (value uint64, err error) {
	value, err = s.Peek()
	if err != nil {
		return
	}
	s.Sp -= WORD_SIZE
	return
}

// Peek at the top slot.
func (s *Stack) Peek() (value uint64, err error) {
	if s.Empty() {
		err = ErrStackEmpty
		return
	}
	value = binary.LittleEndian.Uint64(s.slot(s.Sp))
	return
}

// Peek2 returns the top slot and the slot below it.
func (s *Stack) Peek2() (top, below uint64, err error) {
	if s.Sp < 2*WORD_SIZE {
		err = ErrStackEmpty
		return
	}
	top = binary.LittleEndian.Uint64(s.slot(s.Sp))
	below = binary.LittleEndian.Uint64(s.slot(s.Sp - WORD_SIZE))
	return
}

// Set replaces the value of the top slot.
func (s *Stack) Set(value uint64) (err error) {
	if s.Empty() {
		return ErrStackEmpty
	}
	binary.LittleEndian.PutUint64(s.slot(s.Sp), value)
	return
}

// Bytes returns the n bytes starting offset bytes below the top slot.
// The slice aliases the stack.
func (s *Stack) Bytes(offset uint64, n uint64) (data []byte, err error) {
	addr := int64(s.Sp) - int64(offset)
	size := int64(len(s.Data))
	if addr < 0 || addr > size || int64(n) < 0 || int64(n) > size-addr {
		err = ErrStackRange
		return
	}
	data = s.Data[addr : addr+int64(n) : addr+int64(n)]
	return
}

// Reset the cursor to the base slot.
func (s *Stack) Reset() {
	s.Sp = 0
}

// Clear the stack contents, and reset the cursor.
func (s *Stack) Clear() {
	clear(s.Data)
	s.Sp = 0
}

// Return is the bounded return address stack. Slot 0 holds the
// program text base; Rp indexes the top slot.
type Return struct {
	Data []uint64
	Rp   int
}

// NewReturn creates a return stack of depth slots.
func NewReturn(depth int) Return {
	if depth < 1 {
		depth = 1
	}
	return Return{Data: make([]uint64, depth)}
}

// Push a return address.
func (r *Return) Push(addr uint64) (err error) {
	err = r.Up()
	if err != nil {
		return
	}
	r.Data[r.Rp] = addr
	return
}

// Pop a return address.
func (r *Return) Pop() (addr uint64, err error) {
	if r.Rp == 0 {
		err = ErrReturnEmpty
		return
	}
	addr = r.Data[r.Rp]
	r.Rp--
	return
}

// Up moves the cursor up a slot without writing.
func (r *Return) Up() (err error) {
	if r.Rp+1 >= len(r.Data) {
		return ErrReturnFull
	}
	r.Rp++
	return
}

// Down moves the cursor down a slot without reading.
func (r *Return) Down() (err error) {
	if r.Rp == 0 {
		return ErrReturnEmpty
	}
	r.Rp--
	return
}

// Reset the return stack to only the base slot, holding base.
func (r *Return) Reset(base uint64) {
	clear(r.Data)
	r.Data[0] = base
	r.Rp = 0
}
