package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(4 * WORD_SIZE)
	assert.True(s.Empty())
	assert.Equal(0, s.Depth())

	_, err := s.Pop()
	assert.ErrorIs(err, ErrStackEmpty)
	_, err = s.Peek()
	assert.ErrorIs(err, ErrStackEmpty)
	assert.ErrorIs(s.Set(1), ErrStackEmpty)

	for n := range 3 {
		assert.NoError(s.Push(uint64(n + 10)))
	}
	assert.True(s.Full())
	assert.ErrorIs(s.Push(99), ErrStackFull)
	assert.Equal(3, s.Depth())
	assert.Equal(uint64(3*WORD_SIZE), s.Sp)

	top, below, err := s.Peek2()
	assert.NoError(err)
	assert.Equal(uint64(12), top)
	assert.Equal(uint64(11), below)

	data, err := s.Bytes(WORD_SIZE, 2*WORD_SIZE)
	assert.NoError(err)
	assert.Equal([]byte{11, 0, 0, 0, 0, 0, 0, 0, 12, 0, 0, 0, 0, 0, 0, 0}, data)

	_, err = s.Bytes(4*WORD_SIZE, WORD_SIZE)
	assert.ErrorIs(err, ErrStackRange)
	_, err = s.Bytes(0, 2*WORD_SIZE)
	assert.ErrorIs(err, ErrStackRange)

	value, err := s.Pop()
	assert.NoError(err)
	assert.Equal(uint64(12), value)

	assert.NoError(s.Up())
	value, err = s.Peek()
	assert.NoError(err)
	assert.Equal(uint64(12), value)

	s.Reset()
	assert.True(s.Empty())
	assert.NoError(s.Up())
	value, err = s.Peek()
	assert.NoError(err)
	assert.Equal(uint64(10), value)

	s.Clear()
	assert.NoError(s.Up())
	value, err = s.Peek()
	assert.NoError(err)
	assert.Equal(uint64(0), value)

	s.Reset()
	assert.ErrorIs(s.Down(), ErrStackEmpty)
	_, _, err = s.Peek2()
	assert.ErrorIs(err, ErrStackEmpty)
}

func TestReturn(t *testing.T) {
	assert := assert.New(t)

	r := NewReturn(3)
	r.Reset(0x60)
	assert.Equal(uint64(0x60), r.Data[0])

	_, err := r.Pop()
	assert.ErrorIs(err, ErrReturnEmpty)
	assert.ErrorIs(r.Down(), ErrReturnEmpty)

	assert.NoError(r.Push(0x100))
	assert.NoError(r.Push(0x200))
	assert.ErrorIs(r.Push(0x300), ErrReturnFull)
	assert.Equal(2, r.Rp)

	addr, err := r.Pop()
	assert.NoError(err)
	assert.Equal(uint64(0x200), addr)

	assert.NoError(r.Up())
	assert.Equal(uint64(0x200), r.Data[r.Rp])

	r.Reset(0x80)
	assert.Equal(0, r.Rp)
	assert.Equal([]uint64{0x80, 0, 0}, r.Data)
}
