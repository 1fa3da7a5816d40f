package engine

import (
	"encoding/binary"
)

func wordOf(data []byte) uint64 {
	return binary.LittleEndian.Uint64(data)
}

func putWord(data []byte, value uint64) {
	binary.LittleEndian.PutUint64(data, value)
}

// args reads the first n operand words that follow the opcode byte.
func (e *Engine) args(n int) (words [5]uint64, err error) {
	for i := range n {
		words[i], err = e.Image.Word(e.Ip + 1 + uint64(i)*WORD_SIZE)
		if err != nil {
			return
		}
	}
	return
}

// argByte reads the operand byte at offset off past the opcode byte.
func (e *Engine) argByte(off uint64) (byte, error) {
	return e.Image.Byte(e.Ip + 1 + off)
}

// argBytes returns the n operand bytes at offset off past the opcode byte.
func (e *Engine) argBytes(off uint64, n uint64) ([]byte, error) {
	return e.Image.Bytes(e.Ip+1+off, n)
}

// advance moves the instruction pointer past the opcode and size
// bytes of operands.
func (e *Engine) advance(size uint64) {
	e.Ip += 1 + size
}
