// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package opcode

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Arg is a single decoded operand.
type Arg struct {
	Kind  Operand // Operand encoding.
	Value uint64  // Scalar value, or element count of counted operands.
	Data  []byte  // Payload of wide, counted and string operands.
}

// String returns the assembler text of the operand.
func (arg Arg) String() string {
	switch arg.Kind {
	case OPERAND_BYTE, OPERAND_HWORD, OPERAND_WORD:
		return fmt.Sprintf("%#x", arg.Value)
	case OPERAND_STRING:
		return fmt.Sprintf("%q", string(arg.Data))
	case OPERAND_TABLE:
		return "[table]"
	}

	return fmt.Sprintf("%d:%x", arg.Value, arg.Data)
}

// Instruction is a decoded instruction, used for display only.
type Instruction struct {
	Ip   uint64 // Image offset of the opcode byte.
	Op   Opcode // Opcode.
	Args []Arg  // Operands, in encoding order.
	Size uint64 // Encoded size in bytes. A jump table adds nothing.
}

// String returns the assembler text of the instruction.
func (inst Instruction) String() string {
	words := []string{inst.Op.String()}
	for _, arg := range inst.Args {
		words = append(words, arg.String())
	}

	return strings.Join(words, " ")
}

// Decode the instruction at offset ip of data.
func Decode(data []byte, ip uint64) (inst Instruction, err error) {
	if ip >= uint64(len(data)) {
		err = ErrDecodeTruncated
		return
	}

	inst.Ip = ip
	inst.Op = Opcode(data[ip])
	if !inst.Op.Valid() {
		err = ErrDecodeInvalid
		return
	}

	pos := ip + 1
	take := func(n uint64) (buf []byte, ok bool) {
		if n > uint64(len(data)) || pos > uint64(len(data))-n {
			return
		}
		buf = data[pos : pos+n]
		pos += n
		ok = true
		return
	}

	for _, kind := range inst.Op.Layout() {
		arg := Arg{Kind: kind}
		var ok bool
		switch kind {
		case OPERAND_BYTE:
			var buf []byte
			buf, ok = take(1)
			if ok {
				arg.Value = uint64(buf[0])
			}
		case OPERAND_HWORD:
			var buf []byte
			buf, ok = take(4)
			if ok {
				arg.Value = uint64(binary.LittleEndian.Uint32(buf))
			}
		case OPERAND_WORD:
			var buf []byte
			buf, ok = take(8)
			if ok {
				arg.Value = binary.LittleEndian.Uint64(buf)
			}
		case OPERAND_DWORD, OPERAND_QWORD:
			arg.Data, ok = take(uint64(kind.Size()))
		case OPERAND_BYTES, OPERAND_WORDS:
			var buf []byte
			buf, ok = take(8)
			if !ok {
				break
			}
			arg.Value = binary.LittleEndian.Uint64(buf)
			size := arg.Value
			if kind == OPERAND_WORDS {
				if size > uint64(len(data))/8 {
					ok = false
					break
				}
				size *= 8
			}
			arg.Data, ok = take(size)
		case OPERAND_STRING:
			end := pos
			for end < uint64(len(data)) && data[end] != 0 {
				end++
			}
			if end >= uint64(len(data)) {
				break
			}
			arg.Data = data[pos:end]
			pos = end + 1
			ok = true
		case OPERAND_TABLE:
			ok = true
		}
		if !ok {
			err = ErrDecodeTruncated
			return
		}
		inst.Args = append(inst.Args, arg)
	}

	inst.Size = pos - ip

	return
}
