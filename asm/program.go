package asm

import (
	"iter"

	"github.com/ezrec/tyson/image"
	"github.com/ezrec/tyson/opcode"
)

// Opcode is a single assembled instruction or data directive.
type Opcode struct {
	LineNo      int           // Source line number.
	Ip          uint64        // Image offset, once linked.
	Words       []string      // Source words.
	Code        opcode.Opcode // Instruction opcode.
	Instruction bool          // Set if Code is valid, clear for data.
	Data        []byte        // Encoded bytes.
	Section     Section       // Output section.
	Offset      uint64        // Offset in the output section.
}

// Program is a linked assembly.
type Program struct {
	Opcodes []Opcode          // Assembled output, in source order.
	Layout  image.Layout      // Image sections.
	Symbols map[string]Symbol // Labels.

	base [3]uint64
}

// Image builds the program image.
func (prog *Program) Image() *image.Image {
	return image.Build(prog.Layout)
}

// Address returns the image offset of a label.
func (prog *Program) Address(label string) (addr uint64, ok bool) {
	sym, ok := prog.Symbols[label]
	if ok {
		addr = prog.base[sym.Section] + sym.Offset
	}
	return
}

// Debug returns the assembled output that covers an image offset.
func (prog *Program) Debug(ip uint64) (op *Opcode) {
	for n := range prog.Opcodes {
		candidate := &prog.Opcodes[n]
		if ip >= candidate.Ip && ip < candidate.Ip+uint64(len(candidate.Data)) {
			op = candidate
			break
		}
	}

	return
}

// LineNo returns the source line for an image offset, or 0 if unknown.
func (prog *Program) LineNo(ip uint64) int {
	op := prog.Debug(ip)
	if op == nil {
		return 0
	}
	return op.LineNo
}

// Instructions iterates over the instructions by image offset.
func (prog *Program) Instructions() iter.Seq2[uint64, opcode.Opcode] {
	return func(yield func(ip uint64, code opcode.Opcode) bool) {
		for _, op := range prog.Opcodes {
			if !op.Instruction {
				continue
			}
			if !yield(op.Ip, op.Code) {
				return
			}
		}
	}
}
