// Package engine executes tyson bytecode images.
//
// The engine is a register/stack hybrid: a word-granular data stack, a
// bounded return stack, a table cursor (tdx), a single loop register set
// and four fast jump registers c1-c4. Every instruction is a single
// opcode byte followed by little-endian operands; all addresses are byte
// offsets into the image, and every access is bounds checked.
//
// Faults (stack underflow or overflow, out-of-image access, integer
// division by zero, invalid opcodes) stop the engine with EXIT_FAULT and
// return an error joined with the ErrOpcode that raised it.
//
// When Traced, each instruction is logged before it executes, and while
// SingleStep is set the Monitor is consulted first.
package engine
