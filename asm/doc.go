// Package asm implements the assembler for tyson images.
//
// Source lines take the form
//
//	[label:] mnemonic operand...   ; comment
//
// Operands are numbers (Go integer or float syntax, floats encode their
// IEEE-754 bits), 'c' character literals, "quoted" strings, labels with an
// optional +offset, and $(expr) compile-time expressions evaluated with
// Starlark over the defined equates.
//
// Directives:
//
//	.equ NAME VALUE       define an equate
//	.macro NAME args...   begin a macro; '@' expands to a unique prefix
//	.endm                 end a macro
//	.start                mark the entry point (or define a start: label)
//	.text, .pool          select the program text or constant pool
//	.heap [NAME] SIZE     reserve zeroed heap bytes
//	.arg "text"...        append program arguments
//	.byte, .word, .real, .string, .zero N   emit data
package asm
