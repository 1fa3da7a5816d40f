// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/tyson/image"
	"github.com/ezrec/tyson/opcode"
)

// Section of the image that assembled output is placed in.
type Section int

const (
	SECTION_TEXT = Section(0) // Program text.
	SECTION_POOL = Section(1) // Constant pool.
	SECTION_HEAP = Section(2) // Zeroed heap.
)

func (s Section) String() string {
	return [...]string{"text", "pool", "heap"}[s]
}

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Symbol is a label location, relative to its section.
type Symbol struct {
	Section Section
	Offset  uint64
}

// fixup is a word of assembled output that holds a label address.
type fixup struct {
	index  int    // Index into Opcode.
	offset int    // Offset of the word in Opcode.Data.
	label  string // Label to resolve.
	addend uint64 // Value added to the label address.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":      "0",
	"WORD_SIZE":   fmt.Sprintf("%d", image.WORD_SIZE),
	"HEADER_SIZE": fmt.Sprintf("%d", image.HEADER_SIZE),
	"TEXT_BASE":   fmt.Sprintf("%d", image.TEXT_BASE),
}

// Assembler is a single pass macro assembler for tyson images.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes and data.

	predefine map[string]string   // Predefines
	Label     map[string]Symbol   // Map of labels to section locations.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	section Section   // Current output section.
	offset  [3]uint64 // Next offset in each section.
	start   *uint64   // Text offset of the entry point.
	fixups  []fixup   // Label references to link.
	args    []string  // Program arguments.

	expansion int // Count of macro expansions.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// emit appends assembled output to the current section.
func (asm *Assembler) emit(lineno int, words []string, code *opcode.Opcode, data []byte, refs []fixup) {
	index := len(asm.Opcode)
	for _, ref := range refs {
		ref.index = index
		asm.fixups = append(asm.fixups, ref)
	}

	op := Opcode{
		LineNo:  lineno,
		Words:   slices.Clone(words),
		Data:    data,
		Section: asm.section,
		Offset:  asm.offset[asm.section],
	}
	if code != nil {
		op.Code = *code
		op.Instruction = true
	}
	asm.Opcode = append(asm.Opcode, op)
	asm.offset[asm.section] += uint64(len(data))
}

// word encodes a word operand, which may be a label reference.
func (asm *Assembler) word(data []byte, refs []fixup, word string) ([]byte, []fixup, error) {
	value, err := valueOf(word)
	if err == nil {
		return binary.LittleEndian.AppendUint64(data, value), refs, nil
	}

	label, addend := word, uint64(0)
	if plus := strings.LastIndexByte(word, '+'); plus > 0 {
		addend, err = valueOf(word[plus+1:])
		if err != nil {
			return data, refs, err
		}
		label = word[:plus]
	}
	if isNumeric(label) || strings.ContainsAny(label, "\"'$()") {
		return data, refs, ErrParseNumber(word)
	}

	refs = append(refs, fixup{offset: len(data), label: label, addend: addend})
	return binary.LittleEndian.AppendUint64(data, 0), refs, nil
}

// sized encodes a value in size bytes, range checked.
func sized(data []byte, word string, size int) ([]byte, error) {
	value, err := valueOf(word)
	if err != nil {
		return data, err
	}
	if size < 8 {
		limit := uint64(1) << (8 * size)
		signed := int64(value)
		if value >= limit && (signed >= 0 || signed < -int64(limit/2)) {
			return data, ErrParseRange(word)
		}
	}
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	if size > 8 && int64(value) < 0 {
		for n := 8; n < size; n++ {
			buf[n] = 0xff
		}
	}
	return append(data, buf[:size]...), nil
}

// parseInstruction assembles a mnemonic and its operands.
func (asm *Assembler) parseInstruction(words []string, lineno int) (err error) {
	code, ok := opcode.Lookup(words[0])
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	data := []byte{byte(code)}
	var refs []fixup
	args := words[1:]

	layout := code.Layout()
	for n, kind := range layout {
		last := n == len(layout)-1
		switch kind {
		case opcode.OPERAND_BYTES, opcode.OPERAND_WORDS, opcode.OPERAND_TABLE:
			if !last {
				panic("counted operand must be last")
			}
		default:
			if len(args) == 0 {
				err = ErrOpcodeValueMissing
				return
			}
		}

		switch kind {
		case opcode.OPERAND_BYTE, opcode.OPERAND_HWORD, opcode.OPERAND_DWORD, opcode.OPERAND_QWORD:
			data, err = sized(data, args[0], kind.Size())
			args = args[1:]
		case opcode.OPERAND_WORD:
			data, refs, err = asm.word(data, refs, args[0])
			args = args[1:]
		case opcode.OPERAND_STRING:
			var str string
			str, err = unquote(args[0])
			data = append(append(data, str...), 0)
			args = args[1:]
		case opcode.OPERAND_BYTES:
			var payload []byte
			payload, err = bytesOf(args)
			data = binary.LittleEndian.AppendUint64(data, uint64(len(payload)))
			data = append(data, payload...)
			args = nil
		case opcode.OPERAND_WORDS:
			data = binary.LittleEndian.AppendUint64(data, uint64(len(args)))
			fallthrough
		case opcode.OPERAND_TABLE:
			for _, arg := range args {
				data, refs, err = asm.word(data, refs, arg)
				if err != nil {
					return
				}
			}
			args = nil
		}
		if err != nil {
			return
		}
	}

	if len(args) != 0 {
		err = ErrOpcodeExtraArgs
		return
	}

	asm.emit(lineno, words, &code, data, refs)

	return
}

// bytesOf encodes byte values, or a single quoted string.
func bytesOf(args []string) (data []byte, err error) {
	if len(args) == 1 && strings.HasPrefix(args[0], "\"") {
		var str string
		str, err = unquote(args[0])
		data = []byte(str)
		return
	}
	for _, arg := range args {
		data, err = sized(data, arg, 1)
		if err != nil {
			return
		}
	}
	return
}

// parseDirective handles assembler directives that emit or place output.
func (asm *Assembler) parseDirective(words []string, lineno int) (err error) {
	args := words[1:]
	var data []byte
	var refs []fixup

	switch words[0] {
	case ".text":
		asm.section = SECTION_TEXT
		return
	case ".pool":
		asm.section = SECTION_POOL
		return
	case ".start":
		if len(args) != 0 {
			err = ErrOpcodeExtraArgs
			return
		}
		if asm.start != nil {
			err = ErrStartDuplicate
			return
		}
		start := asm.offset[SECTION_TEXT]
		asm.start = &start
		return
	case ".heap":
		// .heap [NAME] SIZE
		if len(args) != 1 && len(args) != 2 {
			err = ErrDirectiveSyntax
			return
		}
		var size uint64
		size, err = valueOf(args[len(args)-1])
		if err != nil {
			return
		}
		if len(args) == 2 {
			err = asm.define(args[0], Symbol{Section: SECTION_HEAP, Offset: asm.offset[SECTION_HEAP]})
			if err != nil {
				return
			}
		}
		asm.offset[SECTION_HEAP] += size
		return
	case ".arg":
		for _, arg := range args {
			var str string
			str, err = unquote(arg)
			if err != nil {
				return
			}
			asm.args = append(asm.args, str)
		}
		return
	case ".byte":
		data, err = bytesOf(args)
	case ".word":
		for _, arg := range args {
			data, refs, err = asm.word(data, refs, arg)
			if err != nil {
				return
			}
		}
	case ".real":
		for _, arg := range args {
			var value float64
			value, err = strconv.ParseFloat(arg, 64)
			if err != nil {
				err = ErrParseNumber(arg)
				return
			}
			data = binary.LittleEndian.AppendUint64(data, math.Float64bits(value))
		}
	case ".string":
		for _, arg := range args {
			var str string
			str, err = unquote(arg)
			if err != nil {
				return
			}
			data = append(append(data, str...), 0)
		}
	case ".zero":
		if len(args) != 1 {
			err = ErrDirectiveSyntax
			return
		}
		var size uint64
		size, err = valueOf(args[0])
		if err != nil {
			return
		}
		data = make([]byte, size)
	default:
		err = ErrDirectiveInvalid
		return
	}
	if err != nil {
		return
	}

	if len(data) == 0 {
		err = ErrOpcodeValueMissing
		return
	}

	asm.emit(lineno, words, nil, data, refs)

	return
}

// define a label at a location.
func (asm *Assembler) define(label string, sym Symbol) (err error) {
	_, ok := asm.Label[label]
	if ok {
		err = ErrLabelDuplicate
		return
	}
	asm.Label[label] = sym
	return
}

// parseLine parses a single line into words, defining labels and equates
// and expanding macros.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line, err = asm.expand(line)
	if err != nil {
		return
	}

	words, err = splitWords(line)
	if err != nil || len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		err = asm.define(label, Symbol{Section: asm.section, Offset: asm.offset[asm.section]})
		if err != nil {
			return
		}
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = args[n]
		}
		defer func() { asm.Equate = old_equate }()

		// '@' expands to a prefix unique to this expansion.
		asm.expansion++
		tag := fmt.Sprintf("%v_%v_", name, asm.expansion)

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", tag)
			words, err = asm.parseLine(line, lineno)
			if err == nil {
				err = asm.parseWords(words, lineno)
			}
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// parseWords assembles the words of a line.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	if len(words) == 0 {
		return
	}

	if strings.HasPrefix(words[0], ".") {
		return asm.parseDirective(words, lineno)
	}

	return asm.parseInstruction(words, lineno)
}

// Parse parses an input stream into a linked Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.Label = make(map[string]Symbol, 16)
	asm.Macro = make(map[string](*Macro))
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}
	asm.section = SECTION_TEXT
	clear(asm.offset[:])
	asm.start = nil
	asm.fixups = nil
	asm.args = nil
	asm.expansion = 0

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(text)
		var words []string
		words, err = splitWords(line)
		if err != nil {
			return
		}

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
				Args:   words[2:],
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	line = ""
	prog, err = asm.link()

	return
}

// link resolves label references and lays out the image.
func (asm *Assembler) link() (prog *Program, err error) {
	var base [3]uint64
	base[SECTION_TEXT] = image.TEXT_BASE
	base[SECTION_POOL] = base[SECTION_TEXT] + asm.offset[SECTION_TEXT]
	base[SECTION_HEAP] = base[SECTION_POOL] + asm.offset[SECTION_POOL]

	address := func(sym Symbol) uint64 {
		return base[sym.Section] + sym.Offset
	}

	if asm.start == nil {
		sym, ok := asm.Label["start"]
		if !ok || sym.Section != SECTION_TEXT {
			err = ErrStartMissing
			return
		}
		asm.start = &sym.Offset
	}

	// Final linking of labels.
	for _, ref := range asm.fixups {
		sym, ok := asm.Label[ref.label]
		if !ok {
			err = ErrLabelMissing(ref.label)
			return
		}
		op := &asm.Opcode[ref.index]
		binary.LittleEndian.PutUint64(op.Data[ref.offset:], address(sym)+ref.addend)
	}

	layout := image.Layout{
		Start:    *asm.start,
		HeapSize: asm.offset[SECTION_HEAP],
	}
	for n := range asm.Opcode {
		op := &asm.Opcode[n]
		op.Ip = address(Symbol{Section: op.Section, Offset: op.Offset})
		switch op.Section {
		case SECTION_TEXT:
			layout.Text = append(layout.Text, op.Data...)
		case SECTION_POOL:
			layout.Pool = append(layout.Pool, op.Data...)
		}
	}
	for _, arg := range asm.args {
		layout.Args = append(layout.Args, []byte(arg))
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Layout:  layout,
		Symbols: maps.Clone(asm.Label),
	}
	prog.base = base

	if asm.Verbose {
		for name, sym := range prog.Symbols {
			log.Printf("%v: %v+%v = %#x", name, sym.Section, sym.Offset, address(sym))
		}
	}

	return
}

// ParseString is a convenience wrapper around Parse.
func (asm *Assembler) ParseString(text string) (prog *Program, err error) {
	return asm.Parse(strings.NewReader(text))
}
