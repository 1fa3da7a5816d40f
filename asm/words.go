// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// splitWords splits a line into words at spaces and commas, up to a ';'
// comment. Single and double quoted words are kept whole, quotes
// included.
func splitWords(line string) (words []string, err error) {
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}

	for n := 0; n < len(line); n++ {
		c := line[n]
		switch c {
		case ';':
			flush()
			return
		case ' ', '\t', ',':
			flush()
		case '"', '\'':
			end := n + 1
			for ; end < len(line) && line[end] != c; end++ {
				if line[end] == '\\' {
					end++
				}
			}
			if end >= len(line) {
				err = ErrQuoteUnterminated
				return
			}
			word.WriteString(line[n : end+1])
			n = end
		default:
			word.WriteByte(c)
		}
	}
	flush()

	return
}

// unquote decodes a double quoted word.
func unquote(word string) (str string, err error) {
	if len(word) < 2 || word[0] != '"' {
		err = ErrParseString(word)
		return
	}
	str, err = strconv.Unquote(word)
	if err != nil {
		err = ErrParseString(word)
	}
	return
}

// valueOf returns the value of a simple word.
// Integers may be signed; reals are encoded as IEEE 754 bits.
func valueOf(word string) (value uint64, err error) {
	if len(word) == 0 {
		err = ErrOpcodeValueMissing
		return
	}

	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}

	defer func() {
		if err == nil && invert {
			value = ^value
		}
	}()

	if len(word) >= 3 && word[0] == '\'' && word[len(word)-1] == '\'' {
		var r rune
		var tail string
		r, _, tail, err = strconv.UnquoteChar(word[1:len(word)-1], '\'')
		if err != nil || len(tail) != 0 || r > 0xff {
			err = ErrParseNumber(word)
			return
		}
		value = uint64(r)
		return
	}

	i64, err := strconv.ParseInt(word, 0, 64)
	if err == nil {
		value = uint64(i64)
		return
	}

	value, err = strconv.ParseUint(word, 0, 64)
	if err == nil {
		return
	}

	r64, err := strconv.ParseFloat(word, 64)
	if err == nil {
		value = math.Float64bits(r64)
		return
	}

	err = ErrParseNumber(word)
	return
}

// isNumeric returns true if the word is a literal value, not a symbol.
func isNumeric(word string) bool {
	_, err := valueOf(word)
	return err == nil
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value uint64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v uint64
		v, err = valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(int64(v))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), err)
		return
	}
	switch rc := dict["rc"].(type) {
	case starlark.Int:
		if i64, ok := rc.Int64(); ok {
			value = uint64(i64)
		} else if u64, ok := rc.Uint64(); ok {
			value = u64
		} else {
			err = ErrParseExpression(expr)
		}
	case starlark.Float:
		value = math.Float64bits(float64(rc))
	default:
		err = ErrParseExpression(expr)
	}
	return
}

var (
	reParen = regexp.MustCompile(`\$\([^\$]*\)`)
)

// expand replaces $(...) expressions in a line with their values.
func (asm *Assembler) expand(line string) (out string, err error) {
	out = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	return
}
