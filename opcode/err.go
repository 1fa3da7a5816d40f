package opcode

import (
	"errors"

	"github.com/ezrec/tyson/translate"
)

var f = translate.From

var (
	ErrDecodeInvalid   = errors.New(f("opcode invalid"))
	ErrDecodeTruncated = errors.New(f("instruction truncated"))
)
