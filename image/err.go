package image

import (
	"errors"

	"github.com/ezrec/tyson/translate"
)

var f = translate.From

var (
	ErrHeaderShort  = errors.New(f("image header short"))
	ErrStartInvalid = errors.New(f("start address outside image"))
)

// ErrSizeMismatch reports an image whose length differs from its header.
type ErrSizeMismatch struct {
	Declared uint64
	Actual   uint64
}

func (err *ErrSizeMismatch) Error() string {
	return f("image size mismatch: header %v, file %v", err.Declared, err.Actual)
}

// ErrAddress reports an access outside of the image.
type ErrAddress struct {
	Addr uint64
	Len  uint64
	Size uint64
}

func (err *ErrAddress) Error() string {
	return f("image access [%#x+%v] outside of %#x bytes", err.Addr, err.Len, err.Size)
}
