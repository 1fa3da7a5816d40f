package debugger

import (
	"errors"

	"github.com/ezrec/tyson/translate"
)

var f = translate.From

var (
	ErrCommandEmpty   = errors.New(f("command empty"))
	ErrCommandInvalid = errors.New(f("invalid choice input, try again"))
	ErrCommandArgs    = errors.New(f("too many command arguments"))
)

// ErrArgument reports an unparseable command argument.
type ErrArgument string

func (err ErrArgument) Error() string {
	return f("invalid argument %q", string(err))
}
