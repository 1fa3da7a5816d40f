package config

import (
	"github.com/ezrec/tyson/translate"
)

var f = translate.From

// ErrKeyUnknown reports a configuration key with no setting.
type ErrKeyUnknown string

func (err ErrKeyUnknown) Error() string {
	return f("unknown configuration key %q", string(err))
}
