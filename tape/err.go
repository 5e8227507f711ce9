package tape

import (
	"errors"

	"github.com/ezrec/bft/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrTapeUnderflow = errors.New(f("tape underflow"))
	ErrTapeOverflow  = errors.New(f("tape overflow"))
)
