package interp

import (
	"errors"

	"github.com/ezrec/bft/translate"
)

var f = translate.From

var (
	// Interpreter errors
	ErrNoProgram = errors.New(f("no program loaded"))
	ErrNoChannel = errors.New(f("no channel attached"))
	ErrIo        = errors.New(f("i/o failure"))
	ErrEofPolicy = errors.New(f("unknown end of input policy"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Name   string
	Line   int
	Column int
	Ip     int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("%v:%d:%d: %v", err.Name, err.Line, err.Column, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
