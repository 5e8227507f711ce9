package program

import (
	"errors"

	"github.com/ezrec/bft/translate"
)

var f = translate.From

var (
	// Loop resolution errors
	ErrLoopUnopened = errors.New(f("] without matching ["))
	ErrLoopUnclosed = errors.New(f("[ without matching ]"))
)

// ErrUnbalancedLoop reports the position of a bracket that has no match.
type ErrUnbalancedLoop struct {
	Name   string
	Line   int
	Column int
	Err    error
}

func (err *ErrUnbalancedLoop) Error() string {
	return f("%v:%d:%d: unbalanced loop: %v", err.Name, err.Line, err.Column, err.Err)
}

func (err *ErrUnbalancedLoop) Unwrap() error {
	return err.Err
}

func (err *ErrUnbalancedLoop) Is(target error) (ok bool) {
	_, ok = target.(*ErrUnbalancedLoop)
	return
}

// ErrSource reports a failure reading program source.
type ErrSource struct {
	Name string
	Err  error
}

func (err *ErrSource) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrSource) Unwrap() error {
	return err.Err
}
