// Package script runs Starlark batch scripts that lex, check and run bft
// programs.
//
// Builtins:
//
//	lex(source)    -> string of the instructions in source
//	check(source)  -> None, or fails with the unbalanced loop
//	run(source, input="", tape_size=0, expandable=True, cell_bits=8,
//	    eof="keep", max_steps=0) -> bytes written by the program
package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	bftio "github.com/ezrec/bft/io"
	"github.com/ezrec/bft/interp"
	"github.com/ezrec/bft/program"
	"github.com/ezrec/bft/runner"
	"github.com/ezrec/bft/tape"
	"github.com/ezrec/bft/translate"
)

var f = translate.From

var (
	// Script errors
	ErrCellBits = errors.New(f("cell_bits must be 8 or 16"))
)

// Exec runs the script src (a string, []byte or io.Reader, or nil to read
// filename) and returns its globals. print() writes to out.
func Exec(filename string, src any, out io.Writer) (globals starlark.StringDict, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(out, msg)
		},
	}

	opts := syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
	}
	globals, err = starlark.ExecFileOptions(&opts, thread, filename, src, Builtins())
	return
}

// Builtins returns the predeclared functions for scripts.
func Builtins() starlark.StringDict {
	return starlark.StringDict{
		"lex":   starlark.NewBuiltin("lex", lexBuiltin),
		"check": starlark.NewBuiltin("check", checkBuiltin),
		"run":   starlark.NewBuiltin("run", runBuiltin),
	}
}

func lexBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var source string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &source); err != nil {
		return nil, err
	}

	var sb strings.Builder
	for _, tok := range program.Lex(source) {
		sb.WriteString(tok.String())
	}

	return starlark.String(sb.String()), nil
}

func checkBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var source string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &source); err != nil {
		return nil, err
	}

	_, err := program.ParseString(thread.Name, source)
	if err != nil {
		return nil, err
	}

	return starlark.None, nil
}

// runOptions are the keyword arguments of run().
type runOptions struct {
	source     string
	input      string
	tapeSize   int
	expandable bool
	cellBits   int
	eof        string
	maxSteps   int
}

func runBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	opts := runOptions{
		expandable: true,
		cellBits:   8,
		eof:        interp.EOF_KEEP.String(),
	}

	err := starlark.UnpackArgs(fn.Name(), args, kwargs,
		"source", &opts.source,
		"input?", &opts.input,
		"tape_size?", &opts.tapeSize,
		"expandable?", &opts.expandable,
		"cell_bits?", &opts.cellBits,
		"eof?", &opts.eof,
		"max_steps?", &opts.maxSteps,
	)
	if err != nil {
		return nil, err
	}

	output, err := run(thread.Name, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}

	return starlark.Bytes(output), nil
}

// run parses and runs one program with the given options.
func run(name string, opts runOptions) (output []byte, err error) {
	prog, err := program.ParseString(name, opts.source)
	if err != nil {
		return
	}

	eof, err := interp.ParseEofPolicy(opts.eof)
	if err != nil {
		return
	}

	tape_output := &bytes.Buffer{}
	ch := &bftio.Stream{
		Input:  strings.NewReader(opts.input),
		Output: tape_output,
	}

	rn := runner.Runner{MaxSteps: opts.maxSteps}

	switch opts.cellBits {
	case 8:
		it := interp.New[tape.Byte](opts.tapeSize, opts.expandable)
		it.Eof = eof
		_, err = rn.Run(context.Background(), it, prog, ch)
	case 16:
		it := interp.New[tape.Word](opts.tapeSize, opts.expandable)
		it.Eof = eof
		_, err = rn.Run(context.Background(), it, prog, ch)
	default:
		err = ErrCellBits
	}

	output = tape_output.Bytes()
	return
}
