// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package interp implements the fetch-execute engine of the bft machine.
package interp

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/bft/io"
	"github.com/ezrec/bft/program"
	"github.com/ezrec/bft/tape"
)

// Interpreter runs programs against a tape it owns.
type Interpreter[C tape.Cell[C]] struct {
	Verbose bool      // Set to enable verbose logging.
	Eof     EofPolicy // End of input behaviour for INPUT.

	Tape  *tape.Tape[C] // Tape memory.
	Ip    int           // Index of the next instruction.
	Ticks int           // Instructions executed since the last reset.

	Program *program.Program // Currently loaded program.
	Channel io.Channel       // Input and output channel.
}

// New creates an interpreter with a tape of size cells (0 for the
// default size).
func New[C tape.Cell[C]](size int, expandable bool) (it *Interpreter[C]) {
	it = &Interpreter[C]{
		Tape: tape.New[C](size, expandable),
	}

	return
}

// Load a program and channel to run from its first instruction. The tape
// is kept, so programs loaded in turn share memory.
func (it *Interpreter[C]) Load(prog *program.Program, ch io.Channel) {
	if it.Verbose {
		log.Printf("interp: load %v, %d instructions", prog.Name, prog.Len())
	}

	it.Program = prog
	it.Channel = ch
	it.Ip = 0
}

// Reset the instruction pointer, tick counter and tape.
func (it *Interpreter[C]) Reset() {
	if it.Verbose {
		log.Printf("interp: reset")
	}

	it.Ip = 0
	it.Ticks = 0
	it.Tape.Reset()
}

// Halted returns true once the loaded program has run to its end.
func (it *Interpreter[C]) Halted() bool {
	return it.Program != nil && it.Ip >= it.Program.Len()
}

// Run loads prog and executes it to completion.
func (it *Interpreter[C]) Run(prog *program.Program, ch io.Channel) (err error) {
	it.Load(prog, ch)

	for done, err := it.Tick(); !done; done, err = it.Tick() {
		if err != nil {
			return err
		}
	}

	return
}

// Tick executes a single instruction. done is set once the program has
// halted. On error the interpreter state is left as at the failure.
func (it *Interpreter[C]) Tick() (done bool, err error) {
	prog := it.Program
	if prog == nil {
		err = ErrNoProgram
		return
	}

	if it.Halted() {
		done = true
		return
	}

	ip := it.Ip
	defer func() {
		if err != nil {
			tok := prog.Token(ip)
			err = &ErrRuntime{
				Name:   prog.Name,
				Line:   tok.Line,
				Column: tok.Column,
				Ip:     ip,
				Err:    err,
			}
		}
	}()

	next_ip, err := it.Execute(ip)
	if err != nil {
		return
	}

	it.Ip = next_ip
	it.Ticks++

	done = it.Halted()
	return
}

// Execute the instruction at ip, and return the next instruction pointer.
func (it *Interpreter[C]) Execute(ip int) (next_ip int, err error) {
	prog := it.Program
	tok := prog.Token(ip)
	tp := it.Tape

	if it.Verbose {
		log.Printf("%v: %v %v", prog.Position(ip), tok.Instruction, tp)
	}

	next_ip = ip + 1

	switch tok.Instruction {
	case program.MOVE_RIGHT:
		err = tp.MoveRight()
	case program.MOVE_LEFT:
		err = tp.MoveLeft()
	case program.INCREMENT:
		tp.Increment()
	case program.DECREMENT:
		tp.Decrement()
	case program.OUTPUT:
		if it.Channel == nil {
			err = errors.Join(ErrIo, ErrNoChannel)
			return
		}
		err = it.Channel.Send(tp.Read().Byte())
		if err != nil {
			err = errors.Join(ErrIo, err)
		}
	case program.INPUT:
		if it.Channel == nil {
			err = errors.Join(ErrIo, ErrNoChannel)
			return
		}
		var value byte
		var ok bool
		value, ok, err = it.Channel.Receive()
		if err != nil {
			err = errors.Join(ErrIo, err)
			return
		}
		if ok {
			tp.Write(tp.Read().FromByte(value))
		} else if it.Eof == EOF_ZERO {
			var zero C
			tp.Write(zero)
		}
	case program.LOOP_START:
		if tp.IsZero() {
			next_ip = it.jump(ip) + 1
		}
	case program.LOOP_END:
		if !tp.IsZero() {
			next_ip = it.jump(ip) + 1
		}
	default:
		panic(fmt.Sprintf("unknown instruction %v", tok.Instruction))
	}

	return
}

// jump returns the matching bracket of a resolved loop token.
func (it *Interpreter[C]) jump(ip int) int {
	target, ok := it.Program.Jump(ip)
	if !ok {
		panic(fmt.Sprintf("unresolved loop at %v", it.Program.Position(ip)))
	}
	return target
}

// String returns the current interpreter state.
func (it *Interpreter[C]) String() (text string) {
	position := "-"
	if it.Program != nil {
		position = it.Program.Position(it.Ip)
	}

	text += fmt.Sprintf("% 6s: %v\n", "ip", it.Ip)
	text += fmt.Sprintf("% 6s: %v\n", "at", position)
	text += fmt.Sprintf("% 6s: %v\n", "ticks", it.Ticks)
	text += fmt.Sprintf("% 6s: %v\n", "tape", it.Tape)

	return
}
