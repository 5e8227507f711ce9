// Package runner hosts interpreters, bounding runaway programs with a
// step budget and a deadline.
package runner

import (
	"context"
	"errors"
	"time"

	"github.com/ezrec/bft/io"
	"github.com/ezrec/bft/program"
	"github.com/ezrec/bft/translate"
)

var f = translate.From

var (
	// Hosting errors
	ErrStepLimit = errors.New(f("step limit exceeded"))
	ErrDeadline  = errors.New(f("deadline exceeded"))
)

// CHECK_INTERVAL is the number of steps between context checks.
const CHECK_INTERVAL = 4096

// Machine is a tickable interpreter.
type Machine interface {
	Load(prog *program.Program, ch io.Channel)
	Tick() (done bool, err error)
	Halted() bool
}

// Runner bounds a run. Zero values mean unbounded.
type Runner struct {
	MaxSteps int
	Timeout  time.Duration
}

// Run loads prog into machine and ticks it until it halts, fails, or
// exceeds a bound.
func (rn Runner) Run(ctx context.Context, machine Machine, prog *program.Program, ch io.Channel) (steps int, err error) {
	if rn.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rn.Timeout)
		defer cancel()
	}

	machine.Load(prog, ch)

	for !machine.Halted() {
		if steps%CHECK_INTERVAL == 0 {
			if cerr := ctx.Err(); cerr != nil {
				err = errors.Join(ErrDeadline, cerr)
				return
			}
		}

		if rn.MaxSteps > 0 && steps >= rn.MaxSteps {
			err = ErrStepLimit
			return
		}

		_, err = machine.Tick()
		if err != nil {
			return
		}
		steps++
	}

	return
}
