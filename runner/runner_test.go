package runner

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/bft/interp"
	"github.com/ezrec/bft/io"
	"github.com/ezrec/bft/program"
	"github.com/ezrec/bft/tape"
)

func TestRunner_Complete(t *testing.T) {
	assert := assert.New(t)

	prog, err := program.ParseString("ok", "+++.")
	require.NoError(t, err)

	output := &bytes.Buffer{}
	it := interp.New[tape.Byte](0, false)

	steps, err := Runner{MaxSteps: 4}.Run(context.Background(), it, prog, &io.Stream{Output: output})
	assert.NoError(err)
	assert.Equal(4, steps)
	assert.Equal([]byte{3}, output.Bytes())
}

func TestRunner_StepLimit(t *testing.T) {
	assert := assert.New(t)

	prog, err := program.ParseString("spin", "+[]")
	require.NoError(t, err)

	it := interp.New[tape.Byte](0, false)
	steps, err := Runner{MaxSteps: 1000}.Run(context.Background(), it, prog, &io.Stream{})
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(1000, steps)
	assert.Equal(1000, it.Ticks)
	assert.False(it.Halted())
}

func TestRunner_Deadline(t *testing.T) {
	assert := assert.New(t)

	prog, err := program.ParseString("spin", "+[]")
	require.NoError(t, err)

	it := interp.New[tape.Byte](0, false)
	_, err = Runner{Timeout: 10 * time.Millisecond}.Run(context.Background(), it, prog, &io.Stream{})
	assert.ErrorIs(err, ErrDeadline)
	assert.ErrorIs(err, context.DeadlineExceeded)
}

func TestRunner_Cancel(t *testing.T) {
	assert := assert.New(t)

	prog, err := program.ParseString("ok", "+")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	it := interp.New[tape.Byte](0, false)
	steps, err := Runner{}.Run(ctx, it, prog, &io.Stream{})
	assert.ErrorIs(err, ErrDeadline)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(0, steps)
}

func TestRunner_RuntimeError(t *testing.T) {
	assert := assert.New(t)

	prog, err := program.ParseString("under", "<")
	require.NoError(t, err)

	it := interp.New[tape.Byte](0, false)
	_, err = Runner{MaxSteps: 10}.Run(context.Background(), it, prog, &io.Stream{})
	assert.ErrorIs(err, tape.ErrTapeUnderflow)

	var rt *interp.ErrRuntime
	assert.True(errors.As(err, &rt))
}
