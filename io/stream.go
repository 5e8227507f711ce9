package io

import (
	"errors"
	"io"
)

// Stream is a Channel over an io.Reader for input and an io.Writer for
// output. A nil Input is an empty stream; a nil Output refuses writes.
type Stream struct {
	Input  io.Reader
	Output io.Writer

	one [1]byte
}

var _ Channel = (*Stream)(nil)

// Receive reads one byte from the input.
func (st *Stream) Receive() (value byte, ok bool, err error) {
	if st.Input == nil {
		return
	}

	for range 100 {
		var n int
		n, err = st.Input.Read(st.one[:])
		if n == 1 {
			value = st.one[0]
			ok = true
			err = nil
			return
		}
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}

	err = io.ErrNoProgress
	return
}

// Send writes one byte to the output.
func (st *Stream) Send(value byte) (err error) {
	if st.Output == nil {
		err = ErrChannelClosed
		return
	}

	st.one[0] = value
	n, err := st.Output.Write(st.one[:])
	if err == nil && n != 1 {
		err = io.ErrShortWrite
	}

	return
}

// Flush flushes a buffered output.
func (st *Stream) Flush() (err error) {
	if flusher, ok := st.Output.(interface{ Flush() error }); ok {
		err = flusher.Flush()
	}

	return
}
