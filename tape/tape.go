// Package tape implements the linear cell memory of the bft machine.
package tape

import (
	"fmt"
	"slices"
)

const (
	DEFAULT_SIZE = 30_000 // Cells allocated when a size of 0 is requested.
	GROW_LIMIT   = 65_536 // Maximum cells added by a single growth step.
)

// Tape is a linear memory of cells addressed by a cursor. The cursor is
// always within the tape; an expandable tape grows rightward on demand.
type Tape[C Cell[C]] struct {
	cells      []C
	cursor     int
	expandable bool
	capacity   int
}

// New creates a zero-filled tape of size cells, or DEFAULT_SIZE if size
// is 0.
func New[C Cell[C]](size int, expandable bool) (tp *Tape[C]) {
	if size <= 0 {
		size = DEFAULT_SIZE
	}

	tp = &Tape[C]{
		cells:      make([]C, size),
		expandable: expandable,
		capacity:   size,
	}

	return
}

// Len returns the current number of cells.
func (tp *Tape[C]) Len() int {
	return len(tp.cells)
}

// Cursor returns the index of the current cell.
func (tp *Tape[C]) Cursor() int {
	return tp.cursor
}

// Expandable returns true if the tape grows on overflow.
func (tp *Tape[C]) Expandable() bool {
	return tp.expandable
}

// Cells returns a copy of the tape contents.
func (tp *Tape[C]) Cells() []C {
	return slices.Clone(tp.cells)
}

// MoveRight advances the cursor, growing an expandable tape as needed.
func (tp *Tape[C]) MoveRight() (err error) {
	next := tp.cursor + 1
	if next == len(tp.cells) {
		if !tp.expandable {
			err = ErrTapeOverflow
			return
		}
		tp.grow()
	}

	tp.cursor = next
	return
}

// grow appends a zero-filled batch, doubling the tape up to GROW_LIMIT
// cells at a time.
func (tp *Tape[C]) grow() {
	batch := min(max(len(tp.cells), 1), GROW_LIMIT)
	tp.cells = append(tp.cells, make([]C, batch)...)
}

// MoveLeft retreats the cursor. The tape never grows leftward.
func (tp *Tape[C]) MoveLeft() (err error) {
	if tp.cursor == 0 {
		err = ErrTapeUnderflow
		return
	}

	tp.cursor--
	return
}

// Increment the current cell, wrapping at its maximum.
func (tp *Tape[C]) Increment() {
	tp.cells[tp.cursor] = tp.cells[tp.cursor].Increment()
}

// Decrement the current cell, wrapping at zero.
func (tp *Tape[C]) Decrement() {
	tp.cells[tp.cursor] = tp.cells[tp.cursor].Decrement()
}

// Read returns the current cell.
func (tp *Tape[C]) Read() C {
	return tp.cells[tp.cursor]
}

// Write sets the current cell.
func (tp *Tape[C]) Write(value C) {
	tp.cells[tp.cursor] = value
}

// IsZero returns true if the current cell holds the zero value.
func (tp *Tape[C]) IsZero() bool {
	var zero C
	return tp.cells[tp.cursor] == zero
}

// Reset the tape to its initial size, zero-filled, with the cursor at 0.
func (tp *Tape[C]) Reset() {
	if cap(tp.cells) >= tp.capacity {
		tp.cells = tp.cells[:tp.capacity]
		clear(tp.cells)
	} else {
		tp.cells = make([]C, tp.capacity)
	}
	tp.cursor = 0
}

// String returns the cursor and the cells around it.
func (tp *Tape[C]) String() string {
	lo := max(tp.cursor-4, 0)
	hi := min(tp.cursor+5, len(tp.cells))

	text := fmt.Sprintf("cursor %d/%d:", tp.cursor, len(tp.cells))
	for n := lo; n < hi; n++ {
		if n == tp.cursor {
			text += fmt.Sprintf(" [%v]", tp.cells[n])
		} else {
			text += fmt.Sprintf(" %v", tp.cells[n])
		}
	}
	return text
}
