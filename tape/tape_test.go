package tape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_New(t *testing.T) {
	assert := assert.New(t)

	tp := New[Byte](0, false)
	assert.Equal(DEFAULT_SIZE, tp.Len())
	assert.Equal(0, tp.Cursor())
	assert.False(tp.Expandable())
	assert.True(tp.IsZero())

	tp = New[Byte](16, true)
	assert.Equal(16, tp.Len())
	assert.True(tp.Expandable())
}

func TestTape_Wrap(t *testing.T) {
	assert := assert.New(t)

	tp := New[Byte](1, false)
	tp.Write(255)
	tp.Increment()
	assert.Equal(Byte(0), tp.Read())
	assert.True(tp.IsZero())
	tp.Decrement()
	assert.Equal(Byte(255), tp.Read())

	tw := New[Word](1, false)
	tw.Decrement()
	assert.Equal(Word(0xffff), tw.Read())
	assert.Equal(byte(0xff), tw.Read().Byte())
	tw.Increment()
	assert.Equal(Word(0), tw.Read())
	tw.Write(0x1ff)
	tw.Increment()
	assert.Equal(Word(0x200), tw.Read())
	assert.Equal(byte(0), tw.Read().Byte())
}

func TestTape_Overflow(t *testing.T) {
	assert := assert.New(t)

	tp := New[Byte](1, false)
	assert.ErrorIs(tp.MoveRight(), ErrTapeOverflow)
	assert.Equal(0, tp.Cursor())
	assert.Equal(1, tp.Len())

	tp = New[Byte](3, false)
	assert.NoError(tp.MoveRight())
	assert.NoError(tp.MoveRight())
	assert.ErrorIs(tp.MoveRight(), ErrTapeOverflow)
	assert.Equal(2, tp.Cursor())
}

func TestTape_Underflow(t *testing.T) {
	assert := assert.New(t)

	for _, expandable := range []bool{false, true} {
		tp := New[Byte](4, expandable)
		assert.ErrorIs(tp.MoveLeft(), ErrTapeUnderflow)
		assert.Equal(0, tp.Cursor())
		assert.Equal(4, tp.Len())

		assert.NoError(tp.MoveRight())
		assert.NoError(tp.MoveLeft())
		assert.ErrorIs(tp.MoveLeft(), ErrTapeUnderflow)
	}
}

func TestTape_Grow(t *testing.T) {
	assert := assert.New(t)

	tp := New[Byte](1, true)
	for n := range 100 {
		for range n % 7 {
			tp.Increment()
		}
		assert.NoError(tp.MoveRight())
		assert.Less(tp.Cursor(), tp.Len())
	}
	assert.Equal(100, tp.Cursor())

	cells := tp.Cells()
	for n := range 100 {
		assert.Equal(Byte(n%7), cells[n], "cell %d", n)
	}
	for _, cell := range cells[100:] {
		assert.Equal(Byte(0), cell)
	}
}

func TestTape_GrowLimit(t *testing.T) {
	assert := assert.New(t)

	tp := New[Byte](GROW_LIMIT*2, true)
	for range GROW_LIMIT*2 - 1 {
		assert.NoError(tp.MoveRight())
	}
	assert.Equal(GROW_LIMIT*2, tp.Len())

	assert.NoError(tp.MoveRight())
	assert.Equal(GROW_LIMIT*3, tp.Len())
}

func TestTape_Reset(t *testing.T) {
	assert := assert.New(t)

	tp := New[Byte](2, true)
	tp.Increment()
	assert.NoError(tp.MoveRight())
	assert.NoError(tp.MoveRight())
	tp.Write(42)
	assert.Equal(4, tp.Len())

	tp.Reset()
	assert.Equal(0, tp.Cursor())
	assert.Equal(2, tp.Len())
	assert.Equal([]Byte{0, 0}, tp.Cells())

	assert.NoError(tp.MoveRight())
	assert.NoError(tp.MoveRight())
	assert.Equal(Byte(0), tp.Read())
}

func TestTape_Cells(t *testing.T) {
	assert := assert.New(t)

	tp := New[Byte](2, false)
	cells := tp.Cells()
	cells[0] = 9
	assert.Equal(Byte(0), tp.Read())
}

func TestTape_String(t *testing.T) {
	assert := assert.New(t)

	tp := New[Byte](3, false)
	tp.Increment()
	assert.NoError(tp.MoveRight())
	tp.Write(7)
	assert.Equal("cursor 1/3: 1 [7] 0", tp.String())
}
