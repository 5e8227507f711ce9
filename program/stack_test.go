package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int]{}
	assert.True(s.Empty())

	s.Push(12)
	assert.False(s.Empty())
	assert.Equal(1, s.Len())
	assert.Equal(12, s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int]{}
	s.Push(3)
	s.Push(17)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(17, val)
	assert.Equal(1, s.Len())

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(3, val)
	assert.True(s.Empty())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int]{}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(0, val)
}

func TestStack_PeekBottom(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int]{}
	_, ok := s.Bottom()
	assert.False(ok)

	s.Push(4)
	s.Push(9)
	s.Push(11)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(11, val)

	val, ok = s.Bottom()
	assert.True(ok)
	assert.Equal(4, val)
	assert.Equal(3, s.Len())
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int]{}
	s.Reset()
	assert.True(s.Empty())

	s.Push(1)
	s.Push(2)
	s.Reset()
	assert.True(s.Empty())
	assert.Equal(0, len(s.Data))
}
