package program

// Instruction is one of the eight tape language instructions.
type Instruction int

//go:generate go tool stringer -linecomment -type=Instruction
const (
	MOVE_RIGHT = Instruction(0) // >
	MOVE_LEFT  = Instruction(1) // <
	INCREMENT  = Instruction(2) // +
	DECREMENT  = Instruction(3) // -
	OUTPUT     = Instruction(4) // .
	INPUT      = Instruction(5) // ,
	LOOP_START = Instruction(6) // [
	LOOP_END   = Instruction(7) // ]
)

// ALPHABET is the set of instruction characters, in Instruction order.
const ALPHABET = "><+-.,[]"

// InstructionOf returns the instruction for a source character.
func InstructionOf(c rune) (inst Instruction, ok bool) {
	switch c {
	case '>':
		inst = MOVE_RIGHT
	case '<':
		inst = MOVE_LEFT
	case '+':
		inst = INCREMENT
	case '-':
		inst = DECREMENT
	case '.':
		inst = OUTPUT
	case ',':
		inst = INPUT
	case '[':
		inst = LOOP_START
	case ']':
		inst = LOOP_END
	default:
		return
	}

	ok = true
	return
}

// IsLoop returns true for the two loop bracket instructions.
func (inst Instruction) IsLoop() bool {
	return inst == LOOP_START || inst == LOOP_END
}
