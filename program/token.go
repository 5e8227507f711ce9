package program

import (
	"fmt"
)

// Token is an instruction with its 1-based source position.
type Token struct {
	Line        int
	Column      int
	Instruction Instruction
}

// String returns the instruction character of the token.
func (tok Token) String() string {
	return tok.Instruction.String()
}

// Position returns the token position as "line:column".
func (tok Token) Position() string {
	return fmt.Sprintf("%d:%d", tok.Line, tok.Column)
}
