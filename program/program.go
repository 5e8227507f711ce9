package program

import (
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Program is an immutable token sequence with its resolved loop jump table.
type Program struct {
	Name   string  // Display name, used in diagnostics.
	Tokens []Token // Tokens in source order.

	jump []int // Matching bracket index of each loop token, -1 otherwise.
}

// New resolves the loops of tokens and returns the program.
// It fails with *ErrUnbalancedLoop if the brackets are not well-nested.
func New(name string, tokens []Token) (prog *Program, err error) {
	jump := make([]int, len(tokens))

	var pending Stack[int]
	for ip, tok := range tokens {
		jump[ip] = -1
		switch tok.Instruction {
		case LOOP_START:
			pending.Push(ip)
		case LOOP_END:
			start, ok := pending.Pop()
			if !ok {
				err = &ErrUnbalancedLoop{Name: name, Line: tok.Line, Column: tok.Column, Err: ErrLoopUnopened}
				return
			}
			jump[start] = ip
			jump[ip] = start
		}
	}

	if start, ok := pending.Bottom(); ok {
		tok := tokens[start]
		err = &ErrUnbalancedLoop{Name: name, Line: tok.Line, Column: tok.Column, Err: ErrLoopUnclosed}
		return
	}

	prog = &Program{
		Name:   name,
		Tokens: tokens,
		jump:   jump,
	}

	return
}

// Parse lexes and resolves a program read from r.
func Parse(name string, r io.Reader) (prog *Program, err error) {
	var tokens []Token
	for tok, rerr := range NewLexer(r).All() {
		if rerr != nil {
			err = &ErrSource{Name: name, Err: rerr}
			return
		}
		tokens = append(tokens, tok)
	}

	return New(name, tokens)
}

// ParseString lexes and resolves an in-memory program.
func ParseString(name string, src string) (prog *Program, err error) {
	return New(name, Lex(src))
}

// Load lexes and resolves the program at path, named by its base name.
func Load(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Parse(filepath.Base(path), inf)
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Tokens)
}

// Token returns the token at ip.
func (prog *Program) Token(ip int) Token {
	return prog.Tokens[ip]
}

// Jump returns the index of the bracket matching the loop token at ip.
func (prog *Program) Jump(ip int) (target int, ok bool) {
	if ip < 0 || ip >= len(prog.jump) {
		return
	}

	target = prog.jump[ip]
	ok = target >= 0
	return
}

// Position returns "name:line:column" of the token at ip. The halted
// position, ip == Len(), reports the name alone.
func (prog *Program) Position(ip int) string {
	if ip < 0 || ip >= len(prog.Tokens) {
		return prog.Name
	}

	return prog.Name + ":" + prog.Tokens[ip].Position()
}

// All returns an iterator over the tokens and their indices.
func (prog *Program) All() iter.Seq2[int, Token] {
	return func(yield func(ip int, tok Token) bool) {
		for ip, tok := range prog.Tokens {
			if !yield(ip, tok) {
				return
			}
		}
	}
}

// String returns the program with all comments removed.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, tok := range prog.Tokens {
		sb.WriteString(tok.Instruction.String())
	}
	return sb.String()
}
