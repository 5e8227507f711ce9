package program

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// Lexer turns source text into tokens. Characters outside ALPHABET are
// comments; they produce no token but still advance the position.
// Columns count runes, and an invalid UTF-8 byte counts as one column.
type Lexer struct {
	reader *bufio.Reader
	line   int
	column int
}

// NewLexer creates a lexer reading source from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(r),
		line:   1,
		column: 1,
	}
}

// Next returns the next token, or io.EOF at the end of the source.
func (lex *Lexer) Next() (tok Token, err error) {
	for {
		var c rune
		c, _, err = lex.reader.ReadRune()
		if err != nil {
			return
		}

		line, column := lex.line, lex.column
		if c == '\n' {
			lex.line++
			lex.column = 1
		} else {
			lex.column++
		}

		inst, ok := InstructionOf(c)
		if !ok {
			continue
		}

		tok = Token{Line: line, Column: column, Instruction: inst}
		return
	}
}

// All returns an iterator over the remaining tokens. A read failure is
// yielded once, as the final element.
func (lex *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(tok Token, err error) bool) {
		for {
			tok, err := lex.Next()
			if err == io.EOF {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

// Lex returns the tokens of src, in source order.
func Lex(src string) (tokens []Token) {
	for tok := range NewLexer(strings.NewReader(src)).All() {
		tokens = append(tokens, tok)
	}

	return
}
