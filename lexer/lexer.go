package lexer

import (
	"fmt"
)

// LexError reports that no token rule matches the input at Offset.
type LexError struct {
	Offset int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error: unexpected character at position %d", e.Offset)
}

// New initializes a Lexer object over the given input
func New(input string) *Lexer {
	return &Lexer{in: input}
}

// Lexer represents a lexical analyzer. It holds a cursor into the input and
// produces one token per Advance call.
type Lexer struct {
	in  string
	pos int
}

// Reset rewinds the cursor to the beginning of the input.
func (lx *Lexer) Reset() {
	lx.pos = 0
}

// Advance returns the next token starting at the current cursor offset, or
// the EOF token (offset = len(input)) once the cursor reaches the end.
// Whitespace is consumed but never surfaced. If no rule matches, Advance
// returns a *LexError carrying the exact cursor offset.
func (lx *Lexer) Advance() (Token, error) {
	for {
		if lx.pos >= len(lx.in) {
			return NewToken(TokenEOF, "", len(lx.in)), nil
		}

		matched := false
		for _, rule := range matchRules {
			n := rule.match(lx.in, lx.pos)
			if n == 0 {
				continue
			}

			start := lx.pos
			lx.pos += n
			matched = true

			if rule.tt == TokenWhitespace {
				break
			}
			if rule.tt == TokenAtom {
				return NewToken(rule.tt, lx.in[start:start+n], start), nil
			}
			return NewToken(rule.tt, "", start), nil
		}

		if !matched {
			return Token{}, &LexError{Offset: lx.pos}
		}
	}
}

// Tokenize returns all the tokens within the input, ending with the EOF
// token, or an error if a token can't be identified.
func Tokenize(in string) ([]Token, error) {
	tokens := []Token{}

	lx := New(in)
	for {
		tok, err := lx.Advance()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}
}
