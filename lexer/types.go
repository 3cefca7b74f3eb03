package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenLambda               // Backslash: "\"
	TokenDot                  // Dot: "."
	TokenAtom                 // One or more ASCII letters ([a-zA-Z])
	TokenLParen               // Open parenthesis: "("
	TokenRParen               // Close parenthesis: ")"
	TokenWhitespace           // Space, tab, linefeed or carriage return (never surfaced)
	TokenEOF                  // End of input
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenLambda:     "lambda",
	TokenDot:        "dot",
	TokenAtom:       "atom",
	TokenLParen:     "open_paren",
	TokenRParen:     "close_paren",
	TokenWhitespace: "whitespace",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// matchRule reports how many bytes of in, starting exactly at offset, the
// rule consumes. Zero means no match.
type matchRule func(in string, offset int) int

func matchByte(b byte) matchRule {
	return func(in string, offset int) int {
		if in[offset] == b {
			return 1
		}
		return 0
	}
}

func matchRun(pred func(byte) bool) matchRule {
	return func(in string, offset int) int {
		n := 0
		for offset+n < len(in) && pred(in[offset+n]) {
			n++
		}
		return n
	}
}

// matchRules are tried in order at the cursor. The character classes are
// disjoint, so at most one rule can match at any given offset.
var matchRules = []struct {
	tt    TokenType
	match matchRule
}{
	{TokenLambda, matchByte('\\')},
	{TokenDot, matchByte('.')},
	{TokenAtom, matchRun(isLetter)},
	{TokenLParen, matchByte('(')},
	{TokenRParen, matchByte(')')},
	{TokenWhitespace, matchRun(isWhitespace)},
}
