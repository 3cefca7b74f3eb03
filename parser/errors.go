package parser

import (
	"fmt"
)

// ParseError reports that the token at Offset is not valid for the current
// grammar position. End-of-input errors carry the EOF offset (len(input)).
type ParseError struct {
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: unexpected token at position %d", e.Offset)
}
