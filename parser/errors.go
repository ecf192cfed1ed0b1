package parser

import "fmt"

// Error reports a grammar failure at a specific token position.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parser: %s (at offset %d)", e.Msg, e.Pos)
}

func errf(pos int, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
