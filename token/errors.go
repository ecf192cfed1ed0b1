package token

import "fmt"

// Error reports a lexical failure at a specific rune offset.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("token: %s (at offset %d)", e.Msg, e.Pos)
}

func newError(pos int, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
