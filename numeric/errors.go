package numeric

import "errors"

// ErrTapeMismatch indicates two Number operands were produced by
// different tapes. Combining them would write a child-adjoint reference
// into an arena the consuming node's own tape does not own, silently
// corrupting backward propagation, so this is checked eagerly and
// panics rather than returning an error: it is always a programming
// bug (see spec.md §9's "verify no two numbers produced under different
// modes ever meet").
var ErrTapeMismatch = errors.New("numeric: Number operands belong to different tapes")
