// Package eval walks an indexed AST against one scenario, for any scalar
// type satisfying numeric.Scalar[T]. With T = numeric.Real it prices; with
// T = numeric.Number every arithmetic step also appends to a tape, and a
// backward pass on the result yields sensitivities to every leaf.
//
// Eval is a post-order expression visitor: it recurses into a node's
// arguments before combining their results, so it produces the same value
// whether T records a tape or not. Exec dispatches the four statement
// kinds (Assign, Pays, If, For); If and For re-enter statement execution
// through the self field rather than calling Exec directly, so that an
// embedding evaluator (package fuzzy) can intercept nested statements —
// Go has no virtual methods, so this explicit indirection stands in for
// the double-dispatch override the original visitor framework gave for
// free.
package eval
