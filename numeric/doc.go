// Package numeric provides the two scalar types the evaluator runs over
// — Real, a plain float64, and Number, a tape-recording differentiable
// scalar — unified behind the Scalar constraint so the same generic
// evaluator works with either.
//
// What & why:
//
//	Number carries an explicit (non-owning) reference to the tape it
//	records onto, rather than a package-level thread-local pointer: every
//	recording operation finds exactly one tape because the caller always
//	has one in hand, not because of ambient global state. Every
//	arithmetic method computes the primal eagerly, records a node of the
//	right arity, and writes local partial derivatives and child-adjoint
//	references before returning — by the time a backward pass runs, the
//	tape is a flat record of (local partials, child adjoint slices); no
//	AST walk is needed to invert control flow.
//
// Determinism:
//
//	Comparisons (used only internally via Value, for condition branching)
//	never create tape nodes — ordering is a pure primal-value comparison.
package numeric
