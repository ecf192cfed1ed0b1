// Package tape implements the reverse-mode AD tape: an append-only log
// of recorded arithmetic operations and the single backward pass that
// turns it into every input's adjoint.
//
// What & why:
//
//	Every differentiable-scalar operation (see package numeric) records
//	one Node here: its local partial derivatives and direct references
//	to its operands' adjoint storage. Backward propagation then needs no
//	AST walk at all — it is a single reverse scan of the node arena,
//	accumulating adjoint*local into each child's adjoint slice.
//
// Determinism:
//
//	Node append order equals forward execution order. Backward
//	propagation requires strict reverse iteration; any reordering breaks
//	correctness (a child's index is always strictly less than its
//	parent's, enforced by construction since a node can only reference
//	operands recorded before it).
//
// Concurrency:
//
//	One Tape per goroutine for the life of one evaluation. Tape arenas
//	are not safe for concurrent use; share the AST and variable table
//	read-only across threads, each with its own Tape.
package tape
