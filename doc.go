// Package tapescript is a scripted derivatives pricing engine with
// reverse-mode algorithmic differentiation (AAD).
//
// 🚀 What is tapescript?
//
//	A small domain-specific language for dated events (assignments,
//	conditionals, loops, PAYS statements) evaluated against simulated
//	market paths, paired with a reverse-mode AD tape so that a single
//	backward pass yields every sensitivity at once:
//
//	  • Tape + differentiable scalar — record arithmetic, propagate adjoints
//	  • Tokenizer + recursive-descent parser — script text to AST
//	  • Variable indexer, generic evaluator, fuzzy-condition rewrite
//
// ✨ Why this shape?
//
//   - Generic       — the evaluator is generic over the scalar type: plain
//     reals for pricing, the AAD Number for sensitivities
//   - Deterministic — one tape per evaluation, no hidden global state
//   - Differentiable branches — fuzzy rewriting gives conditionals a
//     non-zero gradient across their boundary
//
// Under the hood, everything is organized under one package per concern:
//
//	arena/     — append-only, stable-address block storage
//	tape/      — AD tape: nodes, recording, backward propagation
//	numeric/   — the differentiable scalar (Number) and plain scalar (Real)
//	token/     — tokenizer
//	ast/       — the AST node shape shared by every pass
//	parser/    — recursive-descent, precedence-climbing parser
//	indexer/   — variable slot assignment
//	eval/      — generic strict evaluator
//	fuzzy/     — if-processor + fuzzy evaluator
//	scenario/  — scenario/sample types supplied by an external simulator
//	product/   — facade: parse → index → pre-process → evaluate
//
// Quick example — a single PAYS event:
//
//	VALUE PAYS SPOT;
//
// evaluated against spot=100, numeraire=1 yields VALUE=100, and under AAD
// also yields ∂VALUE/∂spot=1 after one backward pass.
//
//	go get github.com/vlaran-quant/tapescript
package tapescript
