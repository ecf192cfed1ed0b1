// Package ast defines the single node shape every pass (parser, indexer,
// if-processor, evaluator, debugger) walks and mutates.
//
// What & why:
//
//	Per spec.md §9's own design note, the double-dispatch visitor
//	framework a node-per-type hierarchy would need is naturally a tagged
//	union with pattern matching on Kind: Node is one struct with a Kind
//	tag, a shared Args slice of children, and a handful of
//	variant-specific fields (Const, Name, Index, Eps, FirstElse). Every
//	pass is then a self-contained function with a switch over Kind,
//	rather than a 26-method Visitor interface implemented by as many
//	concrete node types.
package ast
