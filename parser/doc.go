// Package parser turns a token stream into the tagged-union ast.Node trees
// the rest of the module walks: recursive-descent, precedence-climbing for
// expressions, and a small statement grammar for scripted events.
//
// What & why:
//
//	Grounded on the original recursive-descent parser: each precedence
//	level is its own function (parseExpr '+'/'-', parseExprL2 '*'/'/',
//	parseExprL3 '^', parseExprL4 unary +/-, parens, then consts/lists/
//	builtins/vars), and conditions get their own two-level OR/AND grammar
//	with a shared parenthesization helper. Every elementary condition
//	(=, !=, <, >, <=, >=) canonicalizes to one of three ast kinds
//	(Equal/Not+Equal/Sup/SupEqual) over a Sub(lhs,rhs) argument, matching
//	the original's buildEqual/buildDifferent/buildSuperior/buildSupEqual.
package parser
