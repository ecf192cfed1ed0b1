// Package token tokenizes script source text for the parser.
//
// What & why:
//
//	Splits on whitespace and on the single-character tokens
//	( ) [ ] , ; : = + - * / ^ < > !, treating ==, !=, <=, >= as compound
//	two-character tokens. Identifiers are case-folded to upper-case so
//	the grammar's keywords (IF, THEN, PAYS, ...) and variable names are
//	matched uniformly regardless of how the script author capitalized
//	them. Numbers match [0-9]+(\.[0-9]*)? or \.[0-9]+.
package token
