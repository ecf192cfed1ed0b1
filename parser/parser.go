package parser

import (
	"strconv"

	"github.com/vlaran-quant/tapescript/ast"
	"github.com/vlaran-quant/tapescript/token"
)

// cursor walks a flat token slice, tracking position for error messages.
type cursor struct {
	toks []token.Token
	i    int
}

func (c *cursor) eof() bool { return c.i >= len(c.toks) }

func (c *cursor) cur() token.Token { return c.toks[c.i] }

// pos returns a rune offset suitable for an error message, even past EOF.
func (c *cursor) pos() int {
	if !c.eof() {
		return c.cur().Pos
	}
	if len(c.toks) > 0 {
		return c.toks[len(c.toks)-1].Pos
	}
	return 0
}

func (c *cursor) is(text string) bool {
	return !c.eof() && c.cur().Text == text
}

func (c *cursor) advance() { c.i++ }

// expect consumes the current token if it matches text, else errors.
func (c *cursor) expect(text string) error {
	if !c.is(text) {
		return errf(c.pos(), "expected %q", text)
	}
	c.advance()
	return nil
}

func (c *cursor) unexpectedEOF() error {
	return errf(c.pos(), "unexpected end of input")
}

// ParseExpr parses a single expression from a token slice, requiring every
// token to be consumed.
func ParseExpr(toks []token.Token) (*ast.Node, error) {
	c := &cursor{toks: toks}
	n, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	if !c.eof() {
		return nil, errf(c.pos(), "unexpected trailing token %q", c.cur().Text)
	}
	return n, nil
}

// ParseEvent tokenizes and parses src as a sequence of statements, the unit
// scheduled at one event date.
func ParseEvent(src string) ([]*ast.Node, error) {
	toks, err := token.Tokenize(src)
	if err != nil {
		return nil, err
	}
	c := &cursor{toks: toks}
	var stmts []*ast.Node
	for !c.eof() {
		s, err := c.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

// ---- Expressions ----------------------------------------------------

// parseExpr, level 1: '+' and '-'.
func (c *cursor) parseExpr() (*ast.Node, error) {
	lhs, err := c.parseExprL2()
	if err != nil {
		return nil, err
	}
	for c.is("+") || c.is("-") {
		op := c.cur().Text
		c.advance()
		if c.eof() {
			return nil, c.unexpectedEOF()
		}
		rhs, err := c.parseExprL2()
		if err != nil {
			return nil, err
		}
		if op == "+" {
			lhs = ast.NewN(ast.KindAdd, lhs, rhs)
		} else {
			lhs = ast.NewN(ast.KindSub, lhs, rhs)
		}
	}
	return lhs, nil
}

// level 2: '*' and '/'.
func (c *cursor) parseExprL2() (*ast.Node, error) {
	lhs, err := c.parseExprL3()
	if err != nil {
		return nil, err
	}
	for c.is("*") || c.is("/") {
		op := c.cur().Text
		c.advance()
		if c.eof() {
			return nil, c.unexpectedEOF()
		}
		rhs, err := c.parseExprL3()
		if err != nil {
			return nil, err
		}
		if op == "*" {
			lhs = ast.NewN(ast.KindMult, lhs, rhs)
		} else {
			lhs = ast.NewN(ast.KindDiv, lhs, rhs)
		}
	}
	return lhs, nil
}

// level 3: '^'.
func (c *cursor) parseExprL3() (*ast.Node, error) {
	lhs, err := c.parseExprL4()
	if err != nil {
		return nil, err
	}
	for c.is("^") {
		c.advance()
		if c.eof() {
			return nil, c.unexpectedEOF()
		}
		rhs, err := c.parseExprL4()
		if err != nil {
			return nil, err
		}
		lhs = ast.NewN(ast.KindPow, lhs, rhs)
	}
	return lhs, nil
}

// level 4: unary '+'/'-', recursing to allow a run of unaries.
func (c *cursor) parseExprL4() (*ast.Node, error) {
	if c.is("+") || c.is("-") {
		op := c.cur().Text
		c.advance()
		if c.eof() {
			return nil, c.unexpectedEOF()
		}
		rhs, err := c.parseExprL4()
		if err != nil {
			return nil, err
		}
		if op == "+" {
			return ast.NewN(ast.KindUplus, rhs), nil
		}
		return ast.NewN(ast.KindUminus, rhs), nil
	}
	return c.parseExprL5()
}

// level 5: parentheses, else fall through to level 6.
func (c *cursor) parseExprL5() (*ast.Node, error) {
	if c.is("(") {
		c.advance()
		n, err := c.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := c.expect(")"); err != nil {
			return nil, err
		}
		return n, nil
	}
	return c.parseExprL6()
}

var builtinArity = map[string][2]int{
	"SPOT":   {0, 0},
	"LOG":    {1, 1},
	"SQRT":   {1, 1},
	"MIN":    {2, 100},
	"MAX":    {2, 100},
	"SMOOTH": {4, 4},
}

var builtinKind = map[string]ast.Kind{
	"SPOT":   ast.KindSpot,
	"LOG":    ast.KindLog,
	"SQRT":   ast.KindSqrt,
	"MIN":    ast.KindMin,
	"MAX":    ast.KindMax,
	"SMOOTH": ast.KindSmooth,
}

// level 6: constants, lists, builtins, variables.
func (c *cursor) parseExprL6() (*ast.Node, error) {
	if c.eof() {
		return nil, c.unexpectedEOF()
	}
	tok := c.cur()

	if tok.Kind == token.Number {
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, errf(tok.Pos, "invalid number %q", tok.Text)
		}
		c.advance()
		return ast.NewConst(v), nil
	}

	if tok.Text == "[" {
		return c.parseList()
	}

	if kind, ok := builtinKind[tok.Text]; ok {
		name := tok.Text
		c.advance()
		args, err := c.parseFuncArgs()
		if err != nil {
			return nil, err
		}
		rng := builtinArity[name]
		if len(args) < rng[0] || len(args) > rng[1] {
			return nil, errf(tok.Pos, "function %s: wrong number of arguments", name)
		}
		return ast.NewN(kind, args...), nil
	}

	return c.parseVar()
}

func (c *cursor) parseList() (*ast.Node, error) {
	if err := c.expect("["); err != nil {
		return nil, err
	}
	var vals []*ast.Node
	for !c.is("]") {
		if c.eof() {
			return nil, c.unexpectedEOF()
		}
		v, err := c.parseExpr()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		if c.is(",") {
			c.advance()
		} else if !c.is("]") {
			return nil, errf(c.pos(), "list elements must be separated by commas")
		}
	}
	c.advance()
	return ast.NewN(ast.KindList, vals...), nil
}

func (c *cursor) parseFuncArgs() ([]*ast.Node, error) {
	if err := c.expect("("); err != nil {
		return nil, err
	}
	var args []*ast.Node
	for !c.is(")") {
		if c.eof() {
			return nil, c.unexpectedEOF()
		}
		a, err := c.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if c.is(",") {
			c.advance()
		} else if !c.is(")") {
			return nil, errf(c.pos(), "arguments must be separated by commas")
		}
	}
	c.advance()
	return args, nil
}

func (c *cursor) parseVar() (*ast.Node, error) {
	if c.eof() {
		return nil, c.unexpectedEOF()
	}
	tok := c.cur()
	if tok.Kind != token.Ident {
		return nil, errf(tok.Pos, "expected a variable, got %q", tok.Text)
	}
	c.advance()
	return ast.NewVar(tok.Text), nil
}

// ---- Conditions -------------------------------------------------------

// parseCond, level 1: 'OR'.
func (c *cursor) parseCond() (*ast.Node, error) {
	lhs, err := c.parseCondL2()
	if err != nil {
		return nil, err
	}
	for c.is("OR") {
		c.advance()
		if c.eof() {
			return nil, c.unexpectedEOF()
		}
		rhs, err := c.parseCondL2()
		if err != nil {
			return nil, err
		}
		lhs = ast.NewN(ast.KindOr, lhs, rhs)
	}
	return lhs, nil
}

// level 2: 'AND', else a parenthesized condition or an elementary one.
func (c *cursor) parseCondL2() (*ast.Node, error) {
	lhs, err := c.parseCondParens()
	if err != nil {
		return nil, err
	}
	for c.is("AND") {
		c.advance()
		if c.eof() {
			return nil, c.unexpectedEOF()
		}
		rhs, err := c.parseCondParens()
		if err != nil {
			return nil, err
		}
		lhs = ast.NewN(ast.KindAnd, lhs, rhs)
	}
	return lhs, nil
}

// parseCondParens recurses into parseCond on a leading '(', mirroring
// parseParentheses<parseCond,parseCondElem> in the original grammar: a
// parenthesized subtree may itself be a full OR/AND condition, not just a
// single elementary one.
func (c *cursor) parseCondParens() (*ast.Node, error) {
	if c.is("(") {
		c.advance()
		n, err := c.parseCond()
		if err != nil {
			return nil, err
		}
		if err := c.expect(")"); err != nil {
			return nil, err
		}
		return n, nil
	}
	return c.parseCondElem()
}

const defaultEps = -1.0

var comparators = map[string]bool{
	"=": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
}

// parseCondElem parses one elementary comparison and canonicalizes it to
// Equal/Not/Sup/SupEqual over a Sub(lhs,rhs) argument.
func (c *cursor) parseCondElem() (*ast.Node, error) {
	lhs, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	if c.eof() {
		return nil, c.unexpectedEOF()
	}
	comparator := c.cur().Text
	if !comparators[comparator] {
		return nil, errf(c.pos(), "elementary condition has no valid comparator")
	}
	c.advance()
	if c.eof() {
		return nil, c.unexpectedEOF()
	}
	rhs, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	eps, err := c.parseCondOptionals()
	if err != nil {
		return nil, err
	}

	switch comparator {
	case "=":
		return buildEqual(lhs, rhs, eps), nil
	case "!=":
		return ast.NewN(ast.KindNot, buildEqual(lhs, rhs, eps)), nil
	case "<":
		return buildSup(rhs, lhs, eps), nil
	case ">":
		return buildSup(lhs, rhs, eps), nil
	case "<=":
		return buildSupEqual(rhs, lhs, eps), nil
	case ">=":
		return buildSupEqual(lhs, rhs, eps), nil
	}
	panic("unreachable")
}

func buildEqual(lhs, rhs *ast.Node, eps float64) *ast.Node {
	return ast.NewCond(ast.KindEqual, ast.NewN(ast.KindSub, lhs, rhs), eps)
}

func buildSup(lhs, rhs *ast.Node, eps float64) *ast.Node {
	return ast.NewCond(ast.KindSup, ast.NewN(ast.KindSub, lhs, rhs), eps)
}

func buildSupEqual(lhs, rhs *ast.Node, eps float64) *ast.Node {
	return ast.NewCond(ast.KindSupEqual, ast.NewN(ast.KindSub, lhs, rhs), eps)
}

// parseCondOptionals parses the optional ";eps"/":eps" fuzzy suffix,
// defaulting to -1 (strict) when absent. The original grammar allows a run
// of such suffixes, where only the last assignment survives; we keep that.
func (c *cursor) parseCondOptionals() (float64, error) {
	eps := defaultEps
	for c.is(";") || c.is(":") {
		c.advance()
		if c.eof() {
			return 0, c.unexpectedEOF()
		}
		tok := c.cur()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return 0, errf(tok.Pos, "invalid eps %q", tok.Text)
		}
		eps = v
		c.advance()
	}
	return eps, nil
}

// ---- Statements ---------------------------------------------------------

func (c *cursor) parseStatement() (*ast.Node, error) {
	if c.eof() {
		return nil, c.unexpectedEOF()
	}
	switch c.cur().Text {
	case "IF":
		return c.parseIf()
	case "FOR":
		return c.parseFor()
	}

	lhs, err := c.parseVar()
	if err != nil {
		return nil, err
	}
	if c.eof() {
		return nil, c.unexpectedEOF()
	}
	switch c.cur().Text {
	case "=":
		return c.parseAssign(lhs)
	case "PAYS":
		return c.parsePays(lhs)
	}
	return nil, errf(c.pos(), "statement without an instruction")
}

func (c *cursor) parseAssign(lhs *ast.Node) (*ast.Node, error) {
	c.advance() // over '='
	if c.eof() {
		return nil, c.unexpectedEOF()
	}
	rhs, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := c.consumeOptSemi(); err != nil {
		return nil, err
	}
	return ast.NewN(ast.KindAssign, lhs, rhs), nil
}

func (c *cursor) parsePays(lhs *ast.Node) (*ast.Node, error) {
	c.advance() // over 'PAYS'
	if c.eof() {
		return nil, c.unexpectedEOF()
	}
	rhs, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := c.consumeOptSemi(); err != nil {
		return nil, err
	}
	return ast.NewN(ast.KindPays, lhs, rhs), nil
}

// consumeOptSemi swallows a trailing ';' statement terminator if present.
func (c *cursor) consumeOptSemi() error {
	if c.is(";") {
		c.advance()
	}
	return nil
}

func (c *cursor) parseIf() (*ast.Node, error) {
	c.advance() // over 'IF'
	if c.eof() {
		return nil, errf(c.pos(), "'IF' is not followed by 'THEN'")
	}
	cond, err := c.parseCond()
	if err != nil {
		return nil, err
	}
	if err := c.expect("THEN"); err != nil {
		return nil, errf(c.pos(), "'IF' is not followed by 'THEN'")
	}

	var thenStmts []*ast.Node
	for !c.eof() && !c.is("ELSE") && !c.is("ENDIF") {
		s, err := c.parseStatement()
		if err != nil {
			return nil, err
		}
		thenStmts = append(thenStmts, s)
	}
	if c.eof() {
		return nil, errf(c.pos(), "'IF/THEN' is not followed by 'ELSE' or 'ENDIF'")
	}

	var elseStmts []*ast.Node
	if c.is("ELSE") {
		c.advance()
		for !c.eof() && !c.is("ENDIF") {
			s, err := c.parseStatement()
			if err != nil {
				return nil, err
			}
			elseStmts = append(elseStmts, s)
		}
		if c.eof() {
			return nil, errf(c.pos(), "'IF/THEN/ELSE' is not followed by 'ENDIF'")
		}
	}

	c.advance() // over 'ENDIF'
	var els []*ast.Node
	if elseStmts != nil {
		els = elseStmts
	}
	return ast.NewIf(cond, thenStmts, els), nil
}

func (c *cursor) parseFor() (*ast.Node, error) {
	c.advance() // over 'FOR'
	if c.eof() {
		return nil, errf(c.pos(), "'FOR' must be followed by a variable")
	}
	v, err := c.parseVar()
	if err != nil {
		return nil, err
	}
	if err := c.expect("IN"); err != nil {
		return nil, errf(c.pos(), "'FOR' must be followed by 'IN'")
	}
	list, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := c.expect("THEN"); err != nil {
		return nil, errf(c.pos(), "'FOR' is not followed by 'THEN'")
	}
	var body []*ast.Node
	for !c.eof() && !c.is("ENDFOR") {
		s, err := c.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, s)
	}
	if c.eof() {
		return nil, errf(c.pos(), "'FOR' has no matching 'ENDFOR'")
	}
	c.advance() // over 'ENDFOR'
	return ast.NewFor(v, list, body), nil
}
