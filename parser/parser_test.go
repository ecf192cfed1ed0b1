package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlaran-quant/tapescript/ast"
	"github.com/vlaran-quant/tapescript/parser"
	"github.com/vlaran-quant/tapescript/token"
)

func parseExprStr(t *testing.T, src string) *ast.Node {
	t.Helper()
	toks, err := token.Tokenize(src)
	require.NoError(t, err)
	n, err := parser.ParseExpr(toks)
	require.NoError(t, err)
	return n
}

func TestParseExprPrecedence(t *testing.T) {
	n := parseExprStr(t, "2+3*4")
	require.Equal(t, ast.KindAdd, n.Kind)
	require.Equal(t, ast.KindConst, n.Args[0].Kind)
	require.Equal(t, ast.KindMult, n.Args[1].Kind, "* binds tighter than +")
}

func TestParseExprParensOverridePrecedence(t *testing.T) {
	n := parseExprStr(t, "(2+3)*4")
	require.Equal(t, ast.KindMult, n.Kind)
	require.Equal(t, ast.KindAdd, n.Args[0].Kind)
}

func TestParseExprPowLeftAssociativeShape(t *testing.T) {
	n := parseExprStr(t, "2^3^4")
	require.Equal(t, ast.KindPow, n.Kind)
	require.Equal(t, ast.KindPow, n.Args[0].Kind, "original grammar folds ^ left in its while loop")
}

func TestParseExprUnaryChain(t *testing.T) {
	n := parseExprStr(t, "--3")
	require.Equal(t, ast.KindUminus, n.Kind)
	require.Equal(t, ast.KindUminus, n.Args[0].Kind)
	require.Equal(t, ast.KindConst, n.Args[0].Args[0].Kind)
}

func TestParseExprBuiltinArity(t *testing.T) {
	n := parseExprStr(t, "MIN(1,2,3)")
	require.Equal(t, ast.KindMin, n.Kind)
	require.Len(t, n.Args, 3)

	_, err := parser.ParseExpr(tokensOf(t, "MIN(1)"))
	require.Error(t, err)

	_, err = parser.ParseExpr(tokensOf(t, "SMOOTH(1,2,3)"))
	require.Error(t, err)
}

func TestParseExprSpotNoArgs(t *testing.T) {
	n := parseExprStr(t, "SPOT")
	require.Equal(t, ast.KindSpot, n.Kind)
}

func TestParseExprList(t *testing.T) {
	n := parseExprStr(t, "[1,2,3]")
	require.Equal(t, ast.KindList, n.Kind)
	require.Len(t, n.Args, 3)
}

func TestParseExprVariable(t *testing.T) {
	n := parseExprStr(t, "spot2")
	require.Equal(t, ast.KindVar, n.Kind)
	require.Equal(t, "SPOT2", n.Name)
}

func tokensOf(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := token.Tokenize(src)
	require.NoError(t, err)
	return toks
}

func TestParseEventAssignAndPays(t *testing.T) {
	stmts, err := parser.ParseEvent("X = 3; VALUE PAYS SPOT;")
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	require.Equal(t, ast.KindAssign, stmts[0].Kind)
	require.Equal(t, ast.KindPays, stmts[1].Kind)
}

func TestParseEventComparatorCanonicalization(t *testing.T) {
	cases := map[string]ast.Kind{
		"X=1":  ast.KindEqual,
		"X!=1": ast.KindNot,
		"X<1":  ast.KindSup,
		"X>1":  ast.KindSup,
		"X<=1": ast.KindSupEqual,
		"X>=1": ast.KindSupEqual,
	}
	for src, want := range cases {
		stmts, err := parser.ParseEvent("IF " + src + " THEN Y=1; ENDIF")
		require.NoError(t, err, src)
		cond := stmts[0].Args[0]
		require.Equal(t, want, cond.Kind, src)
	}
}

func TestParseEventIfElse(t *testing.T) {
	stmts, err := parser.ParseEvent("IF X>0 THEN Y=1; ELSE Y=0; ENDIF")
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	ifNode := stmts[0]
	require.Equal(t, ast.KindIf, ifNode.Kind)
	require.Len(t, ifNode.Then(), 1)
	require.Len(t, ifNode.Else(), 1)
}

func TestParseEventIfNoElse(t *testing.T) {
	stmts, err := parser.ParseEvent("IF X>0 THEN Y=1; ENDIF")
	require.NoError(t, err)
	require.Nil(t, stmts[0].Else())
}

func TestParseEventNestedParenthesizedCondition(t *testing.T) {
	stmts, err := parser.ParseEvent("IF (X>0 AND Y>0) OR Z=1 THEN W=1; ENDIF")
	require.NoError(t, err)
	cond := stmts[0].Args[0]
	require.Equal(t, ast.KindOr, cond.Kind)
	require.Equal(t, ast.KindAnd, cond.Args[0].Kind)
}

func TestParseEventFor(t *testing.T) {
	stmts, err := parser.ParseEvent("FOR I IN [1,2,3] THEN X=I; ENDFOR")
	require.NoError(t, err)
	require.Equal(t, ast.KindFor, stmts[0].Kind)
	require.Equal(t, "I", stmts[0].ForVar().Name)
	require.Len(t, stmts[0].ForBody(), 1)
}

func TestParseEventFuzzyEpsSuffix(t *testing.T) {
	stmts, err := parser.ParseEvent("IF X>0;0.5 THEN Y=1; ENDIF")
	require.NoError(t, err)
	cond := stmts[0].Args[0]
	require.Equal(t, 0.5, cond.Eps)
}

func TestParseEventDefaultEpsIsStrict(t *testing.T) {
	stmts, err := parser.ParseEvent("IF X>0 THEN Y=1; ENDIF")
	require.NoError(t, err)
	require.Equal(t, -1.0, stmts[0].Args[0].Eps)
}

func TestParseEventMissingEndifErrors(t *testing.T) {
	_, err := parser.ParseEvent("IF X>0 THEN Y=1;")
	require.Error(t, err)
}

func TestParseEventUnknownComparatorErrors(t *testing.T) {
	_, err := parser.ParseEvent("IF X THEN Y=1; ENDIF")
	require.Error(t, err)
}
