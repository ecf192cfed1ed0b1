package fuzzy

import (
	"fmt"

	"github.com/vlaran-quant/tapescript/ast"
)

// WriteSets maps each If node to the sorted, deduplicated slots written by
// either of its branches — the information the fuzzy evaluator needs to
// snapshot and blend both branches regardless of which one actually ran.
type WriteSets map[*ast.Node][]int

// Process walks every event's statements, determines the product-wide
// maximum eps among explicit ";eps"/":eps" annotations (falling back to
// defaultEps if none were given), stamps that eps onto every
// Sup/Equal/SupEqual/If node that didn't carry its own non-negative value,
// and returns each If's write-set.
func Process(eventStmts [][]*ast.Node, defaultEps float64) (WriteSets, error) {
	maxEps := -1.0
	for _, stmts := range eventStmts {
		if err := walkStmts(stmts, func(n *ast.Node) error {
			if n.Kind == ast.KindIf {
				maxEps = maxObservedEps(n.Args[0], maxEps)
			}
			return nil
		}); err != nil {
			return nil, err
		}
	}
	if maxEps < 0 {
		maxEps = defaultEps
	}

	ws := make(WriteSets)
	for _, stmts := range eventStmts {
		if err := walkStmts(stmts, func(n *ast.Node) error {
			if n.Kind != ast.KindIf {
				return nil
			}
			stampEps(n.Args[0], maxEps)
			if n.Eps < 0 {
				n.Eps = maxEps
			}
			then, err := collectWrites(n.Then())
			if err != nil {
				return err
			}
			els, err := collectWrites(n.Else())
			if err != nil {
				return err
			}
			ws[n] = sortedUnion(then, els)
			return nil
		}); err != nil {
			return nil, err
		}
	}
	return ws, nil
}

// maxObservedEps returns the larger of cur and any explicit (>=0) eps
// found on a Sup/Equal/SupEqual node within cond, recursing through
// Not/And/Or.
func maxObservedEps(cond *ast.Node, cur float64) float64 {
	switch cond.Kind {
	case ast.KindSup, ast.KindEqual, ast.KindSupEqual:
		if cond.Eps >= 0 && cond.Eps > cur {
			cur = cond.Eps
		}
	case ast.KindNot:
		cur = maxObservedEps(cond.Args[0], cur)
	case ast.KindAnd, ast.KindOr:
		cur = maxObservedEps(cond.Args[0], cur)
		cur = maxObservedEps(cond.Args[1], cur)
	}
	return cur
}

// stampEps writes eps onto every Sup/Equal/SupEqual node in cond that
// doesn't already carry its own non-negative value.
func stampEps(cond *ast.Node, eps float64) {
	switch cond.Kind {
	case ast.KindSup, ast.KindEqual, ast.KindSupEqual:
		if cond.Eps < 0 {
			cond.Eps = eps
		}
	case ast.KindNot:
		stampEps(cond.Args[0], eps)
	case ast.KindAnd, ast.KindOr:
		stampEps(cond.Args[0], eps)
		stampEps(cond.Args[1], eps)
	}
}

// walkStmts recurses into every statement, including nested If/For bodies,
// invoking visit on each.
func walkStmts(stmts []*ast.Node, visit func(*ast.Node) error) error {
	for _, n := range stmts {
		if err := visit(n); err != nil {
			return err
		}
		switch n.Kind {
		case ast.KindAssign, ast.KindPays:
			// leaves, no nested statements
		case ast.KindIf:
			if err := walkStmts(n.Then(), visit); err != nil {
				return err
			}
			if err := walkStmts(n.Else(), visit); err != nil {
				return err
			}
		case ast.KindFor:
			if err := walkStmts(n.ForBody(), visit); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnexpectedStatementKind, n.Kind)
		}
	}
	return nil
}

// collectWrites gathers every variable slot written within stmts,
// recursing into nested If/For bodies and counting a For's loop variable
// as written.
func collectWrites(stmts []*ast.Node) ([]int, error) {
	var out []int
	err := walkStmts(stmts, func(n *ast.Node) error {
		switch n.Kind {
		case ast.KindAssign, ast.KindPays:
			out = append(out, n.Args[0].Index)
		case ast.KindFor:
			out = append(out, n.ForVar().Index)
		}
		return nil
	})
	return out, err
}

func sortedUnion(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	var out []int
	for _, s := range [][]int{a, b} {
		for _, i := range s {
			if !seen[i] {
				seen[i] = true
				out = append(out, i)
			}
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j] < out[i] {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}
