package fuzzy

import (
	"github.com/vlaran-quant/tapescript/ast"
	"github.com/vlaran-quant/tapescript/eval"
	"github.com/vlaran-quant/tapescript/numeric"
)

// Evaluator wraps an *eval.Evaluator[T], executing If statements by
// blending both branches with a fuzzy truth value instead of picking one
// strictly. Every other statement and expression delegates to the
// embedded evaluator unchanged.
type Evaluator[T numeric.Scalar[T]] struct {
	*eval.Evaluator[T]
	writes WriteSets
}

// New wraps base, routing its nested-statement dispatch (If branches, For
// bodies) through this Evaluator so nested Ifs are also evaluated fuzzily.
func New[T numeric.Scalar[T]](base *eval.Evaluator[T], writes WriteSets) *Evaluator[T] {
	e := &Evaluator[T]{Evaluator: base, writes: writes}
	base.SetStepper(e)
	return e
}

// Exec overrides KindIf; everything else delegates to the embedded
// evaluator.
func (e *Evaluator[T]) Exec(n *ast.Node) error {
	if n.Kind != ast.KindIf {
		return e.Evaluator.Exec(n)
	}
	return e.execIf(n)
}

func (e *Evaluator[T]) execIf(n *ast.Node) error {
	p, err := e.fuzzyTruth(n.Args[0])
	if err != nil {
		return err
	}

	slots := e.writes[n]
	before := make(map[int]T, len(slots))
	for _, idx := range slots {
		before[idx] = e.Var(idx)
	}

	thenVals, err := e.runBranch(n.Then(), before, slots)
	if err != nil {
		return err
	}
	elseVals, err := e.runBranch(n.Else(), before, slots)
	if err != nil {
		return err
	}

	one := e.Lit()(1)
	for _, idx := range slots {
		blended := thenVals[idx].Mul(p).Add(elseVals[idx].Mul(one.Sub(p)))
		e.SetVar(idx, blended)
	}
	return nil
}

// runBranch restores the write-set to its pre-If snapshot, executes
// branch, and returns the resulting values for every written slot.
func (e *Evaluator[T]) runBranch(branch []*ast.Node, before map[int]T, slots []int) (map[int]T, error) {
	for _, idx := range slots {
		e.SetVar(idx, before[idx])
	}
	for _, s := range branch {
		if err := e.Exec(s); err != nil {
			return nil, err
		}
	}
	out := make(map[int]T, len(slots))
	for _, idx := range slots {
		out[idx] = e.Var(idx)
	}
	return out, nil
}

// fuzzyTruth computes a condition's smoothed truth value, as a T so
// gradients of the branch selection itself flow through under AAD.
func (e *Evaluator[T]) fuzzyTruth(cond *ast.Node) (T, error) {
	var zero T
	switch cond.Kind {
	case ast.KindSup:
		x, err := e.Eval(cond.Args[0])
		if err != nil {
			return zero, err
		}
		return e.supRamp(x, cond.Eps), nil
	case ast.KindSupEqual:
		// No distinct formula is specified for >= vs >; the boundary is
		// measure-zero under any continuous relaxation, so this reuses
		// the Sup ramp (see DESIGN.md).
		x, err := e.Eval(cond.Args[0])
		if err != nil {
			return zero, err
		}
		return e.supRamp(x, cond.Eps), nil
	case ast.KindEqual:
		x, err := e.Eval(cond.Args[0])
		if err != nil {
			return zero, err
		}
		return e.equalRamp(x, cond.Eps), nil
	case ast.KindNot:
		inner, err := e.fuzzyTruth(cond.Args[0])
		if err != nil {
			return zero, err
		}
		return e.Lit()(1).Sub(inner), nil
	case ast.KindAnd:
		a, err := e.fuzzyTruth(cond.Args[0])
		if err != nil {
			return zero, err
		}
		b, err := e.fuzzyTruth(cond.Args[1])
		if err != nil {
			return zero, err
		}
		return a.Mul(b), nil
	case ast.KindOr:
		a, err := e.fuzzyTruth(cond.Args[0])
		if err != nil {
			return zero, err
		}
		b, err := e.fuzzyTruth(cond.Args[1])
		if err != nil {
			return zero, err
		}
		return a.Add(b).Sub(a.Mul(b)), nil
	}
	return zero, eval.ErrUnknownNodeKind
}

// supRamp is 0 for x <= -eps/2, 1 for x >= eps/2, linear between. eps<=0
// (no fuzziness requested anywhere in the product) degenerates to the
// strict step.
func (e *Evaluator[T]) supRamp(x T, eps float64) T {
	if eps <= 0 {
		return e.litBool(x.Value() > 0)
	}
	p := x.Add(e.Lit()(eps / 2)).Div(e.Lit()(eps))
	return p.Max(e.Lit()(0)).Min(e.Lit()(1))
}

// equalRamp is a triangular peak at 0, zero outside [-eps/2, eps/2].
func (e *Evaluator[T]) equalRamp(x T, eps float64) T {
	if eps <= 0 {
		return e.litBool(x.Value() == 0)
	}
	tri := e.Lit()(1).Sub(e.Lit()(2).Mul(x.Abs()).Div(e.Lit()(eps)))
	return tri.Max(e.Lit()(0))
}

func (e *Evaluator[T]) litBool(truth bool) T {
	if truth {
		return e.Lit()(1)
	}
	return e.Lit()(0)
}
