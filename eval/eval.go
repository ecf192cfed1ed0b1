package eval

import (
	"fmt"

	"github.com/vlaran-quant/tapescript/ast"
	"github.com/vlaran-quant/tapescript/numeric"
	"github.com/vlaran-quant/tapescript/scenario"
)

// Stepper executes one statement. Evaluator satisfies it directly; fuzzy's
// evaluator wraps an Evaluator and satisfies it too, overriding only the
// KindIf case.
type Stepper[T numeric.Scalar[T]] interface {
	Exec(n *ast.Node) error
}

// Evaluator walks an indexed AST over one scenario. vars is indexed by the
// slot assigned by package indexer; its length must equal the variable
// table size.
type Evaluator[T numeric.Scalar[T]] struct {
	lit      numeric.Lit[T]
	vars     []T
	scenario *scenario.Scenario[T]
	curEvt   int
	self     Stepper[T]
}

// New builds an Evaluator with nVars zero-initialized variable slots.
func New[T numeric.Scalar[T]](lit numeric.Lit[T], nVars int, sc *scenario.Scenario[T]) (*Evaluator[T], error) {
	if sc == nil {
		return nil, ErrNilScenario
	}
	e := &Evaluator[T]{
		lit:      lit,
		vars:     make([]T, nVars),
		scenario: sc,
	}
	e.self = e
	e.Init()
	return e, nil
}

// SetStepper overrides the target nested statements (If branches, For
// bodies) are dispatched through. Defaults to the Evaluator itself.
func (e *Evaluator[T]) SetStepper(s Stepper[T]) { e.self = s }

// Init zero-reinitializes every variable slot and resets the event cursor,
// for starting a fresh pass over the same product with a new scenario.
func (e *Evaluator[T]) Init() {
	for i := range e.vars {
		e.vars[i] = e.lit(0)
	}
	e.curEvt = 0
}

// SetCurEvt moves the event cursor, validating it against the scenario.
func (e *Evaluator[T]) SetCurEvt(i int) error {
	if i < 0 || i >= e.scenario.Len() {
		return ErrEventIndexOutOfRange
	}
	e.curEvt = i
	return nil
}

// CurEvt returns the current event index.
func (e *Evaluator[T]) CurEvt() int { return e.curEvt }

// VarVals returns the final variable vector, indexed by slot.
func (e *Evaluator[T]) VarVals() []T { return e.vars }

// Var returns the current value of variable slot i.
func (e *Evaluator[T]) Var(i int) T { return e.vars[i] }

// SetVar overwrites variable slot i.
func (e *Evaluator[T]) SetVar(i int, v T) { e.vars[i] = v }

// Lit returns the literal-construction closure this evaluator was built
// with.
func (e *Evaluator[T]) Lit() numeric.Lit[T] { return e.lit }

func (e *Evaluator[T]) litBool(truth bool) T {
	if truth {
		return e.lit(1)
	}
	return e.lit(0)
}

// Eval evaluates an expression node, post-order.
func (e *Evaluator[T]) Eval(n *ast.Node) (T, error) {
	var zero T
	switch n.Kind {
	case ast.KindConst:
		return e.lit(n.Const), nil
	case ast.KindVar:
		return e.vars[n.Index], nil
	case ast.KindSpot:
		return e.scenario.At(e.curEvt).Spot, nil

	case ast.KindAdd, ast.KindSub, ast.KindMult, ast.KindDiv, ast.KindPow:
		l, err := e.Eval(n.Args[0])
		if err != nil {
			return zero, err
		}
		r, err := e.Eval(n.Args[1])
		if err != nil {
			return zero, err
		}
		switch n.Kind {
		case ast.KindAdd:
			return l.Add(r), nil
		case ast.KindSub:
			return l.Sub(r), nil
		case ast.KindMult:
			return l.Mul(r), nil
		case ast.KindDiv:
			return l.Div(r), nil
		default:
			return l.Pow(r), nil
		}

	case ast.KindUplus:
		return e.Eval(n.Args[0])
	case ast.KindUminus:
		v, err := e.Eval(n.Args[0])
		if err != nil {
			return zero, err
		}
		return v.Neg(), nil
	case ast.KindLog:
		v, err := e.Eval(n.Args[0])
		if err != nil {
			return zero, err
		}
		return v.Log(), nil
	case ast.KindSqrt:
		v, err := e.Eval(n.Args[0])
		if err != nil {
			return zero, err
		}
		return v.Sqrt(), nil

	case ast.KindMin, ast.KindMax:
		acc, err := e.Eval(n.Args[0])
		if err != nil {
			return zero, err
		}
		for _, a := range n.Args[1:] {
			v, err := e.Eval(a)
			if err != nil {
				return zero, err
			}
			if n.Kind == ast.KindMin {
				acc = acc.Min(v)
			} else {
				acc = acc.Max(v)
			}
		}
		return acc, nil

	case ast.KindSmooth:
		return e.evalSmooth(n)

	case ast.KindEqual, ast.KindSup, ast.KindSupEqual:
		v, err := e.Eval(n.Args[0])
		if err != nil {
			return zero, err
		}
		switch n.Kind {
		case ast.KindEqual:
			return e.litBool(v.Value() == 0), nil
		case ast.KindSup:
			return e.litBool(v.Value() > 0), nil
		default:
			return e.litBool(v.Value() >= 0), nil
		}
	case ast.KindNot:
		v, err := e.Eval(n.Args[0])
		if err != nil {
			return zero, err
		}
		return e.litBool(v.Value() == 0), nil
	case ast.KindAnd:
		l, err := e.Eval(n.Args[0])
		if err != nil {
			return zero, err
		}
		r, err := e.Eval(n.Args[1])
		if err != nil {
			return zero, err
		}
		return e.litBool(l.Value() != 0 && r.Value() != 0), nil
	case ast.KindOr:
		l, err := e.Eval(n.Args[0])
		if err != nil {
			return zero, err
		}
		r, err := e.Eval(n.Args[1])
		if err != nil {
			return zero, err
		}
		return e.litBool(l.Value() != 0 || r.Value() != 0), nil
	}
	return zero, fmt.Errorf("%w: %s", ErrUnknownNodeKind, n.Kind)
}

// evalSmooth computes SMOOTH(x, y, epsMinus, epsPlus): a smoothed
// indicator of x crossing zero over the asymmetric band
// [-epsMinus, epsPlus], scaled by y. Not specified by name beyond its
// arity; this is the documented interpretation (DESIGN.md), consistent
// with the fuzzy Sup ramp.
func (e *Evaluator[T]) evalSmooth(n *ast.Node) (T, error) {
	var zero T
	x, err := e.Eval(n.Args[0])
	if err != nil {
		return zero, err
	}
	y, err := e.Eval(n.Args[1])
	if err != nil {
		return zero, err
	}
	epsMinus, err := e.Eval(n.Args[2])
	if err != nil {
		return zero, err
	}
	epsPlus, err := e.Eval(n.Args[3])
	if err != nil {
		return zero, err
	}
	band := epsMinus.Add(epsPlus)
	p := x.Add(epsMinus).Div(band)
	p = p.Max(e.lit(0)).Min(e.lit(1))
	return y.Mul(p), nil
}

// evalList evaluates a KindList node's elements, for FOR loop iteration.
func (e *Evaluator[T]) evalList(n *ast.Node) ([]T, error) {
	if n.Kind != ast.KindList {
		return nil, fmt.Errorf("%w: expected a list, got %s", ErrUnknownNodeKind, n.Kind)
	}
	vals := make([]T, len(n.Args))
	for i, a := range n.Args {
		v, err := e.Eval(a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// Exec executes one statement.
func (e *Evaluator[T]) Exec(n *ast.Node) error {
	switch n.Kind {
	case ast.KindAssign:
		v, err := e.Eval(n.Args[1])
		if err != nil {
			return err
		}
		e.vars[n.Args[0].Index] = v
		return nil

	case ast.KindPays:
		v, err := e.Eval(n.Args[1])
		if err != nil {
			return err
		}
		v = v.Div(e.scenario.At(e.curEvt).Numeraire)
		idx := n.Args[0].Index
		e.vars[idx] = e.vars[idx].Add(v)
		return nil

	case ast.KindIf:
		c, err := e.Eval(n.Args[0])
		if err != nil {
			return err
		}
		branch := n.Then()
		if c.Value() == 0 {
			branch = n.Else()
		}
		for _, s := range branch {
			if err := e.self.Exec(s); err != nil {
				return err
			}
		}
		return nil

	case ast.KindFor:
		vals, err := e.evalList(n.ForList())
		if err != nil {
			return err
		}
		idx := n.ForVar().Index
		for _, v := range vals {
			e.vars[idx] = v
			for _, s := range n.ForBody() {
				if err := e.self.Exec(s); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownNodeKind, n.Kind)
}
