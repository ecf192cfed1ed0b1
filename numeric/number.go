package numeric

import (
	"math"

	"github.com/vlaran-quant/tapescript/tape"
)

// Number is the differentiable scalar: a primal value paired with a
// non-owning reference to its tape node, plus the tape it was recorded
// onto. The tape field replaces the ambient thread-local pointer the
// original design used (spec.md §9): every constructor and operator
// takes it explicitly, so there is never any question of which tape a
// Number belongs to.
type Number struct {
	tp   *tape.Tape
	val  float64
	node *tape.Node
}

// Leaf places a new input on tp and returns the Number referencing it.
func Leaf(tp *tape.Tape, v float64) Number {
	return Number{tp: tp, val: v, node: tp.RecordNode(0)}
}

// Lit returns a Lit[Number] constructor bound to tp.
func Lit(tp *tape.Tape) func(float64) Number {
	return func(v float64) Number { return Leaf(tp, v) }
}

func (n Number) requireSameTape(o Number) {
	if n.tp != o.tp {
		panic(ErrTapeMismatch)
	}
}

func (n Number) binary(o Number, val float64, d0, d1 float64) Number {
	n.requireSameTape(o)
	node := n.tp.RecordNode(2)
	node.Local[0], node.Local[1] = d0, d1
	node.ChildAdj[0] = n.node.Adjoint
	node.ChildAdj[1] = o.node.Adjoint
	return Number{tp: n.tp, val: val, node: node}
}

func (n Number) unary(val float64, d float64) Number {
	node := n.tp.RecordNode(1)
	node.Local[0] = d
	node.ChildAdj[0] = n.node.Adjoint
	return Number{tp: n.tp, val: val, node: node}
}

func (n Number) Add(o Number) Number { return n.binary(o, n.val+o.val, 1, 1) }
func (n Number) Sub(o Number) Number { return n.binary(o, n.val-o.val, 1, -1) }
func (n Number) Mul(o Number) Number { return n.binary(o, n.val*o.val, o.val, n.val) }
func (n Number) Div(o Number) Number {
	return n.binary(o, n.val/o.val, 1/o.val, -n.val/(o.val*o.val))
}

// Pow raises n to the real-valued power o. Derivatives:
// d/dn = o*result/n, d/do = ln(n)*result.
func (n Number) Pow(o Number) Number {
	val := math.Pow(n.val, o.val)
	return n.binary(o, val, o.val*val/n.val, math.Log(n.val)*val)
}

func (n Number) Neg() Number  { return n.unary(-n.val, -1) }
func (n Number) Log() Number  { return n.unary(math.Log(n.val), 1/n.val) }
func (n Number) Sqrt() Number {
	v := math.Sqrt(n.val)
	return n.unary(v, 1/(2*v))
}

// Abs is fabs. At exactly 0 the derivative is defined as +1, deviating
// from original_source's -1, per spec.md §9's explicit instruction to
// adopt +1 and document the choice (see DESIGN.md).
func (n Number) Abs() Number {
	d := -1.0
	if n.val >= 0 {
		d = 1.0
	}
	return n.unary(math.Abs(n.val), d)
}

// Min ties (equal primal values) assign the derivative entirely to the
// right operand, i.e. the comparison is strict '<' rather than '<='.
func (n Number) Min(o Number) Number {
	if n.val < o.val {
		return n.binary(o, n.val, 1, 0)
	}
	return n.binary(o, o.val, 0, 1)
}

// Max ties (equal primal values) assign the derivative entirely to the
// right operand, i.e. the comparison is strict '>' rather than '>='.
func (n Number) Max(o Number) Number {
	if n.val > o.val {
		return n.binary(o, n.val, 1, 0)
	}
	return n.binary(o, o.val, 0, 1)
}

// Value returns the primal value. Never creates a tape node.
func (n Number) Value() float64 { return n.val }

// NormalDens is the standard normal density function, differentiable:
// dens'(x) = -x*dens(x).
func (n Number) NormalDens() Number {
	dens := math.Exp(-0.5*n.val*n.val) / math.Sqrt2 / math.SqrtPi
	return n.unary(dens, -n.val*dens)
}

// NormalCdf is the standard normal CDF, differentiable: cdf'(x) = dens(x).
func (n Number) NormalCdf() Number {
	dens := math.Exp(-0.5*n.val*n.val) / math.Sqrt2 / math.SqrtPi
	cdf := 0.5 * (1 + math.Erf(n.val/math.Sqrt2))
	return n.unary(cdf, dens)
}

// Adjoint returns ∂output/∂n after a backward pass has propagated
// through this node (0 before any propagation, or if n never
// contributed to the propagated output).
func (n Number) Adjoint() float64 { return n.node.Adjoint[0] }

// AdjointAt returns component k of n's adjoint in multi-output mode.
func (n Number) AdjointAt(k int) float64 { return n.node.Adjoint[k] }

// PropagateToStart seeds this Number's adjoint to 1 and runs a full
// backward pass down to the tape's first node.
func (n Number) PropagateToStart() { n.tp.PropagateToStart(n.node) }

// PropagateToMark is PropagateToStart but stops at m.
func (n Number) PropagateToMark(m tape.Mark) { n.tp.PropagateToMark(n.node, m) }

// Tape returns the tape this Number was recorded onto.
func (n Number) Tape() *tape.Tape { return n.tp }
