package numeric

import "math"

// Real is a plain, non-differentiable float64 scalar. It implements
// Scalar[Real] with no tape involvement at all, used for ordinary
// pricing runs where no sensitivities are needed.
type Real float64

// RealLit constructs a Real constant (satisfies Lit[Real]).
func RealLit(v float64) Real { return Real(v) }

func (r Real) Add(o Real) Real { return r + o }
func (r Real) Sub(o Real) Real { return r - o }
func (r Real) Mul(o Real) Real { return r * o }
func (r Real) Div(o Real) Real { return r / o }
func (r Real) Pow(o Real) Real {
	return Real(math.Pow(float64(r), float64(o)))
}
func (r Real) Neg() Real  { return -r }
func (r Real) Log() Real  { return Real(math.Log(float64(r))) }
func (r Real) Sqrt() Real { return Real(math.Sqrt(float64(r))) }
func (r Real) Abs() Real  { return Real(math.Abs(float64(r))) }

// Min ties go to the right operand, matching Number.Min's convention
// (the choice is moot for Real since both sides equal the same value).
func (r Real) Min(o Real) Real {
	if r < o {
		return r
	}
	return o
}

// Max ties go to the right operand, matching Number.Max's convention.
func (r Real) Max(o Real) Real {
	if r > o {
		return r
	}
	return o
}

func (r Real) Value() float64 { return float64(r) }

// NormalDens is the standard normal density function.
func (r Real) NormalDens() Real {
	x := float64(r)
	return Real(math.Exp(-0.5*x*x) / math.Sqrt2 / math.SqrtPi)
}

// NormalCdf is the standard normal cumulative distribution function.
func (r Real) NormalCdf() Real {
	x := float64(r)
	return Real(0.5 * (1 + math.Erf(x/math.Sqrt2)))
}
