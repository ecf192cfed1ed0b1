package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlaran-quant/tapescript/numeric"
	"github.com/vlaran-quant/tapescript/tape"
)

func TestPrimalAgreementAddMulDiv(t *testing.T) {
	tp := tape.New()
	x := numeric.Leaf(tp, 3)
	y := numeric.Leaf(tp, 4)
	got := x.Mul(x).Add(y.Div(x)).Value()
	want := numeric.Real(3).Mul(3).Add(numeric.Real(4).Div(3)).Value()
	require.InDelta(t, want, got, 1e-12)
}

func TestAddGradient(t *testing.T) {
	tp := tape.New()
	x := numeric.Leaf(tp, 3)
	y := numeric.Leaf(tp, 4)
	z := x.Add(y)
	z.PropagateToStart()
	require.Equal(t, 1.0, x.Adjoint())
	require.Equal(t, 1.0, y.Adjoint())
}

func TestMulGradient(t *testing.T) {
	tp := tape.New()
	x := numeric.Leaf(tp, 3)
	y := numeric.Leaf(tp, 4)
	z := x.Mul(y)
	z.PropagateToStart()
	require.Equal(t, 4.0, x.Adjoint()) // dz/dx = y
	require.Equal(t, 3.0, y.Adjoint()) // dz/dy = x
}

func TestLogSqrtGradient(t *testing.T) {
	// X = LOG(SPOT) + SQRT(SPOT), spot=4 -> X = log4 + 2, dX/dspot = 1/4+0.25 = 0.5
	tp := tape.New()
	spot := numeric.Leaf(tp, 4)
	x := spot.Log().Add(spot.Sqrt())
	require.InDelta(t, math.Log(4)+2, x.Value(), 1e-12)
	x.PropagateToStart()
	require.InDelta(t, 0.5, spot.Adjoint(), 1e-9)
}

func TestAbsDerivativeAtZero(t *testing.T) {
	tp := tape.New()
	x := numeric.Leaf(tp, 0)
	y := x.Abs()
	y.PropagateToStart()
	require.Equal(t, 1.0, x.Adjoint(), "fabs derivative at 0 must be +1 per spec.md open question")
}

func TestMinMaxTieBreakGoesRight(t *testing.T) {
	tp := tape.New()
	a := numeric.Leaf(tp, 5)
	b := numeric.Leaf(tp, 5)
	maxv := a.Max(b)
	maxv.PropagateToStart()
	require.Equal(t, 0.0, a.Adjoint())
	require.Equal(t, 1.0, b.Adjoint())

	tp2 := tape.New()
	c := numeric.Leaf(tp2, 5)
	d := numeric.Leaf(tp2, 5)
	minv := c.Min(d)
	minv.PropagateToStart()
	require.Equal(t, 0.0, c.Adjoint())
	require.Equal(t, 1.0, d.Adjoint())
}

func TestTapeMismatchPanics(t *testing.T) {
	a := numeric.Leaf(tape.New(), 1)
	b := numeric.Leaf(tape.New(), 2)
	require.Panics(t, func() { a.Add(b) })
}

func TestGradientMatchesCentralDifference(t *testing.T) {
	f := func(v float64) float64 {
		x := numeric.Real(v)
		return x.Mul(x).Mul(x).Value() // x^3
	}
	const h = 1e-6
	x0 := 2.0
	numerical := (f(x0+h) - f(x0-h)) / (2 * h)

	tp := tape.New()
	x := numeric.Leaf(tp, x0)
	y := x.Mul(x).Mul(x)
	y.PropagateToStart()

	require.InDelta(t, numerical, x.Adjoint(), 1e-6)
}
