package numeric

// Scalar is satisfied by any numeric type usable as the evaluator's
// value type: Real for plain pricing, Number for AAD. Methods return T
// (not an interface) so both the plain-real and tape-recording
// implementations stay allocation-free and monomorphic once Go
// specializes a generic function for a concrete T.
//
// Go has no way to express "construct a T from a float64" as part of
// this constraint (a generic function cannot call T(v) the way a C++
// template can): callers needing a literal constant pass an explicit
// Lit function alongside the Scalar constraint.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Pow(T) T
	Neg() T
	Log() T
	Sqrt() T
	Abs() T
	Min(T) T
	Max(T) T

	// Value returns the primal value for condition branching and fuzzy
	// blending weights. Calling it never creates a tape node.
	Value() float64
}

// Lit constructs a T from a plain float64 constant.
type Lit[T any] func(float64) T
