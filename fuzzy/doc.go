// Package fuzzy replaces strict comparison nodes with smooth
// approximations over a tolerance window, so that differentiating through
// an If produces a non-zero, continuous gradient across the branch
// boundary instead of the zero a strict comparison always yields under
// AAD.
//
// Process walks a product's statements twice: first computing the maximum
// eps observed across every explicit ";eps"/":eps" annotation, then
// stamping it onto every comparison/If node that didn't carry its own (nodes with an
// already-set eps >= 0 keep it; the untouched default of -1 means
// strict). Evaluator wraps an *eval.Evaluator[T], overriding statement
// execution only for KindIf — Sup/Equal/SupEqual/Not/And/Or never appear
// outside an If's condition slot in this grammar, so no other override is
// needed.
package fuzzy
