// Package scenario defines the per-date market samples an evaluator reads
// Spot and Numeraire from. It is deliberately data-only: building actual
// Monte Carlo paths is an external collaborator's job (spec'd, not owned,
// by this module).
package scenario
