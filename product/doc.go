// Package product orchestrates a scripted derivative from source text to
// evaluated result: parse every dated event, index its variables,
// optionally rewrite branches for fuzzy evaluation, then run a generic
// evaluator over a scenario.
//
// Mirrors the pipeline: parseEvents → indexVariables → (preProcess) →
// buildEvaluator<T> → evaluate → varVals(). Go has no generic methods, so
// the template-style buildScenario<T>()/buildEvaluator<T>() facade
// becomes free functions (BuildEvaluator, BuildFuzzyEvaluator, Evaluate)
// taking *Product rather than methods on a generic Product[T].
package product
