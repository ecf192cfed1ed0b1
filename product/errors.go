package product

import "errors"

// ErrNotParsed is returned by operations that need parsed events before
// ParseEvents has run.
var ErrNotParsed = errors.New("product: events not parsed")

// ErrNotIndexed is returned by operations that need a variable table
// before IndexVariables has run.
var ErrNotIndexed = errors.New("product: variables not indexed")

// ErrNotPreprocessed is returned by BuildFuzzyEvaluator when PreProcess
// was never run with fuzzy enabled.
var ErrNotPreprocessed = errors.New("product: fuzzy preprocessing not run")
