package eval

import "errors"

// ErrNilScenario is returned by New when the supplied scenario is nil.
// Checked once at construction, per spec policy: evaluation preconditions
// are verified once per call, not per visited node.
var ErrNilScenario = errors.New("eval: scenario is nil")

// ErrEventIndexOutOfRange is returned by SetCurEvt when i is outside the
// scenario's date range.
var ErrEventIndexOutOfRange = errors.New("eval: event index out of range")

// ErrUnknownNodeKind is returned by Eval/Exec for an ast.Kind neither
// recognizes; it indicates a malformed or unindexed AST.
var ErrUnknownNodeKind = errors.New("eval: unexpected node kind")
