package product

import (
	"sort"
	"time"

	"github.com/vlaran-quant/tapescript/ast"
	"github.com/vlaran-quant/tapescript/eval"
	"github.com/vlaran-quant/tapescript/fuzzy"
	"github.com/vlaran-quant/tapescript/indexer"
	"github.com/vlaran-quant/tapescript/numeric"
	"github.com/vlaran-quant/tapescript/parser"
	"github.com/vlaran-quant/tapescript/scenario"
)

// Product is a non-generic facade over a product's dated events. It owns
// no scalar type; BuildEvaluator/BuildFuzzyEvaluator instantiate one per
// call.
type Product struct {
	dates      []time.Time
	eventStmts [][]*ast.Node
	table      *indexer.Table
	writes     fuzzy.WriteSets
}

// New returns an empty Product.
func New() *Product { return &Product{} }

// ParseEvents tokenizes and parses every dated script, storing events in
// ascending date order.
func (p *Product) ParseEvents(events map[time.Time]string) error {
	dates := make([]time.Time, 0, len(events))
	for d := range events {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	stmts := make([][]*ast.Node, len(dates))
	for i, d := range dates {
		s, err := parser.ParseEvent(events[d])
		if err != nil {
			return err
		}
		stmts[i] = s
	}
	p.dates = dates
	p.eventStmts = stmts
	p.table = nil
	p.writes = nil
	return nil
}

// IndexVariables assigns dense variable slots across every event.
func (p *Product) IndexVariables(opts ...indexer.Option) error {
	if p.eventStmts == nil {
		return ErrNotParsed
	}
	table, err := indexer.Index(p.eventStmts, opts...)
	if err != nil {
		return err
	}
	p.table = table
	return nil
}

// PreProcess runs the if-processor when fuzzyEnabled, stamping every
// comparison/If node with a tolerance and recording each If's write-set.
// When fuzzyEnabled is false it is a no-op (strict evaluation needs no
// preprocessing beyond indexing).
func (p *Product) PreProcess(fuzzyEnabled bool, defaultEps float64) error {
	if p.eventStmts == nil {
		return ErrNotParsed
	}
	if !fuzzyEnabled {
		return nil
	}
	ws, err := fuzzy.Process(p.eventStmts, defaultEps)
	if err != nil {
		return err
	}
	p.writes = ws
	return nil
}

// Dates returns the product's event dates in ascending order.
func (p *Product) Dates() []time.Time { return p.dates }

// EventStatements returns the parsed statement list for each event, in
// the same order as Dates.
func (p *Product) EventStatements() [][]*ast.Node { return p.eventStmts }

// Table returns the indexed variable table, or nil before IndexVariables.
func (p *Product) Table() *indexer.Table { return p.table }

// NumVars returns the number of distinct variables, or 0 before indexing.
func (p *Product) NumVars() int {
	if p.table == nil {
		return 0
	}
	return p.table.Len()
}

// Runner is satisfied by both eval.Evaluator[T] and fuzzy.Evaluator[T],
// letting Evaluate drive either without knowing which.
type Runner[T numeric.Scalar[T]] interface {
	eval.Stepper[T]
	Init()
	SetCurEvt(i int) error
	VarVals() []T
}

// BuildEvaluator constructs a strict evaluator over sc, sized to p's
// variable table.
func BuildEvaluator[T numeric.Scalar[T]](p *Product, lit numeric.Lit[T], sc *scenario.Scenario[T]) (*eval.Evaluator[T], error) {
	if p.table == nil {
		return nil, ErrNotIndexed
	}
	return eval.New[T](lit, p.table.Len(), sc)
}

// BuildFuzzyEvaluator constructs a fuzzy evaluator over sc, using the
// write-sets PreProcess recorded.
func BuildFuzzyEvaluator[T numeric.Scalar[T]](p *Product, lit numeric.Lit[T], sc *scenario.Scenario[T]) (*fuzzy.Evaluator[T], error) {
	if p.table == nil {
		return nil, ErrNotIndexed
	}
	if p.writes == nil {
		return nil, ErrNotPreprocessed
	}
	base, err := eval.New[T](lit, p.table.Len(), sc)
	if err != nil {
		return nil, err
	}
	return fuzzy.New(base, p.writes), nil
}

// Evaluate runs r over every one of p's events, in ascending date order.
func Evaluate[T numeric.Scalar[T]](p *Product, r Runner[T]) error {
	if p.eventStmts == nil {
		return ErrNotParsed
	}
	r.Init()
	for i, stmts := range p.eventStmts {
		if err := r.SetCurEvt(i); err != nil {
			return err
		}
		for _, s := range stmts {
			if err := r.Exec(s); err != nil {
				return err
			}
		}
	}
	return nil
}
