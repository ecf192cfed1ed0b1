package indexer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vlaran-quant/tapescript/ast"
)

// Option configures Index.
type Option func(*config)

type config struct {
	log *zap.Logger
}

// WithLogger sets the logger used to warn about read-before-assignment.
// The default is zap.NewNop(), so indexing is silent unless a logger is
// supplied.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) { c.log = log }
}

// Table maps variable names to their dense slot index, in first-seen order.
type Table struct {
	names []string
	slots map[string]int
}

// Len returns the number of distinct variables seen.
func (t *Table) Len() int { return len(t.names) }

// Name returns the variable name occupying slot i.
func (t *Table) Name(i int) string { return t.names[i] }

// Slot looks up a variable's dense index.
func (t *Table) Slot(name string) (int, bool) {
	i, ok := t.slots[name]
	return i, ok
}

type state struct {
	table    Table
	assigned map[string]bool
	warned   map[string]bool
	log      *zap.Logger
}

func (s *state) slotFor(name string) int {
	if i, ok := s.table.slots[name]; ok {
		return i
	}
	i := len(s.table.names)
	s.table.names = append(s.table.names, name)
	s.table.slots[name] = i
	return i
}

func (s *state) bind(v *ast.Node) {
	i := s.slotFor(v.Name)
	v.Index = i
	s.assigned[v.Name] = true
}

func (s *state) read(v *ast.Node) {
	i := s.slotFor(v.Name)
	v.Index = i
	if !s.assigned[v.Name] && !s.warned[v.Name] {
		s.warned[v.Name] = true
		s.log.Warn("variable read before assignment", zap.String("name", v.Name))
	}
}

// readsIn walks n, recording a read for every Var leaf found. n is assumed
// to be a pure expression/condition subtree with no nested statements.
func (s *state) readsIn(n *ast.Node) {
	ast.Walk(n, func(child *ast.Node) bool {
		if child.Kind == ast.KindVar {
			s.read(child)
		}
		return true
	})
}

// Index walks eventStmts (one statement list per event, already in
// ascending event-date order) and assigns dense slots to every variable
// encountered. It mutates each ast.Var node's Index field in place.
func Index(eventStmts [][]*ast.Node, opts ...Option) (*Table, error) {
	cfg := config{log: zap.NewNop()}
	for _, o := range opts {
		o(&cfg)
	}
	s := &state{
		table:    Table{slots: make(map[string]int)},
		assigned: make(map[string]bool),
		warned:   make(map[string]bool),
		log:      cfg.log,
	}
	for _, stmts := range eventStmts {
		if err := s.indexStmts(stmts); err != nil {
			return nil, err
		}
	}
	return &s.table, nil
}

func (s *state) indexStmts(stmts []*ast.Node) error {
	for _, n := range stmts {
		if err := s.indexStmt(n); err != nil {
			return err
		}
	}
	return nil
}

func (s *state) indexStmt(n *ast.Node) error {
	switch n.Kind {
	case ast.KindAssign:
		s.readsIn(n.Args[1])
		s.bind(n.Args[0])
	case ast.KindPays:
		s.readsIn(n.Args[1])
		s.bind(n.Args[0])
	case ast.KindIf:
		s.readsIn(n.Args[0])
		if err := s.indexStmts(n.Then()); err != nil {
			return err
		}
		if err := s.indexStmts(n.Else()); err != nil {
			return err
		}
	case ast.KindFor:
		s.readsIn(n.ForList())
		s.bind(n.ForVar())
		if err := s.indexStmts(n.ForBody()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("indexer: unexpected statement kind %s", n.Kind)
	}
	return nil
}
