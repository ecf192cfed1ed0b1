package tape

import "github.com/vlaran-quant/tapescript/arena"

const defaultBlockSize = 1024

// Node represents one recorded arithmetic operation.
//
// Arity 0 means a leaf (an input). Local[i] is ∂result/∂child_i
// evaluated at the forward values; ChildAdj[i] is a direct slice
// reference into child i's own Adjoint storage, so backward propagation
// writes straight through it with no name lookup or node indirection.
// Adjoint is this node's own adjoint storage: length 1 in single-output
// mode, length K in multi-output mode (see WithMultiOutput) — the two
// modes share one representation since a length-1 slice and a length-K
// slice are the same Go value shape.
type Node struct {
	Index    int
	Arity    int
	Local    []float64
	ChildAdj [][]float64
	Adjoint  []float64
}

// Mark is an opaque snapshot of a Tape's tip, bundling the tip of each
// of its four arenas.
type Mark struct {
	nodes, ders, padj, madj arena.Mark
}

// Tape owns the four arenas backing every recorded Node: the nodes
// themselves, local-derivative scalars, child-adjoint-pointer slots, and
// adjoint storage.
type Tape struct {
	nodes *arena.Arena[Node]
	ders  *arena.Arena[float64]
	padj  *arena.Arena[[]float64]
	madj  *arena.Arena[float64]

	outputDim int // 1 in single-output mode, K in multi-output mode
}

// Option configures a Tape at construction.
type Option func(*Tape)

// WithBlockSize overrides the default arena block size.
func WithBlockSize(n int) Option {
	return func(t *Tape) {
		if n <= 0 {
			return
		}
		t.nodes = arena.New[Node](n)
		t.ders = arena.New[float64](n)
		t.padj = arena.New[[]float64](n)
		t.madj = arena.New[float64](n)
	}
}

// WithMultiOutput switches the tape into multi-output mode: every node's
// adjoint storage becomes a K-vector instead of a single real. This is a
// tape-wide setting fixed when New builds the tape and the same for every
// node; no method changes it afterwards, Clear included.
func WithMultiOutput(k int) Option {
	return func(t *Tape) {
		if k <= 0 {
			panic(ErrOutputDimNotPositive)
		}
		t.outputDim = k
	}
}

// New creates an empty, single-output Tape unless overridden by opts.
func New(opts ...Option) *Tape {
	t := &Tape{
		nodes:     arena.New[Node](defaultBlockSize),
		ders:      arena.New[float64](defaultBlockSize),
		padj:      arena.New[[]float64](defaultBlockSize),
		madj:      arena.New[float64](defaultBlockSize),
		outputDim: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// OutputDim reports the tape's adjoint width (1 unless WithMultiOutput
// was supplied).
func (t *Tape) OutputDim() int { return t.outputDim }

// RecordNode appends a fresh Node of the given arity with its derivative
// and child-adjoint slots allocated, and its own adjoint storage
// allocated and zeroed.
func (t *Tape) RecordNode(arity int) *Node {
	idx := t.nodes.Len()
	n := t.nodes.EmplaceBack(Node{Index: idx, Arity: arity})
	if arity > 0 {
		n.Local = t.ders.EmplaceBackN(arity)
		n.ChildAdj = t.padj.EmplaceBackN(arity)
	}
	n.Adjoint = t.madj.EmplaceBackN(t.outputDim)
	return n
}

// Len reports how many nodes have been recorded.
func (t *Tape) Len() int { return t.nodes.Len() }

// At returns the node at position i (insertion order).
func (t *Tape) At(i int) *Node { return t.nodes.At(i) }

// ResetAdjoints zeroes every live node's adjoint storage without
// discarding the recorded operations, so a fresh backward pass (e.g. for
// a different output, or a different basis vector in multi-output mode)
// can run over the same forward record.
func (t *Tape) ResetAdjoints() { t.madj.Memset(0) }

// Mark snapshots the tip of all four arenas.
func (t *Tape) Mark() Mark {
	return Mark{t.nodes.Mark(), t.ders.Mark(), t.padj.Mark(), t.madj.Mark()}
}

// RewindToMark trims every arena back to m. The caller must ensure no
// live Node or Number references a position past m.
func (t *Tape) RewindToMark(m Mark) {
	t.nodes.RewindToMark(m.nodes)
	t.ders.RewindToMark(m.ders)
	t.padj.RewindToMark(m.padj)
	t.madj.RewindToMark(m.madj)
}

// Rewind logically empties the tape while retaining arena capacity.
func (t *Tape) Rewind() {
	t.nodes.Rewind()
	t.ders.Rewind()
	t.padj.Rewind()
	t.madj.Rewind()
}

// Clear releases every arena's storage entirely. The tape's output
// dimension is left as it was.
func (t *Tape) Clear() {
	t.nodes.Clear()
	t.ders.Clear()
	t.padj.Clear()
	t.madj.Clear()
}

// propagateRange seeds nothing; it assumes the caller has already seeded
// from.Adjoint, and walks [toIdx, from.Index] in strict reverse order,
// accumulating adjoint*local into each child's adjoint slice.
func (t *Tape) propagateRange(from *Node, toIdx int) {
	for i := from.Index; i >= toIdx; i-- {
		n := t.nodes.At(i)
		for c := 0; c < n.Arity; c++ {
			d := n.Local[c]
			childAdj := n.ChildAdj[c]
			for k := range n.Adjoint {
				childAdj[k] += n.Adjoint[k] * d
			}
		}
	}
}

// PropagateToStart seeds from's first adjoint slot to 1 and propagates
// in strict reverse order down to the tape's first node.
func (t *Tape) PropagateToStart(from *Node) {
	from.Adjoint[0] = 1
	t.propagateRange(from, 0)
}

// PropagateToMark is PropagateToStart but stops at the node recorded
// just after m — useful when the graph from inputs to m is shared
// across many backward passes and only the suffix after m differs.
func (t *Tape) PropagateToMark(from *Node, m Mark) {
	from.Adjoint[0] = 1
	t.propagateRange(from, int(m.nodes))
}

// PropagateFromMultiBasis propagates a single basis vector (adjoint[k]=1,
// every other component 0) in multi-output mode, down to the tape's
// first node. Callers running several basis vectors over the same
// forward record should ResetAdjoints between calls.
func (t *Tape) PropagateFromMultiBasis(from *Node, k int) {
	for i := range from.Adjoint {
		from.Adjoint[i] = 0
	}
	from.Adjoint[k] = 1
	t.propagateRange(from, 0)
}
