package indexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vlaran-quant/tapescript/ast"
	"github.com/vlaran-quant/tapescript/indexer"
	"github.com/vlaran-quant/tapescript/parser"
)

func parseEvents(t *testing.T, srcs ...string) [][]*ast.Node {
	t.Helper()
	var out [][]*ast.Node
	for _, s := range srcs {
		stmts, err := parser.ParseEvent(s)
		require.NoError(t, err)
		out = append(out, stmts)
	}
	return out
}

func TestIndexAssignsDenseSlotsInFirstSeenOrder(t *testing.T) {
	events := parseEvents(t, "X=1; Y=X+2;")
	table, err := indexer.Index(events)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	xi, ok := table.Slot("X")
	require.True(t, ok)
	yi, ok := table.Slot("Y")
	require.True(t, ok)
	require.Equal(t, 0, xi)
	require.Equal(t, 1, yi)
}

func TestIndexReusesSlotAcrossEvents(t *testing.T) {
	events := parseEvents(t, "X=1;", "Y=X+1;")
	table, err := indexer.Index(events)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
}

func TestIndexWarnsOnReadBeforeAssignment(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)
	events := parseEvents(t, "Y=X+1; X=2;")
	_, err := indexer.Index(events, indexer.WithLogger(log))
	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, zapcore.WarnLevel, entry.Level)
}

func TestIndexNoWarningWhenAssignedFirst(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)
	events := parseEvents(t, "X=1; Y=X+1;")
	_, err := indexer.Index(events, indexer.WithLogger(log))
	require.NoError(t, err)
	require.Equal(t, 0, logs.Len())
}

func TestIndexForLoopVarIsBinding(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)
	events := parseEvents(t, "FOR I IN [1,2] THEN X=I; ENDFOR")
	_, err := indexer.Index(events, indexer.WithLogger(log))
	require.NoError(t, err)
	require.Equal(t, 0, logs.Len())
}

func TestIndexSetsVarNodeIndexInPlace(t *testing.T) {
	stmts, err := parser.ParseEvent("X=1; Y=X+1;")
	require.NoError(t, err)
	_, err = indexer.Index([][]*ast.Node{stmts})
	require.NoError(t, err)
	xVarInRhs := stmts[1].Args[1].Args[0]
	require.Equal(t, 0, xVarInRhs.Index)
}
