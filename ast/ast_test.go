package ast

import "testing"

func TestNewIfFirstElse(t *testing.T) {
	cond := NewCond(KindSup, NewN(KindSub, NewVar("X"), NewConst(0)), -1)
	then := []*Node{NewN(KindAssign)}
	els := []*Node{NewN(KindAssign), NewN(KindAssign)}
	n := NewIf(cond, then, els)
	if n.FirstElse != 2 {
		t.Fatalf("FirstElse = %d, want 2", n.FirstElse)
	}
	if len(n.Then()) != 1 || len(n.Else()) != 2 {
		t.Fatalf("Then/Else lengths = %d/%d, want 1/2", len(n.Then()), len(n.Else()))
	}
}

func TestNewIfNoElse(t *testing.T) {
	cond := NewCond(KindSup, NewN(KindSub, NewVar("X"), NewConst(0)), -1)
	n := NewIf(cond, []*Node{NewN(KindAssign)}, nil)
	if n.FirstElse != -1 {
		t.Fatalf("FirstElse = %d, want -1", n.FirstElse)
	}
	if n.Else() != nil {
		t.Fatalf("Else() = %v, want nil", n.Else())
	}
}

func TestWalkVisitsEveryNode(t *testing.T) {
	n := NewN(KindAdd, NewConst(1), NewN(KindMult, NewConst(2), NewConst(3)))
	count := 0
	Walk(n, func(*Node) bool { count++; return true })
	if count != 5 {
		t.Fatalf("Walk visited %d nodes, want 5", count)
	}
}

func TestWalkSkipSubtree(t *testing.T) {
	n := NewN(KindAdd, NewConst(1), NewN(KindMult, NewConst(2), NewConst(3)))
	count := 0
	Walk(n, func(child *Node) bool {
		count++
		return child.Kind != KindMult
	})
	if count != 3 {
		t.Fatalf("Walk visited %d nodes, want 3 (skip Mult subtree)", count)
	}
}

func TestDebugExprRoundTripShape(t *testing.T) {
	n := NewN(KindAdd, NewConst(2), NewN(KindMult, NewConst(3), NewVar("X")))
	got := debugExpr(n)
	want := "(2+(3*X))"
	if got != want {
		t.Fatalf("debugExpr = %q, want %q", got, want)
	}
}
