package arena

import "testing"

func TestEmplaceBackStableAddress(t *testing.T) {
	a := New[int](4)
	p0 := a.EmplaceBack(10)
	for i := 0; i < 20; i++ {
		a.EmplaceBack(i)
	}
	if *p0 != 10 {
		t.Fatalf("EmplaceBack address not stable: got %d, want 10", *p0)
	}
	if a.Len() != 21 {
		t.Fatalf("Len() = %d, want 21", a.Len())
	}
}

func TestEmplaceBackNContiguous(t *testing.T) {
	a := New[float64](4)
	a.EmplaceBack(1)
	region := a.EmplaceBackN(3)
	if len(region) != 3 {
		t.Fatalf("len(region) = %d, want 3", len(region))
	}
	region[0] = 1
	region[1] = 2
	region[2] = 3
	if a.At(1) == nil || *a.At(1) != 1 || *a.At(2) != 2 || *a.At(3) != 3 {
		t.Fatalf("EmplaceBackN region not reflected via At")
	}
}

func TestEmplaceBackNSharedBackingArray(t *testing.T) {
	a := New[float64](8)
	region := a.EmplaceBackN(2)
	alias := region
	alias[0] = 42
	if region[0] != 42 {
		t.Fatalf("slice alias did not observe write: got %v", region[0])
	}
}

func TestRewindToMark(t *testing.T) {
	a := New[int](4)
	a.EmplaceBack(1)
	m := a.Mark()
	a.EmplaceBack(2)
	a.EmplaceBack(3)
	a.RewindToMark(m)
	if a.Len() != 1 {
		t.Fatalf("Len() after RewindToMark = %d, want 1", a.Len())
	}
	if *a.At(0) != 1 {
		t.Fatalf("At(0) = %d, want 1", *a.At(0))
	}
}

func TestRewindToMarkAcrossBlocks(t *testing.T) {
	a := New[int](2)
	for i := 0; i < 3; i++ {
		a.EmplaceBack(i) // spans at least two blocks with blockSize=2
	}
	m := a.Mark() // total=3
	a.EmplaceBack(99)
	a.EmplaceBack(100)
	a.RewindToMark(m)
	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
	for i := 0; i < 3; i++ {
		if *a.At(i) != i {
			t.Fatalf("At(%d) = %d, want %d", i, *a.At(i), i)
		}
	}
}

func TestRewind(t *testing.T) {
	a := New[int](4)
	a.EmplaceBack(1)
	a.EmplaceBack(2)
	a.Rewind()
	if a.Len() != 0 {
		t.Fatalf("Len() after Rewind = %d, want 0", a.Len())
	}
	p := a.EmplaceBack(5)
	if *p != 5 || a.Len() != 1 {
		t.Fatalf("append after Rewind failed: *p=%d len=%d", *p, a.Len())
	}
}

func TestClear(t *testing.T) {
	a := New[int](4)
	a.EmplaceBack(1)
	a.Clear()
	if a.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", a.Len())
	}
}

func TestMemset(t *testing.T) {
	a := New[float64](4)
	for i := 0; i < 5; i++ {
		a.EmplaceBack(float64(i))
	}
	a.Memset(0)
	for i := 0; i < 5; i++ {
		if *a.At(i) != 0 {
			t.Fatalf("At(%d) = %v after Memset, want 0", i, *a.At(i))
		}
	}
}

func TestFind(t *testing.T) {
	a := New[int](4)
	a.EmplaceBack(1)
	p := a.EmplaceBack(2)
	a.EmplaceBack(3)
	idx, ok := a.Find(p)
	if !ok || idx != 1 {
		t.Fatalf("Find(p) = (%d, %v), want (1, true)", idx, ok)
	}
	var stray int
	if _, ok := a.Find(&stray); ok {
		t.Fatalf("Find(&stray) = true, want false")
	}
}

func TestNewPanicsOnBadBlockSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("New(0) did not panic")
		}
	}()
	New[int](0)
}
