package slotmap

import "testing"

func TestLadderShape(t *testing.T) {
	if len(ladder) != 41 {
		t.Fatalf("expected 41 classes, got %d", len(ladder))
	}
	if ladder[0] != 8 {
		t.Fatalf("class 0 should be 8, got %d", ladder[0])
	}
	if ladder[40] != 1<<43 {
		t.Fatalf("class 40 should be 1<<43, got %d", ladder[40])
	}
	for c := 1; c < len(ladder); c++ {
		if ladder[c] != ladder[c-1]*2 {
			t.Fatalf("class %d is not double class %d", c, c-1)
		}
	}
}

func TestClassForMinCapacity(t *testing.T) {
	cases := []struct {
		n    uint64
		want int
	}{
		{0, 0},
		{1, 0},
		{8, 0},
		{9, 1},
		{16, 1},
		{17, 2},
	}

	for _, c := range cases {
		got := classForMinCapacity(c.n)
		if got != c.want {
			t.Errorf("classForMinCapacity(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestClassForShrink(t *testing.T) {
	// live=0 shrinks to class 0.
	if c := classForShrink(0); c != 0 {
		t.Fatalf("classForShrink(0) = %d, want 0", c)
	}

	// live=100 needs 125 slots of headroom; smallest class with length>=125
	// is class 4 (length 128).
	if c := classForShrink(100); c != 4 {
		t.Fatalf("classForShrink(100) = %d, want 4", c)
	}
}
