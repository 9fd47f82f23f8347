package core

import "testing"

func TestRankGridWrapTiles(t *testing.T) {
	g := NewRankGrid(4)
	g.Set(3, 0, 7)
	g.Set(0, 3, 9)

	if got := g.At(-1, 0); got != 7 {
		t.Fatalf("At(-1,0) = %d, want 7", got)
	}
	if got := g.At(7, 4); got != 7 {
		t.Fatalf("At(7,4) = %d, want 7", got)
	}
	if got := g.At(4, -1); got != 9 {
		t.Fatalf("At(4,-1) = %d, want 9", got)
	}
}

func TestRankGridEqual(t *testing.T) {
	a := NewRankGrid(2)
	b := NewRankGrid(2)
	if !a.Equal(b) {
		t.Fatal("zeroed grids of the same size should be equal")
	}
	b.Set(1, 1, 3)
	if a.Equal(b) {
		t.Fatal("grids with different ranks reported equal")
	}
	if a.Equal(NewRankGrid(3)) {
		t.Fatal("grids with different sizes reported equal")
	}
	var nilGrid *RankGrid
	if a.Equal(nilGrid) {
		t.Fatal("non-nil grid equal to nil")
	}
}

func TestNewRNGDeterministic(t *testing.T) {
	a := NewRNG(17)
	b := NewRNG(17)
	for i := 0; i < 32; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if got := a.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if p := a.Perm(0); p != nil {
		t.Fatalf("Perm(0) = %v, want nil", p)
	}
}
