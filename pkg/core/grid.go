package core

// RankGrid stores a square grid of threshold ranks in row-major order.
type RankGrid struct {
	Size int
	data []uint32
}

// NewRankGrid allocates a zeroed size*size grid.
func NewRankGrid(size int) *RankGrid {
	if size <= 0 {
		size = 1
	}
	return &RankGrid{Size: size, data: make([]uint32, size*size)}
}

// Ranks exposes the backing slice. Callers must treat it as read-only once the
// grid has been handed out.
func (g *RankGrid) Ranks() []uint32 { return g.data }

// Len returns the number of cells.
func (g *RankGrid) Len() int { return len(g.data) }

// Index returns the linear slice index for coordinates (x, y).
func (g *RankGrid) Index(x, y int) int { return y*g.Size + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *RankGrid) Wrap(x, y int) (int, int) {
	x = (x%g.Size + g.Size) % g.Size
	y = (y%g.Size + g.Size) % g.Size
	return x, y
}

// At returns the rank at (x, y). Coordinates outside the grid wrap, so the map
// tiles across an image of any size.
func (g *RankGrid) At(x, y int) uint32 {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set stores rank at (x, y) without wrapping.
func (g *RankGrid) Set(x, y int, rank uint32) {
	g.data[g.Index(x, y)] = rank
}

// Equal reports whether both grids have the same size and ranks.
func (g *RankGrid) Equal(o *RankGrid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Size != o.Size || len(g.data) != len(o.data) {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}
