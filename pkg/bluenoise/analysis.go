package bluenoise

import (
	"errors"
	"fmt"
	"math"

	"dithermap/pkg/core"
)

// ErrNotPermutation is returned by Validate when a grid does not hold every
// rank in [0, size*size) exactly once.
var ErrNotPermutation = errors.New("bluenoise: ranks are not a permutation")

// Validate checks that g holds each rank in [0, size*size) exactly once.
func Validate(g *core.RankGrid) error {
	ranks := g.Ranks()
	seen := make([]bool, len(ranks))
	for i, r := range ranks {
		if int(r) >= len(ranks) {
			return fmt.Errorf("%w: cell %d has rank %d (max %d)", ErrNotPermutation, i, r, len(ranks)-1)
		}
		if seen[r] {
			return fmt.Errorf("%w: rank %d repeated at cell %d", ErrNotPermutation, r, i)
		}
		seen[r] = true
	}
	return nil
}

// Threshold returns the cells whose rank is below t, in row-major order.
func Threshold(g *core.RankGrid, t int) []Point {
	if t <= 0 {
		return nil
	}
	pts := make([]Point, 0, min(t, g.Len()))
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if int(g.At(x, y)) < t {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// MinSpacing returns the smallest pairwise toroidal distance within pts, or
// +Inf when fewer than two points are given.
func MinSpacing(pts []Point, size int) float64 {
	best := math.MaxInt
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if d := TorusDist2(pts[i].X, pts[i].Y, pts[j].X, pts[j].Y, size); d < best {
				best = d
			}
		}
	}
	if best == math.MaxInt {
		return math.Inf(1)
	}
	return math.Sqrt(float64(best))
}

// ExpectedSpacing is the mean spacing of t evenly spread points on a size*size
// torus, size/sqrt(t).
func ExpectedSpacing(size, t int) float64 {
	if t <= 0 {
		return math.Inf(1)
	}
	return float64(size) / math.Sqrt(float64(t))
}

// Stats summarises the point set produced by one threshold cut.
type Stats struct {
	Size       int
	Seed       int64
	Cut        int
	Points     int
	MinSpacing float64
	Expected   float64
	// Ratio is MinSpacing/Expected. Blue-noise maps stay near 1 at any cut;
	// white noise collapses towards 1/Expected.
	Ratio float64
}

// Analyze thresholds g at cut and measures the resulting spacing.
func Analyze(g *core.RankGrid, seed int64, cut int) Stats {
	pts := Threshold(g, cut)
	s := Stats{
		Size:       g.Size,
		Seed:       seed,
		Cut:        cut,
		Points:     len(pts),
		MinSpacing: MinSpacing(pts, g.Size),
		Expected:   ExpectedSpacing(g.Size, cut),
	}
	if !math.IsInf(s.MinSpacing, 0) && s.Expected > 0 && !math.IsInf(s.Expected, 0) {
		s.Ratio = s.MinSpacing / s.Expected
	}
	return s
}

// WhiteNoise returns a uniformly shuffled rank map of the same shape as
// Generate produces. It is the baseline blue noise is measured against.
func WhiteNoise(size int, seed int64) (*core.RankGrid, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, size, MinSize)
	}
	g := core.NewRankGrid(size)
	ranks := g.Ranks()
	for i, r := range core.NewRNG(seed).Perm(len(ranks)) {
		ranks[i] = uint32(r)
	}
	return g, nil
}
