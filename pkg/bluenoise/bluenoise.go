// Package bluenoise builds blue-noise dither threshold maps.
//
// A threshold map is a size*size grid holding every rank in [0, size*size)
// exactly once. For any cut t the cells with rank < t form an evenly spread
// point set under wrap-around distance, so the map tiles without seams.
package bluenoise

import (
	"errors"
	"fmt"
	"math"

	"dithermap/pkg/core"
)

// MinSize is the smallest grid Generate accepts.
const MinSize = 2

// ErrInvalidSize is returned when the requested grid is smaller than MinSize.
var ErrInvalidSize = errors.New("bluenoise: invalid size")

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Generate builds a size*size threshold map from seed.
//
// The first point is drawn uniformly at random. Every following point is the
// unplaced cell farthest (squared toroidal distance) from all placed points,
// with ties going to the lowest (y, x). A cell's rank is its position in that
// placement order.
//
// Cost is O(size^4): a 64x64 map takes roughly 33M distance updates. Callers
// needing larger maps pay that cost; nothing is downscaled.
func Generate(size int, seed int64) (*core.RankGrid, error) {
	order, err := GenerateOrder(size, seed)
	if err != nil {
		return nil, err
	}
	g := core.NewRankGrid(size)
	for rank, p := range order {
		g.Set(p.X, p.Y, uint32(rank))
	}
	return g, nil
}

// GenerateOrder returns the placement order Generate ranks by. Index i holds
// the cell that receives rank i.
func GenerateOrder(size int, seed int64) ([]Point, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, size, MinSize)
	}

	total := size * size
	field := newDistanceField(size)
	placed := make([]bool, total)
	order := make([]Point, 0, total)

	rng := core.NewRNG(seed)
	first := rng.IntN(total)
	p := Point{X: first % size, Y: first / size}

	for {
		placed[p.Y*size+p.X] = true
		order = append(order, p)
		if len(order) == total {
			break
		}
		field.add(p)
		p = field.farthest(placed)
	}
	return order, nil
}

// distanceField holds, per cell, the squared toroidal distance to the nearest
// placed point. +Inf marks cells with no point placed yet.
type distanceField struct {
	size int
	d2   []float64
}

func newDistanceField(size int) *distanceField {
	d2 := make([]float64, size*size)
	for i := range d2 {
		d2[i] = math.Inf(1)
	}
	return &distanceField{size: size, d2: d2}
}

// add lowers every cell's value to its distance from p where that is closer.
func (f *distanceField) add(p Point) {
	size := f.size
	for y := 0; y < size; y++ {
		dy := torusDelta(y, p.Y, size)
		row := f.d2[y*size : (y+1)*size]
		for x := range row {
			dx := torusDelta(x, p.X, size)
			if d := float64(dx*dx + dy*dy); d < row[x] {
				row[x] = d
			}
		}
	}
}

// farthest returns the unplaced cell with the largest value. The row-major
// scan with a strict comparison keeps the lowest (y, x) on ties.
func (f *distanceField) farthest(placed []bool) Point {
	best := -1
	bestD := math.Inf(-1)
	for i, d := range f.d2 {
		if placed[i] {
			continue
		}
		if d > bestD {
			best, bestD = i, d
		}
	}
	return Point{X: best % f.size, Y: best / f.size}
}

// torusDelta is the per-axis distance between a and b on a ring of length size.
func torusDelta(a, b, size int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > size/2 {
		d = size - d
	}
	return d
}

// TorusDist2 returns the squared toroidal distance between (ax, ay) and
// (bx, by) on a size*size grid.
func TorusDist2(ax, ay, bx, by, size int) int {
	dx := torusDelta(ax, bx, size)
	dy := torusDelta(ay, by, size)
	return dx*dx + dy*dy
}
