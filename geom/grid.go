package geom

import (
	"math"
	"slices"

	"github.com/jakecoffman/cp"
)

type cellKey struct {
	x int
	y int
}

type gridItem[K comparable] struct {
	key K
	bb  cp.BB
}

// Grid is a uniform-cell broad phase over axis-aligned bounds. Items are kept
// in insertion order so queries are deterministic.
type Grid[K comparable] struct {
	cellSize float64
	items    []gridItem[K]
	cells    map[cellKey][]int
}

func NewGrid[K comparable](cellSize float64) *Grid[K] {
	if cellSize <= 0 {
		cellSize = 64
	}
	return &Grid[K]{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
	}
}

func (g *Grid[K]) Len() int {
	if g == nil {
		return 0
	}
	return len(g.items)
}

func (g *Grid[K]) cellRange(bb cp.BB) (int, int, int, int) {
	x0 := int(math.Floor(bb.L / g.cellSize))
	y0 := int(math.Floor(bb.B / g.cellSize))
	x1 := int(math.Floor(bb.R / g.cellSize))
	y1 := int(math.Floor(bb.T / g.cellSize))
	return x0, y0, x1, y1
}

// Insert adds key with the given bounds.
func (g *Grid[K]) Insert(key K, bb cp.BB) {
	if g == nil {
		return
	}
	idx := len(g.items)
	g.items = append(g.items, gridItem[K]{key: key, bb: bb})
	x0, y0, x1, y1 := g.cellRange(bb)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			k := cellKey{x: x, y: y}
			g.cells[k] = append(g.cells[k], idx)
		}
	}
}

// Query appends to buf every key whose bounds intersect bb, each at most once
// and in insertion order.
func (g *Grid[K]) Query(bb cp.BB, buf []K) []K {
	if g == nil || len(g.items) == 0 {
		return buf
	}
	seen := make(map[int]struct{})
	x0, y0, x1, y1 := g.cellRange(bb)
	hits := make([]int, 0, 8)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			for _, idx := range g.cells[cellKey{x: x, y: y}] {
				if _, ok := seen[idx]; ok {
					continue
				}
				seen[idx] = struct{}{}
				if g.items[idx].bb.Intersects(bb) {
					hits = append(hits, idx)
				}
			}
		}
	}
	slices.Sort(hits)
	for _, idx := range hits {
		buf = append(buf, g.items[idx].key)
	}
	return buf
}
