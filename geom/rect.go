package geom

import (
	"math/rand"

	"github.com/jakecoffman/cp"
)

// Rectangle is an axis-aligned region given by its top-left corner and size.
type Rectangle struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rectangle) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

func (r Rectangle) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rectangle) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// RandomPoint returns a uniformly distributed point inside r.
func (r Rectangle) RandomPoint(rng *rand.Rand) Vec2 {
	return Vec2{X: r.X + rng.Float64()*r.W, Y: r.Y + rng.Float64()*r.H}
}

func (r Rectangle) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
}
