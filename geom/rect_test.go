package geom

import (
	"math/rand"
	"testing"
)

func TestRectangleRandomPointInside(t *testing.T) {
	r := Rectangle{X: 100, Y: -40, W: 30, H: 80}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		if p := r.RandomPoint(rng); !r.Contains(p) {
			t.Fatalf("point %+v outside %+v", p, r)
		}
	}
	if r.Area() != 2400 {
		t.Fatalf("area = %v", r.Area())
	}
	if (Rectangle{W: -1, H: 5}).Area() != 0 {
		t.Fatalf("degenerate rect should have zero area")
	}
}
