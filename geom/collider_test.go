package geom

import (
	"math/rand"
	"testing"
)

func TestOverlapsIsSymmetric(t *testing.T) {
	shapes := []Collider{
		Circle(8),
		Circle(2),
		Rect(16, 16),
		Rect(40, 6),
		{Shape: ShapeCircle, Radius: 5, Offset: V(3, -2)},
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		a := shapes[rng.Intn(len(shapes))]
		b := shapes[rng.Intn(len(shapes))]
		pa := V(rng.Float64()*60-30, rng.Float64()*60-30)
		pb := V(rng.Float64()*60-30, rng.Float64()*60-30)
		if Overlaps(a, pa, b, pb) != Overlaps(b, pb, a, pa) {
			t.Fatalf("asymmetric overlap: a=%+v@%+v b=%+v@%+v", a, pa, b, pb)
		}
	}
}

func TestPenetrationResolves(t *testing.T) {
	tests := []struct {
		name string
		a    Collider
		pa   Vec2
		b    Collider
		pb   Vec2
		want Vec2
	}{
		{"circle_circle", Circle(5), V(8, 0), Circle(5), V(0, 0), V(2, 0)},
		{"circle_circle_coincident", Circle(5), V(0, 0), Circle(5), V(0, 0), V(10, 0)},
		{"circle_rect_edge", Circle(4), V(0, -11), Rect(20, 20), V(0, 0), V(0, -3)},
		{"circle_rect_inside", Circle(2), V(9, 0), Rect(20, 20), V(0, 0), V(3, 0)},
		{"rect_rect", Rect(10, 10), V(-8, 1), Rect(10, 10), V(0, 0), V(-2, 0)},
		{"rect_circle", Rect(20, 20), V(0, 0), Circle(4), V(0, -11), V(0, 3)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mtv, ok := Penetration(tc.a, tc.pa, tc.b, tc.pb)
			if !ok {
				t.Fatalf("expected overlap")
			}
			if !near(mtv.X, tc.want.X) || !near(mtv.Y, tc.want.Y) {
				t.Fatalf("mtv = %+v, want %+v", mtv, tc.want)
			}
			if Overlaps(tc.a, tc.pa.Add(mtv), tc.b, tc.pb) {
				t.Fatalf("still overlapping after applying mtv")
			}
		})
	}
}

func TestTouchingIsNotOverlap(t *testing.T) {
	if Overlaps(Circle(5), V(10, 0), Circle(5), V(0, 0)) {
		t.Fatalf("touching circles should not overlap")
	}
	if Overlaps(Rect(10, 10), V(10, 0), Rect(10, 10), V(0, 0)) {
		t.Fatalf("touching rects should not overlap")
	}
}

func TestBoundsContainShape(t *testing.T) {
	bb := Circle(4).Bounds(V(10, 20))
	if bb.L != 6 || bb.R != 14 || bb.B != 16 || bb.T != 24 {
		t.Fatalf("unexpected circle bounds %+v", bb)
	}
	bb = Rect(10, 4).Bounds(V(0, 0))
	if bb.L != -5 || bb.R != 5 || bb.B != -2 || bb.T != 2 {
		t.Fatalf("unexpected rect bounds %+v", bb)
	}
}
