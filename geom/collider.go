package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// contactSlop is the penetration depth below which two shapes are treated as
// merely touching. It keeps push-out resolution from creeping on float error.
const contactSlop = 1e-9

type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Collider is a circle or axis-aligned rectangle attached to a body at a local
// offset.
type Collider struct {
	Shape  ShapeKind
	Radius float64
	Width  float64
	Height float64
	Offset Vec2
}

func Circle(radius float64) Collider {
	return Collider{Shape: ShapeCircle, Radius: radius}
}

func Rect(width, height float64) Collider {
	return Collider{Shape: ShapeRect, Width: width, Height: height}
}

// Center returns the world-space center of the collider for a body at pos.
func (c Collider) Center(pos Vec2) Vec2 {
	return pos.Add(c.Offset)
}

func (c Collider) halfExtents() (float64, float64) {
	if c.Shape == ShapeCircle {
		return c.Radius, c.Radius
	}
	return c.Width / 2, c.Height / 2
}

// Bounds returns the world-space bounding box used by the broad phase.
func (c Collider) Bounds(pos Vec2) cp.BB {
	center := c.Center(pos).CP()
	if c.Shape == ShapeCircle {
		return cp.NewBBForCircle(center, c.Radius)
	}
	return cp.NewBBForExtents(center, c.Width/2, c.Height/2)
}

// Overlaps reports whether a at pa and b at pb overlap. It is symmetric.
func Overlaps(a Collider, pa Vec2, b Collider, pb Vec2) bool {
	_, ok := Penetration(a, pa, b, pb)
	return ok
}

// Penetration returns the minimum translation that moves a out of b, and
// whether the two overlap at all.
func Penetration(a Collider, pa Vec2, b Collider, pb Vec2) (Vec2, bool) {
	ca := a.Center(pa)
	cb := b.Center(pb)
	switch {
	case a.Shape == ShapeCircle && b.Shape == ShapeCircle:
		return circleCircle(ca, a.Radius, cb, b.Radius)
	case a.Shape == ShapeCircle && b.Shape == ShapeRect:
		return circleRect(ca, a.Radius, cb, b.Width/2, b.Height/2)
	case a.Shape == ShapeRect && b.Shape == ShapeCircle:
		mtv, ok := circleRect(cb, b.Radius, ca, a.Width/2, a.Height/2)
		return mtv.Scale(-1), ok
	default:
		ahw, ahh := a.halfExtents()
		bhw, bhh := b.halfExtents()
		return rectRect(ca, ahw, ahh, cb, bhw, bhh)
	}
}

func circleCircle(ca Vec2, ra float64, cb Vec2, rb float64) (Vec2, bool) {
	d := ca.Sub(cb)
	dist := d.Len()
	depth := ra + rb - dist
	if depth <= contactSlop {
		return Vec2{}, false
	}
	if dist == 0 {
		return Vec2{X: depth}, true
	}
	return d.Scale(depth / dist), true
}

func circleRect(c Vec2, r float64, rc Vec2, hw, hh float64) (Vec2, bool) {
	d := c.Sub(rc)
	closest := Vec2{X: clamp(d.X, -hw, hw), Y: clamp(d.Y, -hh, hh)}
	if closest != d {
		diff := d.Sub(closest)
		dist := diff.Len()
		depth := r - dist
		if depth <= contactSlop {
			return Vec2{}, false
		}
		return diff.Scale(depth / dist), true
	}

	// center inside the rectangle: leave along the shallowest axis
	px := hw - math.Abs(d.X) + r
	py := hh - math.Abs(d.Y) + r
	if px < py {
		return Vec2{X: sign(d.X) * px}, true
	}
	return Vec2{Y: sign(d.Y) * py}, true
}

func rectRect(ca Vec2, ahw, ahh float64, cb Vec2, bhw, bhh float64) (Vec2, bool) {
	d := ca.Sub(cb)
	ox := ahw + bhw - math.Abs(d.X)
	oy := ahh + bhh - math.Abs(d.Y)
	if ox <= contactSlop || oy <= contactSlop {
		return Vec2{}, false
	}
	if ox < oy {
		return Vec2{X: sign(d.X) * ox}, true
	}
	return Vec2{Y: sign(d.Y) * oy}, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
