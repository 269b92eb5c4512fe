package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec2 is a 2D vector in world units. Y grows downward, matching screen space.
type Vec2 struct {
	X float64
	Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v. The zero vector
// normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// ScaleToLength keeps the direction of v and sets its magnitude to l.
func (v Vec2) ScaleToLength(l float64) Vec2 {
	return v.Normalize().Scale(l)
}

// Rotate rotates v by deg degrees.
func (v Vec2) Rotate(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	s, c := math.Sincos(rad)
	return Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Angle returns the heading of v in degrees in (-180, 180].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// FromAngle returns the unit vector for a heading in degrees.
func FromAngle(deg float64) Vec2 {
	return Vec2{X: 1}.Rotate(deg)
}

// DirectionTo returns the unit vector pointing from v to o.
func (v Vec2) DirectionTo(o Vec2) Vec2 {
	return o.Sub(v).Normalize()
}

func (v Vec2) DistanceTo(o Vec2) float64 {
	return o.Sub(v).Len()
}

func (v Vec2) DistanceSqTo(o Vec2) float64 {
	return o.Sub(v).LenSq()
}

func (v Vec2) CP() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func FromCP(c cp.Vector) Vec2 {
	return Vec2{X: c.X, Y: c.Y}
}
