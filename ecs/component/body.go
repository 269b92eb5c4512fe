package component

import (
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/geom"
)

// Body is a collidable entity. Static bodies never move and push movers out;
// dynamic bodies are only reported as contacts.
type Body struct {
	Collider geom.Collider
	Layer    Layer
	Mask     Layer
	Static   bool
	// Exclude lists entities the mover never collides with, such as the
	// shooter of a bullet.
	Exclude []ecs.Entity
}

func (b *Body) Excludes(e ecs.Entity) bool {
	if b == nil {
		return false
	}
	for _, x := range b.Exclude {
		if x == e {
			return true
		}
	}
	return false
}

var BodyComponent = NewComponent[Body]()

type Velocity struct {
	Value geom.Vec2
}

var VelocityComponent = NewComponent[Velocity]()
