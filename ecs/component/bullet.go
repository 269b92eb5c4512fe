package component

import (
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/geom"
)

type Bullet struct {
	Direction geom.Vec2
	Speed     float64
	Damage    float64
	// Life is the remaining lifetime in seconds.
	Life   float64
	Source ecs.Entity
}

var BulletComponent = NewComponent[Bullet]()
