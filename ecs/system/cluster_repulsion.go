package system

import (
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
)

// separation returns the push a pursuer at pos gets from nearby friends. Each
// friend contributes an inverse-square term of strength speed/3 at radius.
func separation(w *ecs.World, self ecs.Entity, pos geom.Vec2, friends []ecs.Entity, speed, radius float64) geom.Vec2 {
	var push geom.Vec2
	for _, friend := range friends {
		if friend == self {
			continue
		}
		tr, ok := ecs.Get(w, friend, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		distSq := pos.DistanceSqTo(tr.Position)
		if distSq == 0 {
			continue
		}
		away := tr.Position.DirectionTo(pos)
		push = push.Add(away.Scale(speed / 3 * radius * radius / distSq))
	}
	return push
}
