package system

import (
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
)

// AreaSystem rebuilds every trigger area's Entered list from scratch.
type AreaSystem struct{}

func NewAreaSystem() *AreaSystem { return &AreaSystem{} }

func (s *AreaSystem) Update(w *ecs.World, _ *Context) {
	if w == nil {
		return
	}

	groups := map[component.Group][]ecs.Entity{
		component.GroupPlayer:  liveQuery(w, component.PlayerTagComponent.Kind()),
		component.GroupEnemies: liveQuery(w, component.EnemyTagComponent.Kind()),
	}

	ecs.ForEach(w, component.AreaComponent.Kind(), func(e ecs.Entity, area *component.Area) {
		area.Entered = area.Entered[:0]
		ownerTr, ok := ecs.Get(w, area.Owner, component.TransformComponent.Kind())
		if !ok {
			return
		}
		RefreshArea(w, area, ownerTr.Position, groups[area.Target])
	})
}

// RefreshArea records which members overlap an area centred on pos.
func RefreshArea(w *ecs.World, area *component.Area, pos geom.Vec2, members []ecs.Entity) {
	area.Entered = area.Entered[:0]
	for _, m := range members {
		tr, ok := ecs.Get(w, m, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		body, ok := ecs.Get(w, m, component.BodyComponent.Kind())
		if !ok {
			continue
		}
		if geom.Overlaps(area.Collider, pos, body.Collider, tr.Position) {
			area.Entered = append(area.Entered, m)
		}
	}
}
