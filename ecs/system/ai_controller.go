package system

import (
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
)

// EnemySystem runs each enemy's behavior strategy.
type EnemySystem struct {
	behaviors map[component.Behavior]behavior
}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{
		behaviors: map[component.Behavior]behavior{
			component.BehaviorStationary: stationary{},
			component.BehaviorTurret:     turret{},
			component.BehaviorPursuer:    pursuer{},
		},
	}
}

func (s *EnemySystem) Update(w *ecs.World, ctx *Context) {
	if s == nil || w == nil || ctx == nil {
		return
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, tr *component.Transform) {
		if ecs.IsQueued(w, e) {
			return
		}
		b, ok := s.behaviors[enemy.Behavior]
		if !ok {
			return
		}
		b.update(w, ctx, e, enemy, tr)
	})
}
