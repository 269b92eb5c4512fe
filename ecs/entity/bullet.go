package entity

import (
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
)

type BulletParams struct {
	Position  geom.Vec2
	Direction geom.Vec2
	Speed     float64
	Damage    float64
	Life      float64
	Radius    float64
	Mask      component.Layer
	Source    ecs.Entity
}

func (f *Factory) BuildBullet(w *ecs.World, p BulletParams) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = addTransform(w, e, p.Position, p.Direction.Angle())
	_ = ecs.Add(w, e, component.BulletComponent.Kind(), &component.Bullet{
		Direction: p.Direction.Normalize(),
		Speed:     p.Speed,
		Damage:    p.Damage,
		Life:      p.Life,
		Source:    p.Source,
	})
	_ = ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Collider: geom.Circle(p.Radius),
		Layer:    component.LayerNone,
		Mask:     p.Mask,
		Exclude:  []ecs.Entity{p.Source},
	})
	return e
}

// BuildHitEffect spawns the short-lived marker left where a bullet dies.
func (f *Factory) BuildHitEffect(w *ecs.World, pos geom.Vec2) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = addTransform(w, e, pos, 0)
	_ = ecs.Add(w, e, component.HitEffectTagComponent.Kind(), &component.HitEffectTag{})
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: f.tuning.Pickups.HitEffectTTL})
	return e
}
