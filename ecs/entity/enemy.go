package entity

import (
	"fmt"

	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
)

// EnemyParams are the difficulty-scaled values for one spawn. Zero fields
// fall back to the prefab defaults.
type EnemyParams struct {
	HP            float64
	Radius        float64
	Damage        float64
	ROF           float64
	Sight         float64
	Burst         int
	BurstCooldown float64
	Speed         float64
}

func (f *Factory) newEnemy(w *ecs.World, pos geom.Vec2, behavior component.Behavior, radius, hp float64, static bool) (ecs.Entity, error) {
	spec := f.tuning.Enemies
	if radius <= 0 {
		radius = spec.Radius
	}
	if hp <= 0 {
		hp = 1
	}

	e := ecs.CreateEntity(w)
	if err := addTransform(w, e, pos, 0); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	_ = ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	_ = ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		Behavior:   behavior,
		Radius:     radius,
		DropChance: spec.DropChance,
	})
	_ = ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Collider: geom.Circle(radius),
		Layer:    component.LayerEnemy,
		Mask:     component.LayerWall | component.LayerEnemy | component.LayerPlayer,
		Static:   static,
	})
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: hp, Max: hp})
	_ = ecs.Add(w, e, component.HealthBarComponent.Kind(), &component.HealthBar{Value: hp, Max: hp})
	return e, nil
}

func (f *Factory) BuildTarget(w *ecs.World, pos geom.Vec2, p EnemyParams) (ecs.Entity, error) {
	return f.newEnemy(w, pos, component.BehaviorStationary, p.Radius, p.HP, true)
}

func (f *Factory) BuildTower(w *ecs.World, pos geom.Vec2, p EnemyParams) (ecs.Entity, error) {
	spec := f.tuning.Enemies.Tower
	e, err := f.newEnemy(w, pos, component.BehaviorTurret, 0, p.HP, true)
	if err != nil {
		return 0, err
	}

	sightRadius := p.Sight
	if sightRadius <= 0 {
		sightRadius = spec.Sight
	}
	sight, err := addArea(w, e, sightRadius, component.GroupPlayer)
	if err != nil {
		return 0, err
	}

	weapon := f.newWeapon(component.LayerWall | component.LayerPlayer)
	weapon.MuzzleSpeed = spec.BulletSpeed
	if p.Damage > 0 {
		weapon.Damage = p.Damage
	}
	if p.ROF > 0 {
		weapon.ROF = p.ROF
	}
	_ = ecs.Add(w, e, component.WeaponComponent.Kind(), weapon)

	burst := p.Burst
	if burst <= 0 {
		burst = 3
	}
	cooldown := p.BurstCooldown
	if cooldown <= 0 {
		cooldown = 1
	}
	_ = ecs.Add(w, e, component.TurretComponent.Kind(), &component.Turret{
		IdleAngles:    append([]float64(nil), spec.IdleAngles...),
		DwellMin:      spec.DwellMin,
		DwellMax:      spec.DwellMax,
		Sight:         sight,
		Burst:         burst,
		BurstCooldown: cooldown,
		BurstTimer:    cooldown,
	})
	return e, nil
}

func (f *Factory) BuildChaser(w *ecs.World, pos geom.Vec2, p EnemyParams) (ecs.Entity, error) {
	spec := f.tuning.Enemies.Chaser
	e, err := f.newEnemy(w, pos, component.BehaviorPursuer, 0, p.HP, false)
	if err != nil {
		return 0, err
	}

	sightRadius := p.Sight
	if sightRadius <= 0 {
		sightRadius = spec.Sight
	}
	sight, err := addArea(w, e, sightRadius, component.GroupPlayer)
	if err != nil {
		return 0, err
	}
	friends, err := addArea(w, e, spec.FriendSight, component.GroupEnemies)
	if err != nil {
		return 0, err
	}

	speed := p.Speed
	if speed <= 0 {
		speed = 100
	}
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	_ = ecs.Add(w, e, component.KnockbackableComponent.Kind(), &component.Knockbackable{Scale: spec.KnockbackScale})
	_ = ecs.Add(w, e, component.PursuerComponent.Kind(), &component.Pursuer{
		Speed:            speed,
		Damage:           p.Damage,
		AggroTime:        spec.Aggro,
		Smoothing:        spec.Smoothing,
		Sight:            sight,
		FriendSight:      friends,
		FriendRadius:     spec.FriendSight,
		ContactKnockback: spec.ContactKnockback,
	})
	return e, nil
}
