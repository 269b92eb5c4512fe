package entity

import (
	"fmt"

	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
)

func (f *Factory) BuildPlayer(w *ecs.World, pos geom.Vec2) (ecs.Entity, error) {
	spec := f.tuning.Player
	e := ecs.CreateEntity(w)
	if err := addTransform(w, e, pos, 0); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	_ = ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Speed:             spec.Speed,
		InvincibilityTime: spec.Invincibility,
		IdleThreshold:     spec.IdleThreshold,
		Smoothing:         spec.Smoothing,
	})
	_ = ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Collider: geom.Rect(spec.Width, spec.Height),
		Layer:    component.LayerPlayer,
		Mask:     component.LayerWall | component.LayerEnemy,
	})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: spec.Health, Max: spec.Health})
	_ = ecs.Add(w, e, component.KnockbackableComponent.Kind(), &component.Knockbackable{Scale: 1, OnlyWhileHurt: true})

	wt, ok := component.ParseWeaponType(spec.Weapon.Type)
	if !ok {
		return 0, fmt.Errorf("player: unknown weapon %q", spec.Weapon.Type)
	}
	weapon := f.newWeapon(component.LayerWall | component.LayerEnemy)
	weapon.ConsumeAmmo = f.tuning.Weapons.ConsumeAmmo
	weapon.SetType(wt, spec.Weapon.Level)
	_ = ecs.Add(w, e, component.WeaponComponent.Kind(), weapon)
	return e, nil
}

// newWeapon returns a weapon carrying the shared muzzle and ammo defaults.
// Ammo starts at half capacity.
func (f *Factory) newWeapon(target component.Layer) *component.Weapon {
	spec := f.tuning.Weapons
	return &component.Weapon{
		Type:           component.WeaponEnemy,
		WeaponStats:    component.DefaultWeaponStats,
		MuzzleSpeed:    spec.MuzzleSpeed,
		MuzzleOffset:   spec.MuzzleOffset,
		BulletLife:     spec.BulletLife,
		BulletRadius:   spec.BulletRadius,
		SpreadSpeedMin: spec.SpreadSpeedMin,
		TargetMask:     target,
		MaxAmmo:        spec.MaxAmmo,
		Ammo:           spec.MaxAmmo / 2,
		Table:          f.table,
	}
}
