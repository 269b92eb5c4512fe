package system

import (
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/ecs/entity"
	"github.com/milk9111/wavesurvivor/geom"
)

// Fire shoots owner's weapon once if it is ready, spawning one bullet per
// projectile at the muzzle. It reports whether a shot was fired.
func Fire(w *ecs.World, ctx *Context, owner ecs.Entity) bool {
	weapon, ok := ecs.Get(w, owner, component.WeaponComponent.Kind())
	if !ok || !weapon.CanFire() {
		return false
	}
	tr, ok := ecs.Get(w, owner, component.TransformComponent.Kind())
	if !ok || ctx == nil || ctx.Factory == nil {
		return false
	}

	facing := geom.FromAngle(weapon.Rotation)
	muzzle := tr.Position.Add(facing.Scale(weapon.MuzzleOffset))
	minSpeed := weapon.SpreadSpeedMin
	if minSpeed <= 0 || minSpeed > 1 {
		minSpeed = 1
	}

	for i := 0; i < weapon.Projectiles; i++ {
		aim := facing
		if weapon.Spread > 0 {
			aim = aim.Rotate(uniform(ctx.Rand, -weapon.Spread/2, weapon.Spread/2))
		}
		speed := weapon.MuzzleSpeed
		if weapon.Projectiles > 1 {
			speed *= uniform(ctx.Rand, minSpeed, 1)
		}
		ctx.Factory.BuildBullet(w, entity.BulletParams{
			Position:  muzzle,
			Direction: aim,
			Speed:     speed,
			Damage:    weapon.Damage,
			Life:      weapon.BulletLife,
			Radius:    weapon.BulletRadius,
			Mask:      weapon.TargetMask,
			Source:    owner,
		})
	}

	weapon.Cooldown = 1 / weapon.ROF
	if weapon.ConsumeAmmo {
		weapon.Ammo--
	}
	return true
}
