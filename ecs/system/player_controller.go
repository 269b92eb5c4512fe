package system

import (
	"github.com/milk9111/wavesurvivor/common"
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
	"github.com/milk9111/wavesurvivor/input"
)

// PlayerControllerSystem turns input into movement, aim and fire for the
// player, and runs the Idle/Moving/Hurt state machine.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem { return &PlayerControllerSystem{} }

func (s *PlayerControllerSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, player *component.Player, tr *component.Transform, vel *component.Velocity) {
		if ecs.IsQueued(w, e) {
			return
		}

		var dir geom.Vec2
		if player.State != component.PlayerHurt {
			dir = geom.V(
				input.Axis(ctx.Input, input.MoveLeft, input.MoveRight),
				input.Axis(ctx.Input, input.MoveUp, input.MoveDown),
			).Normalize()
		}

		aim := geom.V(
			input.Axis(ctx.Input, input.AimLeft, input.AimRight),
			input.Axis(ctx.Input, input.AimUp, input.AimDown),
		)
		firing := !aim.IsZero()
		if aim.IsZero() && ctx.Input != nil {
			aim = ctx.Input.PointerWorld().Sub(tr.Position)
		}
		if ctx.Input != nil && ctx.Input.Held(input.Fire) {
			firing = true
		}

		if weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind()); ok {
			if !aim.IsZero() {
				weapon.Rotation = aim.Angle()
				tr.Rotation = weapon.Rotation
			}
			if firing {
				Fire(w, ctx, e)
			}
		}

		blend := smoothing(player.Smoothing, ctx.Dt)
		vel.Value = vel.Value.Add(dir.Scale(player.Speed).Sub(vel.Value).Scale(blend))

		switch {
		case vel.Value.LenSq() < player.IdleThreshold && player.Invincibility == 0:
			player.State = component.PlayerIdle
		case player.Invincibility == 0:
			player.State = component.PlayerMoving
		default:
			player.State = component.PlayerHurt
			player.Invincibility = common.TickDown(player.Invincibility, ctx.Dt)
		}

		// contacts are ignored; enemies deal their own contact damage
		_ = MoveAndCollide(w, e, vel.Value.Scale(ctx.Dt))
	})
}

// ApplyUpgrade applies an upgrade of kind scaled by bonus to the player e.
func ApplyUpgrade(w *ecs.World, ctx *Context, e ecs.Entity, kind component.UpgradeKind, bonus int) {
	spec := ctx.Factory.Tuning().Player
	switch kind {
	case component.UpgradeHealth:
		Heal(w, e, spec.UpgradeHealth*float64(bonus))
	case component.UpgradeAmmo:
		if weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind()); ok {
			weapon.Reload(spec.UpgradeAmmo * bonus)
		}
	case component.UpgradeSpeed:
		if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			player.Speed += spec.UpgradeSpeed * float64(bonus)
		}
	default:
		if weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind()); ok {
			weapon.Upgrade(bonus)
		}
	}
}
