package system

import (
	"math"

	"github.com/milk9111/wavesurvivor/common"
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
)

// behavior is the per-kind strategy an enemy runs each tick.
type behavior interface {
	update(w *ecs.World, ctx *Context, e ecs.Entity, enemy *component.Enemy, tr *component.Transform)
}

// stationary enemies only absorb damage.
type stationary struct{}

func (stationary) update(*ecs.World, *Context, ecs.Entity, *component.Enemy, *component.Transform) {}

// turret sways while idle and fires bursts at the first target that enters
// its sight.
type turret struct{}

func (turret) update(w *ecs.World, ctx *Context, e ecs.Entity, _ *component.Enemy, tr *component.Transform) {
	t, ok := ecs.Get(w, e, component.TurretComponent.Kind())
	if !ok {
		return
	}
	weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	if !ok {
		return
	}

	switch t.State {
	case component.TurretIdle:
		if t.IdleTimer <= 0 {
			if len(t.IdleAngles) > 0 {
				t.IdleRotation = t.IdleAngles[ctx.Rand.Intn(len(t.IdleAngles))]
			}
			t.IdleTimer = uniform(ctx.Rand, t.DwellMin, t.DwellMax)
		} else {
			t.IdleTimer -= ctx.Dt
			weapon.Rotation = normalizeAngle(weapon.Rotation + t.IdleRotation*ctx.Dt)
		}
	case component.TurretAttacking:
		if targetTr, ok := ecs.Get(w, t.Target, component.TransformComponent.Kind()); ok {
			weapon.Rotation = tr.Position.DirectionTo(targetTr.Position).Angle()
		}
		switch {
		case t.BurstTimer > 0:
			t.BurstTimer = common.TickDown(t.BurstTimer, ctx.Dt)
		case t.BurstCount < t.Burst:
			if Fire(w, ctx, e) {
				t.BurstCount++
			}
		default:
			t.BurstCount = 0
			t.BurstTimer = t.BurstCooldown
		}
	}
	tr.Rotation = weapon.Rotation

	var entered []ecs.Entity
	if sight, ok := ecs.Get(w, t.Sight, component.AreaComponent.Kind()); ok {
		entered = sight.Entered
	}
	next := t.State
	switch {
	case t.State == component.TurretIdle && len(entered) > 0:
		next = component.TurretAttacking
	case t.State == component.TurretAttacking && len(entered) == 0:
		next = component.TurretIdle
	}
	if next == t.State {
		return
	}
	t.State = next
	if next == component.TurretAttacking {
		t.Target = entered[0]
		t.BurstTimer = t.BurstCooldown / 2
		return
	}
	t.Target = 0
	t.IdleTimer = uniform(ctx.Rand, t.DwellMin, t.DwellMax)
}

// pursuer steers toward the nearest sighted target, or its last attacker while
// aggro lasts, keeps apart from nearby friends, and hurts targets it touches.
type pursuer struct{}

func (pursuer) update(w *ecs.World, ctx *Context, e ecs.Entity, _ *component.Enemy, tr *component.Transform) {
	p, ok := ecs.Get(w, e, component.PursuerComponent.Kind())
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		return
	}

	var desired geom.Vec2
	if p.AggroTimer > 0 {
		if targetTr, ok := ecs.Get(w, p.AggroTarget, component.TransformComponent.Kind()); ok {
			desired = tr.Position.DirectionTo(targetTr.Position).Scale(p.Speed)
		}
		p.AggroTimer = common.TickDown(p.AggroTimer, ctx.Dt)
		if p.AggroTimer <= 0 {
			p.AggroTarget = 0
		}
	}
	if sight, ok := ecs.Get(w, p.Sight, component.AreaComponent.Kind()); ok {
		if target, ok := nearest(w, tr.Position, sight.Entered); ok {
			desired = tr.Position.DirectionTo(target).Scale(p.Speed)
		}
	}
	if friends, ok := ecs.Get(w, p.FriendSight, component.AreaComponent.Kind()); ok {
		desired = desired.Add(separation(w, e, tr.Position, friends.Entered, p.Speed, p.FriendRadius))
	}
	p.Desired = desired

	vel.Value = vel.Value.Add(desired.Sub(vel.Value).Scale(smoothing(p.Smoothing, ctx.Dt)))
	if vel.Value.LenSq() > p.Speed*p.Speed {
		vel.Value = vel.Value.ScaleToLength(p.Speed)
	}

	for _, c := range MoveAndCollide(w, e, vel.Value.Scale(ctx.Dt)) {
		if !ecs.Has(w, c.Other, component.PlayerTagComponent.Kind()) {
			continue
		}
		if target, ok := DamageableOf(w, c.Other); ok {
			target.TakeDamage(w, ctx, p.Damage, e)
		}
		if target, ok := KnockbackableOf(w, c.Other); ok {
			target.Knockback(w, vel.Value.Len()+p.ContactKnockback*p.Damage, tr.Position)
		}
	}
}

func nearest(w *ecs.World, from geom.Vec2, candidates []ecs.Entity) (geom.Vec2, bool) {
	best := math.Inf(1)
	var out geom.Vec2
	found := false
	for _, c := range candidates {
		tr, ok := ecs.Get(w, c, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if d := from.DistanceSqTo(tr.Position); d < best {
			best = d
			out = tr.Position
			found = true
		}
	}
	return out, found
}

// normalizeAngle wraps deg into (-180, 180].
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
