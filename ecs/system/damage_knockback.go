package system

import (
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
)

const (
	EventCameraShake = "camera_shake"
	EventEnemyKilled = "enemy_killed"
	EventPlayerHurt  = "player_hurt"
	EventPlayerDied  = "player_died"
	EventPickup      = "pickup"
	EventWaveStarted = "wave_started"
	EventWaveCleared = "wave_cleared"
	EventGameOver    = "game_over"
)

// Damageable is implemented by entities that can take damage.
type Damageable interface {
	TakeDamage(w *ecs.World, ctx *Context, amount float64, source ecs.Entity)
}

// Knockbackable is implemented by entities that can be pushed by hits.
type Knockbackable interface {
	Knockback(w *ecs.World, amount float64, from geom.Vec2)
}

// DamageableOf returns the damage capability of e, if it has one.
func DamageableOf(w *ecs.World, e ecs.Entity) (Damageable, bool) {
	if !ecs.Has(w, e, component.HealthComponent.Kind()) {
		return nil, false
	}
	switch {
	case ecs.Has(w, e, component.PlayerComponent.Kind()):
		return playerDamage{e: e}, true
	case ecs.Has(w, e, component.EnemyComponent.Kind()):
		return enemyDamage{e: e}, true
	}
	return nil, false
}

// KnockbackableOf returns the knockback capability of e, if it has one.
func KnockbackableOf(w *ecs.World, e ecs.Entity) (Knockbackable, bool) {
	if !ecs.Has(w, e, component.KnockbackableComponent.Kind()) || !ecs.Has(w, e, component.VelocityComponent.Kind()) {
		return nil, false
	}
	return knockback{e: e}, true
}

type playerDamage struct {
	e ecs.Entity
}

func (d playerDamage) TakeDamage(w *ecs.World, _ *Context, amount float64, source ecs.Entity) {
	if ecs.IsQueued(w, d.e) {
		return
	}
	player, ok := ecs.Get(w, d.e, component.PlayerComponent.Kind())
	if !ok || player.Invincibility > 0 {
		return
	}
	hp, ok := ecs.Get(w, d.e, component.HealthComponent.Kind())
	if !ok {
		return
	}

	player.Invincibility = player.InvincibilityTime
	hp.Current -= amount
	w.Events().Push(ecs.Event{Type: EventPlayerHurt, Data: amount})
	if hp.Current <= 0 {
		hp.Current = 0
		ecs.QueueDestroy(w, d.e)
		w.Events().Push(ecs.Event{Type: EventPlayerDied, Data: source})
	}
}

type enemyDamage struct {
	e ecs.Entity
}

func (d enemyDamage) TakeDamage(w *ecs.World, ctx *Context, amount float64, source ecs.Entity) {
	if ecs.IsQueued(w, d.e) || !ecs.Has(w, source, component.PlayerTagComponent.Kind()) {
		return
	}
	hp, ok := ecs.Get(w, d.e, component.HealthComponent.Kind())
	if !ok {
		return
	}
	enemy, _ := ecs.Get(w, d.e, component.EnemyComponent.Kind())

	if pursuer, ok := ecs.Get(w, d.e, component.PursuerComponent.Kind()); ok {
		pursuer.AggroTarget = source
		pursuer.AggroTimer = pursuer.AggroTime
	}

	hp.Current -= amount
	if hp.Current > 0 {
		if bar, ok := ecs.Get(w, d.e, component.HealthBarComponent.Kind()); ok {
			bar.Visible = true
			bar.Value = hp.Current
			bar.Max = hp.Max
		}
		return
	}

	hp.Current = 0
	killEnemy(w, ctx, d.e, enemy)
}

// killEnemy runs the one-time death side effects and queues e for removal.
func killEnemy(w *ecs.World, ctx *Context, e ecs.Entity, enemy *component.Enemy) {
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	var pos geom.Vec2
	if tr != nil {
		pos = tr.Position
	}

	if ctx != nil && ctx.Factory != nil {
		spec := ctx.Factory.Tuning().Enemies
		if spec.ShakeRadius > 0 {
			w.Events().Push(ecs.Event{Type: EventCameraShake, Data: spec.ShakeFactor * enemy.Radius / spec.ShakeRadius})
		}
		if ctx.Rand != nil && ctx.Rand.Intn(100)+1 < enemy.DropChance {
			kinds := component.UpgradeKinds[1:]
			kind := kinds[ctx.Rand.Intn(len(kinds))]
			_, _ = ctx.Factory.BuildUpgradeDrop(w, pos, kind)
		}
	}
	w.Events().Push(ecs.Event{Type: EventEnemyKilled, Data: enemy.Behavior})
	ecs.QueueDestroy(w, e)
}

type knockback struct {
	e ecs.Entity
}

func (k knockback) Knockback(w *ecs.World, amount float64, from geom.Vec2) {
	kb, _ := ecs.Get(w, k.e, component.KnockbackableComponent.Kind())
	if kb.OnlyWhileHurt {
		player, ok := ecs.Get(w, k.e, component.PlayerComponent.Kind())
		if !ok || player.Invincibility <= 0 {
			return
		}
	}
	tr, ok := ecs.Get(w, k.e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	vel, _ := ecs.Get(w, k.e, component.VelocityComponent.Kind())
	vel.Value = vel.Value.Add(from.DirectionTo(tr.Position).Scale(amount * kb.Scale))
}

// Heal raises e's health by amount without exceeding its maximum.
func Heal(w *ecs.World, e ecs.Entity, amount float64) {
	if ecs.IsQueued(w, e) {
		return
	}
	hp, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return
	}
	hp.Current += amount
	hp.Clamp()
}

// UpgradeHealth raises the maximum health by amount, then heals by amount.
func UpgradeHealth(w *ecs.World, e ecs.Entity, amount float64) {
	hp, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return
	}
	hp.Max += amount
	Heal(w, e, amount)
}
