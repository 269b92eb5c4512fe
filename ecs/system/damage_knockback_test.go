package system

import (
	"testing"

	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/ecs/entity"
	"github.com/milk9111/wavesurvivor/geom"
)

func TestEnemyDamageClampsAndKillsOnce(t *testing.T) {
	w, ctx := newTestContext(t, 1)
	player := mustBuild(t)(ctx.Factory.BuildPlayer(w, geom.V(500, 500)))
	target := mustBuild(t)(ctx.Factory.BuildTarget(w, geom.V(0, 0), entity.EnemyParams{HP: 10, Radius: 8}))

	dmg, ok := DamageableOf(w, target)
	if !ok {
		t.Fatalf("target should be damageable")
	}
	hp, _ := ecs.Get(w, target, component.HealthComponent.Kind())
	bar, _ := ecs.Get(w, target, component.HealthBarComponent.Kind())

	dmg.TakeDamage(w, ctx, 4, player)
	if hp.Current != 6 || !bar.Visible || bar.Value != 6 {
		t.Fatalf("after first hit hp=%v bar=%+v", hp.Current, bar)
	}

	for i := 0; i < 4; i++ {
		dmg.TakeDamage(w, ctx, 4, player)
		if hp.Current < 0 || hp.Current > hp.Max {
			t.Fatalf("hp %v left [0, %v]", hp.Current, hp.Max)
		}
	}
	if hp.Current != 0 {
		t.Fatalf("hp = %v, want 0", hp.Current)
	}
	if got := countEvents(w, EventEnemyKilled); got != 1 {
		t.Fatalf("enemy_killed events = %d, want 1", got)
	}
	if !ecs.IsQueued(w, target) {
		t.Fatalf("dead enemy should be queued for removal")
	}
}

func TestEnemyIgnoresNonPlayerSources(t *testing.T) {
	w, ctx := newTestContext(t, 1)
	other := mustBuild(t)(ctx.Factory.BuildTarget(w, geom.V(100, 0), entity.EnemyParams{HP: 10}))
	target := mustBuild(t)(ctx.Factory.BuildTarget(w, geom.V(0, 0), entity.EnemyParams{HP: 10}))

	dmg, _ := DamageableOf(w, target)
	dmg.TakeDamage(w, ctx, 100, other)

	hp, _ := ecs.Get(w, target, component.HealthComponent.Kind())
	if hp.Current != 10 || ecs.IsQueued(w, target) {
		t.Fatalf("friendly damage applied: hp=%v queued=%v", hp.Current, ecs.IsQueued(w, target))
	}
}

func TestPlayerDamageRespectsInvincibility(t *testing.T) {
	w, ctx := newTestContext(t, 1)
	player := mustBuild(t)(ctx.Factory.BuildPlayer(w, geom.V(0, 0)))
	dmg, _ := DamageableOf(w, player)
	hp, _ := ecs.Get(w, player, component.HealthComponent.Kind())
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())

	dmg.TakeDamage(w, ctx, 5, 0)
	dmg.TakeDamage(w, ctx, 5, 0)
	if hp.Current != 20 {
		t.Fatalf("hp = %v, want 20 (second hit inside invincibility)", hp.Current)
	}
	if p.Invincibility != p.InvincibilityTime {
		t.Fatalf("invincibility = %v, want %v", p.Invincibility, p.InvincibilityTime)
	}

	p.Invincibility = 0
	dmg.TakeDamage(w, ctx, 100, 0)
	if hp.Current != 0 || !ecs.IsQueued(w, player) {
		t.Fatalf("lethal hit: hp=%v queued=%v", hp.Current, ecs.IsQueued(w, player))
	}
	p.Invincibility = 0
	dmg.TakeDamage(w, ctx, 100, 0)
	if got := countEvents(w, EventPlayerDied); got != 1 {
		t.Fatalf("player_died events = %d, want 1", got)
	}
}

func TestHealAndUpgradeHealthClamp(t *testing.T) {
	cases := []struct {
		name    string
		damage  float64
		heal    float64
		upgrade float64
		wantHP  float64
		wantMax float64
	}{
		{"heal_clamps", 5, 100, 0, 25, 25},
		{"partial_heal", 10, 4, 0, 19, 25},
		{"upgrade_raises_max", 0, 0, 5, 30, 30},
		{"upgrade_when_hurt", 10, 0, 5, 20, 30},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, ctx := newTestContext(t, 1)
			player := mustBuild(t)(ctx.Factory.BuildPlayer(w, geom.V(0, 0)))
			hp, _ := ecs.Get(w, player, component.HealthComponent.Kind())

			hp.Current -= c.damage
			Heal(w, player, c.heal)
			UpgradeHealth(w, player, c.upgrade)
			if hp.Current != c.wantHP || hp.Max != c.wantMax {
				t.Fatalf("hp = %v/%v, want %v/%v", hp.Current, hp.Max, c.wantHP, c.wantMax)
			}
		})
	}
}

func TestKnockback(t *testing.T) {
	w, ctx := newTestContext(t, 1)
	player := mustBuild(t)(ctx.Factory.BuildPlayer(w, geom.V(0, 0)))
	chaser := mustBuild(t)(ctx.Factory.BuildChaser(w, geom.V(100, 0), entity.EnemyParams{HP: 10}))
	target := mustBuild(t)(ctx.Factory.BuildTarget(w, geom.V(200, 0), entity.EnemyParams{HP: 10}))

	if _, ok := KnockbackableOf(w, target); ok {
		t.Fatalf("targets should ignore knockback")
	}

	kb, _ := KnockbackableOf(w, player)
	kb.Knockback(w, 10, geom.V(-10, 0))
	vel, _ := ecs.Get(w, player, component.VelocityComponent.Kind())
	if !vel.Value.IsZero() {
		t.Fatalf("player knocked back outside hurt window: %v", vel.Value)
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	p.Invincibility = 0.1
	kb.Knockback(w, 10, geom.V(-10, 0))
	if vel.Value != geom.V(10, 0) {
		t.Fatalf("player velocity = %v, want (10, 0)", vel.Value)
	}

	kb, _ = KnockbackableOf(w, chaser)
	kb.Knockback(w, 2, geom.V(100, 10))
	cvel, _ := ecs.Get(w, chaser, component.VelocityComponent.Kind())
	if cvel.Value.DistanceTo(geom.V(0, -10)) > 1e-9 {
		t.Fatalf("chaser velocity = %v, want (0, -10)", cvel.Value)
	}
}
