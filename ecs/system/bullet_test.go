package system

import (
	"testing"

	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/ecs/entity"
	"github.com/milk9111/wavesurvivor/geom"
)

func TestBulletHitsFirstTargetOnce(t *testing.T) {
	w, ctx := newTestContext(t, 1)
	player := mustBuild(t)(ctx.Factory.BuildPlayer(w, geom.V(-500, 0)))
	target := mustBuild(t)(ctx.Factory.BuildTarget(w, geom.V(18, 0), entity.EnemyParams{HP: 10, Radius: 8}))
	bullet := ctx.Factory.BuildBullet(w, entity.BulletParams{
		Position:  geom.V(0, 0),
		Direction: geom.V(1, 0),
		Speed:     600,
		Damage:    3,
		Life:      2,
		Radius:    2,
		Mask:      component.LayerWall | component.LayerEnemy,
		Source:    player,
	})

	NewPipeline(nil).Update(w, ctx)
	hp, _ := ecs.Get(w, target, component.HealthComponent.Kind())
	if hp.Current != 7 {
		t.Fatalf("target hp = %v, want 7", hp.Current)
	}
	if ecs.IsAlive(w, bullet) {
		t.Fatalf("bullet survived its hit")
	}
	if n := ecs.Count(w, component.HitEffectTagComponent.Kind()); n != 1 {
		t.Fatalf("hit effects = %d, want 1", n)
	}
}

func TestBulletHalfStepsCatchThinTargets(t *testing.T) {
	w, ctx := newTestContext(t, 1)
	player := mustBuild(t)(ctx.Factory.BuildPlayer(w, geom.V(-500, 0)))
	// a full step of 10 units would jump from x=0 to x=10 and miss a radius 2
	// target centred at x=5
	target := mustBuild(t)(ctx.Factory.BuildTarget(w, geom.V(5, 0), entity.EnemyParams{HP: 10, Radius: 2}))

	ctx.Factory.BuildBullet(w, entity.BulletParams{
		Position:  geom.V(0, 0),
		Direction: geom.V(1, 0),
		Speed:     600,
		Damage:    1,
		Life:      2,
		Radius:    1,
		Mask:      component.LayerEnemy,
		Source:    player,
	})

	NewBulletSystem().Update(w, ctx)
	hp, _ := ecs.Get(w, target, component.HealthComponent.Kind())
	if hp.Current != 9 {
		t.Fatalf("target hp = %v, want 9", hp.Current)
	}
}

func TestBulletExpires(t *testing.T) {
	w, ctx := newTestContext(t, 1)
	bullet := ctx.Factory.BuildBullet(w, entity.BulletParams{
		Direction: geom.V(0, 1),
		Speed:     10,
		Life:      0.5,
		Radius:    1,
	})
	bullets := NewBulletSystem()

	for i := 0; i < 29; i++ {
		bullets.Update(w, ctx)
		ecs.Sweep(w)
	}
	if !ecs.IsAlive(w, bullet) {
		t.Fatalf("bullet expired early")
	}
	bullets.Update(w, ctx)
	bullets.Update(w, ctx)
	ecs.Sweep(w)
	if ecs.IsAlive(w, bullet) {
		t.Fatalf("bullet outlived its life")
	}
}

func TestBulletStopsAtWalls(t *testing.T) {
	w, ctx := newTestContext(t, 1)
	newTestArena(w, geom.Rectangle{W: 10, H: 10}, geom.Vec2{})
	mustBuild(t)(entity.BuildWall(w, geom.Rectangle{X: 10, Y: -50, W: 20, H: 100}))
	bullet := ctx.Factory.BuildBullet(w, entity.BulletParams{
		Position:  geom.V(0, 0),
		Direction: geom.V(1, 0),
		Speed:     600,
		Life:      2,
		Radius:    2,
		Mask:      component.LayerWall,
	})

	NewPipeline(nil).Update(w, ctx)
	if ecs.IsAlive(w, bullet) {
		t.Fatalf("bullet passed through a wall")
	}
}
