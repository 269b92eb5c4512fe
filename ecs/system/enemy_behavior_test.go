package system

import (
	"math"
	"testing"

	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/ecs/entity"
	"github.com/milk9111/wavesurvivor/geom"
)

func TestTowerFiresBurstsThenPauses(t *testing.T) {
	w, ctx := newTestContext(t, 3)
	mustBuild(t)(ctx.Factory.BuildPlayer(w, geom.V(100, 0)))
	tower := mustBuild(t)(ctx.Factory.BuildTower(w, geom.V(0, 0), entity.EnemyParams{
		HP:            1000,
		Damage:        1,
		ROF:           5,
		Burst:         3,
		BurstCooldown: 1,
	}))
	turret, _ := ecs.Get(w, tower, component.TurretComponent.Kind())
	pipeline := NewPipeline(nil)

	seen := map[ecs.Entity]bool{}
	var shots []int
	attackStart := -1
	for tick := 0; tick < 240; tick++ {
		pipeline.Update(w, ctx)
		if attackStart < 0 && turret.State == component.TurretAttacking {
			attackStart = tick
		}
		for _, b := range ecs.Query(w, component.BulletComponent.Kind()) {
			if !seen[b] {
				seen[b] = true
				shots = append(shots, tick)
			}
		}
	}

	if attackStart != 0 {
		t.Fatalf("tower started attacking at tick %d, want 0", attackStart)
	}
	if len(shots) < 4 {
		t.Fatalf("shots at ticks %v, want at least 4", shots)
	}
	inFirstSecond := 0
	for _, s := range shots {
		if s-attackStart < 60 {
			inFirstSecond++
		}
	}
	if inFirstSecond != 3 {
		t.Fatalf("%d shots in the first second (%v), want 3", inFirstSecond, shots)
	}
	for i := 1; i < 3; i++ {
		if gap := shots[i] - shots[i-1]; gap != 12 {
			t.Fatalf("gap between burst shots %d and %d = %d ticks, want 12", i-1, i, gap)
		}
	}
	if pause := shots[3] - shots[2]; pause < 60 {
		t.Fatalf("pause after burst = %d ticks, want at least 60", pause)
	}
}

func TestTowerReturnsToIdleWhenSightEmpties(t *testing.T) {
	w, ctx := newTestContext(t, 3)
	player := mustBuild(t)(ctx.Factory.BuildPlayer(w, geom.V(100, 0)))
	tower := mustBuild(t)(ctx.Factory.BuildTower(w, geom.V(0, 0), entity.EnemyParams{HP: 1000, ROF: 1}))
	turret, _ := ecs.Get(w, tower, component.TurretComponent.Kind())
	pipeline := NewPipeline(nil)

	pipeline.Update(w, ctx)
	if turret.State != component.TurretAttacking || turret.Target != player {
		t.Fatalf("state=%v target=%v, want attacking %v", turret.State, turret.Target, player)
	}
	if turret.BurstTimer <= 0 || turret.BurstTimer > turret.BurstCooldown/2 {
		t.Fatalf("burst timer = %v, want (0, %v]", turret.BurstTimer, turret.BurstCooldown/2)
	}

	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	tr.Position = geom.V(1000, 0)
	pipeline.Update(w, ctx)
	if turret.State != component.TurretIdle || turret.Target != 0 {
		t.Fatalf("state=%v target=%v, want idle with no target", turret.State, turret.Target)
	}
	if turret.IdleTimer < turret.DwellMin || turret.IdleTimer > turret.DwellMax {
		t.Fatalf("idle dwell = %v, want [%v, %v]", turret.IdleTimer, turret.DwellMin, turret.DwellMax)
	}
}

func TestChaserAggroOutlastsSight(t *testing.T) {
	w, ctx := newTestContext(t, 5)
	player := mustBuild(t)(ctx.Factory.BuildPlayer(w, geom.V(1000, 0)))
	chaser := mustBuild(t)(ctx.Factory.BuildChaser(w, geom.V(0, 0), entity.EnemyParams{HP: 100, Speed: 100, Damage: 1}))
	pursuer, _ := ecs.Get(w, chaser, component.PursuerComponent.Kind())
	pipeline := NewPipeline(nil)

	dmg, _ := DamageableOf(w, chaser)
	dmg.TakeDamage(w, ctx, 1, player)

	for tick := 1; tick <= 125; tick++ {
		pipeline.Update(w, ctx)
		switch {
		case tick < 120:
			if pursuer.AggroTarget != player {
				t.Fatalf("tick %d: aggro target cleared early", tick)
			}
			if pursuer.Desired.X <= 0 || math.Abs(pursuer.Desired.Len()-100) > 1e-6 {
				t.Fatalf("tick %d: desired = %v, want speed 100 toward the player", tick, pursuer.Desired)
			}
		case tick > 121:
			if pursuer.AggroTarget != 0 {
				t.Fatalf("tick %d: aggro target still set", tick)
			}
			if !pursuer.Desired.IsZero() {
				t.Fatalf("tick %d: desired = %v, want zero", tick, pursuer.Desired)
			}
		}
	}

	vel, _ := ecs.Get(w, chaser, component.VelocityComponent.Kind())
	if vel.Value.Len() > pursuer.Speed+1e-9 {
		t.Fatalf("velocity %v exceeds speed %v", vel.Value.Len(), pursuer.Speed)
	}
}

func TestChaserSeeksNearestSightedPlayer(t *testing.T) {
	w, ctx := newTestContext(t, 5)
	mustBuild(t)(ctx.Factory.BuildPlayer(w, geom.V(0, 100)))
	chaser := mustBuild(t)(ctx.Factory.BuildChaser(w, geom.V(0, 0), entity.EnemyParams{HP: 100, Speed: 120}))
	pursuer, _ := ecs.Get(w, chaser, component.PursuerComponent.Kind())

	NewPipeline(nil).Update(w, ctx)
	if pursuer.Desired.DistanceTo(geom.V(0, 120)) > 1e-9 {
		t.Fatalf("desired = %v, want (0, 120)", pursuer.Desired)
	}
}

func TestSeparationPushesAwayFromFriends(t *testing.T) {
	w, ctx := newTestContext(t, 5)
	a := mustBuild(t)(ctx.Factory.BuildChaser(w, geom.V(0, 0), entity.EnemyParams{HP: 10}))
	b := mustBuild(t)(ctx.Factory.BuildChaser(w, geom.V(12, 0), entity.EnemyParams{HP: 10}))

	push := separation(w, a, geom.V(0, 0), []ecs.Entity{a, b}, 90, 24)
	// speed/3 * 24^2 / 12^2 = 30 * 4
	if push.DistanceTo(geom.V(-120, 0)) > 1e-9 {
		t.Fatalf("push = %v, want (-120, 0)", push)
	}
	if got := separation(w, a, geom.V(12, 0), []ecs.Entity{b}, 90, 24); !got.IsZero() {
		t.Fatalf("coincident friend push = %v, want zero", got)
	}
}

func TestChaserContactHurtsPlayer(t *testing.T) {
	w, ctx := newTestContext(t, 5)
	player := mustBuild(t)(ctx.Factory.BuildPlayer(w, geom.V(10, 0)))
	mustBuild(t)(ctx.Factory.BuildChaser(w, geom.V(0, 0), entity.EnemyParams{HP: 10, Damage: 5}))

	NewPipeline(nil).Update(w, ctx)
	hp, _ := ecs.Get(w, player, component.HealthComponent.Kind())
	if hp.Current != 20 {
		t.Fatalf("player hp = %v, want 20", hp.Current)
	}
	vel, _ := ecs.Get(w, player, component.VelocityComponent.Kind())
	if vel.Value.X <= 0 {
		t.Fatalf("player velocity = %v, want pushed away from the chaser", vel.Value)
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{190, -170},
		{-190, 170},
		{540, 180},
		{-180, 180},
	}
	for _, c := range cases {
		if got := normalizeAngle(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("normalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
