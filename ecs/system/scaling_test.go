package system

import (
	"testing"

	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/ecs/entity"
)

func TestScalerScripts(t *testing.T) {
	cases := []struct {
		name       string
		behavior   component.Behavior
		difficulty float64
		want       entity.EnemyParams
	}{
		{"target_d1", component.BehaviorStationary, 1, entity.EnemyParams{HP: 10, Radius: 5}},
		{"tower_d2", component.BehaviorTurret, 2, entity.EnemyParams{
			HP: 30, Damage: 5, ROF: 3.5, Sight: 170, Burst: 5, BurstCooldown: 1.6,
		}},
		{"tower_cooldown_floor", component.BehaviorTurret, 10, entity.EnemyParams{
			HP: 150, Damage: 13, ROF: 11.5, Sight: 250, Burst: 13, BurstCooldown: 0.5,
		}},
		{"chaser_d1_5", component.BehaviorPursuer, 1.5, entity.EnemyParams{HP: 30, Damage: 7.5, Speed: 137.5}},
	}

	_, ctx := newTestContext(t, 1)
	scaler, err := NewScaler(ctx.Factory.Tuning())
	if err != nil {
		t.Fatalf("NewScaler: %v", err)
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := scaler.Scale(c.behavior, c.difficulty, nil)
			if err != nil {
				t.Fatalf("Scale: %v", err)
			}
			if !closeParams(got, c.want) {
				t.Fatalf("Scale = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestScalerTargetRadiusRange(t *testing.T) {
	_, ctx := newTestContext(t, 1)
	scaler, err := NewScaler(ctx.Factory.Tuning())
	if err != nil {
		t.Fatalf("NewScaler: %v", err)
	}
	for i := 0; i < 200; i++ {
		p, err := scaler.Scale(component.BehaviorStationary, 1, func(lo, hi int) int {
			return lo + ctx.Rand.Intn(hi-lo+1)
		})
		if err != nil {
			t.Fatalf("Scale: %v", err)
		}
		if p.Radius < 5 || p.Radius > 16 {
			t.Fatalf("radius %v outside [5, 16]", p.Radius)
		}
	}
}

func closeParams(a, b entity.EnemyParams) bool {
	near := func(x, y float64) bool { return x-y < 1e-9 && y-x < 1e-9 }
	return near(a.HP, b.HP) && near(a.Radius, b.Radius) && near(a.Damage, b.Damage) &&
		near(a.ROF, b.ROF) && near(a.Sight, b.Sight) && a.Burst == b.Burst &&
		near(a.BurstCooldown, b.BurstCooldown) && near(a.Speed, b.Speed)
}
