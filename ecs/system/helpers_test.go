package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/entity"
	"github.com/milk9111/wavesurvivor/geom"
	"github.com/milk9111/wavesurvivor/input"
	"github.com/milk9111/wavesurvivor/levels"
	"github.com/milk9111/wavesurvivor/prefabs"
)

const testDt = 1.0 / 60

func newTestContext(t *testing.T, seed int64) (*ecs.World, *Context) {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	factory, err := entity.NewFactory(tuning)
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}
	return ecs.NewWorld(), &Context{
		Dt:      testDt,
		Input:   &input.Snapshot{},
		Rand:    rand.New(rand.NewSource(seed)),
		Factory: factory,
	}
}

// newTestArena builds an arena with one spawn zone and the named positions.
func newTestArena(w *ecs.World, zone geom.Rectangle, upgradeSpawn geom.Vec2) ecs.Entity {
	return entity.NewArena(w, []geom.Rectangle{zone}, map[string]geom.Vec2{
		levels.PositionPlayerSpawn:  geom.V(0, 0),
		levels.PositionUpgradeSpawn: upgradeSpawn,
	})
}

func newTestSpawner(t *testing.T, ctx *Context) *Spawner {
	t.Helper()
	scaler, err := NewScaler(ctx.Factory.Tuning())
	if err != nil {
		t.Fatalf("NewScaler: %v", err)
	}
	return NewSpawner(scaler)
}

func mustBuild(t *testing.T) func(ecs.Entity, error) ecs.Entity {
	return func(e ecs.Entity, err error) ecs.Entity {
		t.Helper()
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		return e
	}
}

func countEvents(w *ecs.World, typ string) int {
	n := 0
	for _, ev := range w.Events().Items() {
		if ev.Type == typ {
			n++
		}
	}
	return n
}
