package system

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/ecs/entity"
	"github.com/milk9111/wavesurvivor/geom"
)

// Spawner places difficulty-scaled enemies at random free points inside the
// arena's spawn zones.
type Spawner struct {
	scaler *Scaler
}

func NewSpawner(scaler *Scaler) *Spawner {
	return &Spawner{scaler: scaler}
}

// FindSpawnPoint samples a zone weighted by area, then a point inside it, and
// rejects points too close to the player or overlapping any body.
func FindSpawnPoint(w *ecs.World, ctx *Context) (geom.Vec2, error) {
	arena := arenaOf(w)
	if arena == nil || len(arena.SpawnZones) == 0 || arena.SpawnArea <= 0 {
		return geom.Vec2{}, fmt.Errorf("%w: no spawn zones", ErrNoSpawnPoint)
	}
	spec := ctx.Factory.Tuning().Director
	probe := geom.Circle(spec.ProbeRadius)

	var player *component.Transform
	if e, ok := firstLive(w, component.PlayerTagComponent.Kind()); ok {
		player, _ = ecs.Get(w, e, component.TransformComponent.Kind())
	}

	attempts := spec.MaxSpawnAttempts
	if attempts <= 0 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		p := pickZone(ctx.Rand, arena).RandomPoint(ctx.Rand)
		if player != nil && p.DistanceTo(player.Position) <= spec.MinPlayerDistance {
			continue
		}
		if len(Overlapping(w, probe, p, component.LayerAll)) > 0 {
			continue
		}
		return p, nil
	}
	return geom.Vec2{}, fmt.Errorf("%w: %d attempts", ErrNoSpawnPoint, attempts)
}

func pickZone(rng *rand.Rand, arena *component.Arena) geom.Rectangle {
	choice := rng.Float64() * arena.SpawnArea
	for _, zone := range arena.SpawnZones {
		choice -= zone.Area()
		if choice <= 0 {
			return zone
		}
	}
	return arena.SpawnZones[len(arena.SpawnZones)-1]
}

// SpawnEnemy creates one enemy of a random kind at a free spawn point.
func (s *Spawner) SpawnEnemy(w *ecs.World, ctx *Context, difficulty float64) (ecs.Entity, error) {
	pos, err := FindSpawnPoint(w, ctx)
	if err != nil {
		return 0, err
	}
	behaviors := []component.Behavior{component.BehaviorStationary, component.BehaviorTurret, component.BehaviorPursuer}
	behavior := behaviors[ctx.Rand.Intn(len(behaviors))]
	return s.SpawnKind(w, ctx, behavior, pos, difficulty)
}

// SpawnKind creates one enemy of behavior at pos, scaled to difficulty.
func (s *Spawner) SpawnKind(w *ecs.World, ctx *Context, behavior component.Behavior, pos geom.Vec2, difficulty float64) (ecs.Entity, error) {
	params, err := s.scaler.Scale(behavior, difficulty, func(lo, hi int) int {
		return lo + ctx.Rand.Intn(hi-lo+1)
	})
	if err != nil {
		return 0, err
	}

	var build func(*ecs.World, geom.Vec2, entity.EnemyParams) (ecs.Entity, error)
	switch behavior {
	case component.BehaviorTurret:
		build = ctx.Factory.BuildTower
	case component.BehaviorPursuer:
		build = ctx.Factory.BuildChaser
	default:
		build = ctx.Factory.BuildTarget
	}
	return build(w, pos, params)
}

// SpawnBatch spawns n enemies and stops at the first failure.
func (s *Spawner) SpawnBatch(w *ecs.World, ctx *Context, n int, difficulty float64) error {
	for i := 0; i < n; i++ {
		if _, err := s.SpawnEnemy(w, ctx, difficulty); err != nil {
			return err
		}
	}
	return nil
}

func firstLive[T any](w *ecs.World, kind ecs.ComponentKind[T]) (ecs.Entity, bool) {
	for _, e := range ecs.Query(w, kind) {
		if !ecs.IsQueued(w, e) {
			return e, true
		}
	}
	return 0, false
}
