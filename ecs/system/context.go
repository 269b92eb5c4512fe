package system

import (
	"errors"
	"math"
	"math/rand"

	"github.com/milk9111/wavesurvivor/common"
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/ecs/entity"
	"github.com/milk9111/wavesurvivor/input"
)

var ErrNoSpawnPoint = errors.New("system: no valid spawn point")

// Context is everything a system may read besides the world for one tick.
type Context struct {
	Dt      float64
	Input   input.State
	Rand    *rand.Rand
	Factory *entity.Factory
}

// smoothing converts a per-frame blend factor at the reference frame rate into
// the equivalent blend for a step of dt seconds.
func smoothing(factor, dt float64) float64 {
	if factor <= 0 {
		return 0
	}
	if factor >= 1 {
		return 1
	}
	return 1 - math.Pow(1-factor, dt*common.ReferenceFPS)
}

// liveCount counts entities carrying kind that are not queued for removal.
func liveCount[T any](w *ecs.World, kind ecs.ComponentKind[T]) int {
	n := 0
	for _, e := range ecs.Query(w, kind) {
		if !ecs.IsQueued(w, e) {
			n++
		}
	}
	return n
}

func liveQuery[T any](w *ecs.World, kind ecs.ComponentKind[T]) []ecs.Entity {
	all := ecs.Query(w, kind)
	out := all[:0]
	for _, e := range all {
		if !ecs.IsQueued(w, e) {
			out = append(out, e)
		}
	}
	return out
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

func arenaOf(w *ecs.World) *component.Arena {
	e, ok := ecs.First(w, component.ArenaComponent.Kind())
	if !ok {
		return nil
	}
	arena, _ := ecs.Get(w, e, component.ArenaComponent.Kind())
	return arena
}
