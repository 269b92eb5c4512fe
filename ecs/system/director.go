package system

import (
	"math"

	"github.com/milk9111/wavesurvivor/common"
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
	"github.com/milk9111/wavesurvivor/levels"
)

// DirectorSystem paces the run: it alternates between the upgrade phase and
// combat waves, and ends the run when the player dies.
type DirectorSystem struct {
	spawner *Spawner
}

func NewDirectorSystem(spawner *Spawner) *DirectorSystem {
	return &DirectorSystem{spawner: spawner}
}

func (s *DirectorSystem) Update(w *ecs.World, ctx *Context) {
	if s == nil || w == nil || ctx == nil || ctx.Factory == nil {
		return
	}
	e, ok := ecs.First(w, component.WaveDirectorComponent.Kind())
	if !ok {
		return
	}
	d, _ := ecs.Get(w, e, component.WaveDirectorComponent.Kind())
	if d.Err != nil {
		return
	}

	d.CardTimer = common.TickDown(d.CardTimer, ctx.Dt)

	if d.Phase != component.PhaseGameOver && liveCount(w, component.PlayerTagComponent.Kind()) == 0 {
		d.Phase = component.PhaseGameOver
		d.GameOverTimer = ctx.Factory.Tuning().Director.GameOverGrace
		d.TimerVisible = false
		w.Events().Push(ecs.Event{Type: EventGameOver, Data: d.Wave})
	}

	switch d.Phase {
	case component.PhaseGameOver:
		d.GameOverTimer = common.TickDown(d.GameOverTimer, ctx.Dt)
		if d.GameOverTimer <= 0 {
			d.RestartRequested = true
		}
	case component.PhaseUpgrade:
		if d.Paused {
			return
		}
		s.upgradePhase(w, ctx, d)
	case component.PhaseCombat:
		if d.Paused {
			return
		}
		s.combatPhase(w, ctx, d)
	}
}

func (s *DirectorSystem) upgradePhase(w *ecs.World, ctx *Context, d *component.WaveDirector) {
	spec := ctx.Factory.Tuning().Director

	if clearPartialSet(w, component.WeaponPickupTagComponent.Kind(), len(component.PickupWeaponTypes)) ||
		clearPartialSet(w, component.UpgradeTagComponent.Kind(), len(component.UpgradeKinds)) {
		d.TransitionTimer = spec.Transition
		d.TimerVisible = true
	}

	empty := liveCount(w, component.WeaponPickupTagComponent.Kind()) == 0 &&
		liveCount(w, component.UpgradeTagComponent.Kind()) == 0
	if empty && d.TransitionTimer <= 0 {
		d.Wave++
		d.Quota = int(d.Difficulty * spec.QuotaPerDifficulty)
		d.TimerVisible = false
		d.Phase = component.PhaseCombat
		w.Events().Push(ecs.Event{Type: EventWaveStarted, Data: d.Wave})
		if err := s.spawner.SpawnBatch(w, ctx, spec.InitialBatch, d.Difficulty); err != nil {
			d.Err = err
			return
		}
		d.Quota -= spec.InitialBatch
		return
	}
	if d.TransitionTimer > 0 {
		d.TransitionTimer = common.TickDown(d.TransitionTimer, ctx.Dt)
	}
}

// clearPartialSet removes every pickup carrying kind once the player has taken
// at least one of the full set, and reports whether it did.
func clearPartialSet[T any](w *ecs.World, kind ecs.ComponentKind[T], full int) bool {
	live := liveQuery(w, kind)
	if len(live) == 0 || len(live) >= full {
		return false
	}
	for _, e := range live {
		ecs.QueueDestroy(w, e)
	}
	return true
}

func (s *DirectorSystem) combatPhase(w *ecs.World, ctx *Context, d *component.WaveDirector) {
	spec := ctx.Factory.Tuning().Director

	if liveCount(w, component.EnemyTagComponent.Kind()) == 0 && d.Quota <= 0 {
		d.CardTimer = spec.WaveCard
		d.Difficulty += spec.DifficultyStep
		d.Phase = component.PhaseUpgrade
		if err := SpawnUpgradeRow(w, ctx); err != nil {
			d.Err = err
			return
		}
		if player, ok := firstLive(w, component.PlayerTagComponent.Kind()); ok {
			UpgradeHealth(w, player, spec.HealthBonus)
		}
		w.Events().Push(ecs.Event{Type: EventWaveCleared, Data: d.Wave})
		return
	}

	if d.EnemyTimer <= 0 && d.Quota > 0 {
		n := 1 + int(math.Floor(d.Difficulty/2))
		if err := s.spawner.SpawnBatch(w, ctx, n, d.Difficulty); err != nil {
			d.Err = err
			return
		}
		d.Quota -= n
		d.EnemyTimer = math.Max(spec.SpawnIntervalBase-spec.SpawnIntervalSlope*d.Difficulty, spec.SpawnIntervalMin)
		return
	}
	d.EnemyTimer = common.TickDown(d.EnemyTimer, ctx.Dt)
}

func upgradeSpawn(w *ecs.World) geom.Vec2 {
	if arena := arenaOf(w); arena != nil {
		return arena.Positions[levels.PositionUpgradeSpawn]
	}
	return geom.Vec2{}
}

// SpawnUpgradeRow offers one upgrade of every kind in a row at the upgrade
// spawn position.
func SpawnUpgradeRow(w *ecs.World, ctx *Context) error {
	row := ctx.Factory.Tuning().Director.UpgradeRow
	origin := upgradeSpawn(w)
	for i, kind := range component.UpgradeKinds {
		pos := origin.Add(geom.V(row.X+row.Step*float64(i), row.Y))
		if _, err := ctx.Factory.BuildUpgrade(w, pos, kind, 1); err != nil {
			return err
		}
	}
	return nil
}

// SpawnWeaponRow offers every weapon family at level zero.
func SpawnWeaponRow(w *ecs.World, ctx *Context) error {
	row := ctx.Factory.Tuning().Director.WeaponRow
	origin := upgradeSpawn(w)
	for i, wt := range component.PickupWeaponTypes {
		pos := origin.Add(geom.V(row.X+row.Step*float64(i), row.Y))
		if _, err := ctx.Factory.BuildWeaponPickup(w, pos, wt, 0); err != nil {
			return err
		}
	}
	return nil
}
