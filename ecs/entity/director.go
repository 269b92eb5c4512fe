package entity

import (
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
)

// BuildDirector creates the wave director singleton in its opening upgrade
// phase.
func (f *Factory) BuildDirector(w *ecs.World) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.WaveDirectorComponent.Kind(), &component.WaveDirector{
		Phase:      component.PhaseUpgrade,
		Difficulty: f.tuning.Director.StartDifficulty,
	})
	return e
}
