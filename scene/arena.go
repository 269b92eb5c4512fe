package scene

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/ecs/entity"
	"github.com/milk9111/wavesurvivor/ecs/system"
	"github.com/milk9111/wavesurvivor/input"
	"github.com/milk9111/wavesurvivor/levels"
	"github.com/milk9111/wavesurvivor/prefabs"
)

const DefaultLevel = "arena.json"

// ErrQuit is returned by Tick when the player asks to leave.
var ErrQuit = errors.New("scene: quit requested")

type Options struct {
	// Level is a file under levels/; empty means DefaultLevel.
	Level string
	// Seed drives every random choice in the run; zero picks one from the clock.
	Seed  int64
	Debug bool
	// Tuning overrides the prefab specs loaded from disk or the embedded copy.
	Tuning *prefabs.Tuning
}

// Arena is one running wave-survival scene.
type Arena struct {
	opts    Options
	level   *levels.Level
	factory *entity.Factory
	spawner *system.Spawner
	ctx     *system.Context

	pipeline *ecs.Scheduler[*system.Context]
	world    *ecs.World
	director ecs.Entity
	debug    bool
	ticks    int
}

func NewArena(opts Options) (*Arena, error) {
	if opts.Level == "" {
		opts.Level = DefaultLevel
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	lvl, err := levels.LoadLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	a := &Arena{
		opts:  opts,
		level: lvl,
		debug: opts.Debug,
		ctx:   &system.Context{Rand: rand.New(rand.NewSource(opts.Seed))},
	}
	if err := a.Reload(opts.Tuning); err != nil {
		return nil, err
	}
	return a, nil
}

// Reload swaps in new tuning and restarts the run. A nil tuning reloads the
// prefab specs.
func (a *Arena) Reload(tuning *prefabs.Tuning) error {
	if tuning == nil {
		var err error
		if tuning, err = prefabs.LoadTuning(); err != nil {
			return fmt.Errorf("scene: load tuning: %w", err)
		}
	}
	factory, err := entity.NewFactory(tuning)
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	scaler, err := system.NewScaler(tuning)
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}

	a.factory = factory
	a.spawner = system.NewSpawner(scaler)
	a.pipeline = system.NewPipeline(a.spawner)
	a.ctx.Factory = factory
	return a.Restart()
}

// Restart throws the current world away and builds a fresh run.
func (a *Arena) Restart() error {
	w := ecs.NewWorld()
	if _, err := a.factory.BuildArena(w, a.level); err != nil {
		return fmt.Errorf("scene: restart: %w", err)
	}
	spawn := a.level.Positions[levels.PositionPlayerSpawn]
	if _, err := a.factory.BuildPlayer(w, spawn); err != nil {
		return fmt.Errorf("scene: restart: %w", err)
	}
	if _, err := a.factory.BuildCamera(w, spawn); err != nil {
		return fmt.Errorf("scene: restart: %w", err)
	}
	a.director = a.factory.BuildDirector(w)
	if err := system.SpawnWeaponRow(w, a.ctx); err != nil {
		return fmt.Errorf("scene: restart: %w", err)
	}

	a.world = w
	a.ticks = 0
	return nil
}

// Tick advances the scene by dt seconds using in for this tick's input.
func (a *Arena) Tick(dt float64, in input.State) error {
	if a == nil || a.world == nil {
		return nil
	}
	if in != nil {
		if in.Pressed(input.Quit) {
			return ErrQuit
		}
		if in.Pressed(input.Debug) {
			a.debug = !a.debug
		}
		if in.Pressed(input.Pause) {
			a.SetPaused(!a.Paused())
		}
	}

	d := a.directorState()
	if d != nil && d.Paused {
		return nil
	}

	a.ctx.Dt = dt
	a.ctx.Input = in
	a.pipeline.Update(a.world, a.ctx)
	a.ticks++

	d = a.directorState()
	if d == nil {
		return nil
	}
	if d.Err != nil {
		return fmt.Errorf("scene: wave %d: %w", d.Wave, d.Err)
	}
	if d.RestartRequested {
		log.Printf("scene: game over on wave %d, restarting", d.Wave)
		return a.Restart()
	}
	return nil
}

func (a *Arena) directorState() *component.WaveDirector {
	if a == nil || a.world == nil {
		return nil
	}
	d, _ := ecs.Get(a.world, a.director, component.WaveDirectorComponent.Kind())
	return d
}

// Paused reports whether the simulation is frozen behind the pause menu.
func (a *Arena) Paused() bool {
	d := a.directorState()
	return d != nil && d.Paused
}

// SetPaused freezes or resumes the run. It has no effect once the run is over.
func (a *Arena) SetPaused(paused bool) {
	d := a.directorState()
	if d == nil || d.Phase == component.PhaseGameOver {
		return
	}
	d.Paused = paused
}

func (a *Arena) Debug() bool { return a != nil && a.debug }

func (a *Arena) World() *ecs.World {
	if a == nil {
		return nil
	}
	return a.world
}

// Ticks is the number of simulated ticks since the last restart.
func (a *Arena) Ticks() int {
	if a == nil {
		return 0
	}
	return a.ticks
}

func (a *Arena) Tuning() *prefabs.Tuning {
	if a == nil {
		return nil
	}
	return a.factory.Tuning()
}
