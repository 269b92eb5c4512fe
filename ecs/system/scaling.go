package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/ecs/entity"
	"github.com/milk9111/wavesurvivor/prefabs"
)

// Scaler turns a difficulty into enemy stats by running one tengo script per
// enemy kind. Scripts read the global `difficulty` and define any of the
// output globals; undefined outputs keep the prefab default.
type Scaler struct {
	scripts map[component.Behavior]*tengo.Compiled
	target  prefabs.TargetSpec
}

func NewScaler(tuning *prefabs.Tuning) (*Scaler, error) {
	if tuning == nil {
		return nil, fmt.Errorf("scaler: nil tuning")
	}
	s := &Scaler{
		scripts: make(map[component.Behavior]*tengo.Compiled, 3),
		target:  tuning.Enemies.Target,
	}
	paths := map[component.Behavior]string{
		component.BehaviorStationary: tuning.Enemies.Target.Script,
		component.BehaviorTurret:     tuning.Enemies.Tower.Script,
		component.BehaviorPursuer:    tuning.Enemies.Chaser.Script,
	}
	for behavior, path := range paths {
		if path == "" {
			continue
		}
		compiled, err := compileScalingScript(path)
		if err != nil {
			return nil, fmt.Errorf("scaler: %s: %w", path, err)
		}
		s.scripts[behavior] = compiled
	}
	return s, nil
}

func compileScalingScript(path string) (*tengo.Compiled, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}
	script := tengo.NewScript(src)
	_ = script.Add("difficulty", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

// Scale returns the stats for one enemy of behavior at difficulty. radius picks
// an integer target radius in [lo, hi]; nil uses lo.
func (s *Scaler) Scale(behavior component.Behavior, difficulty float64, radius func(lo, hi int) int) (entity.EnemyParams, error) {
	var p entity.EnemyParams
	if s == nil {
		return p, fmt.Errorf("scaler: nil scaler")
	}
	if behavior == component.BehaviorStationary {
		lo, hi := s.target.RadiusMin, s.target.RadiusMax
		if radius != nil && hi > lo {
			p.Radius = float64(radius(lo, hi))
		} else {
			p.Radius = float64(lo)
		}
	}

	compiled, ok := s.scripts[behavior]
	if !ok {
		return p, nil
	}
	if err := compiled.Set("difficulty", difficulty); err != nil {
		return p, fmt.Errorf("scaler: set difficulty: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return p, fmt.Errorf("scaler: run %s: %w", behavior, err)
	}

	p.HP = scriptFloat(compiled, "hp")
	p.Damage = scriptFloat(compiled, "damage")
	p.ROF = scriptFloat(compiled, "rof")
	p.Sight = scriptFloat(compiled, "sight")
	p.Burst = int(scriptFloat(compiled, "burst"))
	p.BurstCooldown = scriptFloat(compiled, "burst_cooldown")
	p.Speed = scriptFloat(compiled, "speed")
	return p, nil
}

func scriptFloat(c *tengo.Compiled, name string) float64 {
	if !c.IsDefined(name) {
		return 0
	}
	return c.Get(name).Float()
}
