package system

import (
	"github.com/milk9111/wavesurvivor/common"
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
)

// CooldownSystem counts weapon fire cooldowns down toward zero. It runs after
// the shooters so a weapon fired this tick has already spent dt of its wait.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

func (s *CooldownSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}

	ecs.ForEach(w, component.WeaponComponent.Kind(), func(e ecs.Entity, weapon *component.Weapon) {
		if weapon.Cooldown > 0 {
			weapon.Cooldown = common.TickDown(weapon.Cooldown, ctx.Dt)
		}
	})
}
