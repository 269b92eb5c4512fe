package system

import (
	"github.com/milk9111/wavesurvivor/common"
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
)

// PickupSystem expires timed pickups and hands each remaining pickup to the
// first player standing in its trigger.
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem { return &PickupSystem{} }

func (s *PickupSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}

	ecs.ForEach(w, component.PickupComponent.Kind(), func(e ecs.Entity, p *component.Pickup) {
		if ecs.IsQueued(w, e) {
			return
		}

		if p.Timed {
			p.Timer = common.TickDown(p.Timer, ctx.Dt)
			if p.Timer <= 0 {
				ecs.QueueDestroy(w, e)
				return
			}
			if p.Timer < p.FlashAt {
				p.Visible = !p.Visible
			}
		}

		area, ok := ecs.Get(w, p.Trigger, component.AreaComponent.Kind())
		if !ok {
			return
		}
		for _, collector := range area.Entered {
			if ecs.IsQueued(w, collector) {
				continue
			}
			collect(w, ctx, collector, p)
			ecs.QueueDestroy(w, e)
			w.Events().Push(ecs.Event{Type: EventPickup, Data: p.Label()})
			return
		}
	})
}

func collect(w *ecs.World, ctx *Context, collector ecs.Entity, p *component.Pickup) {
	if p.Kind == component.PickupWeapon {
		if weapon, ok := ecs.Get(w, collector, component.WeaponComponent.Kind()); ok {
			weapon.SetType(p.WeaponType, p.WeaponLevel)
		}
		return
	}
	ApplyUpgrade(w, ctx, collector, p.Upgrade, p.Bonus)
}
