package entity

import (
	"fmt"

	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
)

func (f *Factory) newPickup(w *ecs.World, pos geom.Vec2, p component.Pickup) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := addTransform(w, e, pos, 0); err != nil {
		return 0, fmt.Errorf("pickup: add transform: %w", err)
	}
	trigger, err := addArea(w, e, f.tuning.Pickups.TriggerRadius, component.GroupPlayer)
	if err != nil {
		return 0, err
	}
	p.Trigger = trigger
	p.Visible = true
	if p.Timed {
		p.FlashAt = f.tuning.Pickups.FlashAt
	}
	_ = ecs.Add(w, e, component.PickupComponent.Kind(), &p)
	return e, nil
}

// BuildUpgrade creates one of the upgrades offered between waves.
func (f *Factory) BuildUpgrade(w *ecs.World, pos geom.Vec2, kind component.UpgradeKind, bonus int) (ecs.Entity, error) {
	e, err := f.newPickup(w, pos, component.Pickup{Kind: component.PickupUpgrade, Upgrade: kind, Bonus: bonus})
	if err != nil {
		return 0, err
	}
	_ = ecs.Add(w, e, component.UpgradeTagComponent.Kind(), &component.UpgradeTag{})
	return e, nil
}

// BuildUpgradeDrop creates a timed upgrade left behind by a dead enemy. Drops
// do not count toward the offered set.
func (f *Factory) BuildUpgradeDrop(w *ecs.World, pos geom.Vec2, kind component.UpgradeKind) (ecs.Entity, error) {
	return f.newPickup(w, pos, component.Pickup{
		Kind:    component.PickupUpgrade,
		Upgrade: kind,
		Bonus:   1,
		Timed:   true,
		Timer:   f.tuning.Pickups.DropLifetime,
	})
}

func (f *Factory) BuildWeaponPickup(w *ecs.World, pos geom.Vec2, wt component.WeaponType, level int) (ecs.Entity, error) {
	e, err := f.newPickup(w, pos, component.Pickup{Kind: component.PickupWeapon, WeaponType: wt, WeaponLevel: level})
	if err != nil {
		return 0, err
	}
	_ = ecs.Add(w, e, component.WeaponPickupTagComponent.Kind(), &component.WeaponPickupTag{})
	return e, nil
}
