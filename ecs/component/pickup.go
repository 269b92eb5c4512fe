package component

import (
	"strconv"

	"github.com/milk9111/wavesurvivor/ecs"
)

type UpgradeKind uint8

const (
	UpgradeWeapon UpgradeKind = iota
	UpgradeHealth
	UpgradeAmmo
	UpgradeSpeed
)

// UpgradeKinds lists every kind in the order they are offered.
var UpgradeKinds = []UpgradeKind{UpgradeWeapon, UpgradeHealth, UpgradeAmmo, UpgradeSpeed}

func (k UpgradeKind) String() string {
	switch k {
	case UpgradeHealth:
		return "Health"
	case UpgradeAmmo:
		return "Ammo"
	case UpgradeSpeed:
		return "Speed"
	default:
		return "Weapon"
	}
}

type PickupKind uint8

const (
	PickupUpgrade PickupKind = iota
	PickupWeapon
)

// Pickup applies its effect to the first collector in its trigger area, then
// removes itself. A timed pickup expires on its own and flashes near the end.
type Pickup struct {
	Kind    PickupKind
	Upgrade UpgradeKind
	Bonus   int

	WeaponType  WeaponType
	WeaponLevel int

	Timed bool
	Timer float64
	// FlashAt is the remaining time below which the pickup blinks.
	FlashAt float64
	Visible bool

	Trigger ecs.Entity
}

func (p *Pickup) Label() string {
	if p == nil {
		return ""
	}
	if p.Kind == PickupWeapon {
		return p.WeaponType.String() + " " + strconv.Itoa(p.WeaponLevel)
	}
	return p.Upgrade.String()
}

var PickupComponent = NewComponent[Pickup]()
