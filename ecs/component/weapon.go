package component

import (
	"github.com/milk9111/wavesurvivor/common"
)

type WeaponType uint8

const (
	WeaponNone WeaponType = iota
	WeaponSniper
	WeaponAssault
	WeaponShotgun
	WeaponSMG
	WeaponEnemy
)

const MaxWeaponLevel = 10

var weaponTypeNames = [...]string{
	WeaponNone:    "None",
	WeaponSniper:  "Sniper",
	WeaponAssault: "Assault",
	WeaponShotgun: "Shotgun",
	WeaponSMG:     "SMG",
	WeaponEnemy:   "Enemy",
}

func (t WeaponType) String() string {
	if int(t) < len(weaponTypeNames) {
		return weaponTypeNames[t]
	}
	return "Unknown"
}

// ParseWeaponType maps a name such as "Shotgun" to its WeaponType.
func ParseWeaponType(name string) (WeaponType, bool) {
	for i, n := range weaponTypeNames {
		if n == name {
			return WeaponType(i), true
		}
	}
	return WeaponNone, false
}

// PickupWeaponTypes are the families offered as weapon pickups, in row order.
var PickupWeaponTypes = []WeaponType{WeaponSniper, WeaponAssault, WeaponShotgun, WeaponSMG}

type WeaponStats struct {
	Damage      float64
	ROF         float64
	Projectiles int
	Spread      float64
}

// DefaultWeaponStats apply to families without a stat table.
var DefaultWeaponStats = WeaponStats{Damage: 1, ROF: 3, Projectiles: 1, Spread: 0}

// WeaponTable holds the per-level stats for each table-driven family.
type WeaponTable struct {
	Levels map[WeaponType][]WeaponStats
}

func (t *WeaponTable) Stats(wt WeaponType, level int) (WeaponStats, bool) {
	if t == nil {
		return WeaponStats{}, false
	}
	levels, ok := t.Levels[wt]
	if !ok || len(levels) == 0 {
		return WeaponStats{}, false
	}
	level = common.ClampInt(level, 0, len(levels)-1)
	return levels[level], true
}

type Weapon struct {
	Type  WeaponType
	Level int
	WeaponStats

	MuzzleSpeed  float64
	MuzzleOffset float64
	BulletLife   float64
	BulletRadius float64
	TargetMask   Layer
	// SpreadSpeedMin is the lowest muzzle speed fraction for multi-shot fire.
	SpreadSpeedMin float64

	// Cooldown counts down to zero; firing is blocked while it is positive.
	Cooldown float64
	Ammo     int
	MaxAmmo  int
	// ConsumeAmmo makes each successful fire cost one round.
	ConsumeAmmo bool

	// Rotation is the aim heading in degrees.
	Rotation float64

	Table *WeaponTable
}

// SetType replaces the family and level wholesale.
func (w *Weapon) SetType(t WeaponType, level int) {
	if w == nil {
		return
	}
	w.Type = t
	w.Level = common.ClampInt(level, 0, MaxWeaponLevel)
	if stats, ok := w.Table.Stats(t, w.Level); ok {
		w.WeaponStats = stats
		return
	}
	w.WeaponStats = DefaultWeaponStats
}

// Upgrade moves the level by amount, clamped to [0, MaxWeaponLevel], and
// re-reads the stat table.
func (w *Weapon) Upgrade(amount int) {
	if w == nil {
		return
	}
	w.Level = common.ClampInt(w.Level+amount, 0, MaxWeaponLevel)
	if stats, ok := w.Table.Stats(w.Type, w.Level); ok {
		w.WeaponStats = stats
	}
}

func (w *Weapon) Reload(amount int) {
	if w == nil {
		return
	}
	w.Ammo = common.ClampInt(w.Ammo+amount, 0, w.MaxAmmo)
}

// CanFire reports whether the cooldown, ammo and family allow a shot.
func (w *Weapon) CanFire() bool {
	return w != nil && w.Cooldown <= 0 && w.Ammo > 0 && w.Type != WeaponNone && w.ROF > 0
}

var WeaponComponent = NewComponent[Weapon]()
