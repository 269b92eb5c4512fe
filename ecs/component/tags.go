package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()

// UpgradeTag marks the stat upgrades offered between waves.
type UpgradeTag struct{}

var UpgradeTagComponent = NewComponent[UpgradeTag]()

// WeaponPickupTag marks the weapon choices offered at the start.
type WeaponPickupTag struct{}

var WeaponPickupTagComponent = NewComponent[WeaponPickupTag]()

type HitEffectTag struct{}

var HitEffectTagComponent = NewComponent[HitEffectTag]()
