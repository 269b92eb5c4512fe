package component

import (
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/geom"
)

// Behavior selects the strategy an enemy runs each tick.
type Behavior uint8

const (
	BehaviorStationary Behavior = iota
	BehaviorTurret
	BehaviorPursuer
)

func (b Behavior) String() string {
	switch b {
	case BehaviorTurret:
		return "tower"
	case BehaviorPursuer:
		return "chaser"
	default:
		return "target"
	}
}

type Enemy struct {
	Behavior Behavior
	Radius   float64
	// DropChance is a percentage rolled once on death.
	DropChance int
}

var EnemyComponent = NewComponent[Enemy]()

type TurretState uint8

const (
	TurretIdle TurretState = iota
	TurretAttacking
)

type Turret struct {
	State TurretState
	// IdleRotation is the sway rate in degrees per second.
	IdleRotation float64
	IdleTimer    float64
	IdleAngles   []float64
	DwellMin     float64
	DwellMax     float64

	Target ecs.Entity
	Sight  ecs.Entity

	Burst         int
	BurstCount    int
	BurstCooldown float64
	BurstTimer    float64
}

var TurretComponent = NewComponent[Turret]()

type Pursuer struct {
	Speed  float64
	Damage float64

	AggroTime   float64
	AggroTimer  float64
	AggroTarget ecs.Entity
	// Desired is the velocity the pursuer steered toward last tick.
	Desired   geom.Vec2
	Smoothing float64

	Sight       ecs.Entity
	FriendSight ecs.Entity
	// FriendRadius is the separation falloff distance.
	FriendRadius float64
	// ContactKnockback scales damage into the knockback dealt on contact.
	ContactKnockback float64
}

var PursuerComponent = NewComponent[Pursuer]()
