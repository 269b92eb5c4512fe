package component

import (
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/geom"
)

// Group names the set of entities an Area watches.
type Group uint8

const (
	GroupPlayer Group = iota
	GroupEnemies
)

// Area is a non-blocking trigger volume that follows its owner. Entered is
// rebuilt every tick with the group members currently overlapping it.
type Area struct {
	Owner    ecs.Entity
	Collider geom.Collider
	Target   Group
	Entered  []ecs.Entity
}

var AreaComponent = NewComponent[Area]()
