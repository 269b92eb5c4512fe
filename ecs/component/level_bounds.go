package component

import (
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/geom"
)

// LevelBounds stores the world-space bounds of the current level.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()

// Arena is the loaded map data the simulation reads: the wall broad phase,
// weighted spawn zones and named positions.
type Arena struct {
	Walls      *geom.Grid[ecs.Entity]
	SpawnZones []geom.Rectangle
	SpawnArea  float64
	Positions  map[string]geom.Vec2
}

var ArenaComponent = NewComponent[Arena]()
