package component

import "github.com/milk9111/wavesurvivor/geom"

type Transform struct {
	Position geom.Vec2
	// Rotation is the facing in degrees.
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
