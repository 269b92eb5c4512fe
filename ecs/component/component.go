package component

import "github.com/milk9111/wavesurvivor/ecs"

// NewComponent registers a component type with the ECS.
func NewComponent[T any]() ecs.ComponentHandle[T] {
	return ecs.NewComponent[T]()
}
