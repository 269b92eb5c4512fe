package entity

import (
	"fmt"

	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
)

// BuildCamera creates the camera centred on pos.
func (f *Factory) BuildCamera(w *ecs.World, pos geom.Vec2) (ecs.Entity, error) {
	spec := f.tuning.Camera
	smooth := spec.Smoothness
	if smooth == 0 {
		smooth = 0.15
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Position:   pos,
		Smoothness: smooth,
		Decay:      spec.ShakeDecay,
		MaxOffset:  spec.ShakeMaxOffset,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return camera, nil
}
