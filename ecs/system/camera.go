package system

import (
	"math"

	"github.com/milk9111/wavesurvivor/common"
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
)

// CameraSystem eases the camera toward the player, keeps the view inside the
// level, and turns this tick's camera_shake events into a jitter offset.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}
	camEnt, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())

	if player, ok := firstLive(w, component.PlayerTagComponent.Kind()); ok {
		if tr, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			blend := smoothing(cam.Smoothness, ctx.Dt)
			cam.Position = cam.Position.Add(tr.Position.Sub(cam.Position).Scale(blend))
		}
	}
	if boundsEnt, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		bounds, _ := ecs.Get(w, boundsEnt, component.LevelBoundsComponent.Kind())
		cam.Position = clampView(cam.Position, bounds)
	}

	for _, ev := range w.Events().Items() {
		if ev.Type != EventCameraShake {
			continue
		}
		if amount, ok := ev.Data.(float64); ok {
			cam.Trauma = common.Clamp(cam.Trauma+amount, 0, 1)
		}
	}

	cam.Offset = geom.Vec2{}
	if cam.Trauma > 0 {
		strength := cam.MaxOffset * cam.Trauma * cam.Trauma
		cam.Offset = geom.V(
			uniform(ctx.Rand, -strength, strength),
			uniform(ctx.Rand, -strength, strength),
		)
		cam.Trauma = common.TickDown(cam.Trauma, cam.Decay*ctx.Dt)
	}
}

// clampView keeps a screen-sized view centred on pos inside the level. Levels
// smaller than the screen are centred instead.
func clampView(pos geom.Vec2, bounds *component.LevelBounds) geom.Vec2 {
	axis := func(v, size, screen float64) float64 {
		if size <= screen {
			return size / 2
		}
		return math.Max(screen/2, math.Min(v, size-screen/2))
	}
	return geom.V(
		axis(pos.X, bounds.Width, common.BaseWidth),
		axis(pos.Y, bounds.Height, common.BaseHeight),
	)
}
