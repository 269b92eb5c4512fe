package scene

import (
	"github.com/milk9111/wavesurvivor/common"
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
)

// markerThreshold is the live enemy count below which off-screen enemies get
// edge markers.
const markerThreshold = 5

// HUD is the read-only view the host draws over the world.
type HUD struct {
	HP, MaxHP     float64
	Ammo, MaxAmmo int
	Weapon        string
	WeaponLevel   int

	Wave        int
	Phase       component.DirectorPhase
	CardVisible bool
	// Countdown is the transition timer, shown while TimerVisible.
	Countdown    float64
	TimerVisible bool
	GameOver     bool
	Paused       bool

	// Markers are unit directions from the screen centre to off-screen enemies.
	Markers []geom.Vec2
}

func (a *Arena) HUD() HUD {
	var h HUD
	if a == nil || a.world == nil {
		return h
	}
	w := a.world

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if hp, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
			h.HP, h.MaxHP = hp.Current, hp.Max
		}
		if wp, ok := ecs.Get(w, player, component.WeaponComponent.Kind()); ok {
			h.Ammo, h.MaxAmmo = wp.Ammo, wp.MaxAmmo
			h.Weapon, h.WeaponLevel = wp.Type.String(), wp.Level
		}
	}

	if d := a.directorState(); d != nil {
		h.Wave = d.Wave
		h.Phase = d.Phase
		h.CardVisible = d.CardTimer > 0
		h.Countdown = d.TransitionTimer
		h.TimerVisible = d.TimerVisible && d.TransitionTimer > 0
		h.GameOver = d.Phase == component.PhaseGameOver
		h.Paused = d.Paused
	}

	h.Markers = a.markers()
	return h
}

func (a *Arena) markers() []geom.Vec2 {
	w := a.world
	enemies := ecs.Query(w, component.EnemyTagComponent.Kind())
	if len(enemies) == 0 || len(enemies) >= markerThreshold {
		return nil
	}
	camEnt, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return nil
	}
	cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())
	center := cam.View()
	view := geom.Rectangle{
		X: center.X - common.BaseWidth/2.0,
		Y: center.Y - common.BaseHeight/2.0,
		W: common.BaseWidth,
		H: common.BaseHeight,
	}

	var out []geom.Vec2
	for _, e := range enemies {
		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok || view.Contains(tr.Position) {
			continue
		}
		out = append(out, center.DirectionTo(tr.Position))
	}
	return out
}
