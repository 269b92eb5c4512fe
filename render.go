package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/wavesurvivor/common"
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
	"github.com/milk9111/wavesurvivor/prefabs"
	"github.com/milk9111/wavesurvivor/scene"
)

type palette struct {
	background, player, wall, bullet, pickup, hitEffect, debug, healthBar color.Color
	enemies                                                               map[component.Behavior]color.Color
}

type renderer struct {
	colors palette
	// origin is the world position of the screen's top-left corner this frame.
	origin geom.Vec2
}

func orDefault(c prefabs.YAMLColor, def color.Color) color.Color {
	if c.Color == nil {
		return def
	}
	return c.Color
}

func newRenderer() (*renderer, error) {
	spec, err := prefabs.LoadSpec[prefabs.RenderSpec]("render.yaml")
	if err != nil {
		return nil, fmt.Errorf("load render spec: %w", err)
	}
	return &renderer{colors: palette{
		background: orDefault(spec.Background, color.RGBA{0x40, 0x40, 0x40, 0xff}),
		player:     orDefault(spec.Player, color.White),
		wall:       orDefault(spec.Wall, color.Black),
		bullet:     orDefault(spec.Bullet, color.White),
		pickup:     orDefault(spec.Pickup, color.RGBA{0x40, 0xe0, 0x80, 0xff}),
		hitEffect:  orDefault(spec.HitEffect, color.RGBA{0xff, 0xe0, 0x70, 0xff}),
		debug:      orDefault(spec.Debug, color.RGBA{0, 0xff, 0, 0xc0}),
		healthBar:  orDefault(spec.HealthBar, color.RGBA{0xe0, 0x20, 0x20, 0xff}),
		enemies: map[component.Behavior]color.Color{
			component.BehaviorStationary: orDefault(spec.Target, color.RGBA{0xe0, 0x40, 0x40, 0xff}),
			component.BehaviorTurret:     orDefault(spec.Tower, color.RGBA{0xb0, 0x60, 0xe0, 0xff}),
			component.BehaviorPursuer:    orDefault(spec.Chaser, color.RGBA{0xff, 0x7a, 0x1a, 0xff}),
		},
	}}, nil
}

func (r *renderer) draw(screen *ebiten.Image, arena *scene.Arena, view geom.Vec2) {
	screen.Fill(r.colors.background)
	r.origin = view.Sub(geom.V(common.BaseWidth/2.0, common.BaseHeight/2.0))

	w := arena.World()
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.WallTagComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(_ ecs.Entity, _ *component.WallTag, tr *component.Transform, b *component.Body) {
			r.fillCollider(screen, b.Collider, tr.Position, r.colors.wall)
		})

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, p *component.Pickup, tr *component.Transform) {
			if !p.Visible {
				return
			}
			x, y := r.screen(tr.Position)
			vector.StrokeCircle(screen, x, y, 10, 2, r.colors.pickup, true)
			ebitenutil.DebugPrintAt(screen, p.Label(), int(x)-3*len(p.Label()), int(y)+12)
		})

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.HealthBarComponent.Kind(),
		func(_ ecs.Entity, en *component.Enemy, tr *component.Transform, bar *component.HealthBar) {
			x, y := r.screen(tr.Position)
			vector.FillCircle(screen, x, y, float32(en.Radius), r.colors.enemies[en.Behavior], true)
			if bar.Visible && bar.Max > 0 {
				width := float32(en.Radius * 2)
				top := y - float32(en.Radius) - 6
				vector.FillRect(screen, x-width/2, top, width*float32(bar.Value/bar.Max), 3, r.colors.healthBar, false)
				vector.StrokeRect(screen, x-width/2, top, width, 3, 1, color.Black, false)
			}
		})

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(_ ecs.Entity, p *component.Player, tr *component.Transform, b *component.Body) {
			if p.Invincibility > 0 && int(p.Invincibility*10)%2 == 0 {
				return
			}
			r.fillCollider(screen, b.Collider, tr.Position, r.colors.player)
			x, y := r.screen(tr.Position)
			tip := geom.FromAngle(tr.Rotation).Scale(14)
			vector.StrokeLine(screen, x, y, x+float32(tip.X), y+float32(tip.Y), 2, r.colors.player, true)
		})

	ecs.ForEach3(w, component.BulletComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(_ ecs.Entity, _ *component.Bullet, tr *component.Transform, b *component.Body) {
			r.fillCollider(screen, b.Collider, tr.Position, r.colors.bullet)
		})

	ecs.ForEach3(w, component.HitEffectTagComponent.Kind(), component.TransformComponent.Kind(), component.TTLComponent.Kind(),
		func(_ ecs.Entity, _ *component.HitEffectTag, tr *component.Transform, ttl *component.TTL) {
			x, y := r.screen(tr.Position)
			vector.StrokeCircle(screen, x, y, float32(4+ttl.Seconds*20), 1, r.colors.hitEffect, true)
		})

	if arena.Debug() {
		r.drawDebug(screen, w)
	}
	r.drawHUD(screen, arena.HUD())
}

func (r *renderer) screen(p geom.Vec2) (float32, float32) {
	s := p.Sub(r.origin)
	return float32(s.X), float32(s.Y)
}

func (r *renderer) fillCollider(screen *ebiten.Image, c geom.Collider, pos geom.Vec2, clr color.Color) {
	x, y := r.screen(c.Center(pos))
	switch c.Shape {
	case geom.ShapeCircle:
		vector.FillCircle(screen, x, y, float32(c.Radius), clr, true)
	default:
		vector.FillRect(screen, x-float32(c.Width/2), y-float32(c.Height/2), float32(c.Width), float32(c.Height), clr, false)
	}
}

func (r *renderer) strokeCollider(screen *ebiten.Image, c geom.Collider, pos geom.Vec2, clr color.Color) {
	x, y := r.screen(c.Center(pos))
	switch c.Shape {
	case geom.ShapeCircle:
		vector.StrokeCircle(screen, x, y, float32(c.Radius), 1, clr, true)
	default:
		vector.StrokeRect(screen, x-float32(c.Width/2), y-float32(c.Height/2), float32(c.Width), float32(c.Height), 1, clr, false)
	}
}

func (r *renderer) drawDebug(screen *ebiten.Image, w *ecs.World) {
	ecs.ForEach2(w, component.BodyComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, b *component.Body, tr *component.Transform) {
			r.strokeCollider(screen, b.Collider, tr.Position, r.colors.debug)
		})
	ecs.ForEach2(w, component.AreaComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, a *component.Area, tr *component.Transform) {
			r.strokeCollider(screen, a.Collider, tr.Position, r.colors.debug)
		})
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, common.BaseHeight-16)
}

func (r *renderer) drawHUD(screen *ebiten.Image, h scene.HUD) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %.0f/%.0f", h.HP, h.MaxHP), 4, 4)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Ammo %d/%d", h.Ammo, h.MaxAmmo), 4, 18)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %d", h.Weapon, h.WeaponLevel), 4, 32)
	if h.Wave > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Wave %d", h.Wave), common.BaseWidth-60, 4)
	}

	centerX, centerY := common.BaseWidth/2, common.BaseHeight/2
	switch {
	case h.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", centerX-27, centerY-40)
	case h.CardVisible:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("WAVE %d CLEARED", h.Wave), centerX-45, centerY-40)
	}
	if h.TimerVisible {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", int(math.Ceil(h.Countdown))), centerX-3, 20)
	}

	for _, dir := range h.Markers {
		x, y := edgePoint(dir)
		vector.FillCircle(screen, x, y, 4, r.colors.healthBar, true)
	}
}

// edgePoint projects a direction from the screen centre onto the screen border,
// inset by a small margin.
func edgePoint(dir geom.Vec2) (float32, float32) {
	const margin = 8
	hw, hh := common.BaseWidth/2.0-margin, common.BaseHeight/2.0-margin
	t := math.Inf(1)
	if dir.X != 0 {
		t = math.Min(t, hw/math.Abs(dir.X))
	}
	if dir.Y != 0 {
		t = math.Min(t, hh/math.Abs(dir.Y))
	}
	if math.IsInf(t, 1) {
		t = 0
	}
	return float32(common.BaseWidth/2.0 + dir.X*t), float32(common.BaseHeight/2.0 + dir.Y*t)
}
