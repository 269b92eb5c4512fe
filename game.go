package main

import (
	"errors"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/wavesurvivor/common"
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
	"github.com/milk9111/wavesurvivor/prefabs"
	"github.com/milk9111/wavesurvivor/scene"
)

type Game struct {
	arena   *scene.Arena
	render  *renderer
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
	quit    bool
}

func NewGame(opts scene.Options, watch bool) (*Game, error) {
	arena, err := scene.NewArena(opts)
	if err != nil {
		return nil, err
	}
	render, err := newRenderer()
	if err != nil {
		return nil, err
	}

	g := &Game{arena: arena, render: render}
	g.pauseUI = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if g.arena.Paused() {
		g.pauseUI.Update()
	}
	err := g.arena.Tick(1/float64(ebiten.TPS()), pollInput(g.cameraView()))
	if errors.Is(err, scene.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// pollWatcher reloads the tuning for every prefab change seen since the last
// frame. A bad edit keeps the current run going.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: %s changed", name)
			changed = true
			continue
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefabs: watch: %v", err)
			}
			continue
		default:
		}
		break
	}
	if !changed {
		return
	}
	if err := g.arena.Reload(nil); err != nil {
		log.Printf("prefabs: reload: %v", err)
		return
	}
	log.Printf("prefabs: reloaded, run restarted")
}

func (g *Game) cameraView() geom.Vec2 {
	w := g.arena.World()
	camEnt, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return geom.V(common.BaseWidth/2.0, common.BaseHeight/2.0)
	}
	cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())
	return cam.View()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.draw(screen, g.arena, g.cameraView())
	if g.arena.Paused() {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
