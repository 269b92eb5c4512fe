package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/wavesurvivor/common"
	"github.com/milk9111/wavesurvivor/scene"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", scene.DefaultLevel, "level name in levels/ (basename, .json optional)")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	watch := flag.Bool("watch", false, "reload prefabs and scripts when they change on disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth*2, common.BaseHeight*2)
	ebiten.SetWindowTitle("wavesurvivor")

	game, err := NewGame(scene.Options{Level: *levelName, Seed: *seed, Debug: *debug}, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
