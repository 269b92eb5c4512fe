package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/wavesurvivor/common"
	"github.com/milk9111/wavesurvivor/geom"
	"github.com/milk9111/wavesurvivor/input"
)

const stickDeadzone = 0.2

type binding struct {
	keys  []ebiten.Key
	mouse []ebiten.MouseButton
	pad   []ebiten.StandardGamepadButton
}

var bindings = map[input.Action]binding{
	input.MoveUp:    {keys: []ebiten.Key{ebiten.KeyW}},
	input.MoveDown:  {keys: []ebiten.Key{ebiten.KeyS}},
	input.MoveLeft:  {keys: []ebiten.Key{ebiten.KeyA}},
	input.MoveRight: {keys: []ebiten.Key{ebiten.KeyD}},
	input.AimUp:     {keys: []ebiten.Key{ebiten.KeyArrowUp}},
	input.AimDown:   {keys: []ebiten.Key{ebiten.KeyArrowDown}},
	input.AimLeft:   {keys: []ebiten.Key{ebiten.KeyArrowLeft}},
	input.AimRight:  {keys: []ebiten.Key{ebiten.KeyArrowRight}},
	input.Fire: {
		mouse: []ebiten.MouseButton{ebiten.MouseButtonLeft},
		pad:   []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
	},
	input.Pause: {
		keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		pad:  []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	input.Debug: {keys: []ebiten.Key{ebiten.KeyF1}},
	input.Quit:  {keys: []ebiten.Key{ebiten.KeyF12}},
}

// stickActions maps each stick direction to the action it holds.
var stickActions = []struct {
	axis ebiten.StandardGamepadAxis
	neg  input.Action
	pos  input.Action
}{
	{ebiten.StandardGamepadAxisLeftStickHorizontal, input.MoveLeft, input.MoveRight},
	{ebiten.StandardGamepadAxisLeftStickVertical, input.MoveUp, input.MoveDown},
	{ebiten.StandardGamepadAxisRightStickHorizontal, input.AimLeft, input.AimRight},
	{ebiten.StandardGamepadAxisRightStickVertical, input.AimUp, input.AimDown},
}

// pollInput freezes the keyboard, mouse and first gamepad into a snapshot.
// view is the world point at the centre of the screen.
func pollInput(view geom.Vec2) *input.Snapshot {
	snap := &input.Snapshot{}
	gamepads := ebiten.AppendGamepadIDs(nil)

	for action, b := range bindings {
		held, pressed := false, false
		for _, k := range b.keys {
			held = held || ebiten.IsKeyPressed(k)
			pressed = pressed || inpututil.IsKeyJustPressed(k)
		}
		for _, m := range b.mouse {
			held = held || ebiten.IsMouseButtonPressed(m)
			pressed = pressed || inpututil.IsMouseButtonJustPressed(m)
		}
		if len(gamepads) > 0 {
			id := gamepads[0]
			for _, p := range b.pad {
				held = held || ebiten.IsStandardGamepadButtonPressed(id, p)
				pressed = pressed || inpututil.IsStandardGamepadButtonJustPressed(id, p)
			}
		}
		snap.SetHeld(action, held, pressed)
	}

	if len(gamepads) > 0 {
		id := gamepads[0]
		for _, s := range stickActions {
			v := ebiten.StandardGamepadAxisValue(id, s.axis)
			if math.Abs(v) <= stickDeadzone {
				continue
			}
			action := s.pos
			if v < 0 {
				action = s.neg
			}
			if !snap.Held(action) {
				snap.SetHeld(action, true, false)
			}
		}
	}

	mx, my := ebiten.CursorPosition()
	screen := geom.V(float64(mx), float64(my))
	topLeft := view.Sub(geom.V(common.BaseWidth/2.0, common.BaseHeight/2.0))
	snap.SetPointer(topLeft.Add(screen), screen)
	return snap
}
