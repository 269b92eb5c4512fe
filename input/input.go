package input

import "github.com/milk9111/wavesurvivor/geom"

// Action is a named input the simulation polls once per tick.
type Action uint8

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	AimUp
	AimDown
	AimLeft
	AimRight
	Fire
	Pause
	Debug
	Quit
	actionCount
)

var actionNames = [...]string{
	MoveUp:    "move_up",
	MoveDown:  "move_down",
	MoveLeft:  "move_left",
	MoveRight: "move_right",
	AimUp:     "aim_up",
	AimDown:   "aim_down",
	AimLeft:   "aim_left",
	AimRight:  "aim_right",
	Fire:      "fire",
	Pause:     "pause",
	Debug:     "debug",
	Quit:      "quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// State is what the simulation reads from the input layer each tick.
type State interface {
	Held(a Action) bool
	Pressed(a Action) bool
	PointerWorld() geom.Vec2
	PointerScreen() geom.Vec2
}

// Snapshot is a frozen copy of the input state for one tick. The zero value
// reports nothing held.
type Snapshot struct {
	held    [actionCount]bool
	pressed [actionCount]bool
	world   geom.Vec2
	screen  geom.Vec2
}

// SetHeld records a as held; pressed marks the first tick of the hold.
func (s *Snapshot) SetHeld(a Action, held, pressed bool) {
	if s == nil || a >= actionCount {
		return
	}
	s.held[a] = held
	s.pressed[a] = pressed
}

func (s *Snapshot) SetPointer(world, screen geom.Vec2) {
	if s == nil {
		return
	}
	s.world = world
	s.screen = screen
}

func (s *Snapshot) Held(a Action) bool {
	return s != nil && a < actionCount && s.held[a]
}

func (s *Snapshot) Pressed(a Action) bool {
	return s != nil && a < actionCount && s.pressed[a]
}

func (s *Snapshot) PointerWorld() geom.Vec2 {
	if s == nil {
		return geom.Vec2{}
	}
	return s.world
}

func (s *Snapshot) PointerScreen() geom.Vec2 {
	if s == nil {
		return geom.Vec2{}
	}
	return s.screen
}

// Axis combines a negative and positive action into -1, 0 or 1.
func Axis(s State, neg, pos Action) float64 {
	if s == nil {
		return 0
	}
	v := 0.0
	if s.Held(neg) {
		v--
	}
	if s.Held(pos) {
		v++
	}
	return v
}
