package component

type DirectorPhase uint8

const (
	PhaseUpgrade DirectorPhase = iota
	PhaseCombat
	PhaseGameOver
)

func (p DirectorPhase) String() string {
	switch p {
	case PhaseCombat:
		return "combat"
	case PhaseGameOver:
		return "game_over"
	default:
		return "upgrade"
	}
}

// WaveDirector is the scene-scoped pacing state. One entity carries it.
type WaveDirector struct {
	Phase      DirectorPhase
	Wave       int
	Difficulty float64
	// Quota is the number of enemies still to spawn this wave.
	Quota      int
	EnemyTimer float64

	// TransitionTimer gates the move from the upgrade phase into combat.
	TransitionTimer float64
	TimerVisible    bool
	CardTimer       float64

	GameOverTimer    float64
	RestartRequested bool
	Paused           bool

	// Err holds a fatal spawn failure for the scene to surface.
	Err error
}

var WaveDirectorComponent = NewComponent[WaveDirector]()
