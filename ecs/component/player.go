package component

type PlayerState uint8

const (
	PlayerIdle PlayerState = iota
	PlayerMoving
	PlayerHurt
)

func (s PlayerState) String() string {
	switch s {
	case PlayerMoving:
		return "moving"
	case PlayerHurt:
		return "hurt"
	default:
		return "idle"
	}
}

type Player struct {
	Speed             float64
	State             PlayerState
	Invincibility     float64
	InvincibilityTime float64
	IdleThreshold     float64
	Smoothing         float64
}

var PlayerComponent = NewComponent[Player]()
