package component

import "github.com/milk9111/wavesurvivor/geom"

// Camera follows the player and carries the screen shake fed by camera_shake
// events. Position is the world point at the centre of the screen.
type Camera struct {
	Position   geom.Vec2
	Smoothness float64

	// Trauma is the accumulated shake in [0, 1]; it decays linearly.
	Trauma    float64
	Decay     float64
	MaxOffset float64
	Offset    geom.Vec2
}

// View returns the screen-centre world point including shake.
func (c *Camera) View() geom.Vec2 {
	if c == nil {
		return geom.Vec2{}
	}
	return c.Position.Add(c.Offset)
}

var CameraComponent = NewComponent[Camera]()
