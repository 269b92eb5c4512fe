package component

// Layer is a 4-bit collision layer set. A body with mask M may collide with a
// body on layer L when M&L != 0.
type Layer uint8

const (
	LayerWall Layer = 1 << iota
	LayerPlayer
	LayerEnemy
	LayerItem

	LayerNone Layer = 0
	LayerAll        = LayerWall | LayerPlayer | LayerEnemy | LayerItem
)

func (l Layer) Matches(other Layer) bool {
	return l&other != 0
}
