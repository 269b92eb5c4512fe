package component

type Health struct {
	Current float64
	Max     float64
}

func (h *Health) Clamp() {
	if h == nil {
		return
	}
	if h.Max <= 0 {
		h.Max = 1
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
	if h.Current < 0 {
		h.Current = 0
	}
}

var HealthComponent = NewComponent[Health]()

// HealthBar is the presentation state of an enemy health bar. It stays hidden
// until the first non-lethal hit.
type HealthBar struct {
	Visible bool
	Value   float64
	Max     float64
}

var HealthBarComponent = NewComponent[HealthBar]()
