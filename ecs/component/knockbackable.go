package component

// Knockbackable marks entities that may receive knockback. Scale multiplies
// the incoming impulse; OnlyWhileHurt limits it to the invincibility window.
type Knockbackable struct {
	Scale         float64
	OnlyWhileHurt bool
}

var KnockbackableComponent = NewComponent[Knockbackable]()
