package common

// tickEpsilon absorbs float drift when countdown timers are stepped by a
// fixed dt, so a 0.2s cooldown at 60Hz expires on exactly the 12th tick.
const tickEpsilon = 1e-9

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TickDown decrements a countdown by dt and floors it at zero.
func TickDown(v, dt float64) float64 {
	v -= dt
	if v < tickEpsilon {
		return 0
	}
	return v
}
