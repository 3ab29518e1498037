package common

import "math"

// TickRate is the default number of simulation steps per second.
const TickRate = 60

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// EaseFactor converts an exponential ease rate into a per-step lerp factor
// that is independent of the step length.
func EaseFactor(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
