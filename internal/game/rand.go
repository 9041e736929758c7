package game

// Rand is the source of randomness for serves, bounce jitter and bot
// exploration. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// jitter returns -1 or +1 with equal probability.
func jitter(rng Rand) int {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

func clampSpeed(v, limit int) int {
	return max(min(v, limit), -limit)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	return -1
}
