package game

// scriptedRand replays queued values and falls back to fixed defaults once a
// queue runs dry.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

const (
	jitterDown = 0.1 // Float64 < 0.5 selects -1
	jitterUp   = 0.9
)

func testBall(rng Rand, x, y float64, vx, vy int) *Ball {
	cfg := DefaultConfig()
	return &Ball{X: x, Y: y, VX: vx, VY: vy, W: cfg.BallSize, H: cfg.BallSize, cfg: cfg, rng: rng}
}

// offField is a paddle rectangle that never collides with anything.
var offField = Rect{X: -1000, Y: -1000, W: 1, H: 1}
