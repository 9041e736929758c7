package game

// Ball is the moving square. Velocities are whole units per sub-step.
type Ball struct {
	X, Y   float64
	VX, VY int
	W, H   float64

	lastServeLeft bool
	cfg           Config
	rng           Rand
}

// NewBall creates a ball and serves it. The first serve direction is random;
// later serves alternate.
func NewBall(cfg Config, rng Rand) *Ball {
	b := &Ball{
		W:             cfg.BallSize,
		H:             cfg.BallSize,
		cfg:           cfg,
		rng:           rng,
		lastServeLeft: rng.Float64() < 0.5,
	}
	b.Spawn()
	return b
}

// Spawn puts the ball back in the middle of the field with a fresh serve.
func (b *Ball) Spawn() {
	b.X = b.cfg.Width / 2
	b.Y = b.cfg.Height / 2

	speed := b.cfg.ServeSpeeds[b.rng.IntN(len(b.cfg.ServeSpeeds))]
	b.lastServeLeft = !b.lastServeLeft
	if b.lastServeLeft {
		b.VX = -speed
	} else {
		b.VX = speed
	}
	b.VY = b.cfg.ServeVY[b.rng.IntN(len(b.cfg.ServeVY))]
}

// ServedLeft reports the direction of the most recent serve.
func (b *Ball) ServedLeft() bool {
	return b.lastServeLeft
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Center returns the ball's midpoint.
func (b *Ball) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Move integrates one sub-step, one unit at a time: first vertically, then
// horizontally. If the ball already overlaps a paddle when the sub-step
// begins, wall bounces and horizontal paddle bounces are skipped so they
// cannot compound while the ball works its way out. The vertical paddle
// nudge still applies.
func (b *Ball) Move(p1, p2 Rect) {
	xStep := sign(b.VX)
	yStep := sign(b.VY)
	nx, ny := b.X, b.Y
	limit := b.cfg.MaxBallSpeed

	cur := b.Rect()
	early := cur.Overlaps(p1) || cur.Overlaps(p2)

	for range abs(b.VY) {
		ny += float64(yStep)
		if !early && (ny < 0 || ny > b.cfg.Height-b.H) {
			b.VY = clampSpeed(-b.VY+jitter(b.rng), limit)
			break
		}
		test := Rect{X: nx, Y: ny, W: b.W, H: b.H}
		if test.Overlaps(p1) || test.Overlaps(p2) {
			b.VY = clampSpeed(b.VY+jitter(b.rng), limit)
			break
		}
	}

	for range abs(b.VX) {
		nx += float64(xStep)
		if early {
			continue
		}
		test := Rect{X: nx, Y: ny, W: b.W, H: b.H}
		if test.Overlaps(p1) || test.Overlaps(p2) {
			b.VX = clampSpeed(-(b.VX + xStep), limit)
			b.VY = clampSpeed(b.VY+jitter(b.rng), limit)
			break
		}
	}

	b.X, b.Y = nx, ny
}
