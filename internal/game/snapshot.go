package game

// BallState is the observable part of the ball.
type BallState struct {
	X, Y   float64
	VX, VY int
}

// Snapshot is a point-in-time copy of an episode. Seq is assigned by whoever
// publishes the snapshot and increases monotonically per match.
type Snapshot struct {
	Seq      uint64
	Ball     BallState
	Paddle1Y float64
	Paddle2Y float64
	Score1   int
	Score2   int
	Done     bool
}

// PaddleY returns the paddle height recorded for p.
func (s Snapshot) PaddleY(p Player) float64 {
	if p == Player1 {
		return s.Paddle1Y
	}
	return s.Paddle2Y
}

// WithPaddleY returns a copy of s with p's paddle moved to y.
func (s Snapshot) WithPaddleY(p Player, y float64) Snapshot {
	if p == Player1 {
		s.Paddle1Y = y
	} else {
		s.Paddle2Y = y
	}
	return s
}
