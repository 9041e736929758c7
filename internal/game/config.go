package game

import (
	"errors"
	"fmt"
)

// Config holds the field geometry and rules of a match.
type Config struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	PaddleWidth  float64 `toml:"paddle_width"`
	PaddleHeight float64 `toml:"paddle_height"`
	PaddleSpeed  float64 `toml:"paddle_speed"`
	BallSize     float64 `toml:"ball_size"`
	MaxBallSpeed int     `toml:"max_ball_speed"`
	TopScore     int     `toml:"top_score"`
	StepRepeat   int     `toml:"step_repeat"`
	ServeSpeeds  []int   `toml:"serve_speeds"` // horizontal serve speeds, sign chosen by serve side
	ServeVY      []int   `toml:"serve_vy"`     // signed vertical serve velocities
}

// DefaultConfig returns the reference rules: a 1280x960 field, 20x120
// paddles moving 14 units per sub-step, a 20x20 ball, first to 20.
func DefaultConfig() Config {
	return Config{
		Width:        1280,
		Height:       960,
		PaddleWidth:  20,
		PaddleHeight: 120,
		PaddleSpeed:  14,
		BallSize:     20,
		MaxBallSpeed: 15,
		TopScore:     20,
		StepRepeat:   4,
		ServeSpeeds:  []int{4, 5, 6},
		ServeVY:      []int{-3, -2, -1, 1, 2, 3},
	}
}

var ErrInvalidConfig = errors.New("invalid game config")

// Validate reports whether the configuration can host a match.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %gx%g", ErrInvalidConfig, c.Width, c.Height)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0 || c.PaddleHeight > c.Height:
		return fmt.Errorf("%w: paddle %gx%g does not fit field", ErrInvalidConfig, c.PaddleWidth, c.PaddleHeight)
	case c.PaddleSpeed <= 0:
		return fmt.Errorf("%w: paddle speed must be positive", ErrInvalidConfig)
	case c.BallSize <= 0 || c.BallSize > c.Height:
		return fmt.Errorf("%w: ball size %g does not fit field", ErrInvalidConfig, c.BallSize)
	case c.MaxBallSpeed <= 0:
		return fmt.Errorf("%w: max ball speed must be positive", ErrInvalidConfig)
	case c.TopScore <= 0:
		return fmt.Errorf("%w: top score must be positive", ErrInvalidConfig)
	case c.StepRepeat <= 0:
		return fmt.Errorf("%w: step repeat must be positive", ErrInvalidConfig)
	case len(c.ServeSpeeds) == 0 || len(c.ServeVY) == 0:
		return fmt.Errorf("%w: serve speeds must not be empty", ErrInvalidConfig)
	}
	for _, s := range c.ServeSpeeds {
		if s <= 0 || s > c.MaxBallSpeed {
			return fmt.Errorf("%w: serve speed %d outside (0, %d]", ErrInvalidConfig, s, c.MaxBallSpeed)
		}
	}
	for _, v := range c.ServeVY {
		if v == 0 || abs(v) > c.MaxBallSpeed {
			return fmt.Errorf("%w: serve vy %d outside [-%d, %d] or zero", ErrInvalidConfig, v, c.MaxBallSpeed, c.MaxBallSpeed)
		}
	}
	return nil
}

// PaddleX returns the fixed horizontal position of a player's paddle.
// Player 1 defends the right edge, player 2 the left.
func (c Config) PaddleX(p Player) float64 {
	margin := c.Width / 64
	if p == Player1 {
		return c.Width - 2*margin
	}
	return margin
}

// PaddleStartY returns the vertically centred paddle position.
func (c Config) PaddleStartY() float64 {
	return c.Height/2 - c.PaddleHeight/2
}

// MaxPaddleY is the largest legal paddle y.
func (c Config) MaxPaddleY() float64 {
	return c.Height - c.PaddleHeight
}
