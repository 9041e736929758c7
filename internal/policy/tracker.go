package policy

import (
	"context"

	"github.com/lox/pongforbots/internal/game"
)

// Tracker is a pixel-only policy: it finds its own paddle and the ball in the
// newest frame and steers toward the ball. It needs no model and serves as
// the default when nothing better is loaded.
type Tracker struct {
	bands    [2][2]int // per player, inclusive column range of the paddle
	deadband float64   // rows
}

// NewTracker derives paddle column bands from the field geometry.
func NewTracker(cfg game.Config) *Tracker {
	t := &Tracker{deadband: 1}
	cellW := cfg.Width / FrameSize
	for _, p := range game.Players {
		lo, hi := span(cfg.PaddleX(p), cfg.PaddleWidth, cellW)
		t.bands[p.Index()] = [2]int{lo, hi}
	}
	return t
}

func (t *Tracker) Act(ctx context.Context, player game.Player, frames []Frame) (game.Action, error) {
	if err := checkHistory(frames); err != nil {
		return game.Stay, err
	}
	if err := ctx.Err(); err != nil {
		return game.Stay, err
	}

	f := &frames[len(frames)-1]
	own := t.bands[player.Index()]
	other := t.bands[player.Opponent().Index()]

	paddleRow, ok := meanRow(f, func(c int) bool { return c >= own[0] && c <= own[1] })
	if !ok {
		return game.Stay, nil
	}
	ballRow, ok := meanRow(f, func(c int) bool {
		return (c < own[0] || c > own[1]) && (c < other[0] || c > other[1])
	})
	if !ok {
		return game.Stay, nil
	}

	switch {
	case ballRow > paddleRow+t.deadband:
		return game.Down, nil
	case ballRow < paddleRow-t.deadband:
		return game.Up, nil
	default:
		return game.Stay, nil
	}
}

func meanRow(f *Frame, include func(col int) bool) (float64, bool) {
	var sum, n int
	for r := range FrameSize {
		for c := range FrameSize {
			if f.At(r, c) != 0 && include(c) {
				sum += r
				n++
			}
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}
