package policy

import (
	"context"
	"errors"

	"github.com/lox/pongforbots/internal/game"
)

var (
	// ErrNotReady means no decision is available yet: the history is short,
	// inference is still running, or no policy is loaded.
	ErrNotReady = errors.New("policy not ready")
)

// Policy maps a frame history to an action for one player.
type Policy interface {
	Act(ctx context.Context, player game.Player, frames []Frame) (game.Action, error)
}

// Func adapts a function to the Policy interface.
type Func func(ctx context.Context, player game.Player, frames []Frame) (game.Action, error)

func (f Func) Act(ctx context.Context, player game.Player, frames []Frame) (game.Action, error) {
	return f(ctx, player, frames)
}

func checkHistory(frames []Frame) error {
	if len(frames) < HistoryLen {
		return ErrNotReady
	}
	return nil
}

func argmax(v []float32) game.Action {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return game.Action(best)
}
