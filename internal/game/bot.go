package game

import (
	"fmt"
	"strings"
)

// Difficulty selects the scripted bot's heuristic.
type Difficulty int

const (
	Easy Difficulty = iota
	Hard
)

// ExploreRate is the probability that a bot ignores the ball and picks a
// random action.
const ExploreRate = 0.1

func (d Difficulty) String() string {
	if d == Hard {
		return "hard"
	}
	return "easy"
}

// ParseDifficulty accepts "easy" or "hard".
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "":
		return Easy, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("unknown bot difficulty %q", s)
	}
}

// BotMove picks an action for a scripted paddle. Easy bots follow the sign of
// the ball's vertical velocity; hard bots steer the paddle centre toward the
// ball's top edge.
func BotMove(d Difficulty, ball BallState, paddleY, paddleH float64, rng Rand) Action {
	if rng.Float64() <= ExploreRate {
		return Action(rng.IntN(NumActions))
	}

	if d == Easy {
		if ball.VY > 0 {
			return Down
		}
		return Up
	}

	center := paddleY + paddleH/2
	switch {
	case ball.Y > center:
		return Down
	case ball.Y < center:
		return Up
	default:
		return Stay
	}
}
