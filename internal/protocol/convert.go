package protocol

import "github.com/lox/pongforbots/internal/game"

// NewState builds a State message from a snapshot.
func NewState(s game.Snapshot) *State {
	return &State{
		Type: TypeState,
		Seq:  s.Seq,
		Ball: Ball{
			X:  s.Ball.X,
			Y:  s.Ball.Y,
			VX: s.Ball.VX,
			VY: s.Ball.VY,
		},
		Paddle1: Paddle{Y: s.Paddle1Y},
		Paddle2: Paddle{Y: s.Paddle2Y},
		Score1:  s.Score1,
		Score2:  s.Score2,
		Done:    s.Done,
	}
}

// Snapshot converts the message back into a game snapshot.
func (m *State) Snapshot() game.Snapshot {
	return game.Snapshot{
		Seq: m.Seq,
		Ball: game.BallState{
			X:  m.Ball.X,
			Y:  m.Ball.Y,
			VX: m.Ball.VX,
			VY: m.Ball.VY,
		},
		Paddle1Y: m.Paddle1.Y,
		Paddle2Y: m.Paddle2.Y,
		Score1:   m.Score1,
		Score2:   m.Score2,
		Done:     m.Done,
	}
}

// Intent returns the requested action. Unknown values mean stay.
func (m *Action) Intent() game.Action {
	return game.Action(m.Action).Normalize()
}

// Side returns the addressed player.
func (m *Action) Side() game.Player {
	return game.Player(m.Player)
}

// Side returns the addressed player.
func (m *Mode) Side() game.Player {
	return game.Player(m.Player)
}
