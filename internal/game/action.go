package game

import "fmt"

// Action is a per-tick paddle intent.
type Action int

const (
	Stay Action = iota
	Up
	Down
)

// NumActions is the size of the action space.
const NumActions = 3

func (a Action) String() string {
	switch a {
	case Stay:
		return "stay"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Valid reports whether a is one of Stay, Up or Down.
func (a Action) Valid() bool {
	return a >= Stay && a <= Down
}

// Normalize maps anything outside the action space to Stay.
func (a Action) Normalize() Action {
	if !a.Valid() {
		return Stay
	}
	return a
}

// Player identifies a side of the field.
type Player int

const (
	Player1 Player = 1 // right paddle
	Player2 Player = 2 // left paddle
)

// Players lists both sides in simulation order.
var Players = [2]Player{Player1, Player2}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// Valid reports whether p names one of the two sides.
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Index returns 0 for Player1 and 1 for Player2.
func (p Player) Index() int {
	return int(p) - 1
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}
