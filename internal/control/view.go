package control

import "github.com/lox/pongforbots/internal/game"

// View is what a front end draws: the latest state plus who drives each
// side.
type View struct {
	Snapshot  game.Snapshot
	Live      bool // at least one state has been received
	Connected bool // always true for local play
	Modes     [2]Kind
}
