// Package protocol defines the messages exchanged between the match server
// and its clients. Every message is a flat map carrying a "type" key. Browsers
// speak JSON over text frames; Go clients may use msgpack over binary frames.
package protocol

//go:generate msgp
//msgp:ignore Message

import "github.com/tinylib/msgp/msgp"

const (
	// Client -> Server
	TypeReset    = "reset"
	TypeAction   = "action"
	TypeMode     = "mode"
	TypeGetState = "get_state"

	// Server -> Client
	TypeState = "state"
	TypeError = "error"
)

// Mode acknowledgements reuse TypeMode.

// Message is implemented by every protocol message.
type Message interface {
	msgp.Encodable
	msgp.Decodable
	MessageType() string
}

// Client -> Server Messages

// Reset restarts the match.
type Reset struct {
	Type string `json:"type" msg:"type"`
}

// Action carries a player's current intent: 0 stay, 1 up, 2 down.
type Action struct {
	Type   string `json:"type" msg:"type"`
	Player int    `json:"player" msg:"player"`
	Action int    `json:"action" msg:"action"`
}

// Mode requests, or acknowledges, a change of controller for one side.
type Mode struct {
	Type   string `json:"type" msg:"type"`
	Player int    `json:"player" msg:"player"`
	Mode   string `json:"mode" msg:"mode"`
}

// GetState asks for an immediate snapshot.
type GetState struct {
	Type string `json:"type" msg:"type"`
}

// Server -> Client Messages

// Ball is the ball part of a State.
type Ball struct {
	X  float64 `json:"x" msg:"x"`
	Y  float64 `json:"y" msg:"y"`
	VX int     `json:"vx" msg:"vx"`
	VY int     `json:"vy" msg:"vy"`
}

// Paddle is a paddle part of a State.
type Paddle struct {
	Y float64 `json:"y" msg:"y"`
}

// State is an authoritative snapshot. Seq increases with every simulated
// tick of a match.
type State struct {
	Type    string `json:"type" msg:"type"`
	Seq     uint64 `json:"seq" msg:"seq"`
	Ball    Ball   `json:"ball" msg:"ball"`
	Paddle1 Paddle `json:"paddle1" msg:"paddle1"`
	Paddle2 Paddle `json:"paddle2" msg:"paddle2"`
	Score1  int    `json:"score1" msg:"score1"`
	Score2  int    `json:"score2" msg:"score2"`
	Done    bool   `json:"done" msg:"done"`
}

// Error reports a rejected request.
type Error struct {
	Type    string `json:"type" msg:"type"`
	Code    string `json:"code" msg:"code"`
	Message string `json:"message" msg:"message"`
}

func (*Reset) MessageType() string    { return TypeReset }
func (*Action) MessageType() string   { return TypeAction }
func (*Mode) MessageType() string     { return TypeMode }
func (*GetState) MessageType() string { return TypeGetState }
func (*State) MessageType() string    { return TypeState }
func (*Error) MessageType() string    { return TypeError }

func NewReset() *Reset       { return &Reset{Type: TypeReset} }
func NewGetState() *GetState { return &GetState{Type: TypeGetState} }

func NewAction(player, action int) *Action {
	return &Action{Type: TypeAction, Player: player, Action: action}
}

func NewMode(player int, mode string) *Mode {
	return &Mode{Type: TypeMode, Player: player, Mode: mode}
}

func NewError(code, message string) *Error {
	return &Error{Type: TypeError, Code: code, Message: message}
}
