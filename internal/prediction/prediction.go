// Package prediction keeps locally controlled paddles responsive between
// authoritative snapshots and pulls them back toward the server's view when
// snapshots arrive.
package prediction

import (
	"errors"
	"math"

	"github.com/lox/pongforbots/internal/game"
)

// ErrStale is returned by Apply for a snapshot no newer than the last one.
var ErrStale = errors.New("stale snapshot")

// Config tunes local motion and reconciliation.
type Config struct {
	Speed         float64 // local paddle step per Advance
	SnapThreshold float64 // larger disagreements are corrected in one jump
	Correction    float64 // fraction of a small disagreement removed per snapshot
}

func DefaultConfig() Config {
	return Config{
		Speed:         8,
		SnapThreshold: 20,
		Correction:    0.3,
	}
}

// Correction describes how one paddle was reconciled.
type Correction struct {
	Predicted bool    // the paddle is locally controlled
	Diff      float64 // server minus local, before correction
	Snapped   bool    // the disagreement exceeded the snap threshold
}

// Predictor owns the locally predicted paddle heights. It is not safe for
// concurrent use: the client runs it from a single event loop.
type Predictor struct {
	field   game.Config
	cfg     Config
	paddles [2]*game.Paddle
	human   [2]bool
	last    game.Snapshot
	have    bool
}

// New returns a predictor with both paddles centred and remote-controlled.
func New(field game.Config, cfg Config) *Predictor {
	p := &Predictor{field: field, cfg: cfg}
	for _, pl := range game.Players {
		p.paddles[pl.Index()] = game.NewPaddle(field.PaddleX(pl), field.PaddleStartY(),
			field.PaddleWidth, field.PaddleHeight, cfg.Speed, field.Height)
	}
	return p
}

// SetHuman marks whether pl is driven by local input.
func (p *Predictor) SetHuman(pl game.Player, human bool) {
	if pl.Valid() {
		p.human[pl.Index()] = human
	}
}

// Human reports whether pl is locally predicted.
func (p *Predictor) Human(pl game.Player) bool {
	return pl.Valid() && p.human[pl.Index()]
}

// Advance moves the locally controlled paddles one step. Motion uses the same
// reject-at-the-wall rule as the simulation, at the local speed.
func (p *Predictor) Advance(a1, a2 game.Action) {
	for i, a := range [2]game.Action{a1, a2} {
		if p.human[i] {
			p.paddles[i].Move(a)
		}
	}
}

// Apply reconciles against an authoritative snapshot. Remote paddles adopt
// the server height; local paddles snap when far off and otherwise close a
// fraction of the gap.
func (p *Predictor) Apply(s game.Snapshot) ([2]Correction, error) {
	var out [2]Correction
	if p.have && s.Seq <= p.last.Seq {
		return out, ErrStale
	}

	maxY := p.field.MaxPaddleY()
	for i, pl := range game.Players {
		serverY := math.Max(0, math.Min(s.PaddleY(pl), maxY))
		paddle := p.paddles[i]
		if !p.human[i] {
			paddle.Y = serverY
			continue
		}

		diff := serverY - paddle.Y
		out[i] = Correction{Predicted: true, Diff: diff}
		if math.Abs(diff) > p.cfg.SnapThreshold {
			paddle.Y = serverY
			out[i].Snapped = true
		} else {
			paddle.Y += diff * p.cfg.Correction
		}
	}

	p.last = s
	p.have = true
	return out, nil
}

// Forget drops the last snapshot so the next one is accepted whatever its
// sequence number. Used after reconnecting to a possibly restarted server.
func (p *Predictor) Forget() {
	p.have = false
}

// LocalY returns the predicted height of pl's paddle.
func (p *Predictor) LocalY(pl game.Player) float64 {
	return p.paddles[pl.Index()].Y
}

// Last returns the most recent authoritative snapshot.
func (p *Predictor) Last() (game.Snapshot, bool) {
	return p.last, p.have
}

// View returns the last snapshot with paddle heights replaced by predicted
// values. The ball and scores are always the server's.
func (p *Predictor) View() (game.Snapshot, bool) {
	if !p.have {
		return game.Snapshot{}, false
	}
	v := p.last
	v.Paddle1Y = p.paddles[0].Y
	v.Paddle2Y = p.paddles[1].Y
	return v, true
}
