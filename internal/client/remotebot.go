package client

import (
	"context"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/pongforbots/internal/game"
)

// DefaultBotInterval matches the server tick rate.
const DefaultBotInterval = time.Second / 60

// RemoteBot drives one side of a remote match with the heuristic bot. The
// session must claim that side as human so the server uses its intents.
type RemoteBot struct {
	session    *Session
	player     game.Player
	difficulty game.Difficulty
	rng        game.Rand
	clock      quartz.Clock
	interval   time.Duration
}

// NewRemoteBot returns a bot for player p on session.
func NewRemoteBot(session *Session, p game.Player, d game.Difficulty, rng game.Rand, clock quartz.Clock) *RemoteBot {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &RemoteBot{
		session:    session,
		player:     p,
		difficulty: d,
		rng:        rng,
		clock:      clock,
		interval:   DefaultBotInterval,
	}
}

// Run updates the intent every interval until ctx is cancelled.
func (b *RemoteBot) Run(ctx context.Context) error {
	ticker := b.clock.NewTicker(b.interval, "bot", "tick")
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			b.step()
		}
	}
}

func (b *RemoteBot) step() {
	v := b.session.View()
	if !v.Live || v.Snapshot.Done {
		b.session.SetIntent(b.player, game.Stay)
		return
	}
	snap := v.Snapshot
	a := game.BotMove(b.difficulty, snap.Ball, snap.PaddleY(b.player), b.session.opts.Field.PaddleHeight, b.rng)
	b.session.SetIntent(b.player, a)
}
