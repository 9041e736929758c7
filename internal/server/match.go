package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/pongforbots/internal/control"
	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/protocol"
)

// ErrMatchStopped is returned by Submit once the match loop has exited.
var ErrMatchStopped = errors.New("match stopped")

// Sender delivers a message to one client.
type Sender interface {
	Send(msg protocol.Message) error
}

// Broadcaster delivers a message to every client.
type Broadcaster interface {
	Broadcast(msg protocol.Message)
}

type commandKind int

const (
	cmdReset commandKind = iota
	cmdAction
	cmdMode
	cmdGetState
)

type command struct {
	kind   commandKind
	player game.Player
	action game.Action
	mode   control.Kind
	from   Sender
}

// MatchOptions configures the match loop.
type MatchOptions struct {
	Clock          quartz.Clock
	Interval       time.Duration
	BroadcastEvery int
	Logger         zerolog.Logger
}

// MatchStatus is a copy of the match state safe to read from any goroutine.
type MatchStatus struct {
	Score1       int
	Score2       int
	Done         bool
	Seq          uint64
	Kinds        [2]control.Kind
	PolicyLoaded bool
}

// Match is the only writer of the episode. Client requests arrive as
// commands and are applied on the loop goroutine between ticks, so a step
// never overlaps another step or a reset.
type Match struct {
	episode  *game.Episode
	resolver *control.Resolver
	out      Broadcaster
	opts     MatchOptions
	logger   zerolog.Logger

	commands chan command
	started  chan struct{}
	stopped  chan struct{}

	frame uint64
	seq   uint64

	mu     sync.RWMutex
	status MatchStatus
}

// NewMatch wires an episode, its controllers and an output.
func NewMatch(ep *game.Episode, resolver *control.Resolver, out Broadcaster, opts MatchOptions) *Match {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second / defaultTickRate
	}
	if opts.BroadcastEvery <= 0 {
		opts.BroadcastEvery = defaultBroadcastEvery
	}
	m := &Match{
		episode:  ep,
		resolver: resolver,
		out:      out,
		opts:     opts,
		logger:   opts.Logger.With().Str("component", "match").Logger(),
		commands: make(chan command, 256),
		started:  make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	m.updateStatus()
	return m
}

// Run drives the match until ctx is cancelled. It must be called once.
func (m *Match) Run(ctx context.Context) error {
	defer close(m.stopped)

	ticker := m.opts.Clock.NewTicker(m.opts.Interval, "match", "tick")
	defer ticker.Stop()
	close(m.started)

	m.logger.Info().
		Dur("interval", m.opts.Interval).
		Int("broadcast_every", m.opts.BroadcastEvery).
		Msg("Match loop started")

	for {
		select {
		case <-ctx.Done():
			m.resolver.Wait()
			m.logger.Info().Msg("Match loop stopped")
			return nil
		case cmd := <-m.commands:
			m.handle(ctx, cmd)
		case <-ticker.C:
			m.tick(ctx)
		}
	}
}

// Started is closed once the loop is ticking.
func (m *Match) Started() <-chan struct{} {
	return m.started
}

// Submit queues a command for the loop.
func (m *Match) submit(ctx context.Context, cmd command) error {
	select {
	case m.commands <- cmd:
		return nil
	case <-m.stopped:
		return ErrMatchStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reset restarts the match and broadcasts the new state.
func (m *Match) Reset(ctx context.Context) error {
	return m.submit(ctx, command{kind: cmdReset})
}

// SetIntent records a player's latest action.
func (m *Match) SetIntent(ctx context.Context, p game.Player, a game.Action) error {
	return m.submit(ctx, command{kind: cmdAction, player: p, action: a})
}

// SetMode reassigns a side and acknowledges to from.
func (m *Match) SetMode(ctx context.Context, p game.Player, kind control.Kind, from Sender) error {
	return m.submit(ctx, command{kind: cmdMode, player: p, mode: kind, from: from})
}

// RequestState sends the current state to from.
func (m *Match) RequestState(ctx context.Context, from Sender) error {
	return m.submit(ctx, command{kind: cmdGetState, from: from})
}

// Status returns the latest match summary.
func (m *Match) Status() MatchStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Match) tick(ctx context.Context) {
	m.frame++

	if m.episode.Done() {
		m.broadcast()
		return
	}

	a1, a2 := m.resolver.Resolve(ctx, m.snapshot())
	res, err := m.episode.Step(a1, a2)
	if err != nil {
		m.logger.Error().Err(err).Msg("Step rejected")
		return
	}
	m.seq++

	if res.Scorer != 0 {
		s1, s2 := m.episode.Score()
		m.logger.Debug().Stringer("scorer", res.Scorer).Int("score1", s1).Int("score2", s2).Msg("Point scored")
	}
	if res.Done {
		s1, s2 := m.episode.Score()
		m.logger.Info().Stringer("winner", m.episode.Winner()).Int("score1", s1).Int("score2", s2).Msg("Match finished")
	}
	m.updateStatus()

	if m.frame%uint64(m.opts.BroadcastEvery) == 0 {
		m.broadcast()
	}
}

func (m *Match) handle(ctx context.Context, cmd command) {
	switch cmd.kind {
	case cmdReset:
		m.episode.Reset()
		m.resolver.Reset()
		m.seq++
		m.updateStatus()
		m.logger.Info().Msg("Match reset")
		m.broadcast()

	case cmdAction:
		m.resolver.SetIntent(cmd.player, cmd.action)

	case cmdMode:
		if err := m.resolver.SetKind(cmd.player, cmd.mode); err != nil {
			m.reply(cmd.from, protocol.NewError("invalid_mode", err.Error()))
			return
		}
		m.updateStatus()
		m.reply(cmd.from, protocol.NewMode(int(cmd.player), cmd.mode.String()))

	case cmdGetState:
		m.reply(cmd.from, protocol.NewState(m.snapshot()))
	}
}

func (m *Match) reply(to Sender, msg protocol.Message) {
	if to == nil {
		return
	}
	if err := to.Send(msg); err != nil {
		m.logger.Debug().Err(err).Str("type", msg.MessageType()).Msg("Reply dropped")
	}
}

func (m *Match) snapshot() game.Snapshot {
	s := m.episode.Snapshot()
	s.Seq = m.seq
	return s
}

func (m *Match) broadcast() {
	if m.out != nil {
		m.out.Broadcast(protocol.NewState(m.snapshot()))
	}
}

func (m *Match) updateStatus() {
	s1, s2 := m.episode.Score()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = MatchStatus{
		Score1:       s1,
		Score2:       s2,
		Done:         m.episode.Done(),
		Seq:          m.seq,
		Kinds:        m.resolver.Kinds(),
		PolicyLoaded: m.resolver.PolicyLoaded(),
	}
}
