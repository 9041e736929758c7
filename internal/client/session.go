// Package client connects to a pong server, keeps locally controlled paddles
// responsive through prediction and reconnects when the link drops.
package client

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/pongforbots/internal/control"
	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/prediction"
	"github.com/lox/pongforbots/internal/protocol"
)

const (
	DefaultInputInterval  = time.Second / 60
	DefaultRenderInterval = time.Second / 60
)

// Options configures a Session.
type Options struct {
	URL      string
	Encoding protocol.Encoding
	Dialer   *websocket.Dialer
	Clock    quartz.Clock
	Logger   *log.Logger

	InputInterval  time.Duration // how often intents are sent
	RenderInterval time.Duration // how often predicted paddles advance

	Backoff    *Backoff
	Prediction prediction.Config
	Field      game.Config

	// Modes is what the client assumes until the server acknowledges a
	// mode change.
	Modes [2]control.Kind

	// Claims are mode requests sent on every (re)connect. A zero Kind sends
	// nothing for that side.
	Claims [2]control.Kind
}

type eventKind int

const (
	evConnected eventKind = iota
	evDisconnected
	evDialFailed
	evMessage
	evIntent
	evMode
	evReset
	evReconnect
)

type event struct {
	kind   eventKind
	conn   *Conn
	msg    protocol.Message
	player game.Player
	action game.Action
	mode   control.Kind
	err    error
}

// Session owns one logical connection to a server, across reconnects. All
// state is touched only by the Run goroutine; other goroutines talk to it
// through events and read the published View.
type Session struct {
	opts      Options
	clock     quartz.Clock
	logger    *log.Logger
	backoff   *Backoff
	predictor *prediction.Predictor

	events  chan event
	started chan struct{}
	stopped chan struct{}

	conn      *Conn
	dialing   bool
	reconnect *quartz.Timer
	intents   [2]game.Action
	modes     [2]control.Kind
	claims    [2]control.Kind
	live      bool
	snapshot  game.Snapshot

	view atomic.Pointer[control.View]
}

// NewSession validates options and returns an unstarted session.
func NewSession(opts Options) (*Session, error) {
	url, err := NormalizeURL(opts.URL)
	if err != nil {
		return nil, err
	}
	opts.URL = url

	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.InputInterval <= 0 {
		opts.InputInterval = DefaultInputInterval
	}
	if opts.RenderInterval <= 0 {
		opts.RenderInterval = DefaultRenderInterval
	}
	if opts.Backoff == nil {
		opts.Backoff = NewBackoff()
	}
	if opts.Prediction == (prediction.Config{}) {
		opts.Prediction = prediction.DefaultConfig()
	}
	if opts.Field.Width == 0 {
		opts.Field = game.DefaultConfig()
	}
	if opts.Modes == ([2]control.Kind{}) {
		opts.Modes = [2]control.Kind{control.Human, control.AI}
	}

	s := &Session{
		opts:      opts,
		clock:     opts.Clock,
		logger:    opts.Logger.WithPrefix("client"),
		backoff:   opts.Backoff,
		predictor: prediction.New(opts.Field, opts.Prediction),
		events:    make(chan event, 256),
		started:   make(chan struct{}),
		stopped:   make(chan struct{}),
		modes:     opts.Modes,
		claims:    opts.Claims,
	}
	for i, p := range game.Players {
		s.predictor.SetHuman(p, s.modes[i] == control.Human)
	}
	s.publish()
	return s, nil
}

// Started is closed once Run has created its tickers.
func (s *Session) Started() <-chan struct{} {
	return s.started
}

// View returns the latest published state. Safe from any goroutine.
func (s *Session) View() control.View {
	return *s.view.Load()
}

// SetIntent records the held direction for a human-controlled side.
func (s *Session) SetIntent(p game.Player, a game.Action) {
	if p.Valid() {
		s.post(event{kind: evIntent, player: p, action: a.Normalize()})
	}
}

// SetMode asks the server to change who controls p. The local mode changes
// when the server acknowledges.
func (s *Session) SetMode(p game.Player, kind control.Kind) {
	if p.Valid() && kind.Valid() {
		s.post(event{kind: evMode, player: p, mode: kind})
	}
}

// Reset asks the server to restart the match.
func (s *Session) Reset() {
	s.post(event{kind: evReset})
}

func (s *Session) post(ev event) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.stopped:
		return false
	}
}

// Run connects and processes events until ctx is cancelled. Connection
// failures are retried with backoff and never end the session.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.stopped)

	input := s.clock.NewTicker(s.opts.InputInterval, "session", "input")
	defer input.Stop()
	render := s.clock.NewTicker(s.opts.RenderInterval, "session", "render")
	defer render.Stop()

	s.startDial(ctx)
	close(s.started)

	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return nil
		case ev := <-s.events:
			s.handle(ctx, ev)
		case <-input.C:
			s.sendIntents()
		case <-render.C:
			s.render()
		}
	}
}

func (s *Session) shutdown() {
	if s.reconnect != nil {
		s.reconnect.Stop()
	}
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
	s.publish()
}

func (s *Session) startDial(ctx context.Context) {
	if s.dialing || s.conn != nil {
		return
	}
	s.dialing = true
	s.logger.Debug("Connecting to server", "url", s.opts.URL)

	go func() {
		conn, err := Dial(ctx, s.opts.Dialer, s.opts.URL, s.opts.Encoding)
		if err != nil {
			s.post(event{kind: evDialFailed, err: err})
			return
		}
		if !s.post(event{kind: evConnected, conn: conn}) {
			_ = conn.Close()
		}
	}()
}

func (s *Session) readLoop(conn *Conn) {
	for {
		msg, err := conn.Read()
		if err != nil {
			s.post(event{kind: evDisconnected, conn: conn, err: err})
			return
		}
		if !s.post(event{kind: evMessage, conn: conn, msg: msg}) {
			return
		}
	}
}

func (s *Session) scheduleReconnect() {
	delay := s.backoff.Next()
	s.logger.Info("Reconnecting", "in", delay)
	s.reconnect = s.clock.AfterFunc(delay, func() {
		s.post(event{kind: evReconnect})
	}, "session", "reconnect")
}

func (s *Session) handle(ctx context.Context, ev event) {
	switch ev.kind {
	case evConnected:
		s.dialing = false
		s.conn = ev.conn
		if s.reconnect != nil {
			s.reconnect.Stop()
			s.reconnect = nil
		}
		s.backoff.Reset()
		s.predictor.Forget()
		s.logger.Info("Connected to server", "url", s.opts.URL)

		go s.readLoop(ev.conn)
		s.send(protocol.NewGetState())
		for i, p := range game.Players {
			if s.claims[i] != 0 {
				s.send(protocol.NewMode(int(p), s.claims[i].String()))
			}
		}
		s.publish()

	case evDialFailed:
		s.dialing = false
		s.logger.Warn("Connection failed", "error", ev.err)
		s.scheduleReconnect()

	case evDisconnected:
		if ev.conn != s.conn {
			return
		}
		_ = s.conn.Close()
		s.conn = nil
		s.logger.Warn("Disconnected from server", "error", ev.err)
		s.publish()
		s.scheduleReconnect()

	case evReconnect:
		s.startDial(ctx)

	case evMessage:
		if ev.conn != s.conn {
			return
		}
		s.handleMessage(ev.msg)

	case evIntent:
		s.intents[ev.player.Index()] = ev.action

	case evMode:
		s.claims[ev.player.Index()] = ev.mode
		s.send(protocol.NewMode(int(ev.player), ev.mode.String()))

	case evReset:
		s.send(protocol.NewReset())
	}
}

func (s *Session) handleMessage(msg protocol.Message) {
	switch m := msg.(type) {
	case *protocol.State:
		corrections, err := s.predictor.Apply(m.Snapshot())
		if errors.Is(err, prediction.ErrStale) {
			s.logger.Debug("Ignoring stale state", "seq", m.Seq)
			return
		}
		for i, c := range corrections {
			if c.Snapped {
				s.logger.Debug("Snapped predicted paddle", "player", game.Players[i], "diff", c.Diff)
			}
		}
		s.live = true
		s.publish()

	case *protocol.Mode:
		p := m.Side()
		kind, err := control.ParseKind(m.Mode)
		if !p.Valid() || err != nil {
			s.logger.Warn("Ignoring invalid mode", "player", m.Player, "mode", m.Mode)
			return
		}
		s.modes[p.Index()] = kind
		s.predictor.SetHuman(p, kind == control.Human)
		s.logger.Info("Mode changed", "player", p, "mode", kind)
		s.publish()

	case *protocol.Error:
		s.logger.Warn("Server error", "code", m.Code, "message", m.Message)

	default:
		s.logger.Debug("Ignoring message", "type", msg.MessageType())
	}
}

func (s *Session) send(msg protocol.Message) {
	if s.conn == nil {
		return
	}
	if err := s.conn.Send(msg); err != nil {
		// the read loop reports the disconnect
		s.logger.Debug("Send failed", "type", msg.MessageType(), "error", err)
	}
}

// humanIntent is the intent for p if it is driven from this client.
func (s *Session) humanIntent(p game.Player) game.Action {
	if s.modes[p.Index()] != control.Human {
		return game.Stay
	}
	return s.intents[p.Index()]
}

func (s *Session) sendIntents() {
	if s.conn == nil {
		return
	}
	for _, p := range game.Players {
		s.send(protocol.NewAction(int(p), int(s.humanIntent(p))))
	}
}

func (s *Session) render() {
	s.predictor.Advance(s.humanIntent(game.Player1), s.humanIntent(game.Player2))
	s.publish()
}

func (s *Session) publish() {
	if snap, ok := s.predictor.View(); ok {
		s.snapshot = snap
	}
	s.view.Store(&control.View{
		Snapshot:  s.snapshot,
		Live:      s.live,
		Connected: s.conn != nil,
		Modes:     s.modes,
	})
}
