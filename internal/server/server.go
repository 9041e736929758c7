package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pongforbots/internal/control"
	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/policy"
	"github.com/lox/pongforbots/internal/protocol"
)

// Server hosts one authoritative match and the clients watching it.
type Server struct {
	config   *Config
	logger   zerolog.Logger
	clock    quartz.Clock
	policy   policy.Policy
	upgrader websocket.Upgrader

	match *Match

	mu          sync.RWMutex
	connections map[*Connection]struct{}
	httpServer  *http.Server
}

// Option configures a Server
type Option func(*Server)

// WithConfig replaces the default configuration
func WithConfig(cfg *Config) Option {
	return func(s *Server) { s.config = cfg }
}

// WithClock injects the clock driving the match loop
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) { s.clock = clock }
}

// WithPolicy sets the policy used by AI-controlled sides
func WithPolicy(p policy.Policy) Option {
	return func(s *Server) { s.policy = p }
}

// NewServer validates the configuration and builds the match. Invalid
// controller kinds are reported here, before anything runs.
func NewServer(logger zerolog.Logger, rng game.Rand, opts ...Option) (*Server, error) {
	s := &Server{
		config: DefaultConfig(),
		logger: logger.With().Str("component", "server").Logger(),
		clock:  quartz.NewReal(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Browser clients are served from anywhere
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(map[*Connection]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	ep, err := game.NewEpisode(s.config.GameConfig(), rng)
	if err != nil {
		return nil, err
	}

	c1, c2, err := s.config.Controllers(s.policy)
	if err != nil {
		return nil, err
	}
	var resolverOpts []control.ResolverOption
	if s.policy != nil {
		resolverOpts = append(resolverOpts, control.WithDefaultPolicy(s.policy))
	}
	difficulty, _ := game.ParseDifficulty(s.config.Match.BotDifficulty)
	resolverOpts = append(resolverOpts, control.WithDefaultDifficulty(difficulty))

	resolver, err := control.NewResolver(ep.Config(), rng, logger, c1, c2, resolverOpts...)
	if err != nil {
		return nil, err
	}

	s.match = NewMatch(ep, resolver, s, MatchOptions{
		Clock:          s.clock,
		Interval:       s.config.TickInterval(),
		BroadcastEvery: s.config.Server.BroadcastEvery,
		Logger:         logger,
	})
	return s, nil
}

// Match returns the hosted match
func (s *Server) Match() *Match {
	return s.match
}

// Handler returns the HTTP routes: /ws, /health, /status
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/{$}", s.handleHealth)
	return mux
}

// Serve runs the match loop and serves HTTP on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.match.Run(ctx)
	})
	g.Go(func() error {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("Pong server listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// ListenAndServe listens on the configured address
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Shutdown stops accepting clients and closes existing connections
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	conns := make([]*Connection, 0, len(s.connections))
	for c := range s.connections {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		_ = c.Close()
	}
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// ClientCount returns the number of connected clients
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

// Broadcast sends msg to every connection in its own encoding. Each encoding
// is marshalled at most once.
func (s *Server) Broadcast(msg protocol.Message) {
	s.mu.RLock()
	conns := make([]*Connection, 0, len(s.connections))
	for c := range s.connections {
		conns = append(conns, c)
	}
	s.mu.RUnlock()

	var encoded [2][]byte
	for _, c := range conns {
		enc := c.Encoding()
		if encoded[enc] == nil {
			data, err := protocol.Marshal(enc, msg)
			if err != nil {
				s.logger.Error().Err(err).Str("type", msg.MessageType()).Msg("Failed to encode broadcast")
				return
			}
			encoded[enc] = data
		}
		_ = c.sendFrame(enc, encoded[enc])
	}
}

func (s *Server) register(c *Connection) {
	s.mu.Lock()
	s.connections[c] = struct{}{}
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info().Str("conn_id", c.ID()).Int("total", total).Msg("Client connected")
}

func (s *Server) unregister(c *Connection) {
	s.mu.Lock()
	delete(s.connections, c)
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info().Str("conn_id", c.ID()).Int("total", total).Msg("Client disconnected")
}

// handleWebSocket handles WebSocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to upgrade connection")
		return
	}

	conn := NewConnection(ws, s.match, s.logger)
	s.register(conn)
	conn.Start()

	// New clients see the current state immediately
	if err := s.match.RequestState(r.Context(), conn); err != nil {
		s.logger.Debug().Err(err).Msg("Initial state not queued")
	}

	go func() {
		<-conn.Done()
		s.unregister(conn)
	}()
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "OK")
}

// StatusResponse is the body of /status
type StatusResponse struct {
	Status    string `json:"status"`
	Clients   int    `json:"clients"`
	AILoaded  bool   `json:"ai_loaded"`
	GameScore string `json:"game_score"`
	Player1   string `json:"player1"`
	Player2   string `json:"player2"`
	Done      bool   `json:"done"`
}

// handleStatus reports clients, policy availability and the score
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.match.Status()
	resp := StatusResponse{
		Status:    "running",
		Clients:   s.ClientCount(),
		AILoaded:  st.PolicyLoaded,
		GameScore: fmt.Sprintf("%d-%d", st.Score1, st.Score2),
		Player1:   st.Kinds[0].String(),
		Player2:   st.Kinds[1].String(),
		Done:      st.Done,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write status")
	}
}
