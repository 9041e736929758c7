package main

import (
	"github.com/lox/pongforbots/cmd/pongforbots/shared"
	"github.com/lox/pongforbots/internal/randutil"
	"github.com/lox/pongforbots/internal/server"
)

// ServerCmd runs the authoritative match
type ServerCmd struct {
	Config   string `short:"c" default:"pongforbots.hcl" help:"Path to HCL configuration file (defaults apply when missing)"`
	Addr     string `help:"Listen address host (overrides config)"`
	Port     int    `help:"Listen port (overrides config)"`
	Player1  string `help:"Controller for player 1: human, bot or ai (overrides config)"`
	Player2  string `help:"Controller for player 2: human, bot or ai (overrides config)"`
	Seed     *int64 `help:"Deterministic RNG seed (overrides config)"`
	LogLevel string `help:"Log level (debug|info|warn|error, overrides config)"`
	LogJSON  bool   `help:"Output JSON logs instead of console format"`
}

func (c *ServerCmd) Run() error {
	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Server.Address = c.Addr
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}
	if c.Player1 != "" {
		cfg.Match.Player1 = c.Player1
	}
	if c.Player2 != "" {
		cfg.Match.Player2 = c.Player2
	}
	if c.Seed != nil {
		cfg.Match.Seed = *c.Seed
	}
	if c.LogLevel != "" {
		cfg.Server.LogLevel = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := shared.SetupLogger(cfg.Server.LogLevel, c.LogJSON)
	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	seed := randutil.Seed(cfg.Match.Seed)
	logger.Info().Int64("seed", seed).Msg("Using seed")

	opts := []server.Option{server.WithConfig(cfg)}
	pol, err := cfg.LoadPolicy(ctx, logger)
	if err != nil {
		// AI sides stand still until a policy is available
		logger.Warn().Err(err).Str("kind", cfg.Policy.Kind).Msg("Policy unavailable")
	} else {
		opts = append(opts, server.WithPolicy(pol))
	}

	s, err := server.NewServer(logger, randutil.New(seed), opts...)
	if err != nil {
		return err
	}

	logger.Info().
		Str("address", cfg.Address()).
		Str("player1", cfg.Match.Player1).
		Str("player2", cfg.Match.Player2).
		Int("tick_rate", cfg.Server.TickRate).
		Int("top_score", cfg.Match.TopScore).
		Msg("Starting pongforbots server")

	return s.ListenAndServe(ctx)
}
