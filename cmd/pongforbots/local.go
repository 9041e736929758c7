package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pongforbots/cmd/pongforbots/shared"
	"github.com/lox/pongforbots/internal/control"
	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/local"
	"github.com/lox/pongforbots/internal/randutil"
	"github.com/lox/pongforbots/internal/replay"
	"github.com/lox/pongforbots/internal/server"
	"github.com/lox/pongforbots/internal/tui"
)

// LocalCmd plays a match in-process
type LocalCmd struct {
	Player1    string `default:"human" help:"Controller for player 1 (human|bot|ai)"`
	Player2    string `default:"bot" help:"Controller for player 2 (human|bot|ai)"`
	Difficulty string `default:"hard" enum:"easy,hard" help:"Bot heuristic (easy|hard)"`
	TopScore   int    `default:"20" help:"Points needed to win"`
	Seed       int64  `help:"Deterministic RNG seed (default time)"`
	Record     string `help:"Write a replay of the match to this file on exit"`
	LogFile    string `default:"pongforbots-local.log" help:"Where to write logs while the TUI is running"`
	Debug      bool   `help:"Enable debug logging"`

	PolicyFlags `embed:""`
}

func (c *LocalCmd) Run() error {
	cfg := server.DefaultConfig()
	cfg.Match.Player1 = c.Player1
	cfg.Match.Player2 = c.Player2
	cfg.Match.BotDifficulty = c.Difficulty
	cfg.Match.TopScore = c.TopScore
	if err := cfg.Validate(); err != nil {
		return err
	}

	uiLogger, closeLog, err := shared.SetupFileLogger(c.LogFile, "local", c.Debug)
	if err != nil {
		return err
	}
	defer closeLog()
	logger, closeZlog, err := shared.ZerologToFile(c.LogFile, c.Debug)
	if err != nil {
		return err
	}
	defer closeZlog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pol, err := c.load(ctx, cfg, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Policy unavailable, AI sides will stand still")
	}

	seed := randutil.Seed(c.Seed)
	field := cfg.GameConfig()
	ep, err := game.NewEpisode(field, randutil.New(seed))
	if err != nil {
		return err
	}
	c1, c2, err := cfg.Controllers(pol)
	if err != nil {
		return err
	}
	difficulty, _ := game.ParseDifficulty(c.Difficulty)
	opts := []control.ResolverOption{control.WithDefaultDifficulty(difficulty)}
	if pol != nil {
		opts = append(opts, control.WithDefaultPolicy(pol))
	}
	resolver, err := control.NewResolver(field, randutil.Derive(seed, 1), logger, c1, c2, opts...)
	if err != nil {
		return err
	}

	var rec *replay.Recorder
	if c.Record != "" {
		rec = replay.NewRecorder(seed, field)
	}
	runner := local.NewRunner(ep, resolver, local.Options{Logger: logger, Recorder: rec})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runner.Run(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return tui.Run(ctx, runner, tui.Options{Title: "pongforbots local", Field: field, Logger: uiLogger})
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if rec != nil {
		if err := replay.Save(c.Record, rec.Finish(runner.Snapshot())); err != nil {
			return fmt.Errorf("failed to save replay: %w", err)
		}
		fmt.Printf("Replay written to %s (seed %d)\n", c.Record, seed)
	}
	return nil
}
