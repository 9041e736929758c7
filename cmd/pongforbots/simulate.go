package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lox/pongforbots/cmd/pongforbots/shared"
	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/local"
	"github.com/lox/pongforbots/internal/randutil"
	"github.com/lox/pongforbots/internal/replay"
)

// SimulateCmd plays headless bot matches as fast as possible
type SimulateCmd struct {
	Episodes  int    `short:"n" default:"100" help:"Number of matches"`
	Seed      int64  `help:"Base seed; each match derives its own (default time)"`
	Player1   string `default:"hard" enum:"easy,hard" help:"Player 1 bot difficulty"`
	Player2   string `default:"easy" enum:"easy,hard" help:"Player 2 bot difficulty"`
	TopScore  int    `default:"20" help:"Points needed to win"`
	MaxTicks  int    `default:"100000" help:"Give up on a match after this many ticks"`
	Workers   int    `help:"Parallel matches (default GOMAXPROCS)"`
	RecordDir string `help:"Write a replay per match into this directory"`
	Verbose   bool   `help:"Print every match result"`
	LogLevel  string `default:"info" help:"Log level (debug|info|warn|error)"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.LogLevel, false)
	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	d1, err := game.ParseDifficulty(c.Player1)
	if err != nil {
		return err
	}
	d2, err := game.ParseDifficulty(c.Player2)
	if err != nil {
		return err
	}
	cfg := game.DefaultConfig()
	cfg.TopScore = c.TopScore

	seed := randutil.Seed(c.Seed)
	logger.Info().Int64("seed", seed).Int("episodes", c.Episodes).Msg("Starting simulation")

	start := time.Now()
	results, err := local.Simulate(ctx, c.Episodes, seed, local.SimulateOptions{
		Config:     cfg,
		Difficulty: [2]game.Difficulty{d1, d2},
		MaxTicks:   c.MaxTicks,
		Workers:    c.Workers,
		Record:     c.RecordDir != "",
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for _, r := range results {
		if c.Verbose {
			fmt.Printf("episode %4d  seed %20d  ticks %6d  score %2d-%-2d  winner %s\n",
				r.Episode, r.Seed, r.Ticks, r.Score1, r.Score2, r.Winner)
		}
		if r.Replay != nil {
			path := filepath.Join(c.RecordDir, fmt.Sprintf("episode-%04d.toml", r.Episode))
			if err := replay.Save(path, r.Replay); err != nil {
				return err
			}
		}
	}

	sum := local.Summarize(results)
	ticks := sum.MeanTicks * float64(sum.Episodes)
	fmt.Fprintf(os.Stdout, "\n%d matches in %s (%.0f ticks/s)\n", sum.Episodes, elapsed.Round(time.Millisecond), ticks/elapsed.Seconds())
	fmt.Fprintf(os.Stdout, "player1 (%s) wins: %d\n", d1, sum.Wins[0])
	fmt.Fprintf(os.Stdout, "player2 (%s) wins: %d\n", d2, sum.Wins[1])
	if sum.Unfinished > 0 {
		fmt.Fprintf(os.Stdout, "unfinished:        %d\n", sum.Unfinished)
	}
	fmt.Fprintf(os.Stdout, "mean ticks/match:  %.1f\n", sum.MeanTicks)
	return nil
}
