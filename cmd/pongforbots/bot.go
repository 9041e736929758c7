package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pongforbots/cmd/pongforbots/shared"
	"github.com/lox/pongforbots/internal/client"
	"github.com/lox/pongforbots/internal/control"
	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/protocol"
	"github.com/lox/pongforbots/internal/randutil"
)

// BotCmd connects as an ordinary client and plays one side
type BotCmd struct {
	Server     string `help:"Server URL (default $PONGFORBOTS_SERVER or ws://localhost:8765/ws)"`
	Player     int    `help:"Side to play: 1 or 2 (default $PONGFORBOTS_PLAYER or 2)"`
	Difficulty string `default:"hard" enum:"easy,hard" help:"Bot heuristic (easy|hard)"`
	Seed       int64  `help:"Seed for exploration moves (default $PONGFORBOTS_SEED or time)"`
	MsgPack    bool   `default:"true" negatable:"" help:"Use binary msgpack frames"`
	LogLevel   string `default:"info" help:"Log level (debug|info|warn|error)"`
}

func (c *BotCmd) Run() error {
	env, err := client.FromEnv()
	if err != nil {
		return err
	}
	url := firstNonEmpty(c.Server, env.ServerURL, "ws://localhost:8765/ws")

	player := game.Player(c.Player)
	if player == 0 {
		player = env.Player
	}
	if player == 0 {
		player = game.Player2
	}
	if !player.Valid() {
		return fmt.Errorf("player must be 1 or 2, got %d", c.Player)
	}
	difficulty, err := game.ParseDifficulty(c.Difficulty)
	if err != nil {
		return err
	}
	seed := c.Seed
	if seed == 0 {
		seed = env.Seed
	}
	seed = randutil.Seed(seed)

	logger := shared.SetupConsoleLogger(c.LogLevel, "bot")
	logger.Info("Starting bot", "server", url, "player", player, "difficulty", difficulty, "seed", seed)

	enc := protocol.JSON
	if c.MsgPack {
		enc = protocol.MsgPack
	}
	var claims [2]control.Kind
	claims[player.Index()] = control.Human
	modes := [2]control.Kind{control.AI, control.AI}
	modes[player.Index()] = control.Human

	session, err := client.NewSession(client.Options{
		URL:      url,
		Encoding: enc,
		Logger:   logger,
		Modes:    modes,
		Claims:   claims,
	})
	if err != nil {
		return err
	}
	bot := client.NewRemoteBot(session, player, difficulty, randutil.New(seed), nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return session.Run(ctx) })
	g.Go(func() error { return bot.Run(ctx) })
	return g.Wait()
}

