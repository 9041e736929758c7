package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pongforbots/cmd/pongforbots/shared"
	"github.com/lox/pongforbots/internal/client"
	"github.com/lox/pongforbots/internal/control"
	"github.com/lox/pongforbots/internal/game"
	"github.com/lox/pongforbots/internal/protocol"
	"github.com/lox/pongforbots/internal/tui"
)

// ClientCmd plays against a server in the terminal
type ClientCmd struct {
	Server  string `help:"Server URL (default $PONGFORBOTS_SERVER or ws://localhost:8765/ws)"`
	Player1 string `help:"Claim player 1 as human, bot or ai on connect"`
	Player2 string `help:"Claim player 2 as human, bot or ai on connect"`
	MsgPack bool   `help:"Use binary msgpack frames instead of JSON"`
	LogFile string `default:"pongforbots-client.log" help:"Where to write logs while the TUI is running"`
	Debug   bool   `help:"Enable debug logging"`
}

func (c *ClientCmd) Run() error {
	env, err := client.FromEnv()
	if err != nil {
		return err
	}
	url := firstNonEmpty(c.Server, env.ServerURL, "ws://localhost:8765/ws")

	claims, err := parseClaims(c.Player1, c.Player2)
	if err != nil {
		return err
	}

	logger, closeLog, err := shared.SetupFileLogger(c.LogFile, "client", c.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	enc := protocol.JSON
	if c.MsgPack {
		enc = protocol.MsgPack
	}
	session, err := client.NewSession(client.Options{
		URL:      url,
		Encoding: enc,
		Logger:   logger,
		Claims:   claims,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return session.Run(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return tui.Run(ctx, session, tui.Options{Title: "pongforbots " + url, Logger: logger})
	})
	return g.Wait()
}

func parseClaims(p1, p2 string) ([2]control.Kind, error) {
	var claims [2]control.Kind
	for i, s := range []string{p1, p2} {
		if s == "" {
			continue
		}
		kind, err := control.ParseKind(s)
		if err != nil {
			return claims, fmt.Errorf("%s: %w", game.Players[i], err)
		}
		claims[i] = kind
	}
	return claims, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
