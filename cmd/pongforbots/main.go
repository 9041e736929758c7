package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Server   ServerCmd        `cmd:"" help:"Run the authoritative pong server"`
	Client   ClientCmd        `cmd:"" help:"Play against a server in the terminal"`
	Local    LocalCmd         `cmd:"" help:"Play a local match in the terminal"`
	Bot      BotCmd           `cmd:"" help:"Drive one side of a server match with the scripted bot"`
	Simulate SimulateCmd      `cmd:"" help:"Run headless bot-vs-bot matches"`
	Replay   ReplayCmd        `cmd:"" help:"Re-run a recorded match and check its result"`
	Model    ModelCmd         `cmd:"" help:"Manage the policy model cache"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pongforbots"),
		kong.Description("Deterministic pong with an authoritative server, predicting clients and bots"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
