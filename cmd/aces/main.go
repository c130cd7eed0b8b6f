package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Deal     DealCmd          `cmd:"" help:"Shuffle a deck, commit to it and deal hole cards"`
	Reveal   RevealCmd        `cmd:"" help:"Burn and reveal community cards from a packed deck"`
	Showdown ShowdownCmd      `cmd:"" help:"Settle a scenario at showdown"`
	Simulate SimulateCmd      `cmd:"" help:"Run fully audited hands against a scenario file"`
	Verify   VerifyCmd        `cmd:"" help:"Check a deck commitment against a revealed key"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("aces"),
		kong.Description("Confidential dealing, reveal and settlement toolkit"),
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
