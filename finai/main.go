package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"
	"github.com/subosito/gotenv"

	"github.com/sahib-pratap-singh/Ai-Finance/cmd"
)

func main() {
	// A .env file beside the binary may carry GEMINI_API_KEY.
	_ = gotenv.Load()

	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "fin",
	}))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
