package main

import (
	"errors"
	"fmt"
	"os"

	app "pomo/internal"
	"pomo/internal/cli"
	"pomo/internal/core"
	"pomo/internal/exitcode"
	"pomo/pkg/models"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)

	home, err := core.ResolveHome()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing pomo: %v\n", err)
		os.Exit(exitcode.ConfigError)
	}

	a, err := app.NewApp(home)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing pomo: %v\n", err)
		os.Exit(exitcode.ConfigError)
	}

	err = cli.Execute()
	a.Close()

	switch {
	case err == nil:
		os.Exit(exitcode.Success)
	case errors.Is(err, cli.ErrInterrupted):
		fmt.Fprintln(os.Stderr, "Timer interrupted.")
		os.Exit(exitcode.Interrupted)
	case errors.Is(err, models.ErrConfig):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitcode.ConfigError)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitcode.ConfigError)
	}
}
