// Package cli implements the pomo command tree: flag parsing, terminal
// rendering, and stdin prompting around the core timer services.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"pomo/internal/core"
)

// ErrInterrupted marks a run that was cancelled by the user. main maps it
// to a distinct exit code.
var ErrInterrupted = errors.New("interrupted")

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "A friendly Pomodoro timer for your terminal",
	Long: `pomo runs timed work and break intervals in your terminal, rings a bell
and raises a desktop notification when an interval finishes, and keeps an
append-only log of every completed work session.

Run pomo with no subcommand for the interactive mode: it asks what you are
working on, runs a work interval and a short break, and asks whether to go
again.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Sched == nil {
			return fmt.Errorf("scheduler not initialized")
		}

		ctx, stop := interruptContext(cmd)
		defer stop()

		printCycleIntro()

		outcome, err := Sched.RunCycle(ctx)
		if err != nil {
			return err
		}
		if outcome == core.OutcomeStoppedEarly && ctx.Err() != nil {
			return ErrInterrupted
		}

		// The user declined another cycle; a normal end of the day.
		fmt.Println(farewellStyle.Render("Great work today! See you next time."))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pomo %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// interruptContext derives a context that is cancelled on Ctrl+C. The
// countdown engine checks it at every tick boundary.
func interruptContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
