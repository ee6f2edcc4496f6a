package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pomo/internal/core"
	"pomo/pkg/models"
)

var (
	startDuration int
	startTask     string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run a single work interval",
	Long: `Run one work interval and log it on completion.

The duration defaults to timer.work_minutes from the configuration
(25 minutes out of the box). Press Ctrl+C to cancel; cancelled intervals
are never logged.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	startCmd.Flags().IntVarP(&startDuration, "duration", "d", 25, "Work interval length in minutes")
	startCmd.Flags().StringVarP(&startTask, "task", "t", "", "What you are working on")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	if Engine == nil {
		return fmt.Errorf("countdown engine not initialized")
	}

	minutes := Cfg.Timer.WorkMinutes
	if cmd.Flags().Changed("duration") {
		minutes = startDuration
	}

	iv := models.NewWorkInterval(time.Duration(minutes)*time.Minute, startTask)

	ctx, stop := interruptContext(cmd)
	defer stop()

	status, err := Engine.Run(ctx, iv)
	if err != nil {
		return err
	}
	if status == core.StatusCancelled {
		return ErrInterrupted
	}
	return nil
}
