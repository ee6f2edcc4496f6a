package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pomo/internal/core"
	"pomo/pkg/models"
)

var (
	breakDuration int
	breakLong     bool
)

var breakCmd = &cobra.Command{
	Use:   "break",
	Short: "Run a single break interval",
	Long: `Run one break interval. Breaks are announced like work intervals but
never logged.

The duration defaults to timer.short_break_minutes from the configuration,
or timer.long_break_minutes with --long.`,
	Args: cobra.NoArgs,
	RunE: runBreak,
}

func init() {
	breakCmd.Flags().IntVarP(&breakDuration, "duration", "d", 5, "Break length in minutes")
	breakCmd.Flags().BoolVarP(&breakLong, "long", "l", false, "Take a long break")
	rootCmd.AddCommand(breakCmd)
}

func runBreak(cmd *cobra.Command, args []string) error {
	if Engine == nil {
		return fmt.Errorf("countdown engine not initialized")
	}

	minutes := Cfg.Timer.ShortBreakMinutes
	if breakLong {
		minutes = Cfg.Timer.LongBreakMinutes
	}
	if cmd.Flags().Changed("duration") {
		minutes = breakDuration
	}

	iv := models.NewBreakInterval(time.Duration(minutes)*time.Minute, breakLong)

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
