package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pomo/internal/core"
	"pomo/pkg/models"
)

var (
	scheduleSessions   int
	scheduleWork       int
	scheduleShortBreak int
	scheduleLongBreak  int
	scheduleTask       string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run a full multi-session schedule",
	Long: `Run a full Pomodoro schedule: work and short break intervals alternating
for the requested number of sessions, finishing with one long break.

All lengths default to the timer section of the configuration. Ctrl+C
cancels the current interval and skips everything after it.`,
	Args: cobra.NoArgs,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().IntVarP(&scheduleSessions, "sessions", "s", 4, "Number of work sessions")
	scheduleCmd.Flags().IntVarP(&scheduleWork, "work", "w", 25, "Work interval length in minutes")
	scheduleCmd.Flags().IntVarP(&scheduleShortBreak, "short-break", "b", 5, "Short break length in minutes")
	scheduleCmd.Flags().IntVarP(&scheduleLongBreak, "long-break", "l", 15, "Long break length in minutes")
	scheduleCmd.Flags().StringVarP(&scheduleTask, "task", "t", "", "What you are working on")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	if Sched == nil {
		return fmt.Errorf("scheduler not initialized")
	}

	sessions := Cfg.Timer.Sessions
	work := Cfg.Timer.WorkMinutes
	shortBreak := Cfg.Timer.ShortBreakMinutes
	longBreak := Cfg.Timer.LongBreakMinutes
	if cmd.Flags().Changed("sessions") {
		sessions = scheduleSessions
	}
	if cmd.Flags().Changed("work") {
		work = scheduleWork
	}
	if cmd.Flags().Changed("short-break") {
		shortBreak = scheduleShortBreak
	}
	if cmd.Flags().Changed("long-break") {
		longBreak = scheduleLongBreak
	}

	plan, err := models.NewSchedulePlan(sessions,
		time.Duration(work)*time.Minute,
		time.Duration(shortBreak)*time.Minute,
		time.Duration(longBreak)*time.Minute,
		scheduleTask)
	if err != nil {
		return err
	}

	ctx, stop := interruptContext(cmd)
	defer stop()

	outcome, err := Sched.Execute(ctx, plan)
	if err != nil {
		return err
	}
	if outcome == core.OutcomeStoppedEarly {
		return ErrInterrupted
	}
	return nil
}
