package core

import (
	"context"

	"pomo/pkg/models"
)

// Outcome reports how a schedule or interactive cycle ended.
type Outcome string

const (
	// OutcomeFinishedAll means every planned interval ran to completion.
	OutcomeFinishedAll Outcome = "finished_all"

	// OutcomeStoppedEarly means the run was cancelled or the user stopped
	// before the plan finished.
	OutcomeStoppedEarly Outcome = "stopped_early"
)

// defaultCycleTask is recorded when the interactive cycle is started
// without a task description.
const defaultCycleTask = "Focused work"

// confirmCycleQuestion is asked between interactive cycles.
const confirmCycleQuestion = "Start another Pomodoro cycle?"

// Prompter asks the user for input during the interactive cycle.
// This interface is defined locally in core to avoid importing cli.
type Prompter interface {
	// AskTask prompts for an optional task description. An empty answer
	// is valid.
	AskTask(ctx context.Context) (string, error)

	// Confirm asks a yes/no question, returning def when the user just
	// presses enter.
	Confirm(ctx context.Context, question string, def bool) (bool, error)
}

// Scheduler executes interval plans and the interactive work/break cycle.
type Scheduler interface {
	// Execute runs the plan front to back, stopping at the first
	// cancelled interval. A non-nil error means the plan was rejected
	// before any interval started.
	Execute(ctx context.Context, plan models.Plan) (Outcome, error)

	// RunCycle repeats work and short break intervals, prompting for a
	// task before each cycle and for confirmation after, until the user
	// declines or cancels.
	RunCycle(ctx context.Context) (Outcome, error)
}

// scheduler implements Scheduler on top of a CountdownEngine.
type scheduler struct {
	engine   CountdownEngine
	renderer ProgressRenderer
	prompter Prompter
	timer    models.TimerConfig
}

// NewScheduler creates a Scheduler that runs intervals through engine and
// takes interactive-cycle durations from timer.
func NewScheduler(engine CountdownEngine, renderer ProgressRenderer, prompter Prompter, timer models.TimerConfig) Scheduler {
	return &scheduler{
		engine:   engine,
		renderer: renderer,
		prompter: prompter,
		timer:    timer,
	}
}

func (s *scheduler) Execute(ctx context.Context, plan models.Plan) (Outcome, error) {
	if err := plan.Validate(); err != nil {
		return "", err
	}

	total := plan.Sessions()
	session := 0
	for _, iv := range plan {
		switch iv.Kind {
		case models.KindWork:
			session++
			s.renderer.SessionBanner(session, total)
		case models.KindLongBreak:
			s.renderer.LongBreakBanner()
		}

		status, err := s.engine.Run(ctx, iv)
		if err != nil {
			return "", err
		}
		if status == StatusCancelled {
			return OutcomeStoppedEarly, nil
		}
	}

	s.renderer.PlanCompleted(total)
	return OutcomeFinishedAll, nil
}

func (s *scheduler) RunCycle(ctx context.Context) (Outcome, error) {
	for {
		task, err := s.prompter.AskTask(ctx)
		if err != nil {
			// The prompt cannot be answered (cancelled or stdin closed),
			// so the cycle cannot continue.
			return OutcomeStoppedEarly, nil
		}
		if task == "" {
			task = defaultCycleTask
		}

		work := models.NewWorkInterval(s.timer.Work(), task)
		status, err := s.engine.Run(ctx, work)
		if err != nil {
			return "", err
		}
		if status == StatusCancelled {
			return OutcomeStoppedEarly, nil
		}

		rest := models.NewBreakInterval(s.timer.ShortBreak(), false)
		status, err = s.engine.Run(ctx, rest)
		if err != nil {
			return "", err
		}
		if status == StatusCancelled {
			return OutcomeStoppedEarly, nil
		}

		again, err := s.prompter.Confirm(ctx, confirmCycleQuestion, true)
		if err != nil {
			if ctx.Err() != nil {
				return OutcomeStoppedEarly, nil
			}
			// An unanswerable confirmation ends the cycle gracefully.
			return OutcomeFinishedAll, nil
		}
		if !again {
			return OutcomeFinishedAll, nil
		}
	}
}
