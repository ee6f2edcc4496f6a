package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"pomo/pkg/models"
)

// Status reports where a countdown is in its lifecycle.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// CountdownState is a snapshot of a running countdown, handed to the
// renderer once per tick.
type CountdownState struct {
	Interval  models.Interval
	Remaining time.Duration
	Status    Status
	EndsAt    time.Time
}

// Announcer signals interval completion to the user via sound and desktop
// notification. Implementations must never fail the countdown; announcement
// problems are handled out of band.
// This interface is defined locally in core to avoid importing notify.
type Announcer interface {
	Announce(iv models.Interval)
}

// CompletionRecorder persists completed work intervals to the history log.
// This interface is defined locally in core to avoid importing storage.
type CompletionRecorder interface {
	Record(rec models.CompletionRecord) error
}

// ProgressRenderer receives countdown and schedule lifecycle callbacks
// for display. This interface is defined locally in core to avoid
// importing cli.
type ProgressRenderer interface {
	SessionBanner(current, total int)
	LongBreakBanner()
	Tick(st CountdownState)
	Completed(iv models.Interval)
	Cancelled(iv models.Interval)
	PlanCompleted(sessions int)
}

// CountdownEngine runs a single interval to completion or cancellation,
// ticking once per second.
type CountdownEngine interface {
	// Run counts the interval down. It returns StatusCompleted when the
	// interval ran out naturally and StatusCancelled when the context was
	// cancelled mid-countdown. A non-nil error means the interval was
	// rejected before the first tick and nothing was rendered, announced,
	// or recorded.
	Run(ctx context.Context, iv models.Interval) (Status, error)
}

// countdownEngine implements CountdownEngine against an abstract Clock.
type countdownEngine struct {
	clock     Clock
	renderer  ProgressRenderer
	announcer Announcer
	recorder  CompletionRecorder
	tick      time.Duration
}

// NewCountdownEngine creates a CountdownEngine that renders through the
// given renderer and, on natural completion, announces the interval and
// records it when it was work.
func NewCountdownEngine(clock Clock, renderer ProgressRenderer, announcer Announcer, recorder CompletionRecorder) CountdownEngine {
	return &countdownEngine{
		clock:     clock,
		renderer:  renderer,
		announcer: announcer,
		recorder:  recorder,
		tick:      time.Second,
	}
}

func (e *countdownEngine) Run(ctx context.Context, iv models.Interval) (Status, error) {
	if err := iv.Validate(); err != nil {
		return "", err
	}

	total := iv.Duration
	endsAt := e.clock.Now().Add(total)

	// Render the time left after each elapsed tick, so the first render
	// shows one tick less than the full duration and the last shows zero.
	for elapsed := time.Duration(0); elapsed < total; {
		step := e.tick
		if left := total - elapsed; left < step {
			step = left
		}
		elapsed += step

		e.renderer.Tick(CountdownState{
			Interval:  iv,
			Remaining: total - elapsed,
			Status:    StatusRunning,
			EndsAt:    endsAt,
		})

		select {
		case <-ctx.Done():
			e.renderer.Cancelled(iv)
			return StatusCancelled, nil
		case <-e.clock.After(step):
		}
	}

	e.renderer.Completed(iv)
	e.announcer.Announce(iv)

	if iv.Kind == models.KindWork {
		rec := models.NewCompletionRecord(iv, e.clock.Now())
		if err := e.recorder.Record(rec); err != nil {
			// The history log is advisory; a failed write must not kill
			// the timer.
			fmt.Fprintf(os.Stderr, "Warning: recording completed session: %v\n", err)
		}
	}

	return StatusCompleted, nil
}
