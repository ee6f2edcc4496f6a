package models

import (
	"errors"
	"fmt"
	"time"
)

// IntervalKind identifies what a countdown interval is for.
type IntervalKind string

const (
	KindWork       IntervalKind = "work"
	KindShortBreak IntervalKind = "short_break"
	KindLongBreak  IntervalKind = "long_break"
)

// IsBreak reports whether the kind is a rest interval rather than focused work.
func (k IntervalKind) IsBreak() bool {
	return k == KindShortBreak || k == KindLongBreak
}

// Label returns the human-readable name used in countdown output and notifications.
func (k IntervalKind) Label() string {
	switch k {
	case KindWork:
		return "Work"
	case KindShortBreak:
		return "Short break"
	case KindLongBreak:
		return "Long break"
	default:
		return string(k)
	}
}

var (
	// ErrConfig tags every configuration problem so callers can map the whole
	// class to a distinct exit code with errors.Is.
	ErrConfig = errors.New("invalid configuration")

	// ErrNonPositiveDuration rejects intervals that would never tick.
	ErrNonPositiveDuration = fmt.Errorf("%w: duration must be positive", ErrConfig)

	// ErrNoSessions rejects schedules that contain no work sessions.
	ErrNoSessions = fmt.Errorf("%w: schedule needs at least one session", ErrConfig)
)

// DefaultTask is recorded when a work interval is started without a description.
const DefaultTask = "no description"

// Interval is a single timed stretch: what it is for, how long it lasts,
// and (for work) the task being focused on.
type Interval struct {
	Kind     IntervalKind
	Duration time.Duration
	Task     string
}

// NewWorkInterval builds a work interval, substituting DefaultTask when no
// description was given.
func NewWorkInterval(d time.Duration, task string) Interval {
	if task == "" {
		task = DefaultTask
	}
	return Interval{Kind: KindWork, Duration: d, Task: task}
}

// NewBreakInterval builds a short or long break interval.
func NewBreakInterval(d time.Duration, long bool) Interval {
	kind := KindShortBreak
	if long {
		kind = KindLongBreak
	}
	return Interval{Kind: kind, Duration: d}
}

// Validate checks the interval invariants before any countdown starts.
func (iv Interval) Validate() error {
	if iv.Duration <= 0 {
		return fmt.Errorf("%s interval of %s: %w", iv.Kind, iv.Duration, ErrNonPositiveDuration)
	}
	return nil
}

// Plan is an ordered list of intervals executed front to back.
type Plan []Interval

// NewSchedulePlan builds the full alternating plan for a scheduled run:
// sessions work intervals, each followed by a short break, with the final
// break promoted to a long one. The resulting plan always has 2*sessions
// intervals.
func NewSchedulePlan(sessions int, work, shortBreak, longBreak time.Duration, task string) (Plan, error) {
	if sessions < 1 {
		return nil, fmt.Errorf("schedule of %d sessions: %w", sessions, ErrNoSessions)
	}

	plan := make(Plan, 0, 2*sessions)
	for i := 0; i < sessions; i++ {
		plan = append(plan, NewWorkInterval(work, task))
		plan = append(plan, NewBreakInterval(shortBreak, false))
	}
	plan[len(plan)-1] = NewBreakInterval(longBreak, true)

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// Validate checks every interval in the plan.
func (p Plan) Validate() error {
	for _, iv := range p {
		if err := iv.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Sessions returns the number of work intervals in the plan.
func (p Plan) Sessions() int {
	n := 0
	for _, iv := range p {
		if iv.Kind == KindWork {
			n++
		}
	}
	return n
}
