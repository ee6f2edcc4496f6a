package core

import (
	"context"
	"io"
	"time"

	"pomo/pkg/models"
)

// fakeClock advances virtual time immediately on After, so countdowns run
// without waiting wall-clock seconds.
type fakeClock struct {
	now        time.Time
	afterCalls []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) After(d time.Duration) <-chan time.Time {
	f.afterCalls = append(f.afterCalls, d)
	f.now = f.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- f.now
	return ch
}

// cancelClock cancels the context on the nth wait and then never fires,
// simulating Ctrl+C mid-countdown.
type cancelClock struct {
	fakeClock
	cancelOn int
	cancel   context.CancelFunc
}

func (c *cancelClock) After(d time.Duration) <-chan time.Time {
	if len(c.afterCalls)+1 >= c.cancelOn {
		c.afterCalls = append(c.afterCalls, d)
		c.cancel()
		// Never fires; the countdown sees ctx.Done instead.
		return make(chan time.Time)
	}
	return c.fakeClock.After(d)
}

// recordingRenderer captures every renderer callback for assertions.
type recordingRenderer struct {
	banners    [][2]int
	longBreaks int
	ticks      []CountdownState
	completed  []models.Interval
	cancelled  []models.Interval
	planDone   []int
}

func (r *recordingRenderer) SessionBanner(current, total int) {
	r.banners = append(r.banners, [2]int{current, total})
}
func (r *recordingRenderer) LongBreakBanner()             { r.longBreaks++ }
func (r *recordingRenderer) Tick(st CountdownState)       { r.ticks = append(r.ticks, st) }
func (r *recordingRenderer) Completed(iv models.Interval) { r.completed = append(r.completed, iv) }
func (r *recordingRenderer) Cancelled(iv models.Interval) { r.cancelled = append(r.cancelled, iv) }
func (r *recordingRenderer) PlanCompleted(sessions int)   { r.planDone = append(r.planDone, sessions) }

// recordingAnnouncer captures announced intervals.
type recordingAnnouncer struct {
	announced []models.Interval
}

func (a *recordingAnnouncer) Announce(iv models.Interval) {
	a.announced = append(a.announced, iv)
}

// recordingRecorder captures completion records and can inject a write
// failure.
type recordingRecorder struct {
	records []models.CompletionRecord
	err     error
}

func (r *recordingRecorder) Record(rec models.CompletionRecord) error {
	r.records = append(r.records, rec)
	return r.err
}

// scriptedEngine returns pre-scripted statuses per Run call, so scheduler
// tests control exactly where a plan stops.
type scriptedEngine struct {
	statuses []Status
	err      error
	runs     []models.Interval
}

func (e *scriptedEngine) Run(_ context.Context, iv models.Interval) (Status, error) {
	e.runs = append(e.runs, iv)
	if e.err != nil {
		return "", e.err
	}
	if i := len(e.runs) - 1; i < len(e.statuses) {
		return e.statuses[i], nil
	}
	return StatusCompleted, nil
}

// scriptedPrompter feeds canned answers to the interactive cycle.
type scriptedPrompter struct {
	tasks      []string
	taskErr    error
	confirms   []bool
	confirmErr error
	questions  []string

	taskCalls    int
	confirmCalls int
}

func (p *scriptedPrompter) AskTask(_ context.Context) (string, error) {
	if p.taskErr != nil {
		return "", p.taskErr
	}
	if p.taskCalls >= len(p.tasks) {
		return "", io.EOF
	}
	task := p.tasks[p.taskCalls]
	p.taskCalls++
	return task, nil
}

func (p *scriptedPrompter) Confirm(_ context.Context, question string, _ bool) (bool, error) {
	p.questions = append(p.questions, question)
	if p.confirmErr != nil {
		return false, p.confirmErr
	}
	if p.confirmCalls >= len(p.confirms) {
		return false, io.EOF
	}
	answer := p.confirms[p.confirmCalls]
	p.confirmCalls++
	return answer, nil
}
