package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"pomo/pkg/models"
)

// --- Completion tests ---

func TestCountdownEngine_Run_CompletesWorkInterval(t *testing.T) {
	clock := newFakeClock()
	renderer := &recordingRenderer{}
	announcer := &recordingAnnouncer{}
	recorder := &recordingRecorder{}
	engine := NewCountdownEngine(clock, renderer, announcer, recorder)

	iv := models.NewWorkInterval(5*time.Second, "write tests")

	status, err := engine.Run(context.Background(), iv)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if status != StatusCompleted {
		t.Errorf("status = %q, want %q", status, StatusCompleted)
	}

	if len(renderer.ticks) != 5 {
		t.Fatalf("got %d ticks, want 5", len(renderer.ticks))
	}
	for i, st := range renderer.ticks {
		want := time.Duration(4-i) * time.Second
		if st.Remaining != want {
			t.Errorf("tick %d Remaining = %v, want %v", i, st.Remaining, want)
		}
		if st.Status != StatusRunning {
			t.Errorf("tick %d Status = %q, want %q", i, st.Status, StatusRunning)
		}
	}
	if last := renderer.ticks[len(renderer.ticks)-1]; last.Remaining != 0 {
		t.Errorf("final tick Remaining = %v, want 0", last.Remaining)
	}

	if len(renderer.completed) != 1 {
		t.Errorf("got %d Completed callbacks, want 1", len(renderer.completed))
	}
	if len(renderer.cancelled) != 0 {
		t.Errorf("got %d Cancelled callbacks, want 0", len(renderer.cancelled))
	}
	if len(announcer.announced) != 1 {
		t.Errorf("got %d announcements, want 1", len(announcer.announced))
	}
	if len(recorder.records) != 1 {
		t.Fatalf("got %d records, want 1", len(recorder.records))
	}

	rec := recorder.records[0]
	if rec.Task != "write tests" {
		t.Errorf("record Task = %q, want %q", rec.Task, "write tests")
	}
	if rec.Kind != models.KindWork {
		t.Errorf("record Kind = %q, want %q", rec.Kind, models.KindWork)
	}
	if rec.CompletedAt != clock.Now() {
		t.Errorf("record CompletedAt = %v, want %v", rec.CompletedAt, clock.Now())
	}
}

func TestCountdownEngine_Run_BreaksAreAnnouncedButNotRecorded(t *testing.T) {
	clock := newFakeClock()
	renderer := &recordingRenderer{}
	announcer := &recordingAnnouncer{}
	recorder := &recordingRecorder{}
	engine := NewCountdownEngine(clock, renderer, announcer, recorder)

	for _, long := range []bool{false, true} {
		status, err := engine.Run(context.Background(), models.NewBreakInterval(3*time.Second, long))
		if err != nil {
			t.Fatalf("Run(long=%v) error = %v", long, err)
		}
		if status != StatusCompleted {
			t.Errorf("Run(long=%v) status = %q, want %q", long, status, StatusCompleted)
		}
	}

	if len(announcer.announced) != 2 {
		t.Errorf("got %d announcements, want 2", len(announcer.announced))
	}
	if len(recorder.records) != 0 {
		t.Errorf("got %d records for breaks, want 0", len(recorder.records))
	}
}

func TestCountdownEngine_Run_EndsAtReflectsDuration(t *testing.T) {
	clock := newFakeClock()
	start := clock.Now()
	renderer := &recordingRenderer{}
	engine := NewCountdownEngine(clock, renderer, &recordingAnnouncer{}, &recordingRecorder{})

	if _, err := engine.Run(context.Background(), models.NewBreakInterval(4*time.Second, false)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := start.Add(4 * time.Second)
	for i, st := range renderer.ticks {
		if !st.EndsAt.Equal(want) {
			t.Errorf("tick %d EndsAt = %v, want %v", i, st.EndsAt, want)
		}
	}
}

func TestCountdownEngine_Run_RecorderFailureDoesNotAbort(t *testing.T) {
	clock := newFakeClock()
	renderer := &recordingRenderer{}
	announcer := &recordingAnnouncer{}
	recorder := &recordingRecorder{err: errors.New("disk full")}
	engine := NewCountdownEngine(clock, renderer, announcer, recorder)

	status, err := engine.Run(context.Background(), models.NewWorkInterval(2*time.Second, "task"))
	if err != nil {
		t.Fatalf("Run() error = %v, want nil despite recorder failure", err)
	}
	if status != StatusCompleted {
		t.Errorf("status = %q, want %q", status, StatusCompleted)
	}
	if len(announcer.announced) != 1 {
		t.Errorf("got %d announcements, want 1", len(announcer.announced))
	}
}

// --- Cancellation tests ---

func TestCountdownEngine_Run_CancellationStopsWithoutSideEffects(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	clock := &cancelClock{cancelOn: 3, cancel: cancel}
	clock.now = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	renderer := &recordingRenderer{}
	announcer := &recordingAnnouncer{}
	recorder := &recordingRecorder{}
	engine := NewCountdownEngine(clock, renderer, announcer, recorder)

	status, err := engine.Run(ctx, models.NewWorkInterval(10*time.Second, "task"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if status != StatusCancelled {
		t.Errorf("status = %q, want %q", status, StatusCancelled)
	}

	if len(renderer.ticks) != 3 {
		t.Errorf("got %d ticks before cancellation, want 3", len(renderer.ticks))
	}
	if len(renderer.cancelled) != 1 {
		t.Errorf("got %d Cancelled callbacks, want 1", len(renderer.cancelled))
	}
	if len(renderer.completed) != 0 {
		t.Errorf("got %d Completed callbacks, want 0", len(renderer.completed))
	}
	if len(announcer.announced) != 0 {
		t.Errorf("got %d announcements after cancellation, want 0", len(announcer.announced))
	}
	if len(recorder.records) != 0 {
		t.Errorf("got %d records after cancellation, want 0", len(recorder.records))
	}
}

func TestCountdownEngine_Run_AlreadyCancelledContextStopsAtFirstTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	clock := newFakeClock()
	renderer := &recordingRenderer{}
	announcer := &recordingAnnouncer{}
	recorder := &recordingRecorder{}
	engine := NewCountdownEngine(clock, renderer, announcer, recorder)

	status, err := engine.Run(ctx, models.NewWorkInterval(10*time.Second, "task"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if status != StatusCancelled {
		t.Errorf("status = %q, want %q", status, StatusCancelled)
	}
	if len(renderer.ticks) != 1 {
		t.Errorf("got %d ticks, want 1", len(renderer.ticks))
	}
	if len(announcer.announced) != 0 || len(recorder.records) != 0 {
		t.Errorf("cancelled run produced side effects: %d announcements, %d records",
			len(announcer.announced), len(recorder.records))
	}
}

// --- Rejection tests ---

func TestCountdownEngine_Run_RejectsNonPositiveDurationBeforeFirstTick(t *testing.T) {
	clock := newFakeClock()
	renderer := &recordingRenderer{}
	announcer := &recordingAnnouncer{}
	recorder := &recordingRecorder{}
	engine := NewCountdownEngine(clock, renderer, announcer, recorder)

	for _, d := range []time.Duration{0, -time.Second} {
		_, err := engine.Run(context.Background(), models.NewWorkInterval(d, "task"))
		if err == nil {
			t.Fatalf("Run() with duration %v returned nil error", d)
		}
		if !errors.Is(err, models.ErrNonPositiveDuration) {
			t.Errorf("Run() error = %v, want ErrNonPositiveDuration", err)
		}
	}

	if len(renderer.ticks) != 0 {
		t.Errorf("rejected run rendered %d ticks, want 0", len(renderer.ticks))
	}
	if len(clock.afterCalls) != 0 {
		t.Errorf("rejected run waited %d times, want 0", len(clock.afterCalls))
	}
	if len(announcer.announced) != 0 || len(recorder.records) != 0 {
		t.Errorf("rejected run produced side effects")
	}
}
