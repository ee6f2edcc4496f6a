package cli

import (
	"context"

	"pomo/internal/core"
	"pomo/internal/storage"
	"pomo/pkg/models"
)

// engineMock implements core.CountdownEngine with a configurable Run.
type engineMock struct {
	runFn func(ctx context.Context, iv models.Interval) (core.Status, error)
	runs  []models.Interval
}

func (m *engineMock) Run(ctx context.Context, iv models.Interval) (core.Status, error) {
	m.runs = append(m.runs, iv)
	if m.runFn != nil {
		return m.runFn(ctx, iv)
	}
	return core.StatusCompleted, nil
}

// schedulerMock implements core.Scheduler with configurable outcomes.
type schedulerMock struct {
	executeFn  func(ctx context.Context, plan models.Plan) (core.Outcome, error)
	runCycleFn func(ctx context.Context) (core.Outcome, error)
	plans      []models.Plan
	cycleRuns  int
}

func (m *schedulerMock) Execute(ctx context.Context, plan models.Plan) (core.Outcome, error) {
	m.plans = append(m.plans, plan)
	if m.executeFn != nil {
		return m.executeFn(ctx, plan)
	}
	return core.OutcomeFinishedAll, nil
}

func (m *schedulerMock) RunCycle(ctx context.Context) (core.Outcome, error) {
	m.cycleRuns++
	if m.runCycleFn != nil {
		return m.runCycleFn(ctx)
	}
	return core.OutcomeFinishedAll, nil
}

// historyMock implements storage.HistoryLog in memory.
type historyMock struct {
	records []models.CompletionRecord
	readErr error
}

func (m *historyMock) Record(rec models.CompletionRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *historyMock) Read(filter storage.HistoryFilter) ([]models.CompletionRecord, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	records := m.records
	if filter.Limit > 0 && len(records) > filter.Limit {
		records = records[len(records)-filter.Limit:]
	}
	return records, nil
}

func (m *historyMock) Path() string { return "/tmp/history.log" }
