package models

import "time"

// CompletionRecord captures one interval that ran to completion, ready to be
// appended to the history log. Only work intervals are recorded.
type CompletionRecord struct {
	Task        string
	Kind        IntervalKind
	CompletedAt time.Time
}

// NewCompletionRecord builds the record for a finished interval.
func NewCompletionRecord(iv Interval, completedAt time.Time) CompletionRecord {
	return CompletionRecord{
		Task:        iv.Task,
		Kind:        iv.Kind,
		CompletedAt: completedAt,
	}
}
