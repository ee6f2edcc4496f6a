package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"pomo/pkg/models"
)

// historyFileName is the completion log file inside the pomo home.
const historyFileName = "history.log"

// LogError wraps a failure to read or append the history log so callers
// can tell advisory logging problems apart from fatal ones.
type LogError struct {
	Path string
	Err  error
}

func (e *LogError) Error() string {
	return fmt.Sprintf("history log %s: %v", e.Path, e.Err)
}

func (e *LogError) Unwrap() error { return e.Err }

// HistoryFilter specifies criteria for reading completion records.
type HistoryFilter struct {
	Since *time.Time
	Until *time.Time
	// Limit keeps only the newest records; 0 means all.
	Limit int
}

// HistoryLog defines the interface for recording and reading completed
// work intervals.
type HistoryLog interface {
	Record(rec models.CompletionRecord) error
	Read(filter HistoryFilter) ([]models.CompletionRecord, error)
	Path() string
}

// fileHistoryLog implements HistoryLog with a plain append-only text file,
// one completed interval per line.
type fileHistoryLog struct {
	homeDir string
	path    string
	mu      sync.Mutex
}

// NewHistoryLog creates a HistoryLog backed by history.log inside homeDir.
// Nothing is touched on disk until the first record is appended.
func NewHistoryLog(homeDir string) HistoryLog {
	return &fileHistoryLog{
		homeDir: homeDir,
		path:    filepath.Join(homeDir, historyFileName),
	}
}

// Path returns the location of the underlying log file.
func (l *fileHistoryLog) Path() string {
	return l.path
}

// Record appends one line to the history log, creating the pomo home and
// the file as needed. The file is opened per append so the log survives
// any number of interleaved timer runs.
func (l *fileHistoryLog) Record(rec models.CompletionRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(l.homeDir, 0o755); err != nil {
		return &LogError{Path: l.path, Err: fmt.Errorf("creating pomo home: %w", err)}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &LogError{Path: l.path, Err: fmt.Errorf("opening for append: %w", err)}
	}

	if _, err := f.WriteString(formatRecord(rec)); err != nil {
		_ = f.Close()
		return &LogError{Path: l.path, Err: fmt.Errorf("appending record: %w", err)}
	}

	if err := f.Close(); err != nil {
		return &LogError{Path: l.path, Err: fmt.Errorf("closing after append: %w", err)}
	}
	return nil
}

// Read scans the log line by line, skips malformed lines, and returns the
// records matching the filter in the order they were appended.
func (l *fileHistoryLog) Read(filter HistoryFilter) ([]models.CompletionRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &LogError{Path: l.path, Err: fmt.Errorf("opening for read: %w", err)}
	}
	defer func() { _ = f.Close() }()

	var records []models.CompletionRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		rec, ok := parseRecord(line)
		if !ok {
			continue // skip malformed lines
		}

		if matchesHistoryFilter(rec, filter) {
			records = append(records, rec)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &LogError{Path: l.path, Err: fmt.Errorf("scanning: %w", err)}
	}

	if filter.Limit > 0 && len(records) > filter.Limit {
		records = records[len(records)-filter.Limit:]
	}

	return records, nil
}

// formatRecord renders one history line: timestamp, kind, task.
func formatRecord(rec models.CompletionRecord) string {
	return fmt.Sprintf("%s | %s | %s\n", rec.CompletedAt.Format(time.RFC3339), rec.Kind, rec.Task)
}

// parseRecord parses one history line. The task field is split last so
// task text may itself contain the separator.
func parseRecord(line string) (models.CompletionRecord, bool) {
	parts := strings.SplitN(line, " | ", 3)
	if len(parts) != 3 {
		return models.CompletionRecord{}, false
	}

	ts, err := time.Parse(time.RFC3339, parts[0])
	if err != nil {
		return models.CompletionRecord{}, false
	}

	return models.CompletionRecord{
		CompletedAt: ts,
		Kind:        models.IntervalKind(parts[1]),
		Task:        parts[2],
	}, true
}

// matchesHistoryFilter checks whether a record satisfies all filter criteria.
func matchesHistoryFilter(rec models.CompletionRecord, filter HistoryFilter) bool {
	if filter.Since != nil && rec.CompletedAt.Before(*filter.Since) {
		return false
	}
	if filter.Until != nil && rec.CompletedAt.After(*filter.Until) {
		return false
	}
	return true
}
