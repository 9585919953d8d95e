package actionlog

import (
	"sync"
	"time"

	"bizcore/core"
	"bizcore/models"
)

// Recorder is the append-entry sink for executed actions. It is injected
// into the orchestrator so tests can substitute their own collector.
type Recorder interface {
	Append(actionName string, outcome models.ActionOutcome) models.ActionLogEntry
	Entries() []models.ActionLogEntry
}

// InMemoryRecorder keeps the action log for the lifetime of the process.
// Appends are guarded by a mutex so a concurrent burst of N actions yields
// exactly N entries. Entries are never mutated or removed once appended.
type InMemoryRecorder struct {
	mu      sync.Mutex
	entries []models.ActionLogEntry
}

// NewInMemoryRecorder creates an empty action log
func NewInMemoryRecorder() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Append records one executed action and returns the created entry
func (r *InMemoryRecorder) Append(actionName string, outcome models.ActionOutcome) models.ActionLogEntry {
	entry := models.ActionLogEntry{
		ID:         core.NewID("al"),
		ActionName: actionName,
		Timestamp:  time.Now(),
		Outcome:    outcome,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)

	return entry
}

// Entries returns a copy of the log so callers cannot mutate it
func (r *InMemoryRecorder) Entries() []models.ActionLogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.ActionLogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
