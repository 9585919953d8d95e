package models

import "time"

// ActionOutcome is the terminal outcome of one executed action
type ActionOutcome string

const (
	ActionOutcomeSuccess ActionOutcome = "success"
	ActionOutcomeFailed  ActionOutcome = "failed"
)

// ActionLogEntry records one executed action. Entries are created by the
// orchestrator immediately after an action handler returns and are never
// mutated afterwards.
type ActionLogEntry struct {
	ID         string        `json:"id"`
	ActionName string        `json:"action_name"`
	Timestamp  time.Time     `json:"timestamp"`
	Outcome    ActionOutcome `json:"outcome"`
}
