package clients

import (
	"context"

	"bizcore/models"
)

// CompletionClient is the text-completion capability used for
// classification, extraction, and summarization. Implementations must
// return an error on any internal failure (unreachable backend, malformed
// completion, timeout) and never panic - callers degrade locally.
type CompletionClient interface {
	Complete(ctx context.Context, systemInstruction, userPrompt string, wantStructuredJSON bool) (string, error)
}

// TaskTrackerClient is the task-tracking collaborator. Both operations
// return core.ErrNotConfigured when the tracker is not set up, which is a
// distinct outcome from an empty result.
type TaskTrackerClient interface {
	ListTasks(ctx context.Context, limit int) ([]models.TrackedTask, error)
	CreateTask(ctx context.Context, draft models.TaskDraft) (*models.TrackedTask, error)
}

// JobRunnerClient triggers internal background jobs. Each call maps HTTP
// success to nil and anything else to an error; retries are a caller
// concern.
type JobRunnerClient interface {
	TriggerReport(ctx context.Context) error
	TriggerForecast(ctx context.Context) error
}
