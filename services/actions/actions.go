package actions

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"bizcore/clients"
	"bizcore/models"
)

const extractTaskInstruction = `You extract task fields from an administrative command.
Given one command, answer with JSON:
{"title": "...", "description": "...", "priority": "High|Medium|Low", "assigned_to": "...", "due_date": "..."}.
Use empty strings for fields the command does not mention. Priority defaults to Medium.`

const extractClientNameInstruction = `You extract the client or company name an administrative command refers to.
Given one command, answer with JSON: {"client_name": "..."}.
Use an empty string if no client is named.`

const extractStageChangeInstruction = `You extract a pipeline stage change from an administrative command.
Given one command, answer with JSON: {"name": "...", "stage": "..."}.
name is the lead or company the command refers to; stage is the pipeline stage it should move to.
Use empty strings for anything the command does not say.`

// LeadStageUpdater is the subset of the leads store the stage-change action
// needs
type LeadStageUpdater interface {
	UpdateLeadStageByName(ctx context.Context, name, stage string) (int, error)
}

// ActionsService implements the side-effecting command handlers. Handlers
// are idempotency-unaware: every invocation attempts its side effect, and
// there is no deduplication of repeated identical commands. No handler
// retries; retries are a caller concern.
type ActionsService struct {
	completionClient clients.CompletionClient
	taskTracker      clients.TaskTrackerClient
	jobRunner        clients.JobRunnerClient
	leadsRepo        LeadStageUpdater
}

func NewActionsService(
	completionClient clients.CompletionClient,
	taskTracker clients.TaskTrackerClient,
	jobRunner clients.JobRunnerClient,
	leadsRepo LeadStageUpdater,
) *ActionsService {
	return &ActionsService{
		completionClient: completionClient,
		taskTracker:      taskTracker,
		jobRunner:        jobRunner,
		leadsRepo:        leadsRepo,
	}
}

// CreateTask is a two-phase action: extract the task fields from free text,
// then persist them in the task tracker. A failed extraction never reaches
// the persistence phase. The two phases are not transactional - a persist
// failure does not roll anything back, but the extracted draft is carried in
// the failure payload so the dropped context stays observable.
func (s *ActionsService) CreateTask(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult {
	log.Printf("📋 Starting to create task from command: %.80q", cmdCtx.RawText)

	draft, err := s.extractTaskDraft(ctx, cmdCtx.RawText)
	if err != nil {
		log.Printf("❌ Task extraction failed: %v", err)
		return models.ActionResult{
			Success: false,
			Detail:  "could not understand the task to create",
		}
	}

	task, err := s.taskTracker.CreateTask(ctx, draft)
	if err != nil {
		log.Printf("❌ Task persistence failed after successful extraction: %v", err)
		return models.ActionResult{
			Success: false,
			Detail:  fmt.Sprintf("extracted task %q but could not save it", draft.Title),
			Payload: draft,
		}
	}

	log.Printf("✅ Task created successfully: %s", task.ID)
	return models.ActionResult{
		Success: true,
		Detail:  fmt.Sprintf("created task %q", task.Title),
		Payload: task,
	}
}

// TriggerReport makes one call to the report job endpoint
func (s *ActionsService) TriggerReport(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult {
	log.Printf("📋 Starting to trigger report job")

	if err := s.jobRunner.TriggerReport(ctx); err != nil {
		log.Printf("❌ Report trigger failed: %v", err)
		return models.ActionResult{Success: false, Detail: "report generation could not be started"}
	}

	log.Printf("✅ Report job triggered successfully")
	return models.ActionResult{Success: true, Detail: "report generation started"}
}

// RunForecast makes one call to the forecast job endpoint
func (s *ActionsService) RunForecast(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult {
	log.Printf("📋 Starting to trigger forecast job")

	if err := s.jobRunner.TriggerForecast(ctx); err != nil {
		log.Printf("❌ Forecast trigger failed: %v", err)
		return models.ActionResult{Success: false, Detail: "forecast could not be started"}
	}

	log.Printf("✅ Forecast job triggered successfully")
	return models.ActionResult{Success: true, Detail: "forecast started"}
}

// SalesFollowup extracts the client the command refers to and creates a
// follow-up task for them in the tracker. Same two-phase shape as
// CreateTask.
func (s *ActionsService) SalesFollowup(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult {
	log.Printf("📋 Starting sales follow-up from command: %.80q", cmdCtx.RawText)

	clientName, err := s.extractClientName(ctx, cmdCtx.RawText)
	if err != nil {
		log.Printf("❌ Client name extraction failed: %v", err)
		return models.ActionResult{
			Success: false,
			Detail:  "could not tell which client to follow up with",
		}
	}

	draft := models.TaskDraft{
		Title:       fmt.Sprintf("Follow up with %s", clientName),
		Description: cmdCtx.RawText,
		Priority:    models.TaskPriorityMedium,
	}

	task, err := s.taskTracker.CreateTask(ctx, draft)
	if err != nil {
		log.Printf("❌ Follow-up task persistence failed: %v", err)
		return models.ActionResult{
			Success: false,
			Detail:  fmt.Sprintf("could not save the follow-up task for %s", clientName),
			Payload: draft,
		}
	}

	log.Printf("✅ Follow-up task created successfully: %s", task.ID)
	return models.ActionResult{
		Success: true,
		Detail:  fmt.Sprintf("scheduled a follow-up with %s", clientName),
		Payload: task,
	}
}

// UpdateStage extracts a lead name and target stage, then moves every
// matching lead to that stage. Zero matched rows is a failure so the caller
// learns nothing changed.
func (s *ActionsService) UpdateStage(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult {
	log.Printf("📋 Starting stage update from command: %.80q", cmdCtx.RawText)

	name, stage, err := s.extractStageChange(ctx, cmdCtx.RawText)
	if err != nil {
		log.Printf("❌ Stage change extraction failed: %v", err)
		return models.ActionResult{
			Success: false,
			Detail:  "could not tell which lead to move, or to which stage",
		}
	}

	affected, err := s.leadsRepo.UpdateLeadStageByName(ctx, name, stage)
	if err != nil {
		log.Printf("❌ Stage update failed: %v", err)
		return models.ActionResult{
			Success: false,
			Detail:  fmt.Sprintf("could not move %q to stage %q", name, stage),
		}
	}
	if affected == 0 {
		log.Printf("⚠️ Stage update matched no leads for %q", name)
		return models.ActionResult{
			Success: false,
			Detail:  fmt.Sprintf("no lead matching %q was found", name),
		}
	}

	log.Printf("✅ Stage updated successfully: %d lead(s) moved to %s", affected, stage)
	return models.ActionResult{
		Success: true,
		Detail:  fmt.Sprintf("moved %d lead(s) matching %q to stage %q", affected, name, stage),
	}
}

func (s *ActionsService) extractTaskDraft(ctx context.Context, text string) (models.TaskDraft, error) {
	completion, err := s.completionClient.Complete(ctx, extractTaskInstruction, text, true)
	if err != nil {
		return models.TaskDraft{}, fmt.Errorf("failed to extract task fields: %w", err)
	}

	var raw struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
		AssignedTo  string `json:"assigned_to"`
		DueDate     string `json:"due_date"`
	}
	if err := json.Unmarshal([]byte(completion), &raw); err != nil {
		return models.TaskDraft{}, fmt.Errorf("failed to parse extracted task fields: %w", err)
	}
	if strings.TrimSpace(raw.Title) == "" {
		return models.TaskDraft{}, fmt.Errorf("extracted task has no title")
	}

	return models.TaskDraft{
		Title:       strings.TrimSpace(raw.Title),
		Description: raw.Description,
		Priority:    models.ParseTaskPriority(raw.Priority),
		AssignedTo:  raw.AssignedTo,
		DueDate:     raw.DueDate,
	}, nil
}

func (s *ActionsService) extractClientName(ctx context.Context, text string) (string, error) {
	completion, err := s.completionClient.Complete(ctx, extractClientNameInstruction, text, true)
	if err != nil {
		return "", fmt.Errorf("failed to extract client name: %w", err)
	}

	var raw struct {
		ClientName string `json:"client_name"`
	}
	if err := json.Unmarshal([]byte(completion), &raw); err != nil {
		return "", fmt.Errorf("failed to parse extracted client name: %w", err)
	}
	if strings.TrimSpace(raw.ClientName) == "" {
		return "", fmt.Errorf("no client name found in command")
	}

	return strings.TrimSpace(raw.ClientName), nil
}

func (s *ActionsService) extractStageChange(ctx context.Context, text string) (string, string, error) {
	completion, err := s.completionClient.Complete(ctx, extractStageChangeInstruction, text, true)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract stage change: %w", err)
	}

	var raw struct {
		Name  string `json:"name"`
		Stage string `json:"stage"`
	}
	if err := json.Unmarshal([]byte(completion), &raw); err != nil {
		return "", "", fmt.Errorf("failed to parse extracted stage change: %w", err)
	}

	name := strings.TrimSpace(raw.Name)
	stage := strings.TrimSpace(raw.Stage)
	if name == "" || stage == "" {
		return "", "", fmt.Errorf("stage change needs both a lead name and a stage")
	}

	return name, stage, nil
}
