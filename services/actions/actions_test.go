package actions

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bizcore/clients/anthropic"
	"bizcore/clients/jobrunner"
	"bizcore/clients/tasktracker"
	"bizcore/models"
)

func newTestActionsService() (*ActionsService, *anthropic.MockCompletionClient, *tasktracker.MockTaskTrackerClient, *jobrunner.MockJobRunnerClient, *MockLeadStageUpdater) {
	completion := anthropic.NewMockCompletionClient()
	tracker := tasktracker.NewMockTaskTrackerClient()
	runner := jobrunner.NewMockJobRunnerClient()
	leads := &MockLeadStageUpdater{}
	service := NewActionsService(completion, tracker, runner, leads)
	return service, completion, tracker, runner, leads
}

func TestActionsService_CreateTask(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service, completion, tracker, _, _ := newTestActionsService()

		completion.WithCompletionResponse(
			`{"title": "Follow up with Acme Corp", "description": "", "priority": "Medium", "assigned_to": "", "due_date": ""}`)
		created := tasktracker.CreateTestTask("Follow up with Acme Corp")
		tracker.WithCreateTaskResponse(created)

		result := service.CreateTask(context.Background(), models.CommandContext{
			RawText: "Create a task to follow up with Acme Corp",
		})

		assert.True(t, result.Success)
		assert.Contains(t, result.Detail, "Follow up with Acme Corp")
		tracker.AssertCalled(t, "CreateTask", mock.Anything, models.TaskDraft{
			Title:    "Follow up with Acme Corp",
			Priority: models.TaskPriorityMedium,
		})
	})

	t.Run("ExtractionFailureSkipsPersistence", func(t *testing.T) {
		service, completion, tracker, _, _ := newTestActionsService()

		completion.WithCompletionError(fmt.Errorf("capability unavailable"))

		result := service.CreateTask(context.Background(), models.CommandContext{
			RawText: "Create a task",
		})

		assert.False(t, result.Success)
		tracker.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
	})

	t.Run("UnparseableExtractionSkipsPersistence", func(t *testing.T) {
		service, completion, tracker, _, _ := newTestActionsService()

		completion.WithCompletionResponse("Sure! I'd create a task about following up.")

		result := service.CreateTask(context.Background(), models.CommandContext{
			RawText: "Create a task",
		})

		assert.False(t, result.Success)
		tracker.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
	})

	t.Run("PersistFailureCarriesDraft", func(t *testing.T) {
		service, completion, tracker, _, _ := newTestActionsService()

		completion.WithCompletionResponse(`{"title": "Call the vendor", "priority": "High"}`)
		tracker.On("CreateTask", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("tracker down"))

		result := service.CreateTask(context.Background(), models.CommandContext{
			RawText: "Create a high priority task to call the vendor",
		})

		assert.False(t, result.Success)
		assert.Contains(t, result.Detail, "Call the vendor")
		draft, ok := result.Payload.(models.TaskDraft)
		require.True(t, ok, "failure payload carries the extracted draft")
		assert.Equal(t, models.TaskPriorityHigh, draft.Priority)
	})

	t.Run("MissingPriorityDefaultsToMedium", func(t *testing.T) {
		service, completion, tracker, _, _ := newTestActionsService()

		completion.WithCompletionResponse(`{"title": "Send invoice"}`)
		tracker.WithCreateTaskResponse(tasktracker.CreateTestTask("Send invoice"))

		result := service.CreateTask(context.Background(), models.CommandContext{
			RawText: "create a task to send the invoice",
		})

		assert.True(t, result.Success)
		tracker.AssertCalled(t, "CreateTask", mock.Anything, models.TaskDraft{
			Title:    "Send invoice",
			Priority: models.TaskPriorityMedium,
		})
	})
}

func TestActionsService_Triggers(t *testing.T) {
	t.Run("ReportSuccess", func(t *testing.T) {
		service, _, _, runner, _ := newTestActionsService()
		runner.WithTriggerSuccess()

		result := service.TriggerReport(context.Background(), models.CommandContext{RawText: "generate the report"})

		assert.True(t, result.Success)
		runner.AssertCalled(t, "TriggerReport", mock.Anything)
	})

	t.Run("ReportFailure", func(t *testing.T) {
		service, _, _, runner, _ := newTestActionsService()
		runner.WithTriggerError(fmt.Errorf("status 503"))

		result := service.TriggerReport(context.Background(), models.CommandContext{RawText: "generate the report"})

		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Detail)
	})

	t.Run("ForecastSuccess", func(t *testing.T) {
		service, _, _, runner, _ := newTestActionsService()
		runner.WithTriggerSuccess()

		result := service.RunForecast(context.Background(), models.CommandContext{RawText: "run the forecast"})

		assert.True(t, result.Success)
		runner.AssertCalled(t, "TriggerForecast", mock.Anything)
	})
}

func TestActionsService_SalesFollowup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service, completion, tracker, _, _ := newTestActionsService()

		completion.WithCompletionResponse(`{"client_name": "Globex"}`)
		tracker.WithCreateTaskResponse(tasktracker.CreateTestTask("Follow up with Globex"))

		result := service.SalesFollowup(context.Background(), models.CommandContext{
			RawText: "set up a follow-up with Globex",
		})

		assert.True(t, result.Success)
		assert.Contains(t, result.Detail, "Globex")
	})

	t.Run("NoClientNamed", func(t *testing.T) {
		service, completion, tracker, _, _ := newTestActionsService()

		completion.WithCompletionResponse(`{"client_name": ""}`)

		result := service.SalesFollowup(context.Background(), models.CommandContext{
			RawText: "set up a follow-up",
		})

		assert.False(t, result.Success)
		tracker.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
	})
}

func TestActionsService_UpdateStage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service, completion, _, _, leads := newTestActionsService()

		completion.WithCompletionResponse(`{"name": "Initech", "stage": "negotiation"}`)
		leads.On("UpdateLeadStageByName", mock.Anything, "Initech", "negotiation").Return(1, nil)

		result := service.UpdateStage(context.Background(), models.CommandContext{
			RawText: "move Initech to negotiation",
		})

		assert.True(t, result.Success)
		assert.Contains(t, result.Detail, "Initech")
	})

	t.Run("NoMatchingLeadFails", func(t *testing.T) {
		service, completion, _, _, leads := newTestActionsService()

		completion.WithCompletionResponse(`{"name": "Nonexistent", "stage": "won"}`)
		leads.On("UpdateLeadStageByName", mock.Anything, "Nonexistent", "won").Return(0, nil)

		result := service.UpdateStage(context.Background(), models.CommandContext{
			RawText: "move Nonexistent to won",
		})

		assert.False(t, result.Success)
		assert.Contains(t, result.Detail, "Nonexistent")
	})

	t.Run("MissingStageFails", func(t *testing.T) {
		service, completion, _, _, leads := newTestActionsService()

		completion.WithCompletionResponse(`{"name": "Initech", "stage": ""}`)

		result := service.UpdateStage(context.Background(), models.CommandContext{
			RawText: "move Initech",
		})

		assert.False(t, result.Success)
		leads.AssertNotCalled(t, "UpdateLeadStageByName", mock.Anything, mock.Anything, mock.Anything)
	})
}
