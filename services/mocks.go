package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bizcore/models"
)

// MockClassifierService is a mock implementation of ClassifierService
type MockClassifierService struct {
	mock.Mock
}

func (m *MockClassifierService) Classify(ctx context.Context, text string) models.ClassificationResult {
	args := m.Called(ctx, text)
	return args.Get(0).(models.ClassificationResult)
}

// WithClassification configures the mock to classify every command the same way
func (m *MockClassifierService) WithClassification(intent models.Intent, confidence float64) *MockClassifierService {
	m.On("Classify", mock.Anything, mock.Anything).Return(models.ClassificationResult{
		Intent:     intent,
		Confidence: confidence,
		Entities:   map[string]any{},
	})
	return m
}

// MockQueriesService is a mock implementation of QueriesService
type MockQueriesService struct {
	mock.Mock
}

func (m *MockQueriesService) Metrics(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult {
	args := m.Called(ctx, cmdCtx)
	return args.Get(0).(models.QueryResult)
}

func (m *MockQueriesService) Client(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult {
	args := m.Called(ctx, cmdCtx)
	return args.Get(0).(models.QueryResult)
}

func (m *MockQueriesService) Leads(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult {
	args := m.Called(ctx, cmdCtx)
	return args.Get(0).(models.QueryResult)
}

func (m *MockQueriesService) Revenue(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult {
	args := m.Called(ctx, cmdCtx)
	return args.Get(0).(models.QueryResult)
}

func (m *MockQueriesService) Support(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult {
	args := m.Called(ctx, cmdCtx)
	return args.Get(0).(models.QueryResult)
}

func (m *MockQueriesService) Tasks(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult {
	args := m.Called(ctx, cmdCtx)
	return args.Get(0).(models.QueryResult)
}

// MockActionsService is a mock implementation of ActionsService
type MockActionsService struct {
	mock.Mock
}

func (m *MockActionsService) CreateTask(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult {
	args := m.Called(ctx, cmdCtx)
	return args.Get(0).(models.ActionResult)
}

func (m *MockActionsService) TriggerReport(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult {
	args := m.Called(ctx, cmdCtx)
	return args.Get(0).(models.ActionResult)
}

func (m *MockActionsService) RunForecast(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult {
	args := m.Called(ctx, cmdCtx)
	return args.Get(0).(models.ActionResult)
}

func (m *MockActionsService) SalesFollowup(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult {
	args := m.Called(ctx, cmdCtx)
	return args.Get(0).(models.ActionResult)
}

func (m *MockActionsService) UpdateStage(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult {
	args := m.Called(ctx, cmdCtx)
	return args.Get(0).(models.ActionResult)
}

// MockSynthesizerService is a mock implementation of SynthesizerService
type MockSynthesizerService struct {
	mock.Mock
}

func (m *MockSynthesizerService) Synthesize(
	ctx context.Context,
	result models.HandlerResult,
	intent models.Intent,
	rawText string,
) string {
	args := m.Called(ctx, result, intent, rawText)
	return args.String(0)
}

// WithSynthesizedText configures the mock to return a fixed reply text
func (m *MockSynthesizerService) WithSynthesizedText(text string) *MockSynthesizerService {
	m.On("Synthesize", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(text)
	return m
}
