package tasktracker

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"bizcore/core"
	"bizcore/models"
)

// MockTaskTrackerClient is a mock implementation of clients.TaskTrackerClient
type MockTaskTrackerClient struct {
	mock.Mock
}

// NewMockTaskTrackerClient creates a new mock client for testing
func NewMockTaskTrackerClient() *MockTaskTrackerClient {
	return &MockTaskTrackerClient{}
}

// ListTasks mocks listing tracked tasks
func (m *MockTaskTrackerClient) ListTasks(ctx context.Context, limit int) ([]models.TrackedTask, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TrackedTask), args.Error(1)
}

// CreateTask mocks persisting a task draft
func (m *MockTaskTrackerClient) CreateTask(ctx context.Context, draft models.TaskDraft) (*models.TrackedTask, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrackedTask), args.Error(1)
}

// WithListTasksResponse configures the mock to return specific tasks
func (m *MockTaskTrackerClient) WithListTasksResponse(tasks []models.TrackedTask) *MockTaskTrackerClient {
	m.On("ListTasks", mock.Anything, mock.Anything).Return(tasks, nil)
	return m
}

// WithNotConfigured configures the mock to behave like a missing tracker
func (m *MockTaskTrackerClient) WithNotConfigured() *MockTaskTrackerClient {
	err := fmt.Errorf("task tracker: %w", core.ErrNotConfigured)
	m.On("ListTasks", mock.Anything, mock.Anything).Return(nil, err)
	m.On("CreateTask", mock.Anything, mock.Anything).Return(nil, err)
	return m
}

// WithCreateTaskResponse configures the mock to return a created task
func (m *MockTaskTrackerClient) WithCreateTaskResponse(task *models.TrackedTask) *MockTaskTrackerClient {
	m.On("CreateTask", mock.Anything, mock.Anything).Return(task, nil)
	return m
}

// CreateTestTask creates a sample TrackedTask for testing
func CreateTestTask(title string) *models.TrackedTask {
	return &models.TrackedTask{
		ID:        "task-test-123",
		Title:     title,
		Priority:  models.TaskPriorityMedium,
		Status:    "open",
		CreatedAt: time.Now(),
	}
}
