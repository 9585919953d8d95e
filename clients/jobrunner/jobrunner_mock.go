package jobrunner

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockJobRunnerClient is a mock implementation of clients.JobRunnerClient
type MockJobRunnerClient struct {
	mock.Mock
}

// NewMockJobRunnerClient creates a new mock client for testing
func NewMockJobRunnerClient() *MockJobRunnerClient {
	return &MockJobRunnerClient{}
}

// TriggerReport mocks triggering a report job
func (m *MockJobRunnerClient) TriggerReport(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// TriggerForecast mocks triggering a forecast job
func (m *MockJobRunnerClient) TriggerForecast(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// WithTriggerSuccess configures both triggers to succeed
func (m *MockJobRunnerClient) WithTriggerSuccess() *MockJobRunnerClient {
	m.On("TriggerReport", mock.Anything).Return(nil)
	m.On("TriggerForecast", mock.Anything).Return(nil)
	return m
}

// WithTriggerError configures both triggers to fail with err
func (m *MockJobRunnerClient) WithTriggerError(err error) *MockJobRunnerClient {
	m.On("TriggerReport", mock.Anything).Return(err)
	m.On("TriggerForecast", mock.Anything).Return(err)
	return m
}
