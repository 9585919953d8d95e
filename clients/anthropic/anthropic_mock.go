package anthropic

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCompletionClient is a mock implementation of clients.CompletionClient
type MockCompletionClient struct {
	mock.Mock
}

// NewMockCompletionClient creates a new mock client for testing
func NewMockCompletionClient() *MockCompletionClient {
	return &MockCompletionClient{}
}

// Complete mocks the text-completion capability
func (m *MockCompletionClient) Complete(
	ctx context.Context,
	systemInstruction, userPrompt string,
	wantStructuredJSON bool,
) (string, error) {
	args := m.Called(ctx, systemInstruction, userPrompt, wantStructuredJSON)
	return args.String(0), args.Error(1)
}

// WithCompletionResponse configures the mock to return a fixed completion
func (m *MockCompletionClient) WithCompletionResponse(text string) *MockCompletionClient {
	m.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(text, nil)
	return m
}

// WithCompletionError configures the mock to fail every completion
func (m *MockCompletionClient) WithCompletionError(err error) *MockCompletionClient {
	m.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", err)
	return m
}
