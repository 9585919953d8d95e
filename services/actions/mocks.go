package actions

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLeadStageUpdater is a mock implementation of LeadStageUpdater
type MockLeadStageUpdater struct {
	mock.Mock
}

func (m *MockLeadStageUpdater) UpdateLeadStageByName(
	ctx context.Context,
	name, stage string,
) (int, error) {
	args := m.Called(ctx, name, stage)
	return args.Int(0), args.Error(1)
}
