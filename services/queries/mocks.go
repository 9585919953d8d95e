package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"bizcore/models"
)

// MockLeadsRepository is a mock implementation of LeadsRepository
type MockLeadsRepository struct {
	mock.Mock
}

func (m *MockLeadsRepository) CountLeadsSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *MockLeadsRepository) CountLeadsByStageSince(
	ctx context.Context,
	since time.Time,
) (map[string]int, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockLeadsRepository) ListRecentLeads(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]models.Lead, error) {
	args := m.Called(ctx, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Lead), args.Error(1)
}

// MockClientsRepository is a mock implementation of ClientsRepository
type MockClientsRepository struct {
	mock.Mock
}

func (m *MockClientsRepository) SearchClientsByName(
	ctx context.Context,
	name string,
	limit int,
) ([]models.Client, error) {
	args := m.Called(ctx, name, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Client), args.Error(1)
}

func (m *MockClientsRepository) CountClientsSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

// MockSupportTicketsRepository is a mock implementation of SupportTicketsRepository
type MockSupportTicketsRepository struct {
	mock.Mock
}

func (m *MockSupportTicketsRepository) CountTicketsSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *MockSupportTicketsRepository) CountOpenTickets(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockSupportTicketsRepository) CountTicketsByStatusSince(
	ctx context.Context,
	since time.Time,
) (map[string]int, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockSupportTicketsRepository) ListRecentTickets(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]models.SupportTicket, error) {
	args := m.Called(ctx, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SupportTicket), args.Error(1)
}

// MockPaymentsRepository is a mock implementation of PaymentsRepository
type MockPaymentsRepository struct {
	mock.Mock
}

func (m *MockPaymentsRepository) SumPaymentsSince(
	ctx context.Context,
	since time.Time,
) (decimal.Decimal, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentsRepository) CountPaymentsSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *MockPaymentsRepository) ListRecentPayments(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]models.Payment, error) {
	args := m.Called(ctx, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}
