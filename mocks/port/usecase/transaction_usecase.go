package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	"github.com/fintrackhq/fintrack-api/internal/domain/port/usecase"
)

// MockTransactionUseCase is a mock implementation of usecase.TransactionUseCase
type MockTransactionUseCase struct {
	mock.Mock
}

// NewMockTransactionUseCase creates a new MockTransactionUseCase and
// registers expectation checks with the test's cleanup.
func NewMockTransactionUseCase(t *testing.T) *MockTransactionUseCase {
	m := &MockTransactionUseCase{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CreateTransaction provides a mock function
func (m *MockTransactionUseCase) CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*entity.Transaction, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

// GetTransactionByID provides a mock function
func (m *MockTransactionUseCase) GetTransactionByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

// ListTransactions provides a mock function
func (m *MockTransactionUseCase) ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]entity.Transaction, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Transaction), args.Error(1)
}

// UpdateTransaction provides a mock function
func (m *MockTransactionUseCase) UpdateTransaction(ctx context.Context, id uint64, input usecase.UpdateTransactionInput) (*entity.Transaction, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

// DeleteTransaction provides a mock function
func (m *MockTransactionUseCase) DeleteTransaction(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
