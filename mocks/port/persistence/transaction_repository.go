package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
)

// MockTransactionRepository is a mock implementation of persistence.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

// NewMockTransactionRepository creates a new MockTransactionRepository
// and registers expectation checks with the test's cleanup.
func NewMockTransactionRepository(t *testing.T) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create provides a mock function
func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

// GetByID provides a mock function
func (m *MockTransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

// List provides a mock function
func (m *MockTransactionRepository) List(ctx context.Context, query entity.ListTransactionsQuery) ([]entity.Transaction, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Transaction), args.Error(1)
}

// Update provides a mock function
func (m *MockTransactionRepository) Update(ctx context.Context, id uint64, patch entity.TransactionPatch) (*entity.Transaction, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

// Delete provides a mock function
func (m *MockTransactionRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
