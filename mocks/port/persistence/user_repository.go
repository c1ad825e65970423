package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
)

// MockUserRepository is a mock implementation of persistence.UserRepository
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a new MockUserRepository and registers
// expectation checks with the test's cleanup.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create provides a mock function
func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByID provides a mock function
func (m *MockUserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// List provides a mock function
func (m *MockUserRepository) List(ctx context.Context, query entity.ListUsersQuery) ([]entity.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

// Update provides a mock function
func (m *MockUserRepository) Update(ctx context.Context, id uint64, patch entity.UserPatch) (*entity.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// Delete provides a mock function
func (m *MockUserRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
