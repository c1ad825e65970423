package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	"github.com/fintrackhq/fintrack-api/internal/domain/port/usecase"
)

// MockUserUseCase is a mock implementation of usecase.UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

// NewMockUserUseCase creates a new MockUserUseCase and registers
// expectation checks with the test's cleanup.
func NewMockUserUseCase(t *testing.T) *MockUserUseCase {
	m := &MockUserUseCase{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CreateUser provides a mock function
func (m *MockUserUseCase) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.SafeUser, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SafeUser), args.Error(1)
}

// GetUserByID provides a mock function
func (m *MockUserUseCase) GetUserByID(ctx context.Context, id uint64) (*entity.SafeUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SafeUser), args.Error(1)
}

// ListUsers provides a mock function
func (m *MockUserUseCase) ListUsers(ctx context.Context, input usecase.ListUsersInput) ([]entity.SafeUser, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SafeUser), args.Error(1)
}

// UpdateUser provides a mock function
func (m *MockUserUseCase) UpdateUser(ctx context.Context, id uint64, input usecase.UpdateUserInput) (*entity.SafeUser, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SafeUser), args.Error(1)
}

// DeleteUser provides a mock function
func (m *MockUserUseCase) DeleteUser(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
