package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	"github.com/fintrackhq/fintrack-api/internal/domain/port/usecase"
	coremocks "github.com/fintrackhq/fintrack-api/mocks/port/core"
	persistencemocks "github.com/fintrackhq/fintrack-api/mocks/port/persistence"
)

func TestListUsers(t *testing.T) {
	ctx := context.Background()

	intPtr := func(v int) *int { return &v }
	strPtr := func(v string) *string { return &v }

	t.Run("should apply defaults when no parameters are provided", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("List", mock.Anything, mock.MatchedBy(func(q entity.ListUsersQuery) bool {
			return q.Role == nil &&
				q.Email == nil &&
				q.Sort == entity.SortDesc &&
				q.Take == entity.DefaultTake &&
				q.Skip == 0
		})).Return([]entity.User{}, nil).Once()

		// Create use case instance
		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		// Execute
		users, err := userUseCase.ListUsers(ctx, usecase.ListUsersInput{})

		// Assertions
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("should clamp oversized take to the maximum page size", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("List", mock.Anything, mock.MatchedBy(func(q entity.ListUsersQuery) bool {
			return q.Take == entity.MaxTake
		})).Return([]entity.User{}, nil).Once()

		// Create use case instance
		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		// Execute
		_, err := userUseCase.ListUsers(ctx, usecase.ListUsersInput{Take: intPtr(500)})

		// Assertions
		require.NoError(t, err)
	})

	t.Run("should clamp non-positive take and negative skip", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("List", mock.Anything, mock.MatchedBy(func(q entity.ListUsersQuery) bool {
			return q.Take == 1 && q.Skip == 0
		})).Return([]entity.User{}, nil).Once()

		// Create use case instance
		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		// Execute
		_, err := userUseCase.ListUsers(ctx, usecase.ListUsersInput{
			Take: intPtr(0),
			Skip: intPtr(-5),
		})

		// Assertions
		require.NoError(t, err)
	})

	t.Run("should select ascending order case-insensitively", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("List", mock.Anything, mock.MatchedBy(func(q entity.ListUsersQuery) bool {
			return q.Sort == entity.SortAsc
		})).Return([]entity.User{}, nil).Once()

		// Create use case instance
		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		// Execute
		_, err := userUseCase.ListUsers(ctx, usecase.ListUsersInput{Sort: strPtr("ASC")})

		// Assertions
		require.NoError(t, err)
	})

	t.Run("should fall back to descending order for unknown sort values", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("List", mock.Anything, mock.MatchedBy(func(q entity.ListUsersQuery) bool {
			return q.Sort == entity.SortDesc
		})).Return([]entity.User{}, nil).Once()

		// Create use case instance
		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		// Execute
		_, err := userUseCase.ListUsers(ctx, usecase.ListUsersInput{Sort: strPtr("upwards")})

		// Assertions
		require.NoError(t, err)
	})

	t.Run("should apply role and email filters only when present", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("List", mock.Anything, mock.MatchedBy(func(q entity.ListUsersQuery) bool {
			return q.Role != nil && *q.Role == entity.RoleAdmin &&
				q.Email != nil && *q.Email == "jane@example.com"
		})).Return([]entity.User{}, nil).Once()

		// Create use case instance
		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		// Execute
		_, err := userUseCase.ListUsers(ctx, usecase.ListUsersInput{
			Role:  strPtr("ADMIN"),
			Email: strPtr("jane@example.com"),
		})

		// Assertions
		require.NoError(t, err)
	})

	t.Run("should return safe projections without credential material", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("List", mock.Anything, mock.Anything).Return([]entity.User{
			{ID: 1, Email: "a@example.com", PasswordHash: "deadbeef", Role: entity.RoleUser},
			{ID: 2, Email: "b@example.com", PasswordHash: "deadbeef", Role: entity.RoleAdmin},
		}, nil).Once()

		// Create use case instance
		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		// Execute
		users, err := userUseCase.ListUsers(ctx, usecase.ListUsersInput{})

		// Assertions
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "a@example.com", users[0].Email)
		assert.Equal(t, entity.RoleAdmin, users[1].Role)
	})

	t.Run("should surface repository errors unmodified", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		databaseError := errors.New("database query error")
		mockRepo.On("List", mock.Anything, mock.Anything).Return(nil, databaseError).Once()
		mockLogger.On("Error", mock.Anything, mock.Anything).Once()

		// Create use case instance
		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		// Execute
		users, err := userUseCase.ListUsers(ctx, usecase.ListUsersInput{})

		// Assertions
		assert.Nil(t, users)
		assert.Equal(t, databaseError, err)
	})
}
