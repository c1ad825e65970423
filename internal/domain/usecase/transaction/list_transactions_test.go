package transaction

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

func TestListTransactions(t *testing.T) {
	ctx := context.Background()

	intPtr := func(v int) *int { return &v }
	strPtr := func(v string) *string { return &v }
	uintPtr := func(v uint64) *uint64 { return &v }

	t.Run("should apply defaults when no parameters are provided", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("List", mock.Anything, mock.MatchedBy(func(q entity.ListTransactionsQuery) bool {
			return q.UserID == nil &&
				q.Status == nil &&
				q.Type == nil &&
				q.Sort == entity.SortDesc &&
				q.Take == entity.DefaultTake &&
				q.Skip == 0
		})).Return([]entity.Transaction{}, nil).Once()

		// Create service instance
		service := NewService(mockRepo, mockLogger)

		// Execute
		transactions, err := service.ListTransactions(ctx, usecase.ListTransactionsInput{})

		// Assertions
		require.NoError(t, err)
		assert.NotNil(t, transactions)
		assert.Empty(t, transactions)
	})

	t.Run("should clamp oversized take to the maximum page size", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("List", mock.Anything, mock.MatchedBy(func(q entity.ListTransactionsQuery) bool {
			return q.Take == entity.MaxTake
		})).Return([]entity.Transaction{}, nil).Once()

		// Create service instance
		service := NewService(mockRepo, mockLogger)

		// Execute
		_, err := service.ListTransactions(ctx, usecase.ListTransactionsInput{Take: intPtr(500)})

		// Assertions
		require.NoError(t, err)
	})

	t.Run("should apply filters only when present", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("List", mock.Anything, mock.MatchedBy(func(q entity.ListTransactionsQuery) bool {
			return q.UserID != nil && *q.UserID == 42 &&
				q.Status != nil && *q.Status == entity.StatusPending &&
				q.Type != nil && *q.Type == entity.TypeDeposit
		})).Return([]entity.Transaction{}, nil).Once()

		// Create service instance
		service := NewService(mockRepo, mockLogger)

		// Execute
		_, err := service.ListTransactions(ctx, usecase.ListTransactionsInput{
			UserID: uintPtr(42),
			Status: strPtr("PENDING"),
			Type:   strPtr("DEPOSIT"),
		})

		// Assertions
		require.NoError(t, err)
	})

	t.Run("should select ascending order case-insensitively", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("List", mock.Anything, mock.MatchedBy(func(q entity.ListTransactionsQuery) bool {
			return q.Sort == entity.SortAsc
		})).Return([]entity.Transaction{}, nil).Once()

		// Create service instance
		service := NewService(mockRepo, mockLogger)

		// Execute
		_, err := service.ListTransactions(ctx, usecase.ListTransactionsInput{Sort: strPtr("Asc")})

		// Assertions
		require.NoError(t, err)
	})

	t.Run("should surface repository errors unmodified", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		databaseError := errors.New("database query error")
		mockRepo.On("List", mock.Anything, mock.Anything).Return(nil, databaseError).Once()
		mockLogger.On("Error", mock.Anything, mock.Anything).Once()

		// Create service instance
		service := NewService(mockRepo, mockLogger)

		// Execute
		transactions, err := service.ListTransactions(ctx, usecase.ListTransactionsInput{})

		// Assertions
		assert.Nil(t, transactions)
		assert.Equal(t, databaseError, err)
	})
}
