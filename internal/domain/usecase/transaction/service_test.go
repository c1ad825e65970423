package transaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	errs "github.com/fintrackhq/fintrack-api/internal/domain/error"
	coremocks "github.com/fintrackhq/fintrack-api/mocks/port/core"
	persistencemocks "github.com/fintrackhq/fintrack-api/mocks/port/persistence"
)

func TestGetTransactionByID(t *testing.T) {
	ctx := context.Background()

	t.Run("should return an existing transaction", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("GetByID", mock.Anything, uint64(9)).Return(&entity.Transaction{
			ID:     9,
			UserID: 42,
			Amount: 150.75,
			Type:   entity.TypeDeposit,
			Status: entity.StatusCompleted,
		}, nil).Once()

		// Create service instance
		service := NewService(mockRepo, mockLogger)

		// Execute
		found, err := service.GetTransactionByID(ctx, 9)

		// Assertions
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, uint64(9), found.ID)
		assert.Equal(t, uint64(42), found.UserID)
	})

	t.Run("should surface a missing transaction as not found", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("GetByID", mock.Anything, uint64(999)).
			Return(nil, errs.ErrTransactionNotFound).Once()

		// Create service instance
		service := NewService(mockRepo, mockLogger)

		// Execute
		found, err := service.GetTransactionByID(ctx, 999)

		// Assertions
		assert.Nil(t, found)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("should delete an existing transaction", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("Delete", mock.Anything, uint64(9)).Return(nil).Once()
		mockLogger.On("Info", mock.Anything, mock.Anything).Once()

		// Create service instance
		service := NewService(mockRepo, mockLogger)

		// Execute
		err := service.DeleteTransaction(ctx, 9)

		// Assertions
		assert.NoError(t, err)
	})

	t.Run("should surface a missing transaction as not found", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("Delete", mock.Anything, uint64(999)).
			Return(errs.ErrTransactionNotFound).Once()

		// Create service instance
		service := NewService(mockRepo, mockLogger)

		// Execute
		err := service.DeleteTransaction(ctx, 999)

		// Assertions
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}
