package user

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	errs "github.com/fintrackhq/fintrack-api/internal/domain/error"
	"github.com/fintrackhq/fintrack-api/internal/domain/port/usecase"
	coremocks "github.com/fintrackhq/fintrack-api/mocks/port/core"
	persistencemocks "github.com/fintrackhq/fintrack-api/mocks/port/persistence"
)

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should create user with default role and hashed password", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "jane@example.com" &&
				u.Role == entity.RoleUser &&
				u.PasswordHash == sha256Hex("s3cretpass")
		})).Run(func(args mock.Arguments) {
			u := args.Get(1).(*entity.User)
			u.ID = 42
			u.CreatedAt = fixedTime
			u.UpdatedAt = fixedTime
		}).Return(nil).Once()

		mockLogger.On("Info", mock.Anything, mock.Anything).Once()

		// Create use case instance
		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		// Execute
		created, err := userUseCase.CreateUser(ctx, usecase.CreateUserInput{
			Email:     "jane@example.com",
			Password:  "s3cretpass",
			FirstName: "Jane",
			LastName:  "Doe",
		})

		// Assertions
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint64(42), created.ID)
		assert.Equal(t, "jane@example.com", created.Email)
		assert.Equal(t, "Jane", created.FirstName)
		assert.Equal(t, "Doe", created.LastName)
		assert.Equal(t, entity.RoleUser, created.Role)
		assert.Equal(t, fixedTime, created.CreatedAt)
	})

	t.Run("should keep explicitly provided role", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleAdmin
		})).Return(nil).Once()

		mockLogger.On("Info", mock.Anything, mock.Anything).Once()

		// Create use case instance
		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		// Execute
		created, err := userUseCase.CreateUser(ctx, usecase.CreateUserInput{
			Email:     "admin@example.com",
			Password:  "s3cretpass",
			FirstName: "Ada",
			LastName:  "Admin",
			Role:      "ADMIN",
		})

		// Assertions
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, entity.RoleAdmin, created.Role)
	})

	t.Run("should surface duplicate email from repository", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errs.ErrEmailInUse).Once()
		mockLogger.On("Error", mock.Anything, mock.Anything).Once()

		// Create use case instance
		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		// Execute
		created, err := userUseCase.CreateUser(ctx, usecase.CreateUserInput{
			Email:     "jane@example.com",
			Password:  "s3cretpass",
			FirstName: "Jane",
			LastName:  "Doe",
		})

		// Assertions
		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrEmailInUse)
	})

	t.Run("should surface unexpected repository errors unmodified", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		databaseError := errors.New("database insert error")
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(databaseError).Once()
		mockLogger.On("Error", mock.Anything, mock.Anything).Once()

		// Create use case instance
		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		// Execute
		created, err := userUseCase.CreateUser(ctx, usecase.CreateUserInput{
			Email:     "jane@example.com",
			Password:  "s3cretpass",
			FirstName: "Jane",
			LastName:  "Doe",
		})

		// Assertions
		assert.Nil(t, created)
		assert.Equal(t, databaseError, err)
	})
}

func TestHashPassword(t *testing.T) {
	t.Run("should produce a lowercase hex digest", func(t *testing.T) {
		// Execute
		hashed := hashPassword("s3cretpass")

		// Assertions
		assert.Equal(t, sha256Hex("s3cretpass"), hashed)
		assert.Len(t, hashed, 64)
	})

	t.Run("should be deterministic", func(t *testing.T) {
		// Execute & Assertions
		assert.Equal(t, hashPassword("same input"), hashPassword("same input"))
		assert.NotEqual(t, hashPassword("same input"), hashPassword("other input"))
	})
}
