package user

import (
	"context"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	coreport "github.com/fintrackhq/fintrack-api/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-api/internal/domain/port/persistence"
)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo persistence.UserRepository
	logger   coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUserByID retrieves a user by ID. Absence surfaces as
// ErrUserNotFound so the caller can treat it as a normal outcome.
func (u *UserUseCase) GetUserByID(ctx context.Context, id uint64) (*entity.SafeUser, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	safe := user.Safe()
	return &safe, nil
}

// DeleteUser removes a user by ID
func (u *UserUseCase) DeleteUser(ctx context.Context, id uint64) error {
	if err := u.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	u.logger.Info("User deleted", map[string]any{
		"userId": id,
	})
	return nil
}
