package user

import (
	"context"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	"github.com/fintrackhq/fintrack-api/internal/domain/port/usecase"
)

// UpdateUser applies a sparse update to the user with the given ID. Only
// fields present in the input are written; a submitted password is
// rehashed and never stored or returned in clear. Uniqueness and
// existence checks are delegated to the store and its signals surface
// unmodified.
func (u *UserUseCase) UpdateUser(ctx context.Context, id uint64, input usecase.UpdateUserInput) (*entity.SafeUser, error) {
	patch := entity.UserPatch{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if input.Password != nil {
		hashed := hashPassword(*input.Password)
		patch.PasswordHash = &hashed
	}
	if input.Role != nil {
		role := entity.Role(*input.Role)
		patch.Role = &role
	}

	user, err := u.userRepo.Update(ctx, id, patch)
	if err != nil {
		u.logger.Error("Failed to update user", map[string]any{
			"userId": id,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User updated", map[string]any{
		"userId": id,
	})

	safe := user.Safe()
	return &safe, nil
}
