package user

import (
	"context"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	"github.com/fintrackhq/fintrack-api/internal/domain/port/usecase"
)

// CreateUser hashes the submitted password, applies the role default and
// persists the user. The returned record is the safe projection of what
// the store created.
func (u *UserUseCase) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.SafeUser, error) {
	role := entity.RoleUser
	if input.Role != "" {
		role = entity.Role(input.Role)
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hashPassword(input.Password),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"email": input.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId": user.ID,
		"role":   user.Role,
	})

	safe := user.Safe()
	return &safe, nil
}
