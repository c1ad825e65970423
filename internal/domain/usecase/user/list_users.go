package user

import (
	"context"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	"github.com/fintrackhq/fintrack-api/internal/domain/port/usecase"
)

// ListUsers returns users matching the provided equality filters. Only
// filters explicitly present in the input are applied. Sort is
// normalized and pagination is clamped rather than rejected.
func (u *UserUseCase) ListUsers(ctx context.Context, input usecase.ListUsersInput) ([]entity.SafeUser, error) {
	query := entity.ListUsersQuery{
		Email: input.Email,
		Sort:  entity.SortDesc,
		Take:  entity.ClampTake(input.Take),
		Skip:  entity.ClampSkip(input.Skip),
	}
	if input.Role != nil {
		role := entity.Role(*input.Role)
		query.Role = &role
	}
	if input.Sort != nil {
		query.Sort = entity.NormalizeSort(*input.Sort)
	}

	users, err := u.userRepo.List(ctx, query)
	if err != nil {
		u.logger.Error("Failed to list users", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	safe := make([]entity.SafeUser, 0, len(users))
	for i := range users {
		safe = append(safe, users[i].Safe())
	}
	return safe, nil
}
