package usecase

import (
	"context"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
)

// CreateUserInput carries a validated user creation payload. Role may be
// empty, in which case the service applies the default.
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// UpdateUserInput carries a validated sparse user update. Nil fields were
// not provided.
type UpdateUserInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Role      *string
}

// ListUsersInput carries validated, still-unclamped user list parameters.
// Nil fields were not provided.
type ListUsersInput struct {
	Role  *string
	Email *string
	Sort  *string
	Take  *int
	Skip  *int
}

// UserUseCase defines methods for user-related business operations.
// Every returned user is the safe projection; credential material never
// crosses this boundary.
type UserUseCase interface {
	// CreateUser hashes the password, applies the role default and
	// persists the user
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.SafeUser, error)

	// GetUserByID retrieves a single user, ErrUserNotFound when absent
	GetUserByID(ctx context.Context, id uint64) (*entity.SafeUser, error)

	// ListUsers returns users matching the given filters after sort
	// normalization and pagination clamping
	ListUsers(ctx context.Context, input ListUsersInput) ([]entity.SafeUser, error)

	// UpdateUser applies the provided fields only, rehashing the
	// password when present
	UpdateUser(ctx context.Context, id uint64, input UpdateUserInput) (*entity.SafeUser, error)

	// DeleteUser removes a user, ErrUserNotFound when absent
	DeleteUser(ctx context.Context, id uint64) error
}
