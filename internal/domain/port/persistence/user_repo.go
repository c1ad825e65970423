package persistence

import (
	"context"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
)

// UserRepository defines the store operations for users.
// Implementations translate store-specific failures into the domain
// error taxonomy so callers can switch on a closed set.
type UserRepository interface {
	// Create persists a new user and fills the store-generated fields
	// (ID, CreatedAt, UpdatedAt) on the given entity.
	//
	// Possible errors:
	// - ErrEmailInUse: another user already owns the email
	// - ErrDatabaseConnection: the store is unreachable
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID.
	//
	// Possible errors:
	// - ErrUserNotFound: no user with the given ID exists
	// - ErrDatabaseConnection: the store is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// List returns users matching the query's equality filters, ordered
	// by creation time and paginated. An empty result is not an error.
	List(ctx context.Context, query entity.ListUsersQuery) ([]entity.User, error)

	// Update applies a sparse patch to the user with the given ID and
	// returns the updated record.
	//
	// Possible errors:
	// - ErrUserNotFound: the row vanished before the write
	// - ErrEmailInUse: the patched email collides with another user
	// - ErrDatabaseConnection: the store is unreachable
	Update(ctx context.Context, id uint64, patch entity.UserPatch) (*entity.User, error)

	// Delete removes the user with the given ID.
	//
	// Possible errors:
	// - ErrUserNotFound: no user with the given ID exists
	// - ErrDatabaseConnection: the store is unreachable
	Delete(ctx context.Context, id uint64) error
}
