package persistence

import (
	"context"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
)

// TransactionRepository defines the store operations for transactions.
type TransactionRepository interface {
	// Create persists a new transaction and fills the store-generated
	// fields (ID, CreatedAt, UpdatedAt) on the given entity.
	//
	// Possible errors:
	// - ErrConstraintViolation: the referenced user does not exist
	// - ErrDatabaseConnection: the store is unreachable
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by ID.
	//
	// Possible errors:
	// - ErrTransactionNotFound: no transaction with the given ID exists
	// - ErrDatabaseConnection: the store is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// List returns transactions matching the query's equality filters,
	// ordered by creation time and paginated.
	List(ctx context.Context, query entity.ListTransactionsQuery) ([]entity.Transaction, error)

	// Update applies a sparse patch to the transaction with the given ID
	// and returns the updated record.
	//
	// Possible errors:
	// - ErrTransactionNotFound: the row vanished before the write
	// - ErrDatabaseConnection: the store is unreachable
	Update(ctx context.Context, id uint64, patch entity.TransactionPatch) (*entity.Transaction, error)

	// Delete removes the transaction with the given ID.
	//
	// Possible errors:
	// - ErrTransactionNotFound: no transaction with the given ID exists
	// - ErrDatabaseConnection: the store is unreachable
	Delete(ctx context.Context, id uint64) error
}
