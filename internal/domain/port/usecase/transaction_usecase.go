package usecase

import (
	"context"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
)

// CreateTransactionInput carries a validated transaction creation
// payload. Nil optionals select the documented defaults.
type CreateTransactionInput struct {
	UserID      uint64
	Amount      float64
	Type        string
	Currency    *string
	Description *string
	Status      *string
}

// UpdateTransactionInput carries a validated sparse transaction update.
// Nil fields were not provided.
type UpdateTransactionInput struct {
	Amount      *float64
	Currency    *string
	Type        *string
	Description *string
	Status      *string
}

// ListTransactionsInput carries validated, still-unclamped transaction
// list parameters. Nil fields were not provided.
type ListTransactionsInput struct {
	UserID *uint64
	Status *string
	Type   *string
	Sort   *string
	Take   *int
	Skip   *int
}

// TransactionUseCase defines methods for transaction-related business
// operations.
type TransactionUseCase interface {
	// CreateTransaction applies the status and currency defaults and
	// persists the transaction
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (*entity.Transaction, error)

	// GetTransactionByID retrieves a single transaction,
	// ErrTransactionNotFound when absent
	GetTransactionByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// ListTransactions returns transactions matching the given filters
	// after sort normalization and pagination clamping
	ListTransactions(ctx context.Context, input ListTransactionsInput) ([]entity.Transaction, error)

	// UpdateTransaction applies the provided fields only
	UpdateTransaction(ctx context.Context, id uint64, input UpdateTransactionInput) (*entity.Transaction, error)

	// DeleteTransaction removes a transaction, ErrTransactionNotFound
	// when absent
	DeleteTransaction(ctx context.Context, id uint64) error
}
