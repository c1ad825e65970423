package entity

import (
	"time"
)

// TransactionType represents the kind of a financial transaction
type TransactionType string

// Transaction types
const (
	TypeDeposit    TransactionType = "DEPOSIT"
	TypeWithdrawal TransactionType = "WITHDRAWAL"
	TypeTransfer   TransactionType = "TRANSFER"
	TypePayment    TransactionType = "PAYMENT"
)

// TransactionStatus represents the processing state of a transaction
type TransactionStatus string

// Transaction statuses
const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
	StatusCanceled  TransactionStatus = "CANCELED"
)

// IsValidTransactionType reports whether the literal is a known type
func IsValidTransactionType(t string) bool {
	switch TransactionType(t) {
	case TypeDeposit, TypeWithdrawal, TypeTransfer, TypePayment:
		return true
	}
	return false
}

// IsValidTransactionStatus reports whether the literal is a known status
func IsValidTransactionStatus(s string) bool {
	switch TransactionStatus(s) {
	case StatusPending, StatusCompleted, StatusFailed, StatusCanceled:
		return true
	}
	return false
}

// Transaction represents a financial transaction belonging to a user.
// Referential integrity of UserID is delegated to the store.
type Transaction struct {
	ID          uint64            // Unique identifier, generated by the store
	UserID      uint64            // Owning user
	Amount      float64           // Transaction amount, sign unconstrained
	Type        TransactionType   // Kind of transaction
	Status      TransactionStatus // Processing state, defaults to StatusPending
	Currency    string            // ISO currency code, defaults to "USD"
	Description *string           // Optional free-form note, nil when absent
	CreatedAt   time.Time         // When the transaction was created
	UpdatedAt   time.Time         // When the transaction was last updated
}

// TransactionPatch is a sparse update for a transaction. A nil field was
// not provided and must be left untouched by the store.
type TransactionPatch struct {
	Amount      *float64
	Currency    *string
	Type        *TransactionType
	Description *string
	Status      *TransactionStatus
}

// IsEmpty reports whether the patch carries no fields at all
func (p TransactionPatch) IsEmpty() bool {
	return p.Amount == nil &&
		p.Currency == nil &&
		p.Type == nil &&
		p.Description == nil &&
		p.Status == nil
}

// ListTransactionsQuery describes an equality-filtered, ordered,
// paginated transaction listing. Nil filters are not applied.
type ListTransactionsQuery struct {
	UserID *uint64
	Status *TransactionStatus
	Type   *TransactionType
	Sort   SortOrder
	Take   int
	Skip   int
}
