package dto

import (
	"time"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
)

// CreateTransactionRequest represents the API request for creating a
// transaction. UserID and Amount are pointers so an explicit zero is
// distinguishable from an absent field.
type CreateTransactionRequest struct {
	UserID      *uint64  `json:"userId" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=DEPOSIT WITHDRAWAL TRANSFER PAYMENT"`
	Currency    *string  `json:"currency" binding:"omitempty,min=1"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" binding:"omitempty,oneof=PENDING COMPLETED FAILED CANCELED"`
}

// UpdateTransactionRequest represents a partial transaction update
type UpdateTransactionRequest struct {
	Amount      *float64 `json:"amount"`
	Currency    *string  `json:"currency" binding:"omitempty,min=1"`
	Type        *string  `json:"type" binding:"omitempty,oneof=DEPOSIT WITHDRAWAL TRANSFER PAYMENT"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" binding:"omitempty,oneof=PENDING COMPLETED FAILED CANCELED"`
}

// IsEmpty reports whether no recognized field was provided
func (r UpdateTransactionRequest) IsEmpty() bool {
	return r.Amount == nil &&
		r.Currency == nil &&
		r.Type == nil &&
		r.Description == nil &&
		r.Status == nil
}

// ListTransactionsQuery represents the query parameters of the
// transaction listing
type ListTransactionsQuery struct {
	UserID *uint64 `form:"userId"`
	Status *string `form:"status" binding:"omitempty,oneof=PENDING COMPLETED FAILED CANCELED"`
	Type   *string `form:"type" binding:"omitempty,oneof=DEPOSIT WITHDRAWAL TRANSFER PAYMENT"`
	Sort   *string `form:"sort"`
	Take   *int    `form:"take"`
	Skip   *int    `form:"skip"`
}

// TransactionResponse represents the API response for a transaction
type TransactionResponse struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"userId"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Currency    string    `json:"currency"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTransactionResponse maps a transaction entity to its API shape
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Status:      string(t.Status),
		Currency:    t.Currency,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTransactionListResponse maps a slice of transaction entities,
// always producing a non-nil slice so empty results serialize as []
func NewTransactionListResponse(transactions []entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, NewTransactionResponse(&transactions[i]))
	}
	return responses
}
