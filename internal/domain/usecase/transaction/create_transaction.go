package transaction

import (
	"context"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	"github.com/fintrackhq/fintrack-api/internal/domain/port/usecase"
)

// Default values applied when the optional fields are absent
const (
	defaultCurrency = "USD"
)

// CreateTransaction applies the status and currency defaults and
// persists the transaction. Whether the referenced user exists is the
// store's concern.
func (s *Service) CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*entity.Transaction, error) {
	transaction := &entity.Transaction{
		UserID:      input.UserID,
		Amount:      input.Amount,
		Type:        entity.TransactionType(input.Type),
		Status:      entity.StatusPending,
		Currency:    defaultCurrency,
		Description: input.Description,
	}
	if input.Status != nil {
		transaction.Status = entity.TransactionStatus(*input.Status)
	}
	if input.Currency != nil {
		transaction.Currency = *input.Currency
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		s.logger.Error("Failed to create transaction", map[string]any{
			"userId": input.UserID,
			"type":   input.Type,
			"error":  err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"transactionId": transaction.ID,
		"userId":        transaction.UserID,
		"type":          transaction.Type,
		"status":        transaction.Status,
	})

	return transaction, nil
}
