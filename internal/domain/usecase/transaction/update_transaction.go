package transaction

import (
	"context"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	"github.com/fintrackhq/fintrack-api/internal/domain/port/usecase"
)

// UpdateTransaction applies a sparse update to the transaction with the
// given ID. Only fields present in the input are written; existence is
// checked by the store at write time and its signal surfaces unmodified.
func (s *Service) UpdateTransaction(ctx context.Context, id uint64, input usecase.UpdateTransactionInput) (*entity.Transaction, error) {
	patch := entity.TransactionPatch{
		Amount:      input.Amount,
		Currency:    input.Currency,
		Description: input.Description,
	}
	if input.Type != nil {
		txType := entity.TransactionType(*input.Type)
		patch.Type = &txType
	}
	if input.Status != nil {
		status := entity.TransactionStatus(*input.Status)
		patch.Status = &status
	}

	transaction, err := s.transactionRepo.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error("Failed to update transaction", map[string]any{
			"transactionId": id,
			"error":         err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction updated", map[string]any{
		"transactionId": id,
	})

	return transaction, nil
}
