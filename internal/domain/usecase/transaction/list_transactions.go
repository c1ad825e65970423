package transaction

import (
	"context"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	"github.com/fintrackhq/fintrack-api/internal/domain/port/usecase"
)

// ListTransactions returns transactions matching the provided equality
// filters. Only filters explicitly present in the input are applied.
// Sort is normalized and pagination is clamped rather than rejected.
func (s *Service) ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]entity.Transaction, error) {
	query := entity.ListTransactionsQuery{
		UserID: input.UserID,
		Sort:   entity.SortDesc,
		Take:   entity.ClampTake(input.Take),
		Skip:   entity.ClampSkip(input.Skip),
	}
	if input.Status != nil {
		status := entity.TransactionStatus(*input.Status)
		query.Status = &status
	}
	if input.Type != nil {
		txType := entity.TransactionType(*input.Type)
		query.Type = &txType
	}
	if input.Sort != nil {
		query.Sort = entity.NormalizeSort(*input.Sort)
	}

	transactions, err := s.transactionRepo.List(ctx, query)
	if err != nil {
		s.logger.Error("Failed to list transactions", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	return transactions, nil
}
