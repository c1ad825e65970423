package transaction

import (
	"context"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	coreport "github.com/fintrackhq/fintrack-api/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-api/internal/domain/port/persistence"
)

// Service handles transaction-related business logic
type Service struct {
	transactionRepo persistence.TransactionRepository
	logger          coreport.Logger
}

// NewService creates a new transaction Service
func NewService(
	transactionRepo persistence.TransactionRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// GetTransactionByID retrieves a transaction by ID. Absence surfaces as
// ErrTransactionNotFound so the caller can treat it as a normal outcome.
func (s *Service) GetTransactionByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, id)
}

// DeleteTransaction removes a transaction by ID
func (s *Service) DeleteTransaction(ctx context.Context, id uint64) error {
	if err := s.transactionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"transactionId": id,
	})
	return nil
}
