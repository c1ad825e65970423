package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	errs "github.com/fintrackhq/fintrack-api/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-api/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(txModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          txModel.ID,
		UserID:      txModel.UserID,
		Amount:      txModel.Amount,
		Type:        entity.TransactionType(txModel.Type),
		Status:      entity.TransactionStatus(txModel.Status),
		Currency:    txModel.Currency,
		Description: txModel.Description,
		CreatedAt:   txModel.CreatedAt,
		UpdatedAt:   txModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error, transactionID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Transaction not found", map[string]any{
			"transaction_id": transactionID,
		})
		return errs.ErrTransactionNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"transaction_id": transactionID,
		"error":          err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrConstraintViolation
	}

	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}

	return err
}

// Create persists a new transaction and fills the store-generated fields
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txModel := model.Transaction{
		UserID:      transaction.UserID,
		Amount:      transaction.Amount,
		Type:        string(transaction.Type),
		Status:      string(transaction.Status),
		Currency:    transaction.Currency,
		Description: transaction.Description,
	}

	result := r.db.WithContext(ctx).Create(&txModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error, 0)
	}

	transaction.ID = txModel.ID
	transaction.CreatedAt = txModel.CreatedAt
	transaction.UpdatedAt = txModel.UpdatedAt

	r.logger.Debug("Transaction created", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
	})
	return nil
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var txModel model.Transaction
	result := r.db.WithContext(ctx).First(&txModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error, id)
	}

	return r.modelToEntity(&txModel), nil
}

// List returns transactions matching the query's equality filters,
// ordered by creation time and paginated
func (r *TransactionRepository) List(ctx context.Context, query entity.ListTransactionsQuery) ([]entity.Transaction, error) {
	tx := r.db.WithContext(ctx).Model(&model.Transaction{})

	if query.UserID != nil {
		tx = tx.Where("user_id = ?", *query.UserID)
	}
	if query.Status != nil {
		tx = tx.Where("status = ?", string(*query.Status))
	}
	if query.Type != nil {
		tx = tx.Where("type = ?", string(*query.Type))
	}

	var txModels []model.Transaction
	result := tx.
		Order(orderByCreatedAt(query.Sort == entity.SortAsc)).
		Limit(query.Take).
		Offset(query.Skip).
		Find(&txModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing transactions", result.Error, 0)
	}

	transactions := make([]entity.Transaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, *r.modelToEntity(&txModels[i]))
	}
	return transactions, nil
}

// Update applies a sparse patch to the transaction with the given ID and
// returns the updated record
func (r *TransactionRepository) Update(ctx context.Context, id uint64, patch entity.TransactionPatch) (*entity.Transaction, error) {
	fields := map[string]interface{}{}
	if patch.Amount != nil {
		fields["amount"] = *patch.Amount
	}
	if patch.Currency != nil {
		fields["currency"] = *patch.Currency
	}
	if patch.Type != nil {
		fields["type"] = string(*patch.Type)
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Status != nil {
		fields["status"] = string(*patch.Status)
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, r.handleDatabaseError("updating transaction", result.Error, id)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Transaction not found during update", map[string]any{
			"transaction_id": id,
		})
		return nil, errs.ErrTransactionNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes the transaction with the given ID
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Transaction{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting transaction", result.Error, id)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Transaction not found during delete", map[string]any{
			"transaction_id": id,
		})
		return errs.ErrTransactionNotFound
	}

	r.logger.Debug("Transaction deleted", map[string]any{
		"transaction_id": id,
	})
	return nil
}
