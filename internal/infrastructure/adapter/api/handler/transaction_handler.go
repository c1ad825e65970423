package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/fintrackhq/fintrack-api/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-api/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-api/internal/domain/port/usecase"
	"github.com/fintrackhq/fintrack-api/internal/infrastructure/adapter/api/dto"
	"github.com/fintrackhq/fintrack-api/internal/infrastructure/adapter/api/validation"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactionUseCase usecase.TransactionUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		logger:             logger,
	}
}

// CreateTransaction handles the POST /transactions endpoint
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	req := validation.BodyFrom[dto.CreateTransactionRequest](c)

	transaction, err := h.transactionUseCase.CreateTransaction(c.Request.Context(), usecase.CreateTransactionInput{
		UserID:      *req.UserID,
		Amount:      *req.Amount,
		Type:        req.Type,
		Currency:    req.Currency,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// GetTransactionByID handles the GET /transactions/:id endpoint
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transaction, err := h.transactionUseCase.GetTransactionByID(c.Request.Context(), validation.IDFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// ListTransactions handles the GET /transactions endpoint
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	query := validation.QueryFrom[dto.ListTransactionsQuery](c)

	transactions, err := h.transactionUseCase.ListTransactions(c.Request.Context(), usecase.ListTransactionsInput{
		UserID: query.UserID,
		Status: query.Status,
		Type:   query.Type,
		Sort:   query.Sort,
		Take:   query.Take,
		Skip:   query.Skip,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// UpdateTransaction handles the PATCH /transactions/:id endpoint
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	req := validation.BodyFrom[dto.UpdateTransactionRequest](c)

	transaction, err := h.transactionUseCase.UpdateTransaction(c.Request.Context(), validation.IDFrom(c), usecase.UpdateTransactionInput{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Type:        req.Type,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// DeleteTransaction handles the DELETE /transactions/:id endpoint
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.transactionUseCase.DeleteTransaction(c.Request.Context(), validation.IDFrom(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondError maps service errors to HTTP responses
func (h *TransactionHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerr.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "transaction not found"})
	case domainerr.IsConflictError(err):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("Unexpected error handling transaction request", map[string]any{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}
