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

// UserHandler handles user-related HTTP requests. It owns no business
// logic; it translates between HTTP and the user use case.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateUser handles the POST /users endpoint
func (h *UserHandler) CreateUser(c *gin.Context) {
	req := validation.BodyFrom[dto.CreateUserRequest](c)

	user, err := h.userUseCase.CreateUser(c.Request.Context(), usecase.CreateUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUserByID handles the GET /users/:id endpoint
func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.userUseCase.GetUserByID(c.Request.Context(), validation.IDFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers handles the GET /users endpoint
func (h *UserHandler) ListUsers(c *gin.Context) {
	query := validation.QueryFrom[dto.ListUsersQuery](c)

	users, err := h.userUseCase.ListUsers(c.Request.Context(), usecase.ListUsersInput{
		Role:  query.Role,
		Email: query.Email,
		Sort:  query.Sort,
		Take:  query.Take,
		Skip:  query.Skip,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser handles the PATCH /users/:id endpoint
func (h *UserHandler) UpdateUser(c *gin.Context) {
	req := validation.BodyFrom[dto.UpdateUserRequest](c)

	user, err := h.userUseCase.UpdateUser(c.Request.Context(), validation.IDFrom(c), usecase.UpdateUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles the DELETE /users/:id endpoint
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUseCase.DeleteUser(c.Request.Context(), validation.IDFrom(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondError maps service errors to HTTP responses. Absence and
// conflict are normal outcomes with fixed messages; anything else is a
// 500 carrying the underlying message.
func (h *UserHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerr.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
	case domainerr.IsConflictError(err):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Email already in use"})
	default:
		h.logger.Error("Unexpected error handling user request", map[string]any{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}
