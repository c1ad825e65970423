package routes

import (
	coreport "github.com/fintrackhq/fintrack-api/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-api/internal/infrastructure/adapter/api/dto"
	"github.com/fintrackhq/fintrack-api/internal/infrastructure/adapter/api/handler"
	"github.com/fintrackhq/fintrack-api/internal/infrastructure/adapter/api/middleware"
	"github.com/fintrackhq/fintrack-api/internal/infrastructure/adapter/api/validation"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API. Every route is an
// ordered pipeline: parameter validator, body/query validator where
// applicable, then the handler.
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	transactionHandler *handler.TransactionHandler,
	healthHandler *handler.HealthHandler,
) {
	// User routes
	userRoutes := router.Group("/users")
	{
		userRoutes.POST("", validation.Body[dto.CreateUserRequest](), userHandler.CreateUser)
		userRoutes.GET("", validation.Query[dto.ListUsersQuery](), userHandler.ListUsers)
		userRoutes.GET("/:id", validation.IDParam(), userHandler.GetUserByID)
		userRoutes.PATCH("/:id", validation.IDParam(), validation.PatchBody[dto.UpdateUserRequest](), userHandler.UpdateUser)
		userRoutes.DELETE("/:id", validation.IDParam(), userHandler.DeleteUser)
	}

	// Transaction routes
	transactionRoutes := router.Group("/transactions")
	{
		transactionRoutes.POST("", validation.Body[dto.CreateTransactionRequest](), transactionHandler.CreateTransaction)
		transactionRoutes.GET("", validation.Query[dto.ListTransactionsQuery](), transactionHandler.ListTransactions)
		transactionRoutes.GET("/:id", validation.IDParam(), transactionHandler.GetTransactionByID)
		transactionRoutes.PATCH("/:id", validation.IDParam(), validation.PatchBody[dto.UpdateTransactionRequest](), transactionHandler.UpdateTransaction)
		transactionRoutes.DELETE("/:id", validation.IDParam(), transactionHandler.DeleteTransaction)
	}

	// Health probe, outside the resource groups
	router.GET("/api/v1/health", healthHandler.Check)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
}
