package routes

import (
	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/api/handler"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/api/middleware"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/metrics"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/token"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	walletHandler *handler.WalletHandler,
	transactionHandler *handler.TransactionHandler,
	healthHandler *handler.HealthHandler,
	tokens *token.Manager,
	logger coreport.Logger,
) {
	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", metrics.Handler())

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	authenticated := router.Group("/", middleware.Auth(tokens, logger))
	{
		authenticated.GET("/wallet", walletHandler.GetBalance)

		transactionRoutes := authenticated.Group("/transaction")
		{
			transactionRoutes.GET("", transactionHandler.List)
			transactionRoutes.GET("/:id", transactionHandler.Get)
			transactionRoutes.POST("/deposit", transactionHandler.Deposit)
			transactionRoutes.POST("/withdraw", transactionHandler.Withdraw)
			transactionRoutes.POST("/transfer", transactionHandler.Transfer)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(metrics.Middleware())
	router.Use(middleware.CORS())
}
