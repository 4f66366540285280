package routes

import (
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/api/handler"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	paymentHandler *handler.PaymentHandler,
	accountHandler *handler.AccountHandler,
	healthHandler *handler.HealthHandler,
) {
	// Payment routes
	paymentRoutes := router.Group("/api/payments")
	{
		// POST /api/payments
		paymentRoutes.POST("", paymentHandler.CreatePayment)

		// GET /api/payments?page&limit&status
		paymentRoutes.GET("", paymentHandler.ListPayments)

		// GET /api/payments/:transactionId
		paymentRoutes.GET("/:transactionId", paymentHandler.GetPayment)
	}

	// Account routes
	accountRoutes := router.Group("/api/accounts")
	{
		// GET /api/accounts?type=
		accountRoutes.GET("", accountHandler.ListAccounts)

		// GET /api/accounts/:accountId
		accountRoutes.GET("/:accountId", accountHandler.GetAccount)
	}

	// GET /health
	router.GET("/health", healthHandler.Health)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
