package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	ledgerUseCase "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/usecase/ledger"
	paymentUseCase "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/usecase/payment"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/usecase/simulator"

	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/api/handler"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/api/routes"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/database"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/database/migration"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/logger"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/random"
	timeProvider "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/time"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() {
		_ = appLogger.Flush()
	}()

	// Setup database configuration
	dbConfig := database.FromAppConfig(&cfg.Database)
	dbConfig.LogLevel = cfg.Logger.Level

	// Initialize time and randomness providers
	tp := timeProvider.NewRealTimeProvider()
	rnd := random.NewMathRandomSource()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Unit of work (transaction manager)
	uow := dbManager.CreateUnitOfWork()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Create default accounts
	if err := migration.CreateDefaultAccounts(context.Background(), uow, tp, appLogger); err != nil {
		appLogger.Error("Failed to create default accounts", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize use cases
	ledger := ledgerUseCase.NewLedger(uow, tp, appLogger)
	paymentService := paymentUseCase.NewService(uow, ledger, tp, rnd, appLogger)

	// Background processing simulator
	sim := simulator.NewSimulator(paymentService.Processor(), simulator.Config{
		PendingToProcessingDelay: coreport.Duration(cfg.Payment.ProcessingDelay),
		ProcessingMinDelay:       coreport.Duration(cfg.Payment.StatusUpdateMinDelay),
		ProcessingMaxDelay:       coreport.Duration(cfg.Payment.StatusUpdateMaxDelay),
		SuccessRate:              cfg.Payment.SuccessRate,
	}, tp, rnd, appLogger)
	paymentService = paymentService.WithScheduler(sim)

	// Initialize API handlers
	paymentHandler := handler.NewPaymentHandler(paymentService, appLogger)
	accountHandler := handler.NewAccountHandler(ledger, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, paymentHandler, accountHandler, healthHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting requests first, then let in-flight payment
	// processing drain
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Waiting for in-flight payment processing...", nil)
	sim.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("PS_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or PS_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Port == "" {
		if cfg.Environment == config.Production && os.Getenv("PS_DB_PORT") == "" {
			missingConfigs = append(missingConfigs, "database.port (or PS_DB_PORT environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}

	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("PS_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or PS_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("PS_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or PS_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("PS_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or PS_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate payment processing configuration
	if cfg.Payment.ProcessingDelay == 0 {
		missingConfigs = append(missingConfigs, "payment.processingDelay")
	}

	if cfg.Payment.StatusUpdateMaxDelay == 0 {
		missingConfigs = append(missingConfigs, "payment.statusUpdateMaxDelay")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		if strings.ToLower(cfg.Database.SSLMode) != "require" && strings.ToLower(cfg.Database.SSLMode) != "verify-ca" && strings.ToLower(cfg.Database.SSLMode) != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
