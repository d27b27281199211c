package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
	authUseCase "github.com/lendmark/demo-credit/internal/domain/usecase/auth"
	ledgerUseCase "github.com/lendmark/demo-credit/internal/domain/usecase/ledger"
	walletUseCase "github.com/lendmark/demo-credit/internal/domain/usecase/wallet"

	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/api/handler"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/api/routes"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/cache"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/database"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/database/migration"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/logger"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/repository"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/risk"
	timeProvider "github.com/lendmark/demo-credit/internal/infrastructure/adapter/time"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/token"
	"github.com/lendmark/demo-credit/internal/infrastructure/config"

	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		ConnectAttempts: cfg.Database.ConnectAttempts,
		ConnectDelay:    cfg.Database.ConnectDelay,
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	seeder := migration.NewSeeder(dbManager.DB(), appLogger)
	if err := seeder.SeedSystemAccount(cfg.Ledger.SystemAccountID); err != nil {
		appLogger.Error("Failed to seed system account", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	classifier := database.NewErrorClassifier()
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger)
	txRunner := database.NewTxManager(uow, classifier, database.RetryConfig{
		MaxRetries:   cfg.Ledger.MaxRetries,
		InitialDelay: cfg.Ledger.RetryInitialDelay,
		MaxDelay:     cfg.Ledger.RetryMaxDelay,
	}, appLogger)

	userRepo := repository.NewGormRepository[entity.User](dbManager.DB(), classifier)
	walletRepo := repository.NewGormRepository[entity.Wallet](dbManager.DB(), classifier)
	transactionRepo := repository.NewGormRepository[entity.Transaction](dbManager.DB(), classifier)

	walletCache := buildWalletCache(cfg, appLogger)
	riskChecker := buildRiskChecker(cfg, appLogger)

	walletService := walletUseCase.NewService(userRepo, walletRepo, walletCache, appLogger)
	ledgerService := ledgerUseCase.NewService(
		userRepo, walletRepo, transactionRepo,
		txRunner, walletCache, cfg.Ledger.SystemAccountID, appLogger,
	)
	authService := authUseCase.NewService(userRepo, walletService, riskChecker, authUseCase.RiskPolicy{
		Enabled:     cfg.Risk.Enabled,
		SkipDomains: cfg.Risk.SkipDomains,
	}, appLogger)

	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenMaxAge, tp)

	authHandler := handler.NewAuthHandler(authService, tokens, appLogger)
	walletHandler := handler.NewWalletHandler(walletService, appLogger)
	transactionHandler := handler.NewTransactionHandler(ledgerService, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager.DB(), appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, authHandler, walletHandler, transactionHandler, healthHandler, tokens, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// buildWalletCache wires Redis when enabled, otherwise a no-op cache
func buildWalletCache(cfg *config.Config, appLogger coreport.Logger) persistence.WalletCache {
	if !cfg.Redis.Enabled {
		return cache.NoopWalletCache{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return cache.NewRedisWalletCache(client, cfg.Redis.TTL, appLogger)
}

// buildRiskChecker wires the karma blacklist client when enabled
func buildRiskChecker(cfg *config.Config, appLogger coreport.Logger) coreport.RiskChecker {
	if !cfg.Risk.Enabled {
		return risk.NoopChecker{}
	}
	return risk.NewAdjutorClient(cfg.Risk.BaseURL, cfg.Risk.APIKey, cfg.Risk.Timeout, appLogger)
}
