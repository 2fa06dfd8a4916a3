package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	httpAdapter "github.com/dexpay/treasuryd/internal/adapter/http"
	"github.com/dexpay/treasuryd/internal/adapter/http/handler"
	postgresRepo "github.com/dexpay/treasuryd/internal/adapter/repository/postgres"
	redisRepo "github.com/dexpay/treasuryd/internal/adapter/repository/redis"
	"github.com/dexpay/treasuryd/internal/domain"
	"github.com/dexpay/treasuryd/internal/infrastructure/config"
	"github.com/dexpay/treasuryd/internal/infrastructure/metrics"
	"github.com/dexpay/treasuryd/internal/infrastructure/postgres"
	"github.com/dexpay/treasuryd/internal/infrastructure/redis"
	"github.com/dexpay/treasuryd/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.LogFormat != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	balanceRepo := postgresRepo.NewBalanceRepository(pool)
	txRepo := postgresRepo.NewTransactionRepository(pool)
	auditRepo := postgresRepo.NewAuditRepository(pool)
	operatorRepo := postgresRepo.NewOperatorRepository(pool)
	sessionStore := redisRepo.NewSessionStore(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	m := metrics.New()

	// Initialize use cases
	auditUC := usecase.NewAuditUseCase(auditRepo, idGen, log.Logger, m)
	registry := domain.NewRegistry(domain.SeedWallets())
	treasuryUC := usecase.NewTreasuryUseCase(registry, balanceRepo, auditUC, log.Logger, m)
	if err := treasuryUC.LoadBalances(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load persisted balances")
	}
	transactionUC := usecase.NewTransactionUseCase(txRepo, treasuryUC, auditUC, idGen, m)
	reportUC := usecase.NewReportUseCase(txRepo, treasuryUC)
	authUC := usecase.NewAuthUseCase(operatorRepo, sessionStore, auditUC, log.Logger, m).
		WithSessionTTL(cfg.SessionTTL)
	defer authUC.Close()

	// Bootstrap the operator roster from the environment
	if cfg.OperatorPIN != "" {
		if err := bootstrapOperator(ctx, operatorRepo, idGen, cfg.OperatorName, cfg.OperatorPIN); err != nil {
			log.Fatal().Err(err).Msg("failed to bootstrap operator")
		}
		log.Info().Str("operator", cfg.OperatorName).Msg("operator bootstrapped")
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUC)
	accountHandler := handler.NewAccountHandler(treasuryUC)
	transactionHandler := handler.NewTransactionHandler(transactionUC)
	reportHandler := handler.NewReportHandler(reportUC)
	auditHandler := handler.NewAuditHandler(auditUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:        authHandler,
		AccountHandler:     accountHandler,
		TransactionHandler: transactionHandler,
		ReportHandler:      reportHandler,
		AuditHandler:       auditHandler,
		HealthHandler:      healthHandler,
		SessionVerifier:    authUC,
		IdempotencyStore:   idempotencyStore,
		Logger:             log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// bootstrapOperator creates (or rotates the PIN of) the configured operator.
func bootstrapOperator(ctx context.Context, repo usecase.OperatorRepository, idGen usecase.IDGenerator, name, pin string) error {
	if err := domain.ValidatePIN(pin); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return repo.Create(ctx, &domain.Operator{
		ID:        idGen.Generate(),
		Name:      name,
		PINHash:   string(hash),
		CreatedAt: time.Now().UTC(),
	})
}
