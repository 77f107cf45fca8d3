package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bookkeeper/internal/auth"
	"bookkeeper/internal/config"
	"bookkeeper/internal/handler"
	"bookkeeper/internal/middleware"
	"bookkeeper/internal/observability"
	"bookkeeper/internal/repository/postgres"
	postgresLedger "bookkeeper/internal/repository/postgres/ledger"
	serviceAuth "bookkeeper/internal/service/auth"
	serviceLedger "bookkeeper/internal/service/ledger"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logger, closeLog, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
		"collation", cfg.CollationLanguage.String(),
	)

	// Token verification: external JWKS when configured, otherwise our own
	// HS256 session tokens
	sessionTokens, err := auth.NewSessionTokens(cfg.SessionSecret, cfg.SessionTTL, logger)
	if err != nil {
		log.Fatalf("Failed to create session tokens: %v", err)
	}
	var verifier auth.TokenVerifier = sessionTokens
	if cfg.AuthJWKSURL != "" {
		jwks, err := auth.NewJWKSVerifier(cfg.AuthJWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWKS verifier: %v", err)
		}
		verifier = jwks
	}
	defer verifier.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool, cfg.TablePrefix, logger); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	accountRepo := postgresLedger.NewAccountRepository(repoConfig)
	bankAccountRepo := postgresLedger.NewBankAccountRepository(repoConfig)
	yearRepo := postgresLedger.NewOperationalYearRepository(repoConfig)
	accountInitialRepo := postgresLedger.NewAccountInitialRepository(repoConfig)
	bankAccountInitialRepo := postgresLedger.NewBankAccountInitialRepository(repoConfig)
	transactionRepo := postgresLedger.NewTransactionRepository(repoConfig)
	verificationRepo := postgresLedger.NewVerificationRepository(repoConfig)
	rowRepo := postgresLedger.NewVerificationRowRepository(repoConfig)
	attachmentRepo := postgresLedger.NewVerificationAttachmentRepository(repoConfig)
	userRepo := postgresLedger.NewUserRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool, logger)

	authorizer := serviceAuth.NewOwnerBasedAuthorizer(accountRepo, bankAccountRepo, yearRepo, transactionRepo, verificationRepo)
	metrics := observability.NewCollector("bookkeeper")

	accountService := serviceLedger.NewAccountService(accountRepo, txManager, metrics, cfg.CollationLanguage, logger)
	bankAccountService := serviceLedger.NewBankAccountService(bankAccountRepo, logger)
	yearService := serviceLedger.NewOperationalYearService(yearRepo, logger)
	initialService := serviceLedger.NewInitialBalanceService(accountInitialRepo, bankAccountInitialRepo, authorizer, logger)
	transactionService := serviceLedger.NewTransactionService(transactionRepo, authorizer, logger)
	verificationService := serviceLedger.NewVerificationService(verificationRepo, rowRepo, attachmentRepo, authorizer, logger)
	sessionService := serviceLedger.NewSessionService(userRepo, sessionTokens, logger)

	accountHandler := handler.NewAccountHandler(accountService, logger)
	bankAccountHandler := handler.NewBankAccountHandler(bankAccountService, logger)
	yearHandler := handler.NewOperationalYearHandler(yearService, logger)
	initialHandler := handler.NewInitialBalanceHandler(initialService, logger)
	transactionHandler := handler.NewTransactionHandler(transactionService, logger)
	verificationHandler := handler.NewVerificationHandler(verificationService, logger)
	sessionHandler := handler.NewSessionHandler(sessionService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.Health(pool))
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("POST /api/session", sessionHandler.CreateSession)

	// Account routes
	mux.HandleFunc("GET /api/accounts", accountHandler.ListAccounts)
	mux.HandleFunc("GET /api/accounts/tree", accountHandler.GetAccountTree) // Must come before {id} route
	mux.HandleFunc("POST /api/accounts", accountHandler.CreateAccount)
	mux.HandleFunc("GET /api/accounts/{id}", accountHandler.GetAccount)
	mux.HandleFunc("PATCH /api/accounts/{id}", accountHandler.UpdateAccount)
	mux.HandleFunc("DELETE /api/accounts/{id}", accountHandler.DeleteAccount)

	// Bank account routes
	mux.HandleFunc("GET /api/bank-accounts", bankAccountHandler.ListBankAccounts)
	mux.HandleFunc("POST /api/bank-accounts", bankAccountHandler.CreateBankAccount)
	mux.HandleFunc("GET /api/bank-accounts/{id}", bankAccountHandler.GetBankAccount)
	mux.HandleFunc("PATCH /api/bank-accounts/{id}", bankAccountHandler.UpdateBankAccount)
	mux.HandleFunc("DELETE /api/bank-accounts/{id}", bankAccountHandler.DeleteBankAccount)

	// Operational year routes
	mux.HandleFunc("GET /api/operational-years", yearHandler.ListOperationalYears)
	mux.HandleFunc("POST /api/operational-years", yearHandler.CreateOperationalYear)
	mux.HandleFunc("GET /api/operational-years/{id}", yearHandler.GetOperationalYear)
	mux.HandleFunc("PATCH /api/operational-years/{id}", yearHandler.UpdateOperationalYear)
	mux.HandleFunc("DELETE /api/operational-years/{id}", yearHandler.DeleteOperationalYear)

	// Initial balance routes; the two-segment forms address a record by year
	mux.HandleFunc("GET /api/operational-year-account-initials", initialHandler.ListAccountInitials)
	mux.HandleFunc("POST /api/operational-year-account-initials", initialHandler.CreateAccountInitial)
	mux.HandleFunc("GET /api/operational-year-account-initials/{id}", initialHandler.GetAccountInitial)
	mux.HandleFunc("PATCH /api/operational-year-account-initials/{id}", initialHandler.UpdateAccountInitial)
	mux.HandleFunc("DELETE /api/operational-year-account-initials/{id}", initialHandler.DeleteAccountInitial)
	mux.HandleFunc("GET /api/operational-year-account-initials/{operationalYearId}/{accountId}", initialHandler.FindAccountInitial)
	mux.HandleFunc("PATCH /api/operational-year-account-initials/{operationalYearId}/{accountId}", initialHandler.UpdateAccountInitialByYear)
	mux.HandleFunc("DELETE /api/operational-year-account-initials/{operationalYearId}/{accountId}", initialHandler.DeleteAccountInitialByYear)

	mux.HandleFunc("GET /api/operational-year-bank-account-initials", initialHandler.ListBankAccountInitials)
	mux.HandleFunc("POST /api/operational-year-bank-account-initials", initialHandler.CreateBankAccountInitial)
	mux.HandleFunc("GET /api/operational-year-bank-account-initials/{id}", initialHandler.GetBankAccountInitial)
	mux.HandleFunc("PATCH /api/operational-year-bank-account-initials/{id}", initialHandler.UpdateBankAccountInitial)
	mux.HandleFunc("DELETE /api/operational-year-bank-account-initials/{id}", initialHandler.DeleteBankAccountInitial)
	mux.HandleFunc("GET /api/operational-year-bank-account-initials/{operationalYearId}/{bankAccountId}", initialHandler.FindBankAccountInitial)
	mux.HandleFunc("PATCH /api/operational-year-bank-account-initials/{operationalYearId}/{bankAccountId}", initialHandler.UpdateBankAccountInitialByYear)
	mux.HandleFunc("DELETE /api/operational-year-bank-account-initials/{operationalYearId}/{bankAccountId}", initialHandler.DeleteBankAccountInitialByYear)

	// Bank transaction routes
	mux.HandleFunc("GET /api/transactions", transactionHandler.ListTransactions)
	mux.HandleFunc("POST /api/transactions", transactionHandler.CreateTransaction)
	mux.HandleFunc("GET /api/transactions/{id}", transactionHandler.GetTransaction)
	mux.HandleFunc("PATCH /api/transactions/{id}", transactionHandler.UpdateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", transactionHandler.DeleteTransaction)

	// Verification routes
	mux.HandleFunc("GET /api/verifications", verificationHandler.ListVerifications)
	mux.HandleFunc("POST /api/verifications", verificationHandler.CreateVerification)
	mux.HandleFunc("GET /api/verifications/{id}", verificationHandler.GetVerification)
	mux.HandleFunc("PATCH /api/verifications/{id}", verificationHandler.UpdateVerification)
	mux.HandleFunc("DELETE /api/verifications/{id}", verificationHandler.DeleteVerification)

	mux.HandleFunc("GET /api/verification-rows", verificationHandler.ListRows)
	mux.HandleFunc("POST /api/verification-rows", verificationHandler.CreateRow)
	mux.HandleFunc("GET /api/verification-rows/{id}", verificationHandler.GetRow)
	mux.HandleFunc("PATCH /api/verification-rows/{id}", verificationHandler.UpdateRow)
	mux.HandleFunc("DELETE /api/verification-rows/{id}", verificationHandler.DeleteRow)

	mux.HandleFunc("GET /api/verification-attachments", verificationHandler.ListAttachments)
	mux.HandleFunc("POST /api/verification-attachments", verificationHandler.CreateAttachment)
	mux.HandleFunc("GET /api/verification-attachments/{id}", verificationHandler.GetAttachment)
	mux.HandleFunc("PATCH /api/verification-attachments/{id}", verificationHandler.UpdateAttachment)
	mux.HandleFunc("DELETE /api/verification-attachments/{id}", verificationHandler.DeleteAttachment)

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Metrics → Auth → Routes
	h = middleware.AuthMiddleware(verifier, "POST /api/session", "GET /health", "GET /metrics")(h)
	h = middleware.Metrics(metrics, mux)(h)
	h = middleware.Recovery(logger)(h)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}()

	logger.Info("listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
	logger.Info("server stopped")
}
