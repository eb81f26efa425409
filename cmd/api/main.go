// Package main is the entry point for the Goat Farm API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/goat-farm/backend/config"
	"github.com/goat-farm/backend/internal/application/usecase/dashboard"
	"github.com/goat-farm/backend/internal/application/usecase/goat"
	"github.com/goat-farm/backend/internal/application/usecase/report"
	"github.com/goat-farm/backend/internal/application/usecase/transaction"
	"github.com/goat-farm/backend/internal/infra/db"
	"github.com/goat-farm/backend/internal/infra/server/router"
	"github.com/goat-farm/backend/internal/integration/entrypoint/controller"
	"github.com/goat-farm/backend/internal/integration/persistence"
	"github.com/goat-farm/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Goat Farm API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.GoatModel{},
			&model.TransactionModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers (only if database is available)
	var goatController *controller.GoatController
	var transactionController *controller.TransactionController
	var dashboardController *controller.DashboardController
	var reportController *controller.ReportController

	if database != nil {
		// Create repositories
		goatRepo := persistence.NewGoatRepository(database.DB())
		transactionRepo := persistence.NewTransactionRepository(database.DB())
		reportingRepo := persistence.NewReportingRepository(database.DB())

		// Create goat use cases
		listGoatsUseCase := goat.NewListGoatsUseCase(goatRepo)
		getGoatUseCase := goat.NewGetGoatUseCase(goatRepo, transactionRepo)
		createGoatUseCase := goat.NewCreateGoatUseCase(goatRepo)
		updateGoatUseCase := goat.NewUpdateGoatUseCase(goatRepo)
		deleteGoatUseCase := goat.NewDeleteGoatUseCase(goatRepo, transactionRepo)

		// Create transaction use cases
		listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
		getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
		createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, goatRepo)
		updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, goatRepo)
		deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

		// Create reporting use cases
		getDashboardUseCase := dashboard.NewGetDashboardUseCase(reportingRepo)
		getProfitLossUseCase := report.NewGetProfitLossUseCase(reportingRepo)
		getBalanceSheetUseCase := report.NewGetBalanceSheetUseCase(reportingRepo)

		goatController = controller.NewGoatController(
			listGoatsUseCase,
			getGoatUseCase,
			createGoatUseCase,
			updateGoatUseCase,
			deleteGoatUseCase,
		)

		transactionController = controller.NewTransactionController(
			listTransactionsUseCase,
			getTransactionUseCase,
			createTransactionUseCase,
			updateTransactionUseCase,
			deleteTransactionUseCase,
		)

		dashboardController = controller.NewDashboardController(getDashboardUseCase)
		reportController = controller.NewReportController(getProfitLossUseCase, getBalanceSheetUseCase)

		slog.Info("Registry and ledger systems initialized successfully")
	} else {
		slog.Warn("Registry and ledger systems not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(healthController, goatController, transactionController, dashboardController, reportController)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
