// Package main is the entry point for the Invoice Hub API server.
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

	"github.com/invoice-hub/backend/config"
	analyticsusecase "github.com/invoice-hub/backend/internal/application/usecase/analytics"
	authusecase "github.com/invoice-hub/backend/internal/application/usecase/auth"
	chatusecase "github.com/invoice-hub/backend/internal/application/usecase/chat"
	exportusecase "github.com/invoice-hub/backend/internal/application/usecase/export"
	invoiceusecase "github.com/invoice-hub/backend/internal/application/usecase/invoice"
	"github.com/invoice-hub/backend/internal/infra/db"
	"github.com/invoice-hub/backend/internal/infra/server/router"
	"github.com/invoice-hub/backend/internal/integration/adapters"
	"github.com/invoice-hub/backend/internal/integration/entrypoint/controller"
	"github.com/invoice-hub/backend/internal/integration/entrypoint/middleware"
	"github.com/invoice-hub/backend/internal/integration/persistence"
	"github.com/invoice-hub/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Invoice Hub API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.InvoiceModel{},
		&model.InvoiceLineModel{},
		&model.UserModel{},
		&model.RefreshTokenModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	stateStore, err := adapters.NewRedisStateStore(cfg.Redis.URL)
	if err != nil {
		slog.Error("Redis connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := stateStore.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	// Repositories
	invoiceRepo := persistence.NewInvoiceRepository(database.DB())
	analyticsRepo := persistence.NewAnalyticsRepository(database.DB())
	userRepo := persistence.NewUserRepository(database.DB())
	tokenRepo := persistence.NewTokenRepository(database.DB())

	// Adapters
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)
	oauthService := adapters.NewGoogleOAuthService(
		cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)
	aiService := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	exporter := adapters.NewExcelExporter()

	// Use cases
	reconciler := invoiceusecase.NewReconciler(invoiceRepo)
	listInvoicesUseCase := invoiceusecase.NewListInvoicesUseCase(invoiceRepo, reconciler)
	getInvoiceUseCase := invoiceusecase.NewGetInvoiceUseCase(invoiceRepo, reconciler)
	updateInvoiceUseCase := invoiceusecase.NewUpdateInvoiceUseCase(invoiceRepo)
	createInvoiceUseCase := invoiceusecase.NewCreateInvoiceUseCase(invoiceRepo)
	listVendorsUseCase := invoiceusecase.NewListVendorsUseCase(invoiceRepo)
	getSummaryUseCase := analyticsusecase.NewGetSummaryUseCase(invoiceRepo, analyticsRepo, reconciler)
	exportInvoicesUseCase := exportusecase.NewExportInvoicesUseCase(invoiceRepo, reconciler, exporter)
	askUseCase := chatusecase.NewAskUseCase(invoiceRepo, analyticsRepo, reconciler, aiService)
	startLoginUseCase := authusecase.NewStartGoogleLoginUseCase(oauthService, stateStore)
	callbackUseCase := authusecase.NewHandleGoogleCallbackUseCase(oauthService, stateStore, userRepo, tokenService)
	profileUseCase := authusecase.NewGetProfileUseCase(userRepo)
	logoutUseCase := authusecase.NewLogoutUseCase(tokenService)

	// Controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck)
	invoiceController := controller.NewInvoiceController(
		listInvoicesUseCase, getInvoiceUseCase, updateInvoiceUseCase,
		createInvoiceUseCase, listVendorsUseCase)
	analyticsController := controller.NewAnalyticsController(getSummaryUseCase)
	exportController := controller.NewExportController(exportInvoicesUseCase)
	chatController := controller.NewChatController(askUseCase)
	authController := controller.NewAuthController(
		startLoginUseCase, callbackUseCase, profileUseCase, logoutUseCase,
		cfg.Server.FrontendURL,
		controller.AuthCookieSettings{
			Secure:     cfg.JWT.CookieSecure,
			AccessTTL:  cfg.JWT.AccessTokenExpiry,
			RefreshTTL: cfg.JWT.RefreshTokenExpiry,
		})
	chatRateLimiter := middleware.NewRateLimiterWithConfig(cfg.Chat.RateLimitPerMinute, time.Minute)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController, invoiceController, analyticsController,
		exportController, chatController, authController,
		chatRateLimiter, authMiddleware)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

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
