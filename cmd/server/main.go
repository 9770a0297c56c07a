package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sidequest/internal/config"
	"sidequest/internal/database"
	"sidequest/internal/handlers"
	"sidequest/internal/middleware"
	"sidequest/internal/repositories"
	"sidequest/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments configure through the environment
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	incomeRepo := repositories.NewIncomeRepository(db)
	conversationRepo := repositories.NewConversationRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	tokenService := services.NewTokenService(&cfg.JWT)
	currencyService := services.NewCurrencyService(logger)
	authService := services.NewAuthService(userRepo, refreshTokenRepo, blacklistedTokenRepo, passwordService, tokenService, metrics, logger)
	userService := services.NewUserService(userRepo, refreshTokenRepo, passwordService, currencyService, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	expenseService := services.NewExpenseService(expenseRepo, userRepo, currencyService, metrics, logger)
	incomeService := services.NewIncomeService(incomeRepo, userRepo, currencyService, metrics, logger)
	summaryService := services.NewSummaryService(expenseRepo, incomeRepo, userRepo, currencyService, logger)
	chatService := services.NewChatService(conversationRepo, messageRepo, metrics, logger)
	completionService := services.NewCompletionService(cfg.OpenAI, metrics, logger)
	sampleDataService := services.NewSampleDataService(expenseRepo, incomeRepo, categoryService, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, currencyService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	dashboardHandler := handlers.NewDashboardHandler(summaryService)
	chatHandler := handlers.NewChatHandler(chatService, completionService)
	devHandler := handlers.NewDevHandler(sampleDataService, cfg)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout)

	authRequired := middleware.RequireAuth(tokenService, blacklistedTokenRepo)

	me := api.Group("/me", authRequired)
	me.GET("", userHandler.GetProfile)
	me.PUT("", userHandler.UpdateProfile)
	me.PUT("/currency", userHandler.UpdateCurrency)
	me.PUT("/password", userHandler.ChangePassword)

	categories := api.Group("/categories", authRequired)
	categories.GET("", categoryHandler.GetCategories)
	categories.PUT("", categoryHandler.SaveCategories)

	expenses := api.Group("/expenses", authRequired)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	income := api.Group("/income", authRequired)
	income.POST("", incomeHandler.CreateIncome)
	income.GET("", incomeHandler.ListIncome)
	income.GET("/:id", incomeHandler.GetIncome)
	income.PUT("/:id", incomeHandler.UpdateIncome)
	income.DELETE("/:id", incomeHandler.DeleteIncome)

	conversations := api.Group("/conversations", authRequired)
	conversations.GET("", chatHandler.ListConversations)
	conversations.POST("", chatHandler.CreateConversation)
	conversations.GET("/:id", chatHandler.GetConversation)
	conversations.POST("/:id/messages", chatHandler.AddMessage)
	conversations.DELETE("/:id", chatHandler.DeleteConversation)

	api.GET("/dashboard/summary", dashboardHandler.GetSummary, authRequired)
	api.POST("/dev/sample-data", devHandler.GenerateSampleData, authRequired)

	// The streaming completion endpoint keeps the original client's path
	e.POST("/api/chat", chatHandler.Completion, authRequired)

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting server",
		"addr", srv.Addr,
		"environment", cfg.Server.Environment,
		"chat_enabled", cfg.ChatEnabled(),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
