package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/unplugapp/unplug-backend/internal/handlers/dto"
	httphandlers "github.com/unplugapp/unplug-backend/internal/handlers/http"
	"github.com/unplugapp/unplug-backend/internal/handlers/middleware"
	"github.com/unplugapp/unplug-backend/internal/infrastructure/auth"
	"github.com/unplugapp/unplug-backend/internal/infrastructure/config"
	"github.com/unplugapp/unplug-backend/internal/infrastructure/logging"
	"github.com/unplugapp/unplug-backend/internal/infrastructure/persistence/postgres"
	"github.com/unplugapp/unplug-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting unplug backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Validações customizadas de binding
	if err := dto.RegisterValidations(); err != nil {
		logger.Error("failed to register validations", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	appTimeRepo := postgres.NewAppTimeRepository(db)
	investmentRepo := postgres.NewInvestmentRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Token service
	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpiryDays)

	// Inicializar services
	authService := services.NewAuthService(userRepo, tokens, logger)
	userService := services.NewUserService(userRepo, logger)
	appTimeService := services.NewAppTimeService(userRepo, appTimeRepo, uow, logger)
	leaderboardService := services.NewLeaderboardService(userRepo, uow, logger)
	investmentService := services.NewInvestmentService(userRepo, investmentRepo, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	userHandler := httphandlers.NewUserHandler(userService)
	appTimeHandler := httphandlers.NewAppTimeHandler(appTimeService)
	leaderboardHandler := httphandlers.NewLeaderboardHandler(leaderboardService)
	investmentHandler := httphandlers.NewInvestmentHandler(investmentService)

	authMiddleware := middleware.NewAuthMiddleware(tokens)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})

	// Rotas públicas
	router.POST("/auth/login", authHandler.Login)

	// Rotas autenticadas
	user := router.Group("/user", authMiddleware.RequireAuth())
	{
		user.GET("/profile", userHandler.GetProfile)
		user.GET("/apps", userHandler.GetTrackedApps)
		user.PUT("/apps", userHandler.ReplaceTrackedApps)
		user.GET("/apptime", appTimeHandler.GetHistory)
		user.POST("/apptime", appTimeHandler.RecordEntry)
	}

	router.GET("/leaderboard", authMiddleware.RequireAuth(), leaderboardHandler.GetLeaderboard)

	investments := router.Group("/investments", authMiddleware.RequireAuth())
	{
		investments.GET("/portfolio", investmentHandler.GetPortfolio)
		investments.POST("/setup", investmentHandler.SetupInvestments)
		investments.GET("/history", investmentHandler.GetHistory)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
