package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "jobmatch_backend/docs"
	"jobmatch_backend/internal/auth"
	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/database"
	"jobmatch_backend/internal/email"
	"jobmatch_backend/internal/handlers"
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/middleware"
	"jobmatch_backend/internal/routes"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/validator"
	"jobmatch_backend/internal/workers"
	"jobmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App - собранное приложение: роутер и сервисы поверх одного пула БД
type App struct {
	Router   *gin.Engine
	Services *services.ServiceContainer
}

func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	// В проде схему накатывает `matchctl migrate`
	if cfg.Server.Env != "production" {
		if err := database.AutoMigrate(db); err != nil {
			logger.Fatal("AutoMigrate failed", "error", err)
		}
	}

	emailProvider, err := newEmailProvider(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize email provider", "error", err)
	}
	defer emailProvider.Close()

	application := New(cfg, db, emailProvider)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workers.NewJobExpiryWorker(db, application.Services.JobService, cfg.Workers.ExpiryInterval).Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
}

// New собирает сервисы, хэндлеры и роутер
func New(cfg *config.Config, db *gorm.DB, emailProvider email.Provider) *App {
	apperrors.SetDebug(cfg.Server.Env != "production")
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	serviceContainer := services.NewServiceContainer(emailProvider)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())
	verifier := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	ginRouter := initializeGinRouter(db)
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(verifier))

	return &App{
		Router:   ginRouter,
		Services: serviceContainer,
	}
}

// SetupRouter - только роутер, для тестов и встраивания
func SetupRouter(cfg *config.Config, db *gorm.DB, emailProvider email.Provider) *gin.Engine {
	return New(cfg, db, emailProvider).Router
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// newEmailProvider - SMTP, если email включен, иначе письма только логируются
func newEmailProvider(cfg *config.Config) (email.Provider, error) {
	templates := email.NewTemplateManager()

	if !cfg.Email.Enabled {
		logger.Warn("Email disabled, notifications are kept in memory only")
		return email.NewMockProvider(templates), nil
	}

	provider := email.NewSMTPProvider(email.ConfigFrom(cfg), templates)
	if err := provider.Validate(); err != nil {
		return nil, err
	}
	return provider, nil
}
