package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"devboost/docs" // swagger docs

	"devboost/internal/auth"
	"devboost/internal/cache"
	"devboost/internal/config"
	"devboost/internal/db"
	"devboost/internal/handler"
	"devboost/internal/llm"
	"devboost/internal/logging"
	"devboost/internal/repository"
	"devboost/internal/router"
	"devboost/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title DevBoost API
// @version 1.0
// @description Team productivity dashboard API with cookie sessions, AI code assistance and simulated analytics.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name auth-token
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	accountRepo, err := newAccountRepository(cfg, logger)
	if err != nil {
		return err
	}

	users, err := config.LoadUsers(cfg.UsersFile)
	if err != nil {
		return err
	}
	seeded, err := service.NewAccountService(accountRepo).SeedAccounts(ctx, users)
	if err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}
	logger.Info("account roster loaded", zap.String("store", cfg.UserStore), zap.Int("created", seeded))

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		logger.Warn("redis unreachable, dashboard state will not persist", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	cancel()

	backend, err := llm.New(ctx, cfg.AI)
	if err != nil {
		logger.Warn("generation backend unavailable", zap.String("provider", cfg.AI.Provider), zap.Error(err))
		backend = llm.Unavailable(err)
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessions := auth.NewSessions(jwtService, cfg.IsProduction())

	// Initialize services
	authService := service.NewAuthService(accountRepo)
	assistService := service.NewCodeAssistService(backend, cfg.AI, logger)
	dashboardService := service.NewDashboardService(
		repository.NewDashboardRepository(cacheClient, auth.SessionTTL),
		logger,
	)

	e := echo.New()
	router.Register(e, logger, sessions, router.Handlers{
		Auth:          handler.NewAuthHandler(authService, sessions),
		AI:            handler.NewAIHandler(assistService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
		Notifications: handler.NewNotificationHandler(dashboardService),
		Team:          handler.NewTeamHandler(service.NewTeamService(accountRepo)),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	logger.Info("swagger documentation available", zap.String("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html"))

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.ServerPort
		logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Environment))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server start: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return e.Shutdown(shutdownCtx)
}

func newAccountRepository(cfg *config.Config, logger *zap.Logger) (repository.AccountRepository, error) {
	if cfg.UserStore != config.StoreMySQL {
		return repository.NewMemoryAccountRepository(), nil
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		return nil, fmt.Errorf("database init: %w", err)
	}

	reset := os.Getenv("RESET_DB") == "true"
	if reset {
		logger.Warn("RESET_DB=true detected, dropping accounts table")
	}
	if err := db.Migrate(gormDB, reset); err != nil {
		return nil, err
	}
	return repository.NewAccountRepository(gormDB), nil
}
