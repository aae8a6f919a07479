package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmittmann/tint"

	"github.com/reign-ny/membership-approval/internal/config"
	"github.com/reign-ny/membership-approval/internal/handler"
	"github.com/reign-ny/membership-approval/internal/middleware"
	"github.com/reign-ny/membership-approval/internal/repository"
	"github.com/reign-ny/membership-approval/internal/repository/memory"
	"github.com/reign-ny/membership-approval/internal/repository/postgres"
	"github.com/reign-ny/membership-approval/internal/service"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config  *config.Config
	db      *pgxpool.Pool
	handler http.Handler
	server  *http.Server
	logger  *slog.Logger
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	app := &App{
		config: cfg,
		logger: newLogger(cfg.Log),
	}

	return app, nil
}

// newLogger строит JSON логгер, либо цветной tint для LOG_FORMAT=text
func newLogger(cfg config.LogConfig) *slog.Logger {
	level := parseLevel(cfg.Level)
	if cfg.Format == "text" {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	var invitationRepo repository.InvitationRepository

	switch a.config.Storage.Driver {
	case config.StorageMemory:
		invitationRepo = memory.NewInvitationRepository(1)
		a.logger.Warn("Using in-memory storage, invitations are lost on restart")
	default:
		// Подключаемся к базе данных
		if err := a.connectDB(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		invitationRepo = postgres.NewInvitationRepository(a.db)
	}

	// Настраиваем HTTP сервер и роутинг
	a.setupServer(invitationRepo)

	a.logger.Info("Application initialized successfully", "storage", a.config.Storage.Driver)
	return nil
}

// connectDB устанавливает подключение к PostgreSQL с connection pool
func (a *App) connectDB(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	// Настраиваем размеры connection pool
	poolConfig.MaxConns = a.config.Database.MaxConns
	poolConfig.MinConns = a.config.Database.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	a.logger.Info("Connected to database")
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer(invitationRepo repository.InvitationRepository) {
	// Инициализируем слой сервисов
	approvalService := service.NewApprovalService(a.logger)
	invitationService := service.NewInvitationService(invitationRepo, a.config.Approval.PublicBaseURL, a.logger)
	authService := service.NewAuthService(
		a.config.JWT.AdminKey,
		a.config.JWT.Secret,
		a.config.JWT.GetExpiration(),
	)

	// Инициализируем HTTP обработчики
	authHandler := handler.NewAuthHandler(authService)
	approvalHandler := handler.NewApprovalHandler(approvalService)
	invitationHandler := handler.NewInvitationHandler(invitationService)

	// Инициализируем middleware для JWT авторизации
	authMiddleware := middleware.AuthMiddleware(authService)

	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check для мониторинга
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			a.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Публичные эндпоинты (без авторизации)
	r.Post("/auth/login", authHandler.Login)
	r.Get("/approval", approvalHandler.GetApproval)
	r.Route("/numerals", func(r chi.Router) {
		r.Get("/roman/{n}", handler.ToRoman)
		r.Get("/arabic/{numeral}", handler.ToArabic)
	})

	// Выдача приглашений доступна только администратору
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Post("/invitations", invitationHandler.Create)
		r.Get("/invitations", invitationHandler.List)
		r.Get("/invitations/{number}", invitationHandler.Get)
	})

	a.handler = r

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Handler возвращает корневой HTTP обработчик (доступен после Initialize)
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	// Закрываем подключения к базе данных
	if a.db != nil {
		a.db.Close()
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
