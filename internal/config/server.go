package config

import (
	"FinanceTracker/database/postgres"
	categoryHandler "FinanceTracker/internal/api/category/handler"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	categoryService "FinanceTracker/internal/api/category/service"
	transactionHandler "FinanceTracker/internal/api/transaction/handler"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/middleware"
	"FinanceTracker/pkg/redis"
	"FinanceTracker/pkg/validation"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine           *fiber.App
	db               *sqlx.DB
	log              *logrus.Logger
	middleware       middleware.Middleware
	validator        *validation.Validator
	handlers         []handler
	redisServer      redis.IRedis
	categoryCacheTTL time.Duration
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if server.validator == nil {
		return nil, fmt.Errorf("validator is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validation.Validator) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects to Postgres and, when DB_AUTO_MIGRATE=true, brings
// the schema up to date before any handler is registered.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db

		if os.Getenv("DB_AUTO_MIGRATE") == "true" {
			if err := postgres.RunMigrations(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			if s.log != nil {
				s.log.Info("Database migrations applied")
			}
		}

		return nil
	}
}

// WithRedisServer accepts nil; the category resolver then reads through to
// the database on every lookup.
func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithCategoryCacheTTL() ServerOption {
	return func(s *Server) error {
		raw := os.Getenv("CATEGORY_CACHE_TTL")
		if raw == "" {
			return nil
		}

		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid CATEGORY_CACHE_TTL %q: %w", raw, err)
		}
		s.categoryCacheTTL = ttl
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func (s *Server) RegisterHandler() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware(), middleware.LoggerConfig())

	// Category Domain
	categoryRepo := categoryRepository.New(s.db, s.log)
	categoryServices := categoryService.NewCategoryService(s.log, categoryRepo, s.redisServer, s.categoryCacheTTL)
	categoryHandlers := categoryHandler.New(s.log, s.middleware, categoryServices)

	// Transaction Domain
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo, categoryServices)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, categoryHandlers, transactionHandlers)
}

func (s *Server) Run() error {
	for _, h := range s.handlers {
		h.Start(s.engine)
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port()))
}

func (s *Server) Shutdown() error {
	if err := s.engine.Shutdown(); err != nil {
		return err
	}
	return s.db.Close()
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

func port() string {
	if p := os.Getenv("APP_PORT"); p != "" {
		return p
	}
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "3000"
}
