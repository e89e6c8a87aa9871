package config

import (
	mongoDB "FinanceTracker/database/mongo"
	authHandler "FinanceTracker/internal/api/auth/handler"
	authRepository "FinanceTracker/internal/api/auth/repository"
	authService "FinanceTracker/internal/api/auth/service"
	transactionHandler "FinanceTracker/internal/api/transaction/handler"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/middleware"
	"FinanceTracker/pkg/bcrypt"
	jwtPkg "FinanceTracker/pkg/jwt"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	cfg          *Config
	db           *mongo.Database
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	tokenService jwtPkg.ItfJwt
	bcryptUtils  bcrypt.IBcrypt
	handlers     []handler
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
	if server.cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	return server, nil
}

func WithConfig(cfg *Config) ServerOption {
	return func(s *Server) error {
		s.cfg = cfg
		return nil
	}
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

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		if s.cfg == nil {
			return fmt.Errorf("config must be initialized before database")
		}
		db, err := mongoDB.New(s.cfg.MongoURI, s.cfg.MongoDBName, s.log)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithTokenService() ServerOption {
	return func(s *Server) error {
		if s.cfg == nil {
			return fmt.Errorf("config must be initialized before token service")
		}
		s.tokenService = jwtPkg.New(s.cfg.JWTSecret)
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.tokenService == nil {
			return fmt.Errorf("token service must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.tokenService)
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.tokenService, s.bcryptUtils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware, s.cfg.AppEnv)

	// Transaction domain
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.New(s.log, transactionRepo)
	transactionHandlers := transactionHandler.New(s.log, transactionServices, s.validator, s.middleware, s.cfg.AppEnv)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, transactionHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)
	s.engine.Use(s.middleware.NewAuthContext)

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}

	return s.engine.Listen(fmt.Sprintf(":%s", s.cfg.AppPort))
}

func (s *Server) Shutdown() {
	if err := s.engine.Shutdown(); err != nil {
		s.log.Errorf("Error shutting down fiber: %v", err)
	}
	mongoDB.Disconnect(s.db, s.log)
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
