package config

import (
	"CatalogChatbot/database/postgres"
	"CatalogChatbot/internal/api/chatbot/extractor"
	chatbotHandler "CatalogChatbot/internal/api/chatbot/handler"
	"CatalogChatbot/internal/api/chatbot/intent"
	chatbotRepository "CatalogChatbot/internal/api/chatbot/repository"
	"CatalogChatbot/internal/api/chatbot/responder"
	chatbotService "CatalogChatbot/internal/api/chatbot/service"
	"CatalogChatbot/internal/middleware"
	"CatalogChatbot/pkg/nlp"
	"CatalogChatbot/pkg/redis"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const DefaultSuggestionCacheTTL = 5 * time.Minute

type ServerOption func(*Server) error

type Server struct {
	engine             *fiber.App
	db                 *sqlx.DB
	log                *logrus.Logger
	middleware         middleware.Middleware
	validator          *validator.Validate
	redisServer        redis.IRedis
	parser             nlp.Parser
	library            *intent.Library
	suggestionCacheTTL time.Duration
	corsOrigins        string
	chatbotService     chatbotService.IChatbotService
	handlers           []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{
		suggestionCacheTTL: DefaultSuggestionCacheTTL,
	}

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
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log)
	}
	if server.parser == nil {
		server.parser = nlp.Default()
	}
	if server.library == nil {
		library, err := intent.NewDefaultLibrary("")
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern library: %w", err)
		}
		server.library = library
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

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

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
		return nil
	}
}

// WithDB uses an already opened database instead of connecting from the
// environment.
func WithDB(db *sqlx.DB) ServerOption {
	return func(s *Server) error {
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
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

func WithNLP(parser nlp.Parser) ServerOption {
	return func(s *Server) error {
		s.parser = parser
		return nil
	}
}

// WithPatternLibrary compiles the pattern file at path, or the embedded
// library when path is empty. Invalid patterns fail server construction.
func WithPatternLibrary(path string) ServerOption {
	return func(s *Server) error {
		library, err := intent.NewDefaultLibrary(path)
		if err != nil {
			return fmt.Errorf("failed to compile pattern library: %w", err)
		}
		s.library = library
		return nil
	}
}

func WithSuggestionCacheTTL(ttl time.Duration) ServerOption {
	return func(s *Server) error {
		if ttl < 0 {
			return fmt.Errorf("suggestion cache ttl must not be negative")
		}
		s.suggestionCacheTTL = ttl
		return nil
	}
}

func WithCORS(origins string) ServerOption {
	return func(s *Server) error {
		s.corsOrigins = origins
		return nil
	}
}

// SuggestionCacheTTLFromEnv reads CHATBOT_SUGGESTION_CACHE_TTL as a Go
// duration, falling back to DefaultSuggestionCacheTTL.
func SuggestionCacheTTLFromEnv() (time.Duration, error) {
	raw := os.Getenv("CHATBOT_SUGGESTION_CACHE_TTL")
	if raw == "" {
		return DefaultSuggestionCacheTTL, nil
	}

	ttl, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid CHATBOT_SUGGESTION_CACHE_TTL %q: %w", raw, err)
	}
	return ttl, nil
}

func (s *Server) RegisterHandler() {
	// Chatbot Domain
	chatRepo := chatbotRepository.New(s.db, s.log)
	generator := responder.NewGenerator(
		intent.NewClassifier(s.library),
		extractor.New(s.parser),
	)
	s.chatbotService = chatbotService.NewChatbotService(s.log, chatRepo, generator, s.redisServer, s.suggestionCacheTTL)
	chatHandlers := chatbotHandler.New(s.log, s.validator, s.middleware, s.chatbotService)

	s.handlers = append(s.handlers, chatHandlers)
}

// Bootstrap prepares the chat tables and stores the default suggestions.
// It must run after RegisterHandler.
func (s *Server) Bootstrap(ctx context.Context) error {
	if s.chatbotService == nil {
		return fmt.Errorf("handlers must be registered before bootstrap")
	}

	if s.db != nil {
		if err := postgres.EnsureChatTables(ctx, s.db); err != nil {
			return err
		}
	}

	return s.chatbotService.SeedSuggestions(ctx)
}

func (s *Server) Run() error {
	s.setupRoutes()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupRoutes() {
	s.engine.Use(recover.New())
	if s.corsOrigins != "" {
		s.engine.Use(cors.New(cors.Config{
			AllowOrigins: s.corsOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, " + middleware.RequestIDKey,
		}))
	}
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	s.setupHealthCheck()
	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}
}

func (s *Server) Shutdown() error {
	if err := s.engine.Shutdown(); err != nil {
		return err
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
