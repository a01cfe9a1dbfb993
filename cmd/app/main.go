package main

import (
	"CatalogChatbot/internal/config"
	"CatalogChatbot/pkg/log"
	"CatalogChatbot/pkg/nlp"
	"CatalogChatbot/pkg/redis"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	cacheTTL, err := config.SuggestionCacheTTLFromEnv()
	if err != nil {
		logger.Fatal(err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisServer(redisServer),
		config.WithMiddleware(),
		config.WithNLP(nlp.Default()),
		config.WithPatternLibrary(os.Getenv("CHATBOT_PATTERNS_FILE")),
		config.WithSuggestionCacheTTL(cacheTTL),
		config.WithCORS(os.Getenv("CORS_ALLOW_ORIGINS")),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := server.Bootstrap(ctx); err != nil {
		cancel()
		logger.Fatalf("Error preparing chat storage: %v", err)
	}
	cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	if err := server.Shutdown(); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
