package chatbotService

import (
	"CatalogChatbot/internal/api/chatbot"
	chatbotRepository "CatalogChatbot/internal/api/chatbot/repository"
	"CatalogChatbot/internal/api/chatbot/responder"
	"CatalogChatbot/pkg/redis"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type IChatbotService interface {
	ProcessMessage(ctx context.Context, req chatbot.MessageRequest) (*chatbot.ChatbotResponse, error)
	GetHistory(ctx context.Context, limit int) (*chatbot.HistoryResponse, error)
	GetSuggestions(ctx context.Context, query string) (*chatbot.SuggestionsResponse, error)
	AddSuggestion(ctx context.Context, req chatbot.MessageRequest) (*chatbot.AddSuggestionResponse, error)
	SeedSuggestions(ctx context.Context) error
}

type chatbotService struct {
	log       *logrus.Logger
	chatRepo  chatbotRepository.Repository
	generator *responder.Generator
	cache     redis.IRedis
	cacheTTL  time.Duration
}

// NewChatbotService wires the chat flow. cache may be nil, in which case
// suggestions are always read from the database.
func NewChatbotService(
	log *logrus.Logger,
	chatRepo chatbotRepository.Repository,
	generator *responder.Generator,
	cache redis.IRedis,
	cacheTTL time.Duration,
) IChatbotService {
	return &chatbotService{
		log:       log,
		chatRepo:  chatRepo,
		generator: generator,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}
