package chatbotService

import (
	"CatalogChatbot/internal/api/chatbot"
	"CatalogChatbot/internal/entity"
	contextPkg "CatalogChatbot/pkg/context"
	"CatalogChatbot/pkg/redis"
	"errors"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	suggestionsCacheKey = "chatbot:suggestions:top"
	topSuggestionLimit  = 6
	suggestionPoolSize  = 200
)

var DefaultSuggestions = []string{
	"List all products",
	"Show product categories",
	"Show brands",
	"List all users",
	"How many products in stock?",
	"How many suppliers?",
	"Show out of stock products",
	"Show user permissions",
	"Give email id of supplier Avantika Patil",
	"What's the price of Laptop XPS 15?",
	"Get phone number of supplier Tech Solutions",
}

// GetSuggestions returns the most used suggestions. A non-empty query ranks
// the stored suggestions by fuzzy match instead.
func (s *chatbotService) GetSuggestions(ctx context.Context, query string) (*chatbot.SuggestionsResponse, error) {
	query = strings.TrimSpace(query)

	if query == "" {
		if cached, ok := s.cachedSuggestions(ctx); ok {
			return &chatbot.SuggestionsResponse{Suggestions: cached}, nil
		}
	}

	limit := topSuggestionLimit
	if query != "" {
		limit = suggestionPoolSize
	}

	suggestions, err := s.loadSuggestions(ctx, limit)
	if err != nil {
		return nil, err
	}

	contents := make([]string, 0, len(suggestions))
	for _, suggestion := range suggestions {
		contents = append(contents, suggestion.Content)
	}

	if query != "" {
		return &chatbot.SuggestionsResponse{Suggestions: rankSuggestions(query, contents)}, nil
	}

	s.cacheSuggestions(ctx, contents)
	return &chatbot.SuggestionsResponse{Suggestions: contents}, nil
}

func (s *chatbotService) AddSuggestion(ctx context.Context, req chatbot.MessageRequest) (*chatbot.AddSuggestionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	content := strings.TrimSpace(req.Message)
	if content == "" {
		return nil, chatbot.ErrEmptyMessage
	}

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if _, err := repo.Suggestions.CreateSuggestion(ctx, content); err != nil {
		if errors.Is(err, chatbot.ErrSuggestionExists) {
			return &chatbot.AddSuggestionResponse{
				Status:  chatbot.SuggestionStatusExists,
				Message: "Suggestion already exists",
			}, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to add suggestion")
		return nil, chatbot.ErrAddSuggestion
	}

	s.invalidateSuggestions(ctx)

	return &chatbot.AddSuggestionResponse{
		Status:  chatbot.SuggestionStatusSuccess,
		Message: "Suggestion added successfully",
	}, nil
}

// SeedSuggestions stores every default suggestion that is missing.
func (s *chatbotService) SeedSuggestions(ctx context.Context) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	added, err := repo.Suggestions.SeedSuggestions(ctx, DefaultSuggestions)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to seed suggestions")
		return chatbot.ErrSeedSuggestions
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return chatbot.ErrSeedSuggestions
	}

	if added > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"added":      added,
		}).Info("Seeded default suggestions")
		s.invalidateSuggestions(ctx)
	}

	return nil
}

func (s *chatbotService) loadSuggestions(ctx context.Context, limit int) ([]entity.Suggestion, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	suggestions, err := repo.Suggestions.GetTopSuggestions(ctx, limit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load suggestions")
		return nil, chatbot.ErrLoadSuggestions
	}

	if len(suggestions) > 0 {
		return suggestions, nil
	}

	if err := s.SeedSuggestions(ctx); err != nil {
		return nil, err
	}

	suggestions, err = repo.Suggestions.GetTopSuggestions(ctx, limit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load seeded suggestions")
		return nil, chatbot.ErrLoadSuggestions
	}

	return suggestions, nil
}

func (s *chatbotService) cachedSuggestions(ctx context.Context) ([]string, bool) {
	if s.cache == nil {
		return nil, false
	}

	var cached []string
	if err := s.cache.GetJSON(ctx, suggestionsCacheKey, &cached); err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"error":      err.Error(),
			}).Warn("Failed to read suggestion cache")
		}
		return nil, false
	}

	return cached, true
}

func (s *chatbotService) cacheSuggestions(ctx context.Context, contents []string) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}

	if err := s.cache.SetJSON(ctx, suggestionsCacheKey, contents, s.cacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to write suggestion cache")
	}
}

func (s *chatbotService) invalidateSuggestions(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, suggestionsCacheKey); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to invalidate suggestion cache")
	}
}

// rankSuggestions keeps the best fuzzy matches of query, best first.
func rankSuggestions(query string, contents []string) []string {
	matches := fuzzy.Find(query, contents)

	ranked := make([]string, 0, topSuggestionLimit)
	for _, match := range matches {
		if len(ranked) == topSuggestionLimit {
			break
		}
		ranked = append(ranked, match.Str)
	}
	return ranked
}
