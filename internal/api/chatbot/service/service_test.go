package chatbotService

import (
	"CatalogChatbot/internal/api/chatbot/extractor"
	"CatalogChatbot/internal/api/chatbot/intent"
	chatbotRepository "CatalogChatbot/internal/api/chatbot/repository"
	"CatalogChatbot/internal/api/chatbot/responder"
	"CatalogChatbot/internal/entity"
	"CatalogChatbot/pkg/nlp"
	redisPkg "CatalogChatbot/pkg/redis"
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	responder.CatalogStore

	total   int
	inStock int
	err     error
}

func (c *fakeCatalog) CountProducts(ctx context.Context) (int, error) {
	return c.total, c.err
}

func (c *fakeCatalog) CountInStock(ctx context.Context) (int, error) {
	return c.inStock, c.err
}

type fakeMessages struct {
	saved   []entity.ChatMessage
	history []entity.ChatMessage
	nextID  int64
	err     error

	lastLimit int
}

func (m *fakeMessages) CreateMessage(ctx context.Context, content string, isUser bool) (entity.ChatMessage, error) {
	if m.err != nil {
		return entity.ChatMessage{}, m.err
	}
	m.nextID++
	message := entity.ChatMessage{
		ID:        m.nextID,
		Content:   content,
		IsUser:    isUser,
		Timestamp: time.Date(2024, 5, 1, 10, 0, int(m.nextID), 0, time.UTC),
	}
	m.saved = append(m.saved, message)
	return message, nil
}

func (m *fakeMessages) GetRecentMessages(ctx context.Context, limit int) ([]entity.ChatMessage, error) {
	m.lastLimit = limit
	return m.history, m.err
}

type fakeSuggestions struct {
	stored []entity.Suggestion

	listErr      error
	createErr    error
	seedErr      error
	incrementErr error
	bumped       bool

	listCalls   int
	seedCalls   int
	created     []string
	incremented []string
}

func (s *fakeSuggestions) GetTopSuggestions(ctx context.Context, limit int) ([]entity.Suggestion, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	if len(s.stored) > limit {
		return s.stored[:limit], nil
	}
	return s.stored, nil
}

func (s *fakeSuggestions) CreateSuggestion(ctx context.Context, content string) (entity.Suggestion, error) {
	if s.createErr != nil {
		return entity.Suggestion{}, s.createErr
	}
	s.created = append(s.created, content)
	suggestion := entity.Suggestion{ID: int64(len(s.stored) + 1), Content: content}
	s.stored = append(s.stored, suggestion)
	return suggestion, nil
}

func (s *fakeSuggestions) SeedSuggestions(ctx context.Context, contents []string) (int, error) {
	s.seedCalls++
	if s.seedErr != nil {
		return 0, s.seedErr
	}
	for _, content := range contents {
		s.stored = append(s.stored, entity.Suggestion{ID: int64(len(s.stored) + 1), Content: content})
	}
	return len(contents), nil
}

func (s *fakeSuggestions) IncrementUsage(ctx context.Context, content string) (bool, error) {
	s.incremented = append(s.incremented, content)
	return s.bumped, s.incrementErr
}

type fakeRepository struct {
	catalog     *fakeCatalog
	messages    *fakeMessages
	suggestions *fakeSuggestions

	err       error
	clients   int
	txClients int
	commits   int
	commitErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		catalog:     &fakeCatalog{},
		messages:    &fakeMessages{},
		suggestions: &fakeSuggestions{},
	}
}

func (r *fakeRepository) NewClient(tx bool) (chatbotRepository.Client, error) {
	if r.err != nil {
		return chatbotRepository.Client{}, r.err
	}
	r.clients++
	if tx {
		r.txClients++
	}

	return chatbotRepository.Client{
		Catalog:     r.catalog,
		Messages:    r.messages,
		Suggestions: r.suggestions,
		Commit: func() error {
			if r.commitErr != nil {
				return r.commitErr
			}
			r.commits++
			return nil
		},
		Rollback: func() error { return nil },
	}, nil
}

func newTestGenerator(t *testing.T) *responder.Generator {
	t.Helper()

	library, err := intent.NewDefaultLibrary("")
	require.NoError(t, err)

	return responder.NewGenerator(intent.NewClassifier(library), extractor.New(nlp.Default()))
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, redisPkg.IRedis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, redisPkg.NewFromClient(client)
}

func newTestService(t *testing.T, repo *fakeRepository, cache redisPkg.IRedis) IChatbotService {
	t.Helper()
	return NewChatbotService(newTestLogger(), repo, newTestGenerator(t), cache, time.Minute)
}
