package chatbotRepository

import (
	"CatalogChatbot/internal/api/chatbot/responder"
	"CatalogChatbot/internal/entity"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Catalog:     &catalogRepository{q: sqlExecutor, log: r.log},
		Messages:    &messagesRepository{q: sqlExecutor, log: r.log},
		Suggestions: &suggestionsRepository{q: sqlExecutor, log: r.log},
		Commit:      commitFunc,
		Rollback:    rollbackFunc,
	}, nil
}

type Client struct {
	Catalog responder.CatalogStore

	Messages interface {
		CreateMessage(ctx context.Context, content string, isUser bool) (entity.ChatMessage, error)
		GetRecentMessages(ctx context.Context, limit int) ([]entity.ChatMessage, error)
	}

	Suggestions interface {
		GetTopSuggestions(ctx context.Context, limit int) ([]entity.Suggestion, error)
		CreateSuggestion(ctx context.Context, content string) (entity.Suggestion, error)
		SeedSuggestions(ctx context.Context, contents []string) (int, error)
		IncrementUsage(ctx context.Context, content string) (bool, error)
	}

	Commit   func() error
	Rollback func() error
}

type catalogRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type messagesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type suggestionsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
