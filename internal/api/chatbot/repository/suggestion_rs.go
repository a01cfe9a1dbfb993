package chatbotRepository

import (
	"CatalogChatbot/internal/api/chatbot"
	"CatalogChatbot/internal/entity"
	contextPkg "CatalogChatbot/pkg/context"
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const uniqueViolation = pq.ErrorCode("23505")

type SuggestionDB struct {
	ID         int64          `db:"id"`
	Content    sql.NullString `db:"content"`
	UsageCount sql.NullInt64  `db:"usage_count"`
}

// GetTopSuggestions orders by usage count, oldest first among equals.
func (r *suggestionsRepository) GetTopSuggestions(ctx context.Context, limit int) ([]entity.Suggestion, error) {
	var rows []SuggestionDB
	argsKV := map[string]interface{}{
		"limit": limit,
	}

	if err := selectNamed(ctx, r.q, r.log, "GetTopSuggestions", &rows, queryGetTopSuggestions, argsKV); err != nil {
		return nil, err
	}

	suggestions := make([]entity.Suggestion, 0, len(rows))
	for _, row := range rows {
		suggestions = append(suggestions, entity.Suggestion{
			ID:         row.ID,
			Content:    row.Content.String,
			UsageCount: int(row.UsageCount.Int64),
		})
	}

	return suggestions, nil
}

func (r *suggestionsRepository) CreateSuggestion(ctx context.Context, content string) (entity.Suggestion, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"content": content,
	}

	query, args, err := bindNamed(ctx, r.q, r.log, "CreateSuggestion", queryCreateSuggestion, argsKV)
	if err != nil {
		return entity.Suggestion{}, err
	}

	suggestion := entity.Suggestion{Content: content}
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&suggestion.ID, &suggestion.UsageCount); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"content":    content,
			}).Warn("CreateSuggestion duplicate content")
			return entity.Suggestion{}, chatbot.ErrSuggestionExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateSuggestion execution err")
		return entity.Suggestion{}, err
	}

	return suggestion, nil
}

// SeedSuggestions inserts the contents that are not stored yet and reports
// how many were added.
func (r *suggestionsRepository) SeedSuggestions(ctx context.Context, contents []string) (int, error) {
	added := 0

	for _, content := range contents {
		query, args, err := bindNamed(ctx, r.q, r.log, "SeedSuggestions", querySeedSuggestion, map[string]interface{}{
			"content": content,
		})
		if err != nil {
			return added, err
		}

		result, err := r.q.ExecContext(ctx, query, args...)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"error":      err.Error(),
			}).Error("SeedSuggestions execution err")
			return added, err
		}

		if affected, err := result.RowsAffected(); err == nil {
			added += int(affected)
		}
	}

	return added, nil
}

// IncrementUsage bumps the usage counter of the suggestion with exactly this
// content and reports whether one existed.
func (r *suggestionsRepository) IncrementUsage(ctx context.Context, content string) (bool, error) {
	query, args, err := bindNamed(ctx, r.q, r.log, "IncrementUsage", queryIncrementSuggestionUsage, map[string]interface{}{
		"content": content,
	})
	if err != nil {
		return false, err
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("IncrementUsage execution err")
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
