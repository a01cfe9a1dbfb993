package chatbotRepository

import (
	"CatalogChatbot/internal/entity"
	"context"
	"database/sql"
	"time"
)

type MessageDB struct {
	ID        int64          `db:"id"`
	Content   sql.NullString `db:"content"`
	IsUser    bool           `db:"is_user"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *messagesRepository) CreateMessage(ctx context.Context, content string, isUser bool) (entity.ChatMessage, error) {
	argsKV := map[string]interface{}{
		"content": content,
		"is_user": isUser,
	}

	message := entity.ChatMessage{
		Content: content,
		IsUser:  isUser,
	}

	if err := scanNamed(ctx, r.q, r.log, "CreateMessage", queryCreateMessage, argsKV, &message.ID, &message.Timestamp); err != nil {
		return entity.ChatMessage{}, err
	}

	return message, nil
}

// GetRecentMessages returns up to limit messages, newest first.
func (r *messagesRepository) GetRecentMessages(ctx context.Context, limit int) ([]entity.ChatMessage, error) {
	var rows []MessageDB
	argsKV := map[string]interface{}{
		"limit": limit,
	}

	if err := selectNamed(ctx, r.q, r.log, "GetRecentMessages", &rows, queryGetRecentMessages, argsKV); err != nil {
		return nil, err
	}

	messages := make([]entity.ChatMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, r.makeMessage(row))
	}

	return messages, nil
}

func (r *messagesRepository) makeMessage(row MessageDB) entity.ChatMessage {
	return entity.ChatMessage{
		ID:        row.ID,
		Content:   row.Content.String,
		IsUser:    row.IsUser,
		Timestamp: row.CreatedAt,
	}
}
