package chatbot

import "CatalogChatbot/pkg/response"

var (
	ErrEmptyMessage     = response.NewError(400, "no message provided")
	ErrInvalidLimit     = response.NewErrorf(400, "limit must be between 1 and %d", MaxHistoryLimit)
	ErrSuggestionExists = response.NewError(409, "suggestion already exists")
	ErrGenerateReply    = response.NewError(500, "failed to generate reply")
	ErrSaveMessage      = response.NewError(500, "failed to save message")
	ErrLoadHistory      = response.NewError(500, "failed to load message history")
	ErrLoadSuggestions  = response.NewError(500, "failed to load suggestions")
	ErrAddSuggestion    = response.NewError(500, "failed to add suggestion")
	ErrSeedSuggestions  = response.NewError(500, "failed to seed default suggestions")
)
