package chatbot

import "time"

const (
	SuggestionStatusSuccess = "success"
	SuggestionStatusExists  = "exists"

	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

type MessageRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

type EntityResponse struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type ChatbotResponse struct {
	Message   string           `json:"message"`
	Entities  []EntityResponse `json:"entities"`
	Intent    string           `json:"intent"`
	MessageID int64            `json:"message_id"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type MessageResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"is_user"`
	Timestamp time.Time `json:"timestamp"`
}

type HistoryResponse struct {
	Messages []MessageResponse `json:"messages"`
}

type AddSuggestionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
