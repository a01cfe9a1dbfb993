package entity

import "time"

type ChatMessage struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"is_user"`
	Timestamp time.Time `json:"timestamp"`
}

type Suggestion struct {
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	UsageCount int    `json:"usage_count"`
}
