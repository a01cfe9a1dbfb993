package chatbotService

import (
	"CatalogChatbot/internal/api/chatbot"
	"CatalogChatbot/internal/api/chatbot/extractor"
	contextPkg "CatalogChatbot/pkg/context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *chatbotService) ProcessMessage(ctx context.Context, req chatbot.MessageRequest) (*chatbot.ChatbotResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	message := strings.TrimSpace(req.Message)
	if message == "" {
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

	if _, err := repo.Messages.CreateMessage(ctx, message, true); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save user message")
		return nil, chatbot.ErrSaveMessage
	}

	reply, err := s.generator.Respond(ctx, message, repo.Catalog)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"intent":     reply.Intent.String(),
			"error":      err.Error(),
		}).Error("Failed to generate reply")
		return nil, chatbot.ErrGenerateReply
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"intent":     reply.Intent.String(),
		"rule":       reply.Rule,
	}).Debug("Generated reply")

	botMessage, err := repo.Messages.CreateMessage(ctx, reply.Text, false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save bot message")
		return nil, chatbot.ErrSaveMessage
	}

	bumped, err := repo.Suggestions.IncrementUsage(ctx, message)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to update suggestion usage")
	} else if bumped {
		s.invalidateSuggestions(ctx)
	}

	return &chatbot.ChatbotResponse{
		Message:   reply.Text,
		Entities:  makeEntityResponses(reply.Entities),
		Intent:    reply.Intent.String(),
		MessageID: botMessage.ID,
	}, nil
}

func (s *chatbotService) GetHistory(ctx context.Context, limit int) (*chatbot.HistoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if limit < 1 || limit > chatbot.MaxHistoryLimit {
		return nil, chatbot.ErrInvalidLimit
	}

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	messages, err := repo.Messages.GetRecentMessages(ctx, limit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"limit":      limit,
			"error":      err.Error(),
		}).Error("Failed to load message history")
		return nil, chatbot.ErrLoadHistory
	}

	response := &chatbot.HistoryResponse{
		Messages: make([]chatbot.MessageResponse, 0, len(messages)),
	}
	for _, message := range messages {
		response.Messages = append(response.Messages, chatbot.MessageResponse{
			ID:        message.ID,
			Content:   message.Content,
			IsUser:    message.IsUser,
			Timestamp: message.Timestamp,
		})
	}

	return response, nil
}

func makeEntityResponses(entities extractor.Entities) []chatbot.EntityResponse {
	list := entities.List()

	responses := make([]chatbot.EntityResponse, 0, len(list))
	for _, labeled := range list {
		responses = append(responses, chatbot.EntityResponse{
			Label: labeled.Label,
			Text:  labeled.Text,
		})
	}
	return responses
}
