package chatbotHandler

import (
	"CatalogChatbot/internal/api/chatbot"
	"CatalogChatbot/internal/middleware"
	contextPkg "CatalogChatbot/pkg/context"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

const (
	maxReadTimeout  = 5 * time.Minute
	maxWriteTimeout = 10 * time.Second
)

var errTextOnly = errors.New("only text messages are supported")

// handleChatWebSocket answers every text frame with one JSON ChatbotResponse,
// or with {"error": ...} when the message cannot be processed.
func (h *ChatbotHandler) handleChatWebSocket(c *websocket.Conn) {
	requestID, _ := c.Locals(middleware.RequestIDKey).(string)
	entry := h.log.WithField("request_id", requestID)

	entry.Info("Chat WebSocket client connected")
	defer entry.Info("Chat WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		entry.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			entry.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			entry.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				entry.Errorf("Chat WebSocket error: %v", err)
			} else {
				entry.Info("Chat WebSocket connection closed")
			}
			break
		}

		var reply interface{}
		if messageType != websocket.TextMessage {
			entry.Warnf("Received unexpected message type: %d", messageType)
			reply = map[string]string{"error": errTextOnly.Error()}
		} else {
			reply = h.replyTo(requestID, string(message), entry)
		}

		if err := c.SetWriteDeadline(time.Now().Add(maxWriteTimeout)); err != nil {
			entry.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(reply); err != nil {
			entry.Errorf("Error writing JSON response: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			entry.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}

func (h *ChatbotHandler) replyTo(requestID, message string, entry *logrus.Entry) interface{} {
	ctx, cancel := context.WithTimeout(contextPkg.WithRequestID(context.Background(), requestID), requestTimeout)
	defer cancel()

	req := chatbot.MessageRequest{Message: message}
	// Blank frames fall through so the service answers with ErrEmptyMessage.
	if strings.TrimSpace(message) != "" {
		if err := h.validator.Struct(req); err != nil {
			entry.WithField("error", err.Error()).Warn("Validation failed")
			return map[string]string{"error": "Validation failed: " + err.Error()}
		}
	}

	res, err := h.chatbotService.ProcessMessage(ctx, req)
	if err != nil {
		entry.WithField("error", err.Error()).Warn("Failed to process WebSocket message")
		return map[string]string{"error": err.Error()}
	}
	return res
}
