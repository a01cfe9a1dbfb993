package chatbotHandler

import (
	chatbotService "CatalogChatbot/internal/api/chatbot/service"
	"CatalogChatbot/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ChatbotHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	chatbotService chatbotService.IChatbotService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatbotService.IChatbotService,
) *ChatbotHandler {
	return &ChatbotHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		chatbotService: cs,
	}
}

func (h *ChatbotHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	chat := srv.Group("/chatbot")
	chat.Post("", h.middleware.NewRateLimiter, h.SendMessage)
	chat.Use("/ws", wsMiddleware)
	chat.Get("/ws", websocket.New(h.handleChatWebSocket))

	srv.Get("/suggestions", h.GetSuggestions)
	srv.Post("/add-suggestion", h.middleware.NewRateLimiter, h.AddSuggestion)
	srv.Get("/history", h.GetHistory)
}
