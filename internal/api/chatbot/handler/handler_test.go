package chatbotHandler

import (
	"CatalogChatbot/internal/api/chatbot"
	"CatalogChatbot/internal/middleware"
	contextPkg "CatalogChatbot/pkg/context"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	gorillaws "github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

type fakeService struct {
	mu sync.Mutex

	processErr error
	historyErr error
	addErr     error
	addStatus  string

	messages    []string
	historyArgs []int
	queries     []string
	requestIDs  []string
}

func (s *fakeService) ProcessMessage(ctx context.Context, req chatbot.MessageRequest) (*chatbot.ChatbotResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, req.Message)
	s.requestIDs = append(s.requestIDs, contextPkg.GetRequestID(ctx))

	if strings.TrimSpace(req.Message) == "" {
		return nil, chatbot.ErrEmptyMessage
	}
	if s.processErr != nil {
		return nil, s.processErr
	}

	return &chatbot.ChatbotResponse{
		Message:   "reply to " + req.Message,
		Entities:  []chatbot.EntityResponse{{Label: "product_name", Text: "Laptop XPS 15"}},
		Intent:    "product_price",
		MessageID: 7,
	}, nil
}

func (s *fakeService) GetHistory(ctx context.Context, limit int) (*chatbot.HistoryResponse, error) {
	s.historyArgs = append(s.historyArgs, limit)
	if s.historyErr != nil {
		return nil, s.historyErr
	}
	return &chatbot.HistoryResponse{Messages: []chatbot.MessageResponse{
		{ID: 1, Content: "help", IsUser: true, Timestamp: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
	}}, nil
}

func (s *fakeService) GetSuggestions(ctx context.Context, query string) (*chatbot.SuggestionsResponse, error) {
	s.queries = append(s.queries, query)
	return &chatbot.SuggestionsResponse{Suggestions: []string{"List all products", "Show brands"}}, nil
}

func (s *fakeService) AddSuggestion(ctx context.Context, req chatbot.MessageRequest) (*chatbot.AddSuggestionResponse, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	return &chatbot.AddSuggestionResponse{Status: s.addStatus, Message: "ok"}, nil
}

func (s *fakeService) SeedSuggestions(ctx context.Context) error {
	return nil
}

func newTestApp(svc *fakeService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mw := middleware.New(logger)

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	New(logger, validator.New(), mw, svc).Start(app.Group("/api/v1"))

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(middleware.RequestIDKey, "req-1")

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, data
}

func TestSendMessage(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc)

	res, body := doJSON(t, app, fiber.MethodPost, "/api/v1/chatbot", `{"message":"What's the price of Laptop XPS 15?"}`)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{
		"message": "reply to What's the price of Laptop XPS 15?",
		"entities": [{"label": "product_name", "text": "Laptop XPS 15"}],
		"intent": "product_price",
		"message_id": 7
	}`, string(body))

	assert.Equal(t, []string{"req-1"}, svc.requestIDs)
}

func TestSendMessage_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		processErr     error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "blank message",
			body:           `{"message":"   "}`,
			expectedStatus: fiber.StatusBadRequest,
			expectedError:  "no message provided",
		},
		{
			name:           "missing message",
			body:           `{}`,
			expectedStatus: fiber.StatusBadRequest,
			expectedError:  "no message provided",
		},
		{
			name:           "malformed body",
			body:           `{"message":`,
			expectedStatus: fiber.StatusBadRequest,
		},
		{
			name:           "too long",
			body:           `{"message":"` + strings.Repeat("a", 1001) + `"}`,
			expectedStatus: fiber.StatusBadRequest,
		},
		{
			name:           "reply failure",
			body:           `{"message":"List all products"}`,
			processErr:     chatbot.ErrGenerateReply,
			expectedStatus: fiber.StatusInternalServerError,
			expectedError:  "failed to generate reply",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&fakeService{processErr: tt.processErr})

			res, body := doJSON(t, app, fiber.MethodPost, "/api/v1/chatbot", tt.body)
			assert.Equal(t, tt.expectedStatus, res.StatusCode)

			if tt.expectedError != "" {
				var errBody map[string]interface{}
				require.NoError(t, json.Unmarshal(body, &errBody))
				assert.Equal(t, tt.expectedError, errBody["error"])
			}
		})
	}
}

func TestGetSuggestions(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc)

	res, body := doJSON(t, app, fiber.MethodGet, "/api/v1/suggestions?q=brand", "")
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"suggestions":["List all products","Show brands"]}`, string(body))

	_, _ = doJSON(t, app, fiber.MethodGet, "/api/v1/suggestions", "")
	assert.Equal(t, []string{"brand", ""}, svc.queries)
}

func TestAddSuggestion(t *testing.T) {
	app := newTestApp(&fakeService{addStatus: chatbot.SuggestionStatusExists})

	res, body := doJSON(t, app, fiber.MethodPost, "/api/v1/add-suggestion", `{"message":"Show brands"}`)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"exists","message":"ok"}`, string(body))

	res, _ = doJSON(t, app, fiber.MethodPost, "/api/v1/add-suggestion", `{"message":""}`)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestAddSuggestion_Failure(t *testing.T) {
	app := newTestApp(&fakeService{addErr: chatbot.ErrAddSuggestion})

	res, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/add-suggestion", `{"message":"Show brands"}`)
	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
}

func TestGetHistory(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		historyErr     error
		expectedStatus int
		expectedLimit  []int
	}{
		{name: "default limit", query: "", expectedStatus: fiber.StatusOK, expectedLimit: []int{50}},
		{name: "explicit limit", query: "?limit=5", expectedStatus: fiber.StatusOK, expectedLimit: []int{5}},
		{name: "not a number", query: "?limit=ten", expectedStatus: fiber.StatusBadRequest, expectedLimit: nil},
		{
			name:           "out of range",
			query:          "?limit=500",
			historyErr:     chatbot.ErrInvalidLimit,
			expectedStatus: fiber.StatusBadRequest,
			expectedLimit:  []int{500},
		},
		{
			name:           "unexpected failure",
			query:          "",
			historyErr:     errors.New("connection reset"),
			expectedStatus: fiber.StatusInternalServerError,
			expectedLimit:  []int{50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{historyErr: tt.historyErr}
			app := newTestApp(svc)

			res, _ := doJSON(t, app, fiber.MethodGet, "/api/v1/history"+tt.query, "")
			assert.Equal(t, tt.expectedStatus, res.StatusCode)
			assert.Equal(t, tt.expectedLimit, svc.historyArgs)
		})
	}
}

func TestWebSocket_RequiresUpgrade(t *testing.T) {
	app := newTestApp(&fakeService{})

	res, _ := doJSON(t, app, fiber.MethodGet, "/api/v1/chatbot/ws", "")
	assert.Equal(t, fiber.StatusUpgradeRequired, res.StatusCode)
}

func TestWebSocket_Conversation(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() { _ = app.Shutdown() })

	header := http.Header{}
	header.Set(middleware.RequestIDKey, "ws-1")

	conn, _, err := gorillaws.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/api/v1/chatbot/ws", header)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(gorillaws.TextMessage, []byte("help")))

	var reply chatbot.ChatbotResponse
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "reply to help", reply.Message)
	assert.Equal(t, int64(7), reply.MessageID)

	require.NoError(t, conn.WriteMessage(gorillaws.TextMessage, []byte("  ")))

	var errReply map[string]string
	require.NoError(t, conn.ReadJSON(&errReply))
	assert.Equal(t, "no message provided", errReply["error"])

	require.NoError(t, conn.WriteMessage(gorillaws.BinaryMessage, []byte{0x01}))

	errReply = nil
	require.NoError(t, conn.ReadJSON(&errReply))
	assert.Equal(t, "only text messages are supported", errReply["error"])

	require.NoError(t, conn.WriteMessage(gorillaws.TextMessage, []byte(strings.Repeat("a", 1001))))

	errReply = nil
	require.NoError(t, conn.ReadJSON(&errReply))
	assert.True(t, strings.HasPrefix(errReply["error"], "Validation failed: "), errReply["error"])

	svc.mu.Lock()
	defer svc.mu.Unlock()
	assert.Equal(t, []string{"help", "  "}, svc.messages)
	assert.Equal(t, []string{"ws-1", "ws-1"}, svc.requestIDs)
}
