package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// RequestIDHeader is both the header and the fiber local carrying the ID.
const RequestIDHeader = "X-Request-ID"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}

	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func FromFiberCtx(c *fiber.Ctx) context.Context {
	return WithRequestID(context.Background(), RequestIDFromFiber(c))
}

// RequestIDFromFiber prefers the ID stored by the request-ID middleware and
// falls back to the incoming header.
func RequestIDFromFiber(c *fiber.Ctx) string {
	requestID, ok := c.Locals(RequestIDHeader).(string)
	if !ok || requestID == "" {
		requestID = c.Get(RequestIDHeader)
	}

	if requestID == "" {
		return "unknown"
	}
	return requestID
}
