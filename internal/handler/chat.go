package handler

import (
	"io"
	"net/http" // HTTP status codes

	"github.com/labstack/echo/v4"

	"github.com/bungalowparadise/storefront/internal/chat"
)

// maxChatPayload caps the size of a relayed prompt.
const maxChatPayload = 64 * 1024

// ChatHandler relays guest questions to the concierge assistant and streams
// the answer back as it arrives.
type ChatHandler struct {
	Proxy *chat.Proxy
}

// NewChatHandler constructs a ChatHandler.
func NewChatHandler(proxy *chat.Proxy) *ChatHandler {
	if proxy == nil {
		panic("nil proxy passed to NewChatHandler")
	}
	return &ChatHandler{Proxy: proxy}
}

// Stream handles POST /api/chat.  The prompt payload passes upstream
// unchanged and the answer streams back through the proxy, so long replies
// render token by token instead of after a full round trip.
func (h *ChatHandler) Stream(c echo.Context) error {
	if _, ok := currentGuest(c); !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxChatPayload))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(payload) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "empty prompt"})
	}
	if _, err := h.Proxy.Stream(c.Request().Context(), payload, c.Response()); err != nil {
		// Headers may already be gone out; log and let the stream end.
		c.Logger().Errorf("chat relay: %v", err)
	}
	return nil
}
