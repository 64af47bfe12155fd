package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

func upgradeOnly(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// BoardWS keeps a client registered with the hub until it disconnects.
// Clients only listen; anything they send is discarded.
func (h *Handler) BoardWS(c *websocket.Conn) {
	id := h.Hub.Register(c)
	defer h.Hub.Unregister(c)

	h.Log.Debug("board ws connected", zap.String("client", id))

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
