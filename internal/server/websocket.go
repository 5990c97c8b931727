package server

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const sessionLocal = "session"

// RequireUpgrade rejects non-WebSocket requests and unknown game ids before the upgrade.
// The session is stored in the request locals so it survives the upgrade.
func (h *Handler) RequireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	session, err := h.manager.GetGame(c.Params("id"))
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	c.Locals(sessionLocal, session)
	return c.Next()
}

// HandleConnection serves one WebSocket client of a game. The client receives the
// current state on connect and after every move played by any client.
func (h *Handler) HandleConnection(c *websocket.Conn) {
	session, ok := c.Locals(sessionLocal).(*Session)
	if !ok {
		c.Close()
		return
	}

	session.addConn(c)
	defer session.removeConn(c)
	h.cfg.Logf(2, "game %s: client connected\n", session.ID)

	if err := session.sendState(c); err != nil {
		h.cfg.Logf(1, "game %s: write error: %v\n", session.ID, err)
		return
	}

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			h.cfg.Logf(2, "game %s: client gone: %v\n", session.ID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			session.send(c, errorMessage(fmt.Errorf("malformed message: %w", err)))
			continue
		}
		if err := h.handleMessage(session, c, msg); err != nil {
			session.send(c, errorMessage(err))
		}
	}
}

// handleMessage dispatches one client message. A returned error is reported to that
// client only.
func (h *Handler) handleMessage(session *Session, c jsonWriter, msg Message) error {
	switch msg.Type {
	case MessageTypeMove:
		var req MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return fmt.Errorf("malformed move payload: %w", err)
		}
		_, err := session.Play(req)
		return err

	case MessageTypeState:
		return session.sendState(c)

	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
}
