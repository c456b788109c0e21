package api

import (
	"log"
	"net/http"
	"time"

	"github.com/globalantic/globot/hub"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The chat widget is served from the storefront origin; same-host
	// checks are handled upstream.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and streams appended messages for a
// session to the chat surface. The stream is downstream-only; submissions
// go through the REST endpoints.
// GET /v1/ws?session_id=...
func (h *Handler) ServeWS(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "session_id is required"})
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	conn := h.hub.Register(sessionID)
	log.Printf("ws connection %s opened for session %s", conn.ID, sessionID)

	go h.writePump(ws, conn)
	go h.readPump(ws, conn)

	return nil
}

// writePump drains the hub's send queue onto the socket and keeps the
// connection alive with pings.
func (h *Handler) writePump(ws *websocket.Conn, conn *hub.Connection) {
	ticker := time.NewTicker(h.config.WSPingInterval)
	defer func() {
		ticker.Stop()
		ws.Close()
	}()

	for {
		select {
		case data, ok := <-conn.Send:
			ws.SetWriteDeadline(time.Now().Add(h.config.WSWriteTimeout))
			if !ok {
				ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := ws.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			ws.SetWriteDeadline(time.Now().Add(h.config.WSWriteTimeout))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump consumes inbound frames until the peer goes away. Frames are
// discarded; the stream is one-way.
func (h *Handler) readPump(ws *websocket.Conn, conn *hub.Connection) {
	defer func() {
		h.hub.Unregister(conn)
		ws.Close()
	}()

	ws.SetReadLimit(h.config.WSMaxMessageSize)
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WARN: ws connection %s read error: %v", conn.ID, err)
			}
			return
		}
	}
}
