package api

import (
	"net/http"

	"github.com/globalantic/globot/assistant"
	"github.com/labstack/echo/v4"
)

// OpenSessionRequest is the body for POST /v1/sessions.
type OpenSessionRequest struct {
	SessionID string `json:"session_id,omitempty"`
}

// OpenSession opens (or reopens) a conversation session. Reopening an
// existing session returns it as-is, greeting included exactly once.
// POST /v1/sessions
func (h *Handler) OpenSession(c echo.Context) error {
	var req OpenSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	session := h.assistant.OpenSession(req.SessionID)
	return c.JSON(http.StatusOK, session)
}

// CloseSession discards a session.
// DELETE /v1/sessions/:session_id
func (h *Handler) CloseSession(c echo.Context) error {
	sessionID := c.Param("session_id")

	if err := h.assistant.CloseSession(sessionID); err != nil {
		if err == assistant.ErrSessionNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to close session"})
	}

	return c.NoContent(http.StatusNoContent)
}
