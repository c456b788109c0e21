package api

import (
	"net/http"
	"strconv"

	"github.com/globalantic/globot/assistant"
	"github.com/labstack/echo/v4"
)

// SubmitRequest is the body for message and suggestion submissions.
type SubmitRequest struct {
	Text string `json:"text"`
}

// SubmitResponse reports whether a submission was accepted. Empty
// submissions are a defined no-op, not an error.
type SubmitResponse struct {
	Accepted bool        `json:"accepted"`
	Message  interface{} `json:"message,omitempty"`
}

// GetSessionMessages returns the message log for a session.
// GET /v1/sessions/:session_id/messages
func (h *Handler) GetSessionMessages(c echo.Context) error {
	sessionID := c.Param("session_id")

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 50
	}

	messages, err := h.assistant.Messages(sessionID)
	if err != nil {
		if err == assistant.ErrSessionNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get messages"})
	}

	hasMore := len(messages) > limit
	if hasMore {
		messages = messages[:limit]
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": messages,
		"has_more": hasMore,
	})
}

// SubmitMessage submits a user turn. The reply arrives asynchronously via
// the websocket stream or a later GET of the message log.
// POST /v1/sessions/:session_id/messages
func (h *Handler) SubmitMessage(c echo.Context) error {
	return h.submit(c)
}

// SelectSuggestion submits a suggestion chip, equivalent to typing it.
// POST /v1/sessions/:session_id/suggestions
func (h *Handler) SelectSuggestion(c echo.Context) error {
	return h.submit(c)
}

func (h *Handler) submit(c echo.Context) error {
	sessionID := c.Param("session_id")

	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	result, err := h.assistant.Submit(sessionID, req.Text)
	switch err {
	case nil:
	case assistant.ErrSessionNotFound:
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	case assistant.ErrAwaitingResponse:
		return c.JSON(http.StatusConflict, map[string]string{"error": "a reply is already in flight"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to submit message"})
	}

	if result == nil {
		// Empty or whitespace-only text: no state change, nothing appended.
		return c.JSON(http.StatusOK, SubmitResponse{Accepted: false})
	}

	return c.JSON(http.StatusAccepted, SubmitResponse{
		Accepted: true,
		Message:  result.UserMessage,
	})
}
