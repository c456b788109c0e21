package domain

import "time"

// TurnState is the turn-taking state of a conversation session.
type TurnState string

const (
	// TurnIdle means the session is ready to accept a user submission.
	TurnIdle TurnState = "idle"
	// TurnAwaitingResponse means a user turn is in flight and new
	// submissions are rejected until the assistant reply is appended.
	TurnAwaitingResponse TurnState = "awaiting_response"
)

// Session is an ordered, append-only conversation log plus its turn state.
// Sessions live only for the lifetime of the chat surface; they are never
// persisted.
type Session struct {
	SessionID string      `json:"session_id"`
	CreatedAt time.Time   `json:"created_at"`
	State     TurnState   `json:"state"`
	Context   UserContext `json:"context"`
	Messages  []Message   `json:"messages"`
}
