package assistant

import "github.com/globalantic/globot/domain"

// Emitter receives every message right after it is appended to a session
// log, so the chat surface can render it. Emitting to a surface that is no
// longer listening must be a no-op, never a failure.
type Emitter interface {
	Emit(sessionID string, msg domain.Message)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(sessionID string, msg domain.Message)

// Emit calls f.
func (f EmitterFunc) Emit(sessionID string, msg domain.Message) {
	f(sessionID, msg)
}
