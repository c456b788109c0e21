package domain

import "time"

// Tone is the conversational register the assistant replies in.
type Tone string

const (
	ToneFormal   Tone = "formal"
	ToneCasual   Tone = "casual"
	ToneFriendly Tone = "friendly"
)

// MaxRecentQueries caps the rolling query history kept per session.
const MaxRecentQueries = 5

// UserContext is the per-session rolling state maintained by the context
// tracker. Tone and preference tags are extension points; the current
// tracker never derives them.
type UserContext struct {
	DisplayName    string    `json:"display_name,omitempty"`
	PreferenceTags []string  `json:"preference_tags,omitempty"`
	RecentQueries  []string  `json:"recent_queries,omitempty"`
	Tone           Tone      `json:"tone"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// NewUserContext returns the default context for a fresh session.
func NewUserContext(now time.Time) UserContext {
	return UserContext{
		Tone:           ToneFriendly,
		LastActivityAt: now,
	}
}
