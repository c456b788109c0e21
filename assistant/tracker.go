package assistant

import (
	"time"

	"github.com/globalantic/globot/domain"
)

// TrackQuery records a user turn on the session context: the raw query is
// appended to the rolling history (oldest evicted beyond the cap) and the
// activity timestamp is refreshed. Tone and preference tags are left
// untouched. Pure state transition.
func TrackQuery(uc domain.UserContext, rawQuery string, now time.Time) domain.UserContext {
	queries := make([]string, 0, len(uc.RecentQueries)+1)
	queries = append(queries, uc.RecentQueries...)
	queries = append(queries, rawQuery)
	if len(queries) > domain.MaxRecentQueries {
		queries = queries[len(queries)-domain.MaxRecentQueries:]
	}

	uc.RecentQueries = queries
	uc.LastActivityAt = now
	return uc
}
