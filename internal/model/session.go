package model

import "time"

// Session is a server-side login session. The token itself is the primary
// key: an opaque random credential handed to the browser in a cookie and
// looked up on every authenticated request.
//
// ExpiresAt is epoch milliseconds, fixed at creation time (no sliding
// expiry). A session is valid iff ExpiresAt is still in the future; expired
// rows are never swept, only ignored on read and deleted on logout.
//
// GitHubID and GitHubUsername are denormalized from the user row at login so
// the session row is self-describing in logs and audits.
type Session struct {
	Token          string `json:"id"`
	UserID         string `json:"user_id"`
	GitHubID       string `json:"github_id"`
	GitHubUsername string `json:"github_username"`
	ExpiresAt      int64  `json:"expires_at"`
}

// Valid reports whether the session is live at the given instant.
func (s *Session) Valid(now time.Time) bool {
	return s.ExpiresAt > now.UnixMilli()
}
