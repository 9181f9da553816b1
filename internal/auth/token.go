// Package auth implements session tokens, the GitHub OAuth flow, and the
// authentication middleware.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// SessionLifetime is how long a session stays valid after creation. The
// expiry is fixed at login time — there is no sliding window or refresh; a
// user simply logs in again after 30 days.
const SessionLifetime = 30 * 24 * time.Hour

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session"

// NewSessionToken returns a fresh opaque session token: 32 bytes of
// cryptographically secure randomness, base64url-encoded without padding
// (43 characters, cookie- and URL-safe). The token carries no claims — all
// session state lives in the sessions table, which is what makes logout an
// actual revocation rather than a client-side fiction.
func NewSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("auth: generating session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// SessionExpiry returns the fixed expiry instant for a session created now,
// as epoch milliseconds (the representation stored in the sessions table).
func SessionExpiry(now time.Time) int64 {
	return now.Add(SessionLifetime).UnixMilli()
}
