package models

import "time"

// Session maps a browser's cookie-carried identifier to a live OpenStack
// token plus the identity Keystone reported for it. Sessions live only in
// process memory and are evicted lazily on first access after expiry.
type Session struct {
	ID          string    `json:"sessionId"`
	Token       string    `json:"-"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	ProjectID   string    `json:"projectId,omitempty"`
	ProjectName string    `json:"projectName,omitempty"`
	Roles       []string  `json:"roles"`
	ExpiresAt   time.Time `json:"expiresAt"`

	// Identity is the login-time identity snapshot served by /auth/me.
	Identity UserInfo `json:"-"`
}

// Expired reports whether the session's token has passed its expiry.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
