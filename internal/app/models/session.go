package models

import "time"

// Session lives in the session store only, never in the database. A session
// whose User.ID is empty is anonymous and must fail the authorization guard.
type Session struct {
	SessionID string      `json:"sessionId"`
	User      SessionUser `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

type SessionUser struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

func (s *Session) Authenticated() bool {
	return s != nil && s.User.ID != ""
}
