package model

import "time"

// PresenceRecord is the online/offline state of a user.
type PresenceRecord struct {
	UserID    int64     `json:"user_id"`
	Online    bool      `json:"online"`
	LastSeen  time.Time `json:"last_seen"`
	UpdatedAt time.Time `json:"updated_at"`
}
