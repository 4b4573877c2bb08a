package model

import "time"

// Credential is an issued bearer token bound to one account
type Credential struct {
	Token     string
	AccountID AccountID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Revocation reasons
const (
	RevokeReasonLogout     = "logout"
	RevokeReasonDailyLimit = "daily_limit_reached"
)

// RevokedCredential is an append-only denylist entry. A token present
// here is permanently unusable regardless of its own expiry.
type RevokedCredential struct {
	Token     string
	AccountID AccountID
	RevokedAt time.Time
	Reason    string
}
