package model

import "time"

// AccountID uniquely identifies an account across the system
type AccountID string

// Role determines which endpoints an account may use
type Role string

const (
	RolePlayer Role = "PLAYER"
	RoleAdmin  Role = "ADMIN"
)

// Account represents a registered user of the game
type Account struct {
	ID           AccountID
	Username     string
	Email        string
	PasswordHash string // bcrypt hash
	Role         Role

	// Daily quota state. RemainingGames is reset lazily on the first
	// session start of a new calendar day; QuotaDay records the day
	// (YYYY-MM-DD) the counter was last reset for.
	RemainingGames int
	QuotaDay       string

	CreatedAt    time.Time
	LastLoginAt  *time.Time
	LastLogoutAt *time.Time
}

// QuotaFreshFor reports whether the quota counter has already been
// reset for the calendar day containing now.
func (a *Account) QuotaFreshFor(now time.Time) bool {
	return a.QuotaDay == now.UTC().Format(QuotaDayLayout)
}

// QuotaDayLayout is the date layout used for quota-day bookkeeping.
const QuotaDayLayout = "2006-01-02"
