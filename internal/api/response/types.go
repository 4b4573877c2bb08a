package response

import (
	"time"

	"github.com/tobyheywood/wordguess/internal/model"
	"github.com/tobyheywood/wordguess/internal/services/report"
)

// Account represents an account in API responses
type Account struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email,omitempty"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// AccountFromModel converts a model.Account to a response Account
func AccountFromModel(a *model.Account) Account {
	return Account{
		ID:          string(a.ID),
		Username:    a.Username,
		Email:       a.Email,
		Role:        string(a.Role),
		CreatedAt:   a.CreatedAt,
		LastLoginAt: a.LastLoginAt,
	}
}

// AuthResponse is the response for login
type AuthResponse struct {
	Account     Account   `json:"account"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthResponseFromCredential creates an AuthResponse
func AuthResponseFromCredential(cred *model.Credential, account *model.Account) AuthResponse {
	return AuthResponse{
		Account:     AccountFromModel(account),
		AccessToken: cred.Token,
		ExpiresAt:   cred.ExpiresAt,
	}
}

// GuessAttempt is one recorded guess with its verdicts
type GuessAttempt struct {
	Guess     string    `json:"guess"`
	Verdicts  []string  `json:"verdicts"`
	GuessedAt time.Time `json:"guessed_at"`
}

// StartSessionResponse is the response for starting a session
type StartSessionResponse struct {
	SessionID   string    `json:"session_id"`
	StartedAt   time.Time `json:"started_at"`
	Status      string    `json:"status"`
	MaxGuesses  int       `json:"max_guesses"`
	GuessesMade int       `json:"guesses_made"`
}

// StartSessionFromModel builds the start-session response.
// The secret is deliberately absent.
func StartSessionFromModel(s *model.GameSession) StartSessionResponse {
	return StartSessionResponse{
		SessionID:   string(s.ID),
		StartedAt:   s.StartedAt,
		Status:      string(s.Status),
		MaxGuesses:  model.MaxGuesses,
		GuessesMade: len(s.Guesses),
	}
}

// SessionResponse is the full client view of a session
type SessionResponse struct {
	SessionID        string         `json:"session_id"`
	Status           string         `json:"status"`
	Guesses          []GuessAttempt `json:"guesses"`
	RemainingGuesses int            `json:"remaining_guesses"`
	Won              bool           `json:"won"`
	StartedAt        time.Time      `json:"started_at"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
}

// SessionFromModel builds the session response without the secret
func SessionFromModel(s *model.GameSession) SessionResponse {
	guesses := make([]GuessAttempt, 0, len(s.Guesses))
	for _, g := range s.Guesses {
		verdicts := make([]string, len(g.Verdicts))
		for i, v := range g.Verdicts {
			verdicts[i] = string(v)
		}
		guesses = append(guesses, GuessAttempt{
			Guess:     g.Guess,
			Verdicts:  verdicts,
			GuessedAt: g.GuessedAt,
		})
	}
	return SessionResponse{
		SessionID:        string(s.ID),
		Status:           string(s.Status),
		Guesses:          guesses,
		RemainingGuesses: s.RemainingGuesses(),
		Won:              s.Status == model.StatusWon,
		StartedAt:        s.StartedAt,
		CompletedAt:      s.CompletedAt,
	}
}

// MessageResponse is a simple confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// Word represents a pool word in API responses
type Word struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Active bool   `json:"active"`
}

// WordFromModel converts a model.Word
func WordFromModel(w *model.Word) Word {
	return Word{
		ID:     string(w.ID),
		Text:   w.Text,
		Active: w.Active,
	}
}

// WordsFromModel converts a slice of words
func WordsFromModel(words []*model.Word) []Word {
	out := make([]Word, 0, len(words))
	for _, w := range words {
		out = append(out, WordFromModel(w))
	}
	return out
}

// DailyReport is the admin daily report response
type DailyReport struct {
	Date        string `json:"date"`
	PlayerCount int    `json:"player_count"`
	WonCount    int    `json:"won_count"`
}

// DailyReportFromModel converts a report.DailyReport
func DailyReportFromModel(r *report.DailyReport) DailyReport {
	return DailyReport{
		Date:        r.Date,
		PlayerCount: r.PlayerCount,
		WonCount:    r.WonCount,
	}
}

// DayStat is one day's stats for an account
type DayStat struct {
	Date           string `json:"date"`
	SessionsPlayed int    `json:"sessions_played"`
	SessionsWon    int    `json:"sessions_won"`
}

// AccountReport is the admin per-account report response
type AccountReport struct {
	AccountID string    `json:"account_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Stats     []DayStat `json:"stats"`
}

// AccountReportFromModel converts a report.AccountReport
func AccountReportFromModel(r *report.AccountReport) AccountReport {
	stats := make([]DayStat, 0, len(r.Stats))
	for _, s := range r.Stats {
		stats = append(stats, DayStat{
			Date:           s.Date,
			SessionsPlayed: s.SessionsPlayed,
			SessionsWon:    s.SessionsWon,
		})
	}
	return AccountReport{
		AccountID: string(r.AccountID),
		From:      r.From,
		To:        r.To,
		Stats:     stats,
	}
}
