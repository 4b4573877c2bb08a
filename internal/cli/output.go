package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Account:
		o.printAccount(v)
	case AuthResult:
		o.printAuthResult(v)
	case Session:
		o.printSession(v)
	case Word:
		o.printWord(v)
	case []Word:
		o.printWordList(v)
	case DailyReport:
		o.printDailyReport(v)
	case AccountReport:
		o.printAccountReport(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Account response type (matches API)
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// AuthResult combines account and credential token
type AuthResult struct {
	Account     Account `json:"account"`
	AccessToken string  `json:"access_token"`
	ExpiresAt   string  `json:"expires_at"`
}

// Guess response type
type Guess struct {
	Guess    string   `json:"guess"`
	Verdicts []string `json:"verdicts"`
}

// Session response type
type Session struct {
	SessionID        string  `json:"session_id"`
	Status           string  `json:"status"`
	Guesses          []Guess `json:"guesses"`
	RemainingGuesses int     `json:"remaining_guesses"`
	Won              bool    `json:"won"`
	StartedAt        string  `json:"started_at"`
	CompletedAt      *string `json:"completed_at,omitempty"`
}

// Word response type
type Word struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Active bool   `json:"active"`
}

// DailyReport response type
type DailyReport struct {
	Date        string `json:"date"`
	PlayerCount int    `json:"player_count"`
	WonCount    int    `json:"won_count"`
}

// AccountReport response type
type AccountReport struct {
	AccountID string    `json:"account_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Stats     []DayStat `json:"stats"`
}

// DayStat response type
type DayStat struct {
	Date           string `json:"date"`
	SessionsPlayed int    `json:"sessions_played"`
	SessionsWon    int    `json:"sessions_won"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAccount(a Account) {
	fmt.Printf("Account: %s (%s)\n", a.Username, a.ID)
	if a.Email != "" {
		fmt.Printf("Email: %s\n", a.Email)
	}
	fmt.Printf("Role: %s\n", a.Role)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printAccount(a.Account)
	fmt.Printf("Token: %s\n", a.AccessToken)
	fmt.Printf("Expires: %s\n", a.ExpiresAt)
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s\n", s.SessionID)
	fmt.Printf("Status: %s\n", s.Status)
	fmt.Printf("Guesses Remaining: %d\n", s.RemainingGuesses)
	if len(s.Guesses) > 0 {
		fmt.Println("Guesses:")
		for _, g := range s.Guesses {
			fmt.Printf("  %s  [%s]\n", g.Guess, strings.Join(g.Verdicts, " "))
		}
	}
	if s.CompletedAt != nil {
		fmt.Printf("Completed: %s\n", *s.CompletedAt)
	}
}

func (o *Output) printWord(w Word) {
	activeStr := "inactive"
	if w.Active {
		activeStr = "active"
	}
	fmt.Printf("%s (%s) - %s\n", w.Text, w.ID, activeStr)
}

func (o *Output) printWordList(words []Word) {
	fmt.Printf("Words (%d):\n", len(words))
	for _, w := range words {
		activeStr := "inactive"
		if w.Active {
			activeStr = "active"
		}
		fmt.Printf("  - %s (%s) - %s\n", w.Text, w.ID, activeStr)
	}
}

func (o *Output) printDailyReport(r DailyReport) {
	fmt.Printf("Date: %s\n", r.Date)
	fmt.Printf("Players: %d\n", r.PlayerCount)
	fmt.Printf("Wins: %d\n", r.WonCount)
}

func (o *Output) printAccountReport(r AccountReport) {
	fmt.Printf("Account: %s\n", r.AccountID)
	fmt.Printf("Range: %s to %s\n", r.From, r.To)
	for _, d := range r.Stats {
		fmt.Printf("  %s: %d played, %d won\n", d.Date, d.SessionsPlayed, d.SessionsWon)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
