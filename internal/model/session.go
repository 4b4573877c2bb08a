package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// SessionStatus represents the lifecycle state of a game session.
// Transitions are monotonic: IN_PROGRESS -> WON or IN_PROGRESS -> LOST.
type SessionStatus string

const (
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusWon        SessionStatus = "WON"
	StatusLost       SessionStatus = "LOST"
)

// Game constants
const (
	// WordLength is the fixed length of secrets and guesses
	WordLength = 5
	// MaxGuesses is the number of attempts allowed per session
	MaxGuesses = 5
)

// Verdict is the per-letter feedback for one guess position
type Verdict string

const (
	VerdictGreen  Verdict = "GREEN"  // correct letter, correct position
	VerdictOrange Verdict = "ORANGE" // correct letter, wrong position
	VerdictGray   Verdict = "GRAY"   // letter absent or count exhausted
)

// GuessAttempt is one submitted word with its computed verdicts.
// Attempts are append-only and immutable once recorded.
type GuessAttempt struct {
	Guess     string
	Verdicts  [WordLength]Verdict
	GuessedAt time.Time
}

// GameSession is one play-through of the guessing game, bound to one
// account and one secret word. The secret is never exposed to clients.
type GameSession struct {
	ID        SessionID
	AccountID AccountID
	Secret    string

	Status  SessionStatus
	Guesses []GuessAttempt

	StartedAt   time.Time
	CompletedAt *time.Time
}

// Resolved reports whether the session has reached a terminal state
func (s *GameSession) Resolved() bool {
	return s.Status != StatusInProgress
}

// RemainingGuesses returns how many attempts the player has left
func (s *GameSession) RemainingGuesses() int {
	remaining := MaxGuesses - len(s.Guesses)
	if remaining < 0 {
		return 0
	}
	return remaining
}
