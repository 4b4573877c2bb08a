package model

import "time"

// WordID uniquely identifies a word in the pool
type WordID string

// Word is one entry in the secret-word pool. Only active words are
// eligible for selection when a session starts.
type Word struct {
	ID        WordID
	Text      string // 5 uppercase letters
	Active    bool
	CreatedAt time.Time
}
