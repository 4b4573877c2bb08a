package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrUsernameExists  = errors.New("username already exists")
	ErrEmailExists     = errors.New("email already exists")
	ErrForbidden       = errors.New("insufficient role")

	// Session errors
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionResolved   = errors.New("session already resolved")
	ErrGuessLimitReached = errors.New("no guesses remaining")
	ErrInvalidGuess      = errors.New("guess must be exactly 5 letters")

	// Quota errors
	ErrQuotaExceeded = errors.New("no games remaining for today")

	// Word pool errors
	ErrNoWordsAvailable = errors.New("no active words available")
	ErrWordNotFound     = errors.New("word not found")
	ErrWordExists       = errors.New("word already exists")
	ErrInvalidWord      = errors.New("word must be 5 letters (A-Z)")

	// Credential errors
	ErrCredentialNotFound = errors.New("credential not found")
	ErrCredentialRevoked  = errors.New("credential has been revoked")
	ErrCredentialExpired  = errors.New("credential has expired")
)
