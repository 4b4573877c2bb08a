package feedback

import (
	"strings"
	"unicode"

	"github.com/tobyheywood/wordguess/internal/model"
)

// Evaluate computes per-letter verdicts for a guess against a secret
// using the classic two-pass, frequency-aware algorithm.
//
// Pass 1 marks exact positional matches GREEN and consumes those secret
// letters. Pass 2 scans left to right: a letter still available in the
// unconsumed multiset scores ORANGE and decrements its count, otherwise
// GRAY. A letter appearing twice in the guess but once in the secret
// therefore yields at most one ORANGE, leftmost occurrence winning.
//
// Both inputs are normalized to uppercase. Pure function, no side
// effects; callers must have validated the shape of both words.
func Evaluate(guess, secret string) [model.WordLength]model.Verdict {
	guess = strings.ToUpper(guess)
	secret = strings.ToUpper(secret)

	var verdicts [model.WordLength]model.Verdict

	// Pass 1: positional matches
	remaining := make(map[byte]int, model.WordLength)
	for i := 0; i < model.WordLength; i++ {
		if guess[i] == secret[i] {
			verdicts[i] = model.VerdictGreen
		} else {
			remaining[secret[i]]++
		}
	}

	// Pass 2: displaced letters, limited by remaining frequency
	for i := 0; i < model.WordLength; i++ {
		if verdicts[i] == model.VerdictGreen {
			continue
		}
		if remaining[guess[i]] > 0 {
			verdicts[i] = model.VerdictOrange
			remaining[guess[i]]--
		} else {
			verdicts[i] = model.VerdictGray
		}
	}

	return verdicts
}

// ValidateShape checks that a guess is exactly five alphabetic
// characters. Word validity against a dictionary is deliberately not
// checked; only shape is.
func ValidateShape(guess string) error {
	if len(guess) != model.WordLength {
		return model.ErrInvalidGuess
	}
	for _, r := range guess {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return model.ErrInvalidGuess
		}
	}
	return nil
}

// Normalize uppercases a guess for evaluation and storage
func Normalize(guess string) string {
	return strings.ToUpper(guess)
}
