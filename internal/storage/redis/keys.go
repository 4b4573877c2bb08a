package redis

import (
	"fmt"

	"github.com/tobyheywood/wordguess/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wordguess"

// Key generation functions for each entity type

// accountKey returns the Redis key for an Account
func accountKey(id model.AccountID) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> account_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// emailIndexKey returns the Redis key for the email -> account_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// sessionKey returns the Redis key for a GameSession
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionsForAccountKey returns the Redis key for the SET of session ids
// belonging to an account
func sessionsForAccountKey(accountID model.AccountID) string {
	return fmt.Sprintf("%s:idx:sessions_for_account:%s", keyPrefix, accountID)
}

// sessionsByStartKey returns the Redis key for the ZSET of session ids
// scored by start time (unix nanoseconds), used by reporting queries
func sessionsByStartKey() string {
	return fmt.Sprintf("%s:idx:sessions_by_start", keyPrefix)
}

// wordKey returns the Redis key for a Word
func wordKey(id model.WordID) string {
	return fmt.Sprintf("%s:word:%s", keyPrefix, id)
}

// wordTextIndexKey returns the Redis key for the text -> word_id index
func wordTextIndexKey(text string) string {
	return fmt.Sprintf("%s:idx:word_text:%s", keyPrefix, text)
}

// wordsIndexKey returns the Redis key for the SET of all word ids
func wordsIndexKey() string {
	return fmt.Sprintf("%s:idx:words", keyPrefix)
}

// credentialKey returns the Redis key for a Credential
func credentialKey(token string) string {
	return fmt.Sprintf("%s:credential:%s", keyPrefix, token)
}

// revokedKey returns the Redis key for a RevokedCredential
func revokedKey(token string) string {
	return fmt.Sprintf("%s:revoked:%s", keyPrefix, token)
}
