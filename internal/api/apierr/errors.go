package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tobyheywood/wordguess/internal/model"
	"github.com/tobyheywood/wordguess/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidGuess       = "INVALID_GUESS"
	CodeInvalidWord        = "INVALID_WORD"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeCredentialRevoked  = "CREDENTIAL_REVOKED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeForbidden          = "FORBIDDEN"
	CodeAccountNotFound    = "ACCOUNT_NOT_FOUND"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeWordNotFound       = "WORD_NOT_FOUND"
	CodeSessionResolved    = "SESSION_RESOLVED"
	CodeGuessLimitReached  = "GUESS_LIMIT_REACHED"
	CodeQuotaExceeded      = "QUOTA_EXCEEDED"
	CodeNoWordsAvailable   = "NO_WORDS_AVAILABLE"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeWordExists         = "WORD_EXISTS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrAccountNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAccountNotFound, "Account not found"}}
	case errors.Is(err, model.ErrWordNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeWordNotFound, "Word not found"}}
	case errors.Is(err, model.ErrSessionResolved):
		return &httpError{http.StatusBadRequest, APIError{CodeSessionResolved, "Session already resolved"}}
	case errors.Is(err, model.ErrGuessLimitReached):
		return &httpError{http.StatusBadRequest, APIError{CodeGuessLimitReached, "No guesses remaining"}}
	case errors.Is(err, model.ErrInvalidGuess):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidGuess, "Guess must be exactly 5 letters"}}
	case errors.Is(err, model.ErrInvalidWord):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidWord, "Word must be 5 letters (A-Z)"}}
	case errors.Is(err, model.ErrQuotaExceeded):
		return &httpError{http.StatusTooManyRequests, APIError{CodeQuotaExceeded, "No games remaining for today"}}
	case errors.Is(err, model.ErrNoWordsAvailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeNoWordsAvailable, "No words available"}}
	case errors.Is(err, model.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}
	case errors.Is(err, model.ErrEmailExists):
		return &httpError{http.StatusConflict, APIError{CodeEmailExists, "Email already exists"}}
	case errors.Is(err, model.ErrWordExists):
		return &httpError{http.StatusConflict, APIError{CodeWordExists, "Word already exists"}}
	case errors.Is(err, model.ErrForbidden):
		return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Insufficient role"}}
	case errors.Is(err, model.ErrCredentialRevoked):
		return &httpError{http.StatusUnauthorized, APIError{CodeCredentialRevoked, "Credential has been revoked"}}
	case errors.Is(err, model.ErrCredentialExpired):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Credential has expired"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid credentials"}}
	case errors.Is(err, auth.ErrInvalidUsername):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeValidationFailed, auth.ErrInvalidUsername.Error()}}
	case errors.Is(err, auth.ErrInvalidPassword):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeValidationFailed, auth.ErrInvalidPassword.Error()}}
	case errors.Is(err, auth.ErrInvalidEmail):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeValidationFailed, auth.ErrInvalidEmail.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
