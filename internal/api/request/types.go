package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	SessionID string `json:"session_id"`
	Guess     string `json:"guess"`
}

// AddWordRequest is the request body for adding a word to the pool
type AddWordRequest struct {
	Text   string `json:"text"`
	Active *bool  `json:"active,omitempty"`
}

// SetWordActiveRequest is the request body for activating or retiring a word
type SetWordActiveRequest struct {
	Active bool `json:"active"`
}
