package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tobyheywood/wordguess/internal/dependencies/clock"
	"github.com/tobyheywood/wordguess/internal/dependencies/random"
	"github.com/tobyheywood/wordguess/internal/model"
	"github.com/tobyheywood/wordguess/internal/services/feedback"
	"github.com/tobyheywood/wordguess/internal/services/quota"
	"github.com/tobyheywood/wordguess/internal/services/words"
	"github.com/tobyheywood/wordguess/internal/storage"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller owns the session lifecycle: it starts sessions against
// the quota manager and word pool, applies guesses through the
// feedback evaluator, and fires the quota decrement exactly once per
// session, on the resolving transition.
type Controller struct {
	storage      storage.Storage
	quotaService *quota.Service
	wordService  *words.Service
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger

	// Per-session locks serialize concurrent guess submissions for the
	// same session id, so two in-flight guesses cannot both pass the
	// guess-count check and push a resolved session past five attempts.
	mu    sync.Mutex
	locks map[model.SessionID]*sync.Mutex
}

// NewController creates a new game controller
func NewController(
	storage storage.Storage,
	quotaService *quota.Service,
	wordService *words.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		quotaService: quotaService,
		wordService:  wordService,
		clock:        clock,
		random:       random,
		logger:       logger,
		locks:        make(map[model.SessionID]*sync.Mutex),
	}
}

// StartSession creates a new IN_PROGRESS session for the account.
// Quota is checked (and lazily reset for a new day) before the word is
// picked or anything is written; a refused start writes nothing.
func (c *Controller) StartSession(ctx context.Context, accountID model.AccountID) (*model.GameSession, error) {
	account, err := c.storage.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := c.quotaService.OnSessionStart(ctx, account); err != nil {
		return nil, err
	}

	word, err := c.wordService.PickActive(ctx)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	session := &model.GameSession{
		ID:        model.SessionID("g_" + c.random.String(12, idAlphabet)),
		AccountID: accountID,
		Secret:    word.Text,
		Status:    model.StatusInProgress,
		Guesses:   []model.GuessAttempt{},
		StartedAt: now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session started",
		slog.String("session_id", string(session.ID)),
		slog.String("account_id", string(accountID)),
	)

	return session, nil
}

// SubmitGuess applies one guess to a session. All domain checks happen
// before any write; resolution (WON on exact match, LOST on the fifth
// miss) sets the completion timestamp and spends one quota unit. The
// token is the credential the request authenticated with, revoked by
// the quota manager when this resolution exhausts the daily quota.
func (c *Controller) SubmitGuess(ctx context.Context, sessionID model.SessionID, accountID model.AccountID, token, guess string) (*model.GameSession, error) {
	lock := c.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// A foreign session is indistinguishable from a missing one
	if session.AccountID != accountID {
		return nil, model.ErrSessionNotFound
	}

	if session.Resolved() {
		return nil, model.ErrSessionResolved
	}
	if len(session.Guesses) >= model.MaxGuesses {
		return nil, model.ErrGuessLimitReached
	}
	if err := feedback.ValidateShape(guess); err != nil {
		return nil, err
	}

	normalized := feedback.Normalize(guess)
	now := c.clock.Now()

	session.Guesses = append(session.Guesses, model.GuessAttempt{
		Guess:     normalized,
		Verdicts:  feedback.Evaluate(normalized, session.Secret),
		GuessedAt: now,
	})

	// Resolution: exact match wins, fifth miss loses
	resolved := false
	switch {
	case normalized == session.Secret:
		session.Status = model.StatusWon
		resolved = true
	case len(session.Guesses) >= model.MaxGuesses:
		session.Status = model.StatusLost
		resolved = true
	}
	if resolved {
		session.CompletedAt = &now
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if resolved {
		remaining, err := c.quotaService.OnSessionResolved(ctx, accountID, token)
		if err != nil {
			return nil, err
		}
		c.logger.Info("session resolved",
			slog.String("session_id", string(session.ID)),
			slog.String("status", string(session.Status)),
			slog.Int("guesses", len(session.Guesses)),
			slog.Int("quota_remaining", remaining),
		)
	}

	return session, nil
}

// GetSession returns a session owned by the account
func (c *Controller) GetSession(ctx context.Context, sessionID model.SessionID, accountID model.AccountID) (*model.GameSession, error) {
	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.AccountID != accountID {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

// sessionLock returns the mutex for a session id, creating it on first use
func (c *Controller) sessionLock(id model.SessionID) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[id] = lock
	}
	return lock
}

// Interface for dependency injection
type ControllerInterface interface {
	StartSession(ctx context.Context, accountID model.AccountID) (*model.GameSession, error)
	SubmitGuess(ctx context.Context, sessionID model.SessionID, accountID model.AccountID, token, guess string) (*model.GameSession, error)
	GetSession(ctx context.Context, sessionID model.SessionID, accountID model.AccountID) (*model.GameSession, error)
}

var _ ControllerInterface = (*Controller)(nil)
