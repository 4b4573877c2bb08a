package quota

import (
	"context"
	"log/slog"

	"github.com/tobyheywood/wordguess/internal/dependencies/clock"
	"github.com/tobyheywood/wordguess/internal/model"
	"github.com/tobyheywood/wordguess/internal/storage"
)

// DefaultMaxPerDay is the number of sessions an account may complete
// per calendar day
const DefaultMaxPerDay = 3

// RevocationGate invalidates the credential that triggered quota
// exhaustion. Implemented by the auth service; declared here so the
// quota manager does not depend on it.
type RevocationGate interface {
	Revoke(ctx context.Context, token string, accountID model.AccountID, reason string) error
}

// Service tracks remaining sessions per account per calendar day.
// The reset is lazy: it happens on the first session start of a new
// day, not via a background timer, so the counter can go briefly stale
// across midnight until the account's next request.
type Service struct {
	storage   storage.Storage
	clock     clock.Clock
	gate      RevocationGate
	maxPerDay int
	logger    *slog.Logger
}

// New creates a new quota manager
func New(storage storage.Storage, clock clock.Clock, gate RevocationGate, maxPerDay int, logger *slog.Logger) *Service {
	if maxPerDay <= 0 {
		maxPerDay = DefaultMaxPerDay
	}
	return &Service{
		storage:   storage,
		clock:     clock,
		gate:      gate,
		maxPerDay: maxPerDay,
		logger:    logger,
	}
}

// MaxPerDay returns the configured daily maximum
func (s *Service) MaxPerDay() int {
	return s.maxPerDay
}

// Remaining returns the account's remaining sessions for today as the
// next session start would observe them, without persisting a reset.
func (s *Service) Remaining(ctx context.Context, accountID model.AccountID) (int, error) {
	account, err := s.storage.GetAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if !account.QuotaFreshFor(s.clock.Now()) {
		return s.maxPerDay, nil
	}
	return account.RemainingGames, nil
}

// OnSessionStart applies the lazy calendar-day reset to the given
// account and refuses the start with model.ErrQuotaExceeded when no
// sessions remain. Runs before any session record is created.
func (s *Service) OnSessionStart(ctx context.Context, account *model.Account) error {
	now := s.clock.Now()

	if !account.QuotaFreshFor(now) {
		account.RemainingGames = s.maxPerDay
		account.QuotaDay = now.UTC().Format(model.QuotaDayLayout)
		if err := s.storage.SaveAccount(ctx, account); err != nil {
			return err
		}
		s.logger.Info("daily quota reset",
			slog.String("account_id", string(account.ID)),
			slog.Int("remaining", account.RemainingGames),
		)
	}

	if account.RemainingGames <= 0 {
		return model.ErrQuotaExceeded
	}
	return nil
}

// OnSessionResolved decrements the account's remaining counter,
// flooring at zero. When the counter reaches exactly zero the
// triggering credential is revoked with reason "daily_limit_reached".
// Returns the new remaining count.
func (s *Service) OnSessionResolved(ctx context.Context, accountID model.AccountID, token string) (int, error) {
	account, err := s.storage.GetAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}

	remaining := account.RemainingGames - 1
	if remaining < 0 {
		remaining = 0
	}
	account.RemainingGames = remaining

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return 0, err
	}

	s.logger.Info("session quota spent",
		slog.String("account_id", string(accountID)),
		slog.Int("remaining", remaining),
	)

	if remaining == 0 && token != "" {
		if err := s.gate.Revoke(ctx, token, accountID, model.RevokeReasonDailyLimit); err != nil {
			return remaining, err
		}
	}

	return remaining, nil
}
