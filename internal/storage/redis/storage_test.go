package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/tobyheywood/wordguess/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.CredentialTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Account tests

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := &model.Account{
		ID:             "acct-1",
		Username:       "Alice",
		Email:          "alice@example.com",
		Role:           model.RolePlayer,
		RemainingGames: 3,
		QuotaDay:       "2024-01-01",
		CreatedAt:      time.Now().UTC(),
	}

	err := s.storage.SaveAccount(s.ctx, account)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccount(s.ctx, "acct-1")
	s.Require().NoError(err)
	s.Equal(account.Username, retrieved.Username)
	s.Equal(3, retrieved.RemainingGames)
	s.Equal("2024-01-01", retrieved.QuotaDay)
}

func (s *StorageSuite) TestGetAccountNotFound() {
	_, err := s.storage.GetAccount(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestGetAccountByUsername() {
	account := &model.Account{ID: "acct-1", Username: "Alice"}
	s.Require().NoError(s.storage.SaveAccount(s.ctx, account))

	retrieved, err := s.storage.GetAccountByUsername(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal(account.ID, retrieved.ID)
}

func (s *StorageSuite) TestGetAccountByUsernameNotFound() {
	_, err := s.storage.GetAccountByUsername(s.ctx, "Nobody")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestGetAccountByEmail() {
	account := &model.Account{ID: "acct-1", Username: "Alice", Email: "alice@example.com"}
	s.Require().NoError(s.storage.SaveAccount(s.ctx, account))

	retrieved, err := s.storage.GetAccountByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(account.ID, retrieved.ID)
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	now := time.Now().UTC().Truncate(time.Second)
	session := &model.GameSession{
		ID:        "g_1",
		AccountID: "acct-1",
		Secret:    "APPLE",
		Status:    model.StatusInProgress,
		Guesses: []model.GuessAttempt{
			{
				Guess:     "BERRY",
				Verdicts:  [model.WordLength]model.Verdict{model.VerdictGray, model.VerdictOrange, model.VerdictGray, model.VerdictGray, model.VerdictGray},
				GuessedAt: now,
			},
		},
		StartedAt: now,
	}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "g_1")
	s.Require().NoError(err)
	s.Equal("APPLE", retrieved.Secret)
	s.Require().Len(retrieved.Guesses, 1)
	s.Equal("BERRY", retrieved.Guesses[0].Guess)
	s.Equal(model.VerdictOrange, retrieved.Guesses[0].Verdicts[1])
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestListSessionsForAccount() {
	now := time.Now().UTC()
	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{ID: "g_1", AccountID: "acct-1", StartedAt: now}))
	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{ID: "g_2", AccountID: "acct-1", StartedAt: now}))
	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{ID: "g_3", AccountID: "acct-2", StartedAt: now}))

	sessions, err := s.storage.ListSessionsForAccount(s.ctx, "acct-1")
	s.Require().NoError(err)
	s.Len(sessions, 2)
}

func (s *StorageSuite) TestListSessionsStartedBetween() {
	base := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{ID: "g_1", AccountID: "acct-1", StartedAt: base.Add(-time.Hour)}))
	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{ID: "g_2", AccountID: "acct-1", StartedAt: base}))
	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{ID: "g_3", AccountID: "acct-1", StartedAt: base.Add(time.Hour)}))
	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{ID: "g_4", AccountID: "acct-1", StartedAt: base.Add(2 * time.Hour)}))

	sessions, err := s.storage.ListSessionsStartedBetween(s.ctx, base, base.Add(time.Hour))
	s.Require().NoError(err)
	s.Len(sessions, 2)
}

// Word tests

func (s *StorageSuite) TestSaveAndGetWord() {
	word := &model.Word{ID: "w1", Text: "APPLE", Active: true, CreatedAt: time.Now().UTC()}

	err := s.storage.SaveWord(s.ctx, word)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetWord(s.ctx, "w1")
	s.Require().NoError(err)
	s.Equal("APPLE", retrieved.Text)
	s.True(retrieved.Active)
}

func (s *StorageSuite) TestGetWordNotFound() {
	_, err := s.storage.GetWord(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrWordNotFound)
}

func (s *StorageSuite) TestGetWordByText() {
	word := &model.Word{ID: "w1", Text: "APPLE", Active: true}
	s.Require().NoError(s.storage.SaveWord(s.ctx, word))

	retrieved, err := s.storage.GetWordByText(s.ctx, "APPLE")
	s.Require().NoError(err)
	s.Equal(word.ID, retrieved.ID)
}

func (s *StorageSuite) TestListWordsActiveOnly() {
	s.Require().NoError(s.storage.SaveWord(s.ctx, &model.Word{ID: "w1", Text: "APPLE", Active: true}))
	s.Require().NoError(s.storage.SaveWord(s.ctx, &model.Word{ID: "w2", Text: "BERRY", Active: false}))

	all, err := s.storage.ListWords(s.ctx, false)
	s.Require().NoError(err)
	s.Len(all, 2)

	active, err := s.storage.ListWords(s.ctx, true)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal("APPLE", active[0].Text)
}

// Credential tests

func (s *StorageSuite) TestSaveAndGetCredential() {
	cred := &model.Credential{
		Token:     "tok_abc",
		AccountID: "acct-1",
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	err := s.storage.SaveCredential(s.ctx, cred)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCredential(s.ctx, "tok_abc")
	s.Require().NoError(err)
	s.Equal(cred.AccountID, retrieved.AccountID)
}

func (s *StorageSuite) TestGetCredentialNotFound() {
	_, err := s.storage.GetCredential(s.ctx, "tok_nonexistent")
	s.ErrorIs(err, model.ErrCredentialNotFound)
}

func (s *StorageSuite) TestCredentialExpiresWithTTL() {
	cred := &model.Credential{Token: "tok_abc", AccountID: "acct-1"}
	s.Require().NoError(s.storage.SaveCredential(s.ctx, cred))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetCredential(s.ctx, "tok_abc")
	s.ErrorIs(err, model.ErrCredentialNotFound)
}

// Revocation tests

func (s *StorageSuite) TestRevokedCredentialLookup() {
	revoked, err := s.storage.IsCredentialRevoked(s.ctx, "tok_abc")
	s.Require().NoError(err)
	s.False(revoked)

	err = s.storage.SaveRevokedCredential(s.ctx, &model.RevokedCredential{
		Token:     "tok_abc",
		AccountID: "acct-1",
		RevokedAt: time.Now().UTC(),
		Reason:    model.RevokeReasonDailyLimit,
	})
	s.Require().NoError(err)

	revoked, err = s.storage.IsCredentialRevoked(s.ctx, "tok_abc")
	s.Require().NoError(err)
	s.True(revoked)
}

func (s *StorageSuite) TestRevocationIsFirstWriteWins() {
	first := &model.RevokedCredential{
		Token:     "tok_abc",
		AccountID: "acct-1",
		RevokedAt: time.Now().UTC(),
		Reason:    model.RevokeReasonDailyLimit,
	}
	second := &model.RevokedCredential{
		Token:     "tok_abc",
		AccountID: "acct-1",
		RevokedAt: time.Now().UTC().Add(time.Hour),
		Reason:    model.RevokeReasonLogout,
	}

	s.Require().NoError(s.storage.SaveRevokedCredential(s.ctx, first))
	s.Require().NoError(s.storage.SaveRevokedCredential(s.ctx, second))

	revoked, err := s.storage.IsCredentialRevoked(s.ctx, "tok_abc")
	s.Require().NoError(err)
	s.True(revoked)
}
