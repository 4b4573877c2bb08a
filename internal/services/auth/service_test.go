package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tobyheywood/wordguess/internal/dependencies/mocks"
	"github.com/tobyheywood/wordguess/internal/dependencies/random"
	"github.com/tobyheywood/wordguess/internal/model"
	"github.com/tobyheywood/wordguess/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	// Real random: these tests care about uniqueness, not exact values
	s.service = New(s.storage, s.clock, random.New(), DefaultConfig(), logger)
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	account, err := s.service.Register(s.ctx, "Alice", "alice@example.com", "pass1$")
	s.Require().NoError(err)

	s.NotEmpty(account.ID)
	s.Equal("Alice", account.Username)
	s.Equal("alice@example.com", account.Email)
	s.Equal(model.RolePlayer, account.Role)
	s.Equal(s.clock.Now(), account.CreatedAt)
}

func (s *ServiceSuite) TestRegisterHashesPassword() {
	account, err := s.service.Register(s.ctx, "Alice", "alice@example.com", "pass1$")
	s.Require().NoError(err)

	stored, err := s.storage.GetAccount(s.ctx, account.ID)
	s.Require().NoError(err)
	s.NotEmpty(stored.PasswordHash)
	s.NotEqual("pass1$", stored.PasswordHash)
}

func (s *ServiceSuite) TestRegisterFailsIfUsernameExists() {
	_, err := s.service.Register(s.ctx, "Alice", "alice@example.com", "pass1$")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "Alice", "other@example.com", "pass1$")
	s.ErrorIs(err, model.ErrUsernameExists)
}

func (s *ServiceSuite) TestRegisterFailsIfEmailExists() {
	_, err := s.service.Register(s.ctx, "Alice", "alice@example.com", "pass1$")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "Bcoris", "alice@example.com", "pass1$")
	s.ErrorIs(err, model.ErrEmailExists)
}

func (s *ServiceSuite) TestRegisterRejectsInvalidUsernames() {
	cases := []struct {
		name     string
		username string
	}{
		{"too short", "Abcd"},
		{"digits", "Alice1"},
		{"no uppercase", "alice"},
		{"no lowercase", "ALICE"},
		{"spaces", "Ali ce"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.Register(s.ctx, tc.username, "a@example.com", "pass1$")
			s.ErrorIs(err, ErrInvalidUsername)
		})
	}
}

func (s *ServiceSuite) TestRegisterRejectsInvalidPasswords() {
	cases := []struct {
		name     string
		password string
	}{
		{"too short", "a1$"},
		{"no digit", "pass$word"},
		{"no letter", "12345$"},
		{"no special", "pass1word"},
		{"wrong special", "pass1!"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.Register(s.ctx, "Alice", "a@example.com", tc.password)
			s.ErrorIs(err, ErrInvalidPassword)
		})
	}
}

func (s *ServiceSuite) TestRegisterRejectsInvalidEmail() {
	for _, email := range []string{"", "nodomain@", "@nolocal.com", "plainaddress"} {
		_, err := s.service.Register(s.ctx, "Alice", email, "pass1$")
		s.ErrorIs(err, ErrInvalidEmail)
	}
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	_, err := s.service.Register(s.ctx, "Alice", "alice@example.com", "pass1$")
	s.Require().NoError(err)

	cred, account, err := s.service.Login(s.ctx, "Alice", "pass1$")
	s.Require().NoError(err)

	s.NotEmpty(cred.Token)
	s.Equal(account.ID, cred.AccountID)
	s.Equal(s.clock.Now().Add(24*time.Hour), cred.ExpiresAt)
	s.Require().NotNil(account.LastLoginAt)
	s.Equal(s.clock.Now(), *account.LastLoginAt)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, err := s.service.Register(s.ctx, "Alice", "alice@example.com", "pass1$")
	s.Require().NoError(err)

	_, _, err = s.service.Login(s.ctx, "Alice", "wrong1$")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsForUnknownUsername() {
	_, _, err := s.service.Login(s.ctx, "Nobody", "pass1$")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// ValidateToken tests

func (s *ServiceSuite) TestValidateTokenSucceeds() {
	_, err := s.service.Register(s.ctx, "Alice", "alice@example.com", "pass1$")
	s.Require().NoError(err)
	cred, account, err := s.service.Login(s.ctx, "Alice", "pass1$")
	s.Require().NoError(err)

	validated, err := s.service.ValidateToken(s.ctx, cred.Token)
	s.Require().NoError(err)
	s.Equal(account.ID, validated.ID)
}

func (s *ServiceSuite) TestValidateTokenFailsForUnknownToken() {
	_, err := s.service.ValidateToken(s.ctx, "tok_bogus")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestValidateTokenFailsWhenExpired() {
	_, err := s.service.Register(s.ctx, "Alice", "alice@example.com", "pass1$")
	s.Require().NoError(err)
	cred, _, err := s.service.Login(s.ctx, "Alice", "pass1$")
	s.Require().NoError(err)

	s.clock.Advance(24*time.Hour + time.Second)

	_, err = s.service.ValidateToken(s.ctx, cred.Token)
	s.ErrorIs(err, model.ErrCredentialExpired)
}

func (s *ServiceSuite) TestValidateTokenFailsWhenRevoked() {
	_, err := s.service.Register(s.ctx, "Alice", "alice@example.com", "pass1$")
	s.Require().NoError(err)
	cred, account, err := s.service.Login(s.ctx, "Alice", "pass1$")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Revoke(s.ctx, cred.Token, account.ID, model.RevokeReasonDailyLimit))

	_, err = s.service.ValidateToken(s.ctx, cred.Token)
	s.ErrorIs(err, model.ErrCredentialRevoked)
}

func (s *ServiceSuite) TestRevocationOutranksExpiry() {
	_, err := s.service.Register(s.ctx, "Alice", "alice@example.com", "pass1$")
	s.Require().NoError(err)
	cred, account, err := s.service.Login(s.ctx, "Alice", "pass1$")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Revoke(s.ctx, cred.Token, account.ID, model.RevokeReasonLogout))
	s.clock.Advance(48 * time.Hour)

	// The revoked verdict applies even once the token is also expired
	_, err = s.service.ValidateToken(s.ctx, cred.Token)
	s.ErrorIs(err, model.ErrCredentialRevoked)
}

// Logout tests

func (s *ServiceSuite) TestLogoutRevokesCredential() {
	_, err := s.service.Register(s.ctx, "Alice", "alice@example.com", "pass1$")
	s.Require().NoError(err)
	cred, account, err := s.service.Login(s.ctx, "Alice", "pass1$")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Logout(s.ctx, cred.Token))

	_, err = s.service.ValidateToken(s.ctx, cred.Token)
	s.ErrorIs(err, model.ErrCredentialRevoked)

	stored, err := s.storage.GetAccount(s.ctx, account.ID)
	s.Require().NoError(err)
	s.NotNil(stored.LastLogoutAt)
}

func (s *ServiceSuite) TestLogoutDoesNotAffectOtherCredentials() {
	_, err := s.service.Register(s.ctx, "Alice", "alice@example.com", "pass1$")
	s.Require().NoError(err)
	cred1, _, err := s.service.Login(s.ctx, "Alice", "pass1$")
	s.Require().NoError(err)
	cred2, _, err := s.service.Login(s.ctx, "Alice", "pass1$")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Logout(s.ctx, cred1.Token))

	_, err = s.service.ValidateToken(s.ctx, cred2.Token)
	s.NoError(err)
}

func (s *ServiceSuite) TestLogoutFailsForUnknownToken() {
	err := s.service.Logout(s.ctx, "tok_bogus")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// EnsureAdmin tests

func (s *ServiceSuite) TestEnsureAdminCreatesAccount() {
	s.Require().NoError(s.service.EnsureAdmin(s.ctx, "AdminUser", "Adm1n$*"))

	account, err := s.storage.GetAccountByUsername(s.ctx, "AdminUser")
	s.Require().NoError(err)
	s.Equal(model.RoleAdmin, account.Role)
}

func (s *ServiceSuite) TestEnsureAdminIsIdempotent() {
	s.Require().NoError(s.service.EnsureAdmin(s.ctx, "AdminUser", "Adm1n$*"))

	existing, err := s.storage.GetAccountByUsername(s.ctx, "AdminUser")
	s.Require().NoError(err)

	s.Require().NoError(s.service.EnsureAdmin(s.ctx, "AdminUser", "Adm1n$*"))

	after, err := s.storage.GetAccountByUsername(s.ctx, "AdminUser")
	s.Require().NoError(err)
	s.Equal(existing.ID, after.ID)
}

func (s *ServiceSuite) TestEnsureAdminCanLogin() {
	s.Require().NoError(s.service.EnsureAdmin(s.ctx, "AdminUser", "Adm1n$*"))

	_, account, err := s.service.Login(s.ctx, "AdminUser", "Adm1n$*")
	s.Require().NoError(err)
	s.Equal(model.RoleAdmin, account.Role)
}
