package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/tobyheywood/wordguess/internal/dependencies/clock"
	"github.com/tobyheywood/wordguess/internal/dependencies/random"
	"github.com/tobyheywood/wordguess/internal/model"
	"github.com/tobyheywood/wordguess/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUsername    = errors.New("username must be letters only, at least 5 chars, with both upper and lower case")
	ErrInvalidPassword    = errors.New("password must be at least 5 chars and include a letter, a digit, and one of $ % * @")
	ErrInvalidEmail       = errors.New("invalid email address")
)

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Service handles account registration, login, and the credential
// revocation gate. Credentials and the denylist live in storage so
// revocation survives restarts and is shared across instances.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	credentialDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	CredentialDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		CredentialDuration: 24 * time.Hour,
	}
}

// New creates a new auth service
func New(storage storage.Storage, clock clock.Clock, random random.Random, cfg Config, logger *slog.Logger) *Service {
	if cfg.CredentialDuration == 0 {
		cfg.CredentialDuration = DefaultConfig().CredentialDuration
	}
	return &Service{
		storage:            storage,
		clock:              clock,
		random:             random,
		logger:             logger,
		credentialDuration: cfg.CredentialDuration,
	}
}

// Register creates a player account
func (s *Service) Register(ctx context.Context, username, email, password string) (*model.Account, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetAccountByUsername(ctx, username); err == nil {
		return nil, model.ErrUsernameExists
	} else if !errors.Is(err, model.ErrAccountNotFound) {
		return nil, err
	}
	if _, err := s.storage.GetAccountByEmail(ctx, email); err == nil {
		return nil, model.ErrEmailExists
	} else if !errors.Is(err, model.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		ID:           model.AccountID("a_" + s.random.String(16, tokenAlphabet)),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RolePlayer,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("account registered", slog.String("account_id", string(account.ID)))
	return account, nil
}

// Login authenticates an account and issues a credential
func (s *Service) Login(ctx context.Context, username, password string) (*model.Credential, *model.Account, error) {
	account, err := s.storage.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	now := s.clock.Now()
	account.LastLoginAt = &now
	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, nil, err
	}

	cred := &model.Credential{
		Token:     "tok_" + s.random.String(32, tokenAlphabet),
		AccountID: account.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.credentialDuration),
	}
	if err := s.storage.SaveCredential(ctx, cred); err != nil {
		return nil, nil, err
	}

	s.logger.Info("login", slog.String("account_id", string(account.ID)))
	return cred, account, nil
}

// ValidateToken checks a presented credential and returns its account.
// The revocation denylist is consulted first: a revoked token is
// rejected as unauthenticated regardless of its own expiry.
func (s *Service) ValidateToken(ctx context.Context, token string) (*model.Account, error) {
	revoked, err := s.storage.IsCredentialRevoked(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, model.ErrCredentialRevoked
	}

	cred, err := s.storage.GetCredential(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrCredentialNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if s.clock.Now().After(cred.ExpiresAt) {
		return nil, model.ErrCredentialExpired
	}

	return s.storage.GetAccount(ctx, cred.AccountID)
}

// Revoke appends the token to the permanent denylist. There is no
// un-revoke. Implements quota.RevocationGate.
func (s *Service) Revoke(ctx context.Context, token string, accountID model.AccountID, reason string) error {
	rc := &model.RevokedCredential{
		Token:     token,
		AccountID: accountID,
		RevokedAt: s.clock.Now(),
		Reason:    reason,
	}
	if err := s.storage.SaveRevokedCredential(ctx, rc); err != nil {
		return err
	}

	s.logger.Info("credential revoked",
		slog.String("account_id", string(accountID)),
		slog.String("reason", reason),
	)
	return nil
}

// Logout revokes the presented credential and records the logout time
func (s *Service) Logout(ctx context.Context, token string) error {
	cred, err := s.storage.GetCredential(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrCredentialNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := s.Revoke(ctx, token, cred.AccountID, model.RevokeReasonLogout); err != nil {
		return err
	}

	account, err := s.storage.GetAccount(ctx, cred.AccountID)
	if err != nil {
		return err
	}
	now := s.clock.Now()
	account.LastLogoutAt = &now
	return s.storage.SaveAccount(ctx, account)
}

// EnsureAdmin creates the bootstrap admin account if it does not exist
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.storage.GetAccountByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrAccountNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account := &model.Account{
		ID:           model.AccountID("a_" + s.random.String(16, tokenAlphabet)),
		Username:     username,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return err
	}

	s.logger.Info("admin account created", slog.String("account_id", string(account.ID)))
	return nil
}

// validateUsername requires letters only, length >= 5, with at least
// one uppercase and one lowercase letter
func validateUsername(username string) error {
	if len(username) < 5 {
		return ErrInvalidUsername
	}
	var hasUpper, hasLower bool
	for _, r := range username {
		switch {
		case unicode.IsUpper(r) && r <= unicode.MaxASCII:
			hasUpper = true
		case unicode.IsLower(r) && r <= unicode.MaxASCII:
			hasLower = true
		default:
			return ErrInvalidUsername
		}
	}
	if !hasUpper || !hasLower {
		return ErrInvalidUsername
	}
	return nil
}

// validatePassword requires length >= 5 with a letter, a digit, and
// one of $ % * @
func validatePassword(password string) error {
	if len(password) < 5 {
		return ErrInvalidPassword
	}
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune("$%*@", r):
			hasSpecial = true
		}
	}
	if !hasLetter || !hasDigit || !hasSpecial {
		return ErrInvalidPassword
	}
	return nil
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	return nil
}
