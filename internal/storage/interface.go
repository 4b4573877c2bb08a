package storage

import (
	"context"
	"time"

	"github.com/tobyheywood/wordguess/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)

	// Game session operations
	SaveSession(ctx context.Context, session *model.GameSession) error
	GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error)
	ListSessionsForAccount(ctx context.Context, accountID model.AccountID) ([]*model.GameSession, error)
	ListSessionsStartedBetween(ctx context.Context, from, to time.Time) ([]*model.GameSession, error)

	// Word pool operations
	SaveWord(ctx context.Context, word *model.Word) error
	GetWord(ctx context.Context, id model.WordID) (*model.Word, error)
	GetWordByText(ctx context.Context, text string) (*model.Word, error)
	ListWords(ctx context.Context, activeOnly bool) ([]*model.Word, error)

	// Credential operations
	SaveCredential(ctx context.Context, cred *model.Credential) error
	GetCredential(ctx context.Context, token string) (*model.Credential, error)

	// Revocation denylist operations (append-only)
	SaveRevokedCredential(ctx context.Context, rc *model.RevokedCredential) error
	IsCredentialRevoked(ctx context.Context, token string) (bool, error)
}
