package memory

import (
	"context"
	"sync"
	"time"

	"github.com/tobyheywood/wordguess/internal/model"
	"github.com/tobyheywood/wordguess/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	accounts      map[model.AccountID]*model.Account
	usernameIndex map[string]model.AccountID
	emailIndex    map[string]model.AccountID
	sessions      map[model.SessionID]*model.GameSession
	words         map[model.WordID]*model.Word
	wordTextIndex map[string]model.WordID
	credentials   map[string]*model.Credential
	revoked       map[string]*model.RevokedCredential
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts:      make(map[model.AccountID]*model.Account),
		usernameIndex: make(map[string]model.AccountID),
		emailIndex:    make(map[string]model.AccountID),
		sessions:      make(map[model.SessionID]*model.GameSession),
		words:         make(map[model.WordID]*model.Word),
		wordTextIndex: make(map[string]model.WordID),
		credentials:   make(map[string]*model.Credential),
		revoked:       make(map[string]*model.RevokedCredential),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
	s.usernameIndex[account.Username] = account.ID
	if account.Email != "" {
		s.emailIndex[account.Email] = account.ID
	}
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[email]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

// Game session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) ListSessionsForAccount(ctx context.Context, accountID model.AccountID) ([]*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sessions []*model.GameSession
	for _, session := range s.sessions {
		if session.AccountID == accountID {
			sessions = append(sessions, session)
		}
	}
	return sessions, nil
}

func (s *Storage) ListSessionsStartedBetween(ctx context.Context, from, to time.Time) ([]*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sessions []*model.GameSession
	for _, session := range s.sessions {
		if !session.StartedAt.Before(from) && !session.StartedAt.After(to) {
			sessions = append(sessions, session)
		}
	}
	return sessions, nil
}

// Word pool operations

func (s *Storage) SaveWord(ctx context.Context, word *model.Word) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words[word.ID] = word
	s.wordTextIndex[word.Text] = word.ID
	return nil
}

func (s *Storage) GetWord(ctx context.Context, id model.WordID) (*model.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	word, ok := s.words[id]
	if !ok {
		return nil, model.ErrWordNotFound
	}
	return word, nil
}

func (s *Storage) GetWordByText(ctx context.Context, text string) (*model.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.wordTextIndex[text]
	if !ok {
		return nil, model.ErrWordNotFound
	}
	word, ok := s.words[id]
	if !ok {
		return nil, model.ErrWordNotFound
	}
	return word, nil
}

func (s *Storage) ListWords(ctx context.Context, activeOnly bool) ([]*model.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var words []*model.Word
	for _, word := range s.words {
		if activeOnly && !word.Active {
			continue
		}
		words = append(words, word)
	}
	return words, nil
}

// Credential operations

func (s *Storage) SaveCredential(ctx context.Context, cred *model.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[cred.Token] = cred
	return nil
}

func (s *Storage) GetCredential(ctx context.Context, token string) (*model.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.credentials[token]
	if !ok {
		return nil, model.ErrCredentialNotFound
	}
	return cred, nil
}

// Revocation denylist operations

func (s *Storage) SaveRevokedCredential(ctx context.Context, rc *model.RevokedCredential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Append-only: the first revocation record wins
	if _, ok := s.revoked[rc.Token]; !ok {
		s.revoked[rc.Token] = rc
	}
	return nil
}

func (s *Storage) IsCredentialRevoked(ctx context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.revoked[token]
	return ok, nil
}
