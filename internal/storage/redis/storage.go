package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tobyheywood/wordguess/internal/model"
	"github.com/tobyheywood/wordguess/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, accountKey(account.ID), data, 0)
	pipe.Set(ctx, usernameIndexKey(account.Username), string(account.ID), 0)
	if account.Email != "" {
		pipe.Set(ctx, emailIndexKey(account.Email), string(account.ID), 0)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	data, err := s.client.Get(ctx, accountKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	id, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}
	return s.GetAccount(ctx, model.AccountID(id))
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	id, err := s.client.Get(ctx, emailIndexKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}
	return s.GetAccount(ctx, model.AccountID(id))
}

// Game session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, sessionKey(session.ID), data, 0)
	pipe.SAdd(ctx, sessionsForAccountKey(session.AccountID), string(session.ID))
	pipe.ZAdd(ctx, sessionsByStartKey(), redis.Z{
		Score:  float64(session.StartedAt.UnixNano()),
		Member: string(session.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.GameSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) ListSessionsForAccount(ctx context.Context, accountID model.AccountID) ([]*model.GameSession, error) {
	ids, err := s.client.SMembers(ctx, sessionsForAccountKey(accountID)).Result()
	if err != nil {
		return nil, err
	}
	return s.getSessions(ctx, ids)
}

func (s *Storage) ListSessionsStartedBetween(ctx context.Context, from, to time.Time) ([]*model.GameSession, error) {
	ids, err := s.client.ZRangeByScore(ctx, sessionsByStartKey(), &redis.ZRangeBy{
		Min: strconv.FormatInt(from.UnixNano(), 10),
		Max: strconv.FormatInt(to.UnixNano(), 10),
	}).Result()
	if err != nil {
		return nil, err
	}
	return s.getSessions(ctx, ids)
}

func (s *Storage) getSessions(ctx context.Context, ids []string) ([]*model.GameSession, error) {
	var sessions []*model.GameSession
	for _, id := range ids {
		session, err := s.GetSession(ctx, model.SessionID(id))
		if err != nil {
			if errors.Is(err, model.ErrSessionNotFound) {
				// Stale index entry
				continue
			}
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// Word pool operations

func (s *Storage) SaveWord(ctx context.Context, word *model.Word) error {
	data, err := json.Marshal(word)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, wordKey(word.ID), data, 0)
	pipe.Set(ctx, wordTextIndexKey(word.Text), string(word.ID), 0)
	pipe.SAdd(ctx, wordsIndexKey(), string(word.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetWord(ctx context.Context, id model.WordID) (*model.Word, error) {
	data, err := s.client.Get(ctx, wordKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrWordNotFound
		}
		return nil, err
	}

	var word model.Word
	if err := json.Unmarshal(data, &word); err != nil {
		return nil, err
	}
	return &word, nil
}

func (s *Storage) GetWordByText(ctx context.Context, text string) (*model.Word, error) {
	id, err := s.client.Get(ctx, wordTextIndexKey(text)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrWordNotFound
		}
		return nil, err
	}
	return s.GetWord(ctx, model.WordID(id))
}

func (s *Storage) ListWords(ctx context.Context, activeOnly bool) ([]*model.Word, error) {
	ids, err := s.client.SMembers(ctx, wordsIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	var words []*model.Word
	for _, id := range ids {
		word, err := s.GetWord(ctx, model.WordID(id))
		if err != nil {
			if errors.Is(err, model.ErrWordNotFound) {
				continue
			}
			return nil, err
		}
		if activeOnly && !word.Active {
			continue
		}
		words = append(words, word)
	}
	return words, nil
}

// Credential operations

func (s *Storage) SaveCredential(ctx context.Context, cred *model.Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, credentialKey(cred.Token), data, s.cfg.CredentialTTL).Err()
}

func (s *Storage) GetCredential(ctx context.Context, token string) (*model.Credential, error) {
	data, err := s.client.Get(ctx, credentialKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCredentialNotFound
		}
		return nil, err
	}

	var cred model.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

// Revocation denylist operations

func (s *Storage) SaveRevokedCredential(ctx context.Context, rc *model.RevokedCredential) error {
	data, err := json.Marshal(rc)
	if err != nil {
		return err
	}
	// SetNX keeps the denylist append-only: the first revocation wins
	return s.client.SetNX(ctx, revokedKey(rc.Token), data, s.cfg.CredentialTTL).Err()
}

func (s *Storage) IsCredentialRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
