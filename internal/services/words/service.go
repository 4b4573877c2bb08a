package words

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/tobyheywood/wordguess/internal/dependencies/clock"
	"github.com/tobyheywood/wordguess/internal/dependencies/random"
	"github.com/tobyheywood/wordguess/internal/model"
	"github.com/tobyheywood/wordguess/internal/storage"
)

// DefaultWords seeds a fresh installation so the game is playable
// before an admin curates the pool.
var DefaultWords = []string{
	"APPLE", "BERRY", "CANDY", "DELTA", "EAGLE",
	"FLAME", "GIANT", "HOTEL", "IVORY", "JELLY",
	"KNIFE", "LEMON", "MANGO", "NINJA", "OPERA",
	"PARTY", "QUEEN", "RIVER", "SUSHI", "TIGER",
}

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Service manages the secret-word pool
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new word pool service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// PickActive selects one active word uniformly at random.
// Returns model.ErrNoWordsAvailable when the active pool is empty.
func (s *Service) PickActive(ctx context.Context) (*model.Word, error) {
	active, err := s.storage.ListWords(ctx, true)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, model.ErrNoWordsAvailable
	}
	return active[s.random.Intn(len(active))], nil
}

// Add inserts a new word into the pool
func (s *Service) Add(ctx context.Context, text string, active bool) (*model.Word, error) {
	text, err := normalizeWord(text)
	if err != nil {
		return nil, err
	}

	_, err = s.storage.GetWordByText(ctx, text)
	if err == nil {
		return nil, model.ErrWordExists
	}
	if !errors.Is(err, model.ErrWordNotFound) {
		return nil, err
	}

	word := &model.Word{
		ID:        model.WordID(s.random.String(12, idAlphabet)),
		Text:      text,
		Active:    active,
		CreatedAt: s.clock.Now(),
	}
	if err := s.storage.SaveWord(ctx, word); err != nil {
		return nil, err
	}

	s.logger.Info("word added",
		slog.String("word_id", string(word.ID)),
		slog.Bool("active", active),
	)
	return word, nil
}

// List returns all words, or only active ones when activeOnly is set
func (s *Service) List(ctx context.Context, activeOnly bool) ([]*model.Word, error) {
	return s.storage.ListWords(ctx, activeOnly)
}

// SetActive marks a word as active or retired
func (s *Service) SetActive(ctx context.Context, id model.WordID, active bool) (*model.Word, error) {
	word, err := s.storage.GetWord(ctx, id)
	if err != nil {
		return nil, err
	}
	word.Active = active
	if err := s.storage.SaveWord(ctx, word); err != nil {
		return nil, err
	}
	return word, nil
}

// Seed inserts the default word list when the pool is empty
func (s *Service) Seed(ctx context.Context) error {
	existing, err := s.storage.ListWords(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, text := range DefaultWords {
		if _, err := s.Add(ctx, text, true); err != nil {
			return err
		}
	}

	s.logger.Info("word pool seeded", slog.Int("count", len(DefaultWords)))
	return nil
}

// LoadFromFile adds words from a file, one per line, skipping
// duplicates and blank lines
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	added := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if _, err := s.Add(ctx, text, true); err != nil {
			if errors.Is(err, model.ErrWordExists) {
				continue
			}
			return err
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	s.logger.Info("word pool loaded from file",
		slog.String("path", path),
		slog.Int("added", added),
	)
	return nil
}

// normalizeWord uppercases and shape-checks a pool entry
func normalizeWord(text string) (string, error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if len(text) != model.WordLength {
		return "", model.ErrInvalidWord
	}
	for _, r := range text {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return "", model.ErrInvalidWord
		}
	}
	return text, nil
}
