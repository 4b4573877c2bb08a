package words

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
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
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s.service = New(s.storage, s.clock, s.random, logger)
	s.ctx = context.Background()
}

// Add tests

func (s *ServiceSuite) TestAddSucceeds() {
	s.random.QueueString("WORD00000001")

	word, err := s.service.Add(s.ctx, "CRANE", true)
	s.Require().NoError(err)

	s.Equal(model.WordID("WORD00000001"), word.ID)
	s.Equal("CRANE", word.Text)
	s.True(word.Active)
}

func (s *ServiceSuite) TestAddNormalizesToUppercase() {
	s.random.QueueString("WORD00000001")

	word, err := s.service.Add(s.ctx, "  crane ", true)
	s.Require().NoError(err)
	s.Equal("CRANE", word.Text)
}

func (s *ServiceSuite) TestAddRejectsMalformedWords() {
	for _, text := range []string{"", "CATS", "CRANES", "CRA1E", "CR NE"} {
		_, err := s.service.Add(s.ctx, text, true)
		s.ErrorIs(err, model.ErrInvalidWord)
	}
}

func (s *ServiceSuite) TestAddRejectsDuplicates() {
	s.random.QueueString("WORD00000001", "WORD00000002")

	_, err := s.service.Add(s.ctx, "CRANE", true)
	s.Require().NoError(err)

	// Duplicate detection is case-insensitive through normalization
	_, err = s.service.Add(s.ctx, "crane", false)
	s.ErrorIs(err, model.ErrWordExists)
}

// PickActive tests

func (s *ServiceSuite) TestPickActiveFailsOnEmptyPool() {
	_, err := s.service.PickActive(s.ctx)
	s.ErrorIs(err, model.ErrNoWordsAvailable)
}

func (s *ServiceSuite) TestPickActiveReturnsTheOnlyActiveWord() {
	s.random.QueueString("WORD00000001", "WORD00000002")
	_, err := s.service.Add(s.ctx, "CRANE", true)
	s.Require().NoError(err)
	_, err = s.service.Add(s.ctx, "SLATE", false)
	s.Require().NoError(err)

	for i := 0; i < 5; i++ {
		word, err := s.service.PickActive(s.ctx)
		s.Require().NoError(err)
		s.Equal("CRANE", word.Text)
	}
}

func (s *ServiceSuite) TestPickActiveFailsWhenAllRetired() {
	s.random.QueueString("WORD00000001")
	word, err := s.service.Add(s.ctx, "CRANE", true)
	s.Require().NoError(err)

	_, err = s.service.SetActive(s.ctx, word.ID, false)
	s.Require().NoError(err)

	_, err = s.service.PickActive(s.ctx)
	s.ErrorIs(err, model.ErrNoWordsAvailable)
}

// SetActive tests

func (s *ServiceSuite) TestSetActiveTogglesWord() {
	s.random.QueueString("WORD00000001")
	word, err := s.service.Add(s.ctx, "CRANE", true)
	s.Require().NoError(err)

	updated, err := s.service.SetActive(s.ctx, word.ID, false)
	s.Require().NoError(err)
	s.False(updated.Active)

	updated, err = s.service.SetActive(s.ctx, word.ID, true)
	s.Require().NoError(err)
	s.True(updated.Active)
}

func (s *ServiceSuite) TestSetActiveFailsForUnknownWord() {
	_, err := s.service.SetActive(s.ctx, "missing", true)
	s.ErrorIs(err, model.ErrWordNotFound)
}

// List tests

func (s *ServiceSuite) TestListFiltersByActive() {
	s.random.QueueString("WORD00000001", "WORD00000002")
	_, err := s.service.Add(s.ctx, "CRANE", true)
	s.Require().NoError(err)
	_, err = s.service.Add(s.ctx, "SLATE", false)
	s.Require().NoError(err)

	all, err := s.service.List(s.ctx, false)
	s.Require().NoError(err)
	s.Len(all, 2)

	active, err := s.service.List(s.ctx, true)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal("CRANE", active[0].Text)
}

// Seed tests (real random: seeding generates many ids)

func TestSeedPopulatesEmptyPool(t *testing.T) {
	storage := memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	service := New(storage, clk, random.New(), logger)
	ctx := context.Background()

	if err := service.Seed(ctx); err != nil {
		t.Fatal(err)
	}

	words, err := service.List(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != len(DefaultWords) {
		t.Errorf("expected %d seeded words, got %d", len(DefaultWords), len(words))
	}
}

func TestSeedSkipsNonEmptyPool(t *testing.T) {
	storage := memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	service := New(storage, clk, random.New(), logger)
	ctx := context.Background()

	if _, err := service.Add(ctx, "CRANE", true); err != nil {
		t.Fatal(err)
	}

	if err := service.Seed(ctx); err != nil {
		t.Fatal(err)
	}

	words, err := service.List(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 1 {
		t.Errorf("expected seed to be skipped, got %d words", len(words))
	}
}

func TestLoadFromFile(t *testing.T) {
	storage := memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	service := New(storage, clk, random.New(), logger)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "words.txt")
	content := "crane\nslate\n\ncrane\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	if err := service.LoadFromFile(ctx, path); err != nil {
		t.Fatal(err)
	}

	words, err := service.List(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 2 {
		t.Errorf("expected 2 words (duplicates and blanks skipped), got %d", len(words))
	}
}
